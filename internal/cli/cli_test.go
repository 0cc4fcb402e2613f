package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

const testBoard = `[
  {"type": "pcb_board", "pcb_board_id": "b1", "center": {"x": 0, "y": 0}, "width": 10, "height": 10},
  {"type": "pcb_smtpad", "pcb_smtpad_id": "p1", "shape": "rect", "x": 1, "y": 1, "width": 1, "height": 0.5, "layer": "top"},
  {"type": "source_port", "source_port_id": "sp1", "source_component_id": "c1", "name": "1"},
  {"type": "source_port", "source_port_id": "sp2", "source_component_id": "c2", "name": "1"},
  {"type": "source_trace", "source_trace_id": "st1", "connected_source_port_ids": ["sp1", "sp2"]}
]`

func writeBoard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(testBoard), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestCLI returns a CLI logging to the returned buffer, with an empty
// config home and the spinner discarded.
func newTestCLI(t *testing.T, level log.Level) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var logs bytes.Buffer
	c := New(&logs, level)
	c.spinnerOut = io.Discard
	return c, &logs
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	c, _ := newTestCLI(t, LogInfo)
	return execute(c, args...)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, output, format string
		single                bool
		want                  string
	}{
		{"board.json", "", "svg", true, "board.svg"},
		{"dir/board.json", "", "png", false, "dir/board.png"},
		{"board.json", "out.svg", "svg", true, "out.svg"},
		{"board.json", "out.svg", "png", false, "out.png"},
		{"board.json", "-", "svg", true, "-"},
		{"-", "", "svg", true, "circuit.svg"},
		{"board.json", "", "json", true, "board.report.json"},
		{"board.json", "out.svg", "json", false, "out.report.json"},
	}
	for _, tt := range tests {
		got := outputPath(tt.input, tt.output, tt.format, tt.single)
		if got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
				tt.input, tt.output, tt.format, tt.single, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeBoard(t)
	if err := runCLI(t, "render", "--no-cache", "-f", "svg,json", input); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(strings.TrimSuffix(input, ".json") + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`data-id="p1"`)) {
		t.Errorf("svg missing pad:\n%s", svg)
	}

	report, err := os.ReadFile(strings.TrimSuffix(input, ".json") + ".report.json")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(report, []byte(`"source": "bounds"`)) {
		t.Errorf("report missing viewport source:\n%s", report)
	}
}

func TestRenderCommandMultipleFiles(t *testing.T) {
	a, b := writeBoard(t), writeBoard(t)
	if err := runCLI(t, "render", "--no-cache", "-j", "2", a, b); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, in := range []string{a, b} {
		if _, err := os.Stat(strings.TrimSuffix(in, ".json") + ".svg"); err != nil {
			t.Errorf("missing output for %s: %v", in, err)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeBoard(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad view", []string{"render", "--view", "3d", input}, errors.ErrCodeInvalidView},
		{"dot outside nets", []string{"render", "-f", "dot", input}, errors.ErrCodeInvalidFormat},
		{"viewport arity", []string{"render", "--viewport", "1,2,3", input}, errors.ErrCodeInvalidInput},
		{"stdout with two formats", []string{"render", "-o", "-", "-f", "svg,json", input}, errors.ErrCodeInvalidInput},
		{"missing file", []string{"render", "--no-cache", filepath.Join(t.TempDir(), "nope.json")}, errors.ErrCodeFileNotFound},
		{"missing board target", []string{"render", "--no-cache", "--board", "zz", input}, errors.ErrCodeViewportTargetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNetsCommandDOT(t *testing.T) {
	input := writeBoard(t)
	out := filepath.Join(t.TempDir(), "nets.dot")
	if err := runCLI(t, "nets", "--no-cache", "-o", out, input); err != nil {
		t.Fatalf("nets: %v", err)
	}
	dot, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(dot, []byte(`"sp1" -- "connectivity_net1";`)) {
		t.Errorf("dot missing source port edge:\n%s", dot)
	}
}

func TestBoundsCommand(t *testing.T) {
	input := writeBoard(t)
	if err := runCLI(t, "bounds", input); err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if err := runCLI(t, "bounds", "--view", "nets", input); !errors.Is(err, errors.ErrCodeInvalidView) {
		t.Errorf("bounds --view nets: %v, want INVALID_VIEW", err)
	}
}

func TestCachePathCommandUsesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	if err := runCLI(t, "--config", cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}

func TestFormatNum(t *testing.T) {
	tests := map[float64]string{
		1:          "1",
		-2.5:       "-2.5",
		1.23456789: "1.2346",
		0.00001:    "0",
	}
	for in, want := range tests {
		if got := formatNum(in); got != want {
			t.Errorf("formatNum(%v) = %q, want %q", in, got, want)
		}
	}
}
