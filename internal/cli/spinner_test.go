package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

func TestRenderSpinnerStatus(t *testing.T) {
	s := newRenderSpinner(context.Background(), io.Discard, 3)
	if got, want := s.status(), "Rendering 0/3 files..."; got != want {
		t.Errorf("status() = %q, want %q", got, want)
	}

	s.Advance("designs/board.json", pipeline.Stats{ElementCount: 12})
	if got, want := s.status(), "Rendering 1/3 files · board.json (12 elements)"; got != want {
		t.Errorf("status() = %q, want %q", got, want)
	}

	s.Advance("designs/panel.json", pipeline.Stats{ElementCount: 40, SkippedCount: 2})
	if got, want := s.status(), "Rendering 2/3 files · panel.json (40 elements, 2 skipped)"; got != want {
		t.Errorf("status() = %q, want %q", got, want)
	}
}

func TestRenderSpinnerDrawsProgress(t *testing.T) {
	var buf bytes.Buffer
	s := newRenderSpinner(context.Background(), &buf, 2)
	s.Advance("board.json", pipeline.Stats{ElementCount: 5})
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering 1/2 files · board.json (5 elements)") {
		t.Errorf("spinner output missing progress: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should clear its line on stop: %q", out)
	}
}

func TestRenderSpinnerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newRenderSpinner(ctx, io.Discard, 4)
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner still running after its context was cancelled")
	}
	s.Stop()
	s.Stop()
}

func TestRenderSpinnerNil(t *testing.T) {
	var s *renderSpinner
	s.Start()
	s.Advance("board.json", pipeline.Stats{})
	s.Stop()
}

func TestRenderSingleFileHasNoSpinner(t *testing.T) {
	c, _ := newTestCLI(t, LogInfo)
	var spin bytes.Buffer
	c.spinnerOut = &spin
	if err := execute(c, "render", "--no-cache", writeBoard(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if spin.Len() != 0 {
		t.Errorf("single-file render drew a spinner: %q", spin.String())
	}
}
