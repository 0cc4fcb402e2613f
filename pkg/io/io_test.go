package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
)

const sample = `[{"type":"pcb_board","pcb_board_id":"b1","center":{"x":0,"y":0},"width":10,"height":10},{"type":"mystery","id":7}]`

func TestReadJSON(t *testing.T) {
	els, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if _, ok := els[0].(*circuit.PCBBoard); !ok {
		t.Errorf("els[0] = %T, want *circuit.PCBBoard", els[0])
	}
	if _, ok := els[1].(*circuit.Unknown); !ok {
		t.Errorf("els[1] = %T, want *circuit.Unknown", els[1])
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"object", `{"type":"pcb_board"}`},
		{"truncated", `[{"type":`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestReadAllLimit(t *testing.T) {
	big := bytes.NewReader(make([]byte, MaxInputSize+1))
	if _, err := ReadAll(big); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	els, err := ReadJSON(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(els, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if len(back) != len(els) {
		t.Fatalf("round trip has %d elements, want %d", len(back), len(els))
	}
	b := back[0].(*circuit.PCBBoard)
	if w, _ := b.Width.Value(); w != 10 || b.PCBBoardID != "b1" {
		t.Errorf("board after round trip = %+v", b)
	}
	if u := back[1].(*circuit.Unknown); u.Kind != "mystery" {
		t.Errorf("unknown kind after round trip = %q", u.Kind)
	}
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := WriteArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteArtifact() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("file = %q, %v", data, err)
	}
	if err := WriteArtifact("dir/", nil); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want INVALID_PATH", err)
	}
}
