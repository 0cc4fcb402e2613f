package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// WriteJSON encodes els as a JSON array and writes it to w.
func WriteJSON(els circuit.Elements, w io.Writer) error {
	data, err := circuit.Encode(els)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes els to a JSON file at path.
func ExportJSON(els circuit.Elements, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(els, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteArtifact writes rendered output to path, or to stdout when path
// is "-".
func WriteArtifact(path string, data []byte) error {
	if path == Stdin {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
