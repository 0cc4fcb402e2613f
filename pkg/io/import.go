package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// MaxInputSize bounds the size of one element document.
const MaxInputSize = 64 << 20

// Stdin is the path ImportJSON reads standard input for.
const Stdin = "-"

// ReadAll reads r up to MaxInputSize. ReadAll does not close r.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(data) > MaxInputSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input exceeds %d bytes", MaxInputSize)
	}
	return data, nil
}

// ReadJSON decodes an element collection from r.
func ReadJSON(r io.Reader) (circuit.Elements, error) {
	data, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	return circuit.Decode(data)
}

// ReadFile returns the raw bytes of the file at path, or of stdin when path
// is "-".
func ReadFile(path string) ([]byte, error) {
	if path == Stdin {
		return ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(f)
}

// ImportJSON reads the file at path and decodes it.
func ImportJSON(path string) (circuit.Elements, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	els, err := circuit.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return els, nil
}
