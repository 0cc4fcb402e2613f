// Package io reads and writes element collections as JSON.
//
// # Format
//
// A collection is a JSON array of tagged records:
//
//	[
//	  {"type": "pcb_board", "pcb_board_id": "b1", "center": {"x": 0, "y": 0}, "width": 10, "height": 10},
//	  {"type": "pcb_smtpad", "pcb_smtpad_id": "p1", "shape": "rect", "x": 1, "y": 1, "width": 1, "height": 0.5, "layer": "top"}
//	]
//
// See [circuit.Decode] for how unknown and malformed records are kept.
//
// # Import
//
// Use [ImportJSON] to read a collection from a file path ("-" is stdin), or
// [ReadJSON] to read from any io.Reader:
//
//	els, err := io.ImportJSON("board.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is a FILE_NOT_FOUND error; anything that is not a JSON
// array, or is larger than [MaxInputSize], is INVALID_INPUT.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write a collection back out. Unknown and
// malformed records are written verbatim, so import followed by export
// round-trips. [WriteArtifact] writes a rendered output file.
//
// [circuit.Decode]: github.com/matzehuels/circuitsvg/pkg/circuit.Decode
package io
