// Package viewport decides which world rectangle a PCB conversion renders.
//
// Resolution order, first match wins:
//
//  1. an explicit viewport rectangle, used verbatim with no padding
//  2. a target panel id, which must exist
//  3. a target board id, which must exist (outline-aware)
//  4. the union of all panels, if any panel exists
//  5. the board-only bounds when padding outside the board is disabled,
//     otherwise the overall bounds
//
// Padding of one design unit is applied only in cases 4 and 5, and only
// when drawing padding outside the board is enabled.
package viewport

import (
	"math"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// DefaultPadding is the padding in design units added around the default
// frame.
const DefaultPadding = 1.0

// Target names a single panel or board to frame. PCBPanelID is checked
// before PCBBoardID.
type Target struct {
	PCBPanelID string `json:"pcb_panel_id,omitempty" toml:"pcb_panel_id"`
	PCBBoardID string `json:"pcb_board_id,omitempty" toml:"pcb_board_id"`
}

// IsZero reports whether t names nothing.
func (t *Target) IsZero() bool {
	return t == nil || (t.PCBPanelID == "" && t.PCBBoardID == "")
}

// Request is the input to Resolve.
type Request struct {
	Elements                circuit.Elements
	DrawPaddingOutsideBoard bool
	Base                    bounds.Result
	Viewport                *geom.Bounds
	Target                  *Target
}

// Source identifies which rule produced a Result.
type Source string

const (
	SourceViewport    Source = "viewport"
	SourcePanelTarget Source = "panel_target"
	SourceBoardTarget Source = "board_target"
	SourcePanels      Source = "panels"
	SourceBoard       Source = "board"
	SourceBounds      Source = "bounds"
	SourceEmpty       Source = "empty"
)

// Result is the resolved world rectangle and the padding to grow it by.
type Result struct {
	Bounds  geom.Bounds `json:"bounds"`
	Padding float64     `json:"padding"`
	Source  Source      `json:"source"`
}

// emptyWorld frames a collection with no bounds at all.
var emptyWorld = geom.Bounds{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}

// Resolve picks the world rectangle for req. It fails only for an invalid
// explicit viewport or a target id that is not present.
func Resolve(req Request) (Result, error) {
	if req.Viewport != nil {
		if err := validRect(*req.Viewport); err != nil {
			return Result{}, err
		}
		return Result{Bounds: *req.Viewport, Source: SourceViewport}, nil
	}

	if t := req.Target; !t.IsZero() {
		if t.PCBPanelID != "" {
			b, err := panelTarget(req.Elements, t.PCBPanelID)
			return Result{Bounds: b, Source: SourcePanelTarget}, err
		}
		b, err := boardTarget(req.Elements, t.PCBBoardID)
		return Result{Bounds: b, Source: SourceBoardTarget}, err
	}

	padding := 0.0
	if req.DrawPaddingOutsideBoard {
		padding = DefaultPadding
	}

	if b, ok := bounds.PanelsBounds(req.Elements); ok {
		return Result{Bounds: b, Padding: padding, Source: SourcePanels}, nil
	}

	base := req.Base
	switch {
	case !req.DrawPaddingOutsideBoard && base.HasBoardBounds:
		return Result{Bounds: base.BoardBounds, Padding: padding, Source: SourceBoard}, nil
	case base.HasBounds:
		return Result{Bounds: base.Bounds, Padding: padding, Source: SourceBounds}, nil
	default:
		return Result{Bounds: emptyWorld, Padding: padding, Source: SourceEmpty}, nil
	}
}

func panelTarget(els circuit.Elements, id string) (geom.Bounds, error) {
	el, ok := els.Find(circuit.KindPCBPanel, id)
	if !ok {
		return geom.EmptyBounds(), errors.ErrViewportTargetNotFound(string(circuit.KindPCBPanel), id)
	}
	b, ok := bounds.PanelBounds(el.(*circuit.PCBPanel))
	if !ok {
		return b, errors.New(errors.ErrCodeInvalidInput, "viewport target pcb_panel %q has no valid geometry", id)
	}
	return b, nil
}

func boardTarget(els circuit.Elements, id string) (geom.Bounds, error) {
	el, ok := els.Find(circuit.KindPCBBoard, id)
	if !ok {
		return geom.EmptyBounds(), errors.ErrViewportTargetNotFound(string(circuit.KindPCBBoard), id)
	}
	b, ok := bounds.BoardBounds(el.(*circuit.PCBBoard))
	if !ok {
		return b, errors.New(errors.ErrCodeInvalidInput, "viewport target pcb_board %q has no valid geometry", id)
	}
	return b, nil
}

func validRect(b geom.Bounds) error {
	for _, v := range []float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "viewport must have finite coordinates")
		}
	}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return errors.New(errors.ErrCodeInvalidInput, "viewport min must not exceed max: %v", b)
	}
	return nil
}
