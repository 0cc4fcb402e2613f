package bounds

import (
	"math"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

const degToRad = math.Pi / 180

// minOutlinePoints is the vertex count at which a board outline replaces
// the board's centre/size rectangle.
const minOutlinePoints = 3

// BoardBounds returns the extent of a single board. An outline with at
// least three parseable vertices takes precedence over center/width/height.
func BoardBounds(b *circuit.PCBBoard) (geom.Bounds, bool) {
	if pts, _ := circuit.Points(b.Outline); len(pts) >= minOutlinePoints {
		return geom.PointsBounds(pts), true
	}
	return rectBounds(b.Center, b.Width, b.Height)
}

// PanelBounds returns the extent of a single panel.
func PanelBounds(p *circuit.PCBPanel) (geom.Bounds, bool) {
	return rectBounds(p.Center, p.Width, p.Height)
}

// PanelsBounds returns the union of every panel with valid geometry.
func PanelsBounds(els circuit.Elements) (geom.Bounds, bool) {
	out, found := geom.EmptyBounds(), false
	for _, p := range circuit.Filter[*circuit.PCBPanel](els) {
		if b, ok := PanelBounds(p); ok {
			out.Union(b)
			found = true
		}
	}
	return out, found
}

// BoardsBounds returns the union of every board with valid geometry.
func BoardsBounds(els circuit.Elements) (geom.Bounds, bool) {
	out, found := geom.EmptyBounds(), false
	for _, b := range circuit.Filter[*circuit.PCBBoard](els) {
		if bb, ok := BoardBounds(b); ok {
			out.Union(bb)
			found = true
		}
	}
	return out, found
}

// TextureBounds returns the frame a board-relative texture must cover: the
// union of all panels if any panel has valid geometry, else the union of
// all boards. It fails with NO_BOARD_OR_PANEL when neither exists.
func TextureBounds(els circuit.Elements) (geom.Bounds, error) {
	if b, ok := PanelsBounds(els); ok {
		return b, nil
	}
	if b, ok := BoardsBounds(els); ok {
		return b, nil
	}
	return geom.EmptyBounds(), errors.ErrNoBoardOrPanel()
}
