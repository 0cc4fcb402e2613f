package bounds

import (
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// Skip records an element that did not contribute to the bounds.
type Skip struct {
	Index  int          `json:"index"`
	Type   circuit.Kind `json:"type"`
	ID     string       `json:"id,omitempty"`
	Reason string       `json:"reason"`
}

// Skip reasons.
const (
	ReasonUnparseable = "unparseable geometry"
	ReasonMalformed   = "malformed record"
	ReasonUnhandled   = "no bounds rule for kind"
)

// Result is the output of an aggregation pass. Bounds and BoardBounds are
// the empty sentinel unless HasBounds and HasBoardBounds are set.
type Result struct {
	Bounds         geom.Bounds `json:"bounds"`
	BoardBounds    geom.Bounds `json:"boardBounds"`
	HasBounds      bool        `json:"hasBounds"`
	HasBoardBounds bool        `json:"hasBoardBounds"`
	Skipped        []Skip      `json:"skipped,omitempty"`
}

type aggregator struct {
	res Result
}

func newAggregator() *aggregator {
	return &aggregator{res: Result{
		Bounds:      geom.EmptyBounds(),
		BoardBounds: geom.EmptyBounds(),
	}}
}

func (a *aggregator) add(b geom.Bounds, board bool) {
	if b.IsEmpty() {
		return
	}
	a.res.Bounds.Union(b)
	a.res.HasBounds = true
	if board {
		a.res.BoardBounds.Union(b)
		a.res.HasBoardBounds = true
	}
}

func (a *aggregator) skip(i int, el circuit.Element, reason string) {
	a.res.Skipped = append(a.res.Skipped, Skip{
		Index:  i,
		Type:   el.Type(),
		ID:     el.ElementID(),
		Reason: reason,
	})
}

// Aggregate computes the bounds of a PCB element collection. Schematic and
// source elements carry no PCB geometry and are ignored.
func Aggregate(els circuit.Elements) Result {
	a := newAggregator()
	for i, el := range els {
		b, board, reason := pcbElementBounds(el)
		if reason != "" {
			a.skip(i, el, reason)
			continue
		}
		a.add(b, board)
	}
	return a.res
}

// ElementBounds returns the PCB extent of a single element. ok is false for
// elements without PCB geometry or with unparseable geometry.
func ElementBounds(el circuit.Element) (b geom.Bounds, ok bool) {
	b, _, reason := pcbElementBounds(el)
	return b, reason == "" && !b.IsEmpty()
}

// pcbElementBounds returns the extent of one element and whether it counts
// towards the board-only bounds. An empty extent with no reason means the
// element has no PCB geometry.
func pcbElementBounds(el circuit.Element) (geom.Bounds, bool, string) {
	none := geom.EmptyBounds()
	switch e := el.(type) {
	case *circuit.PCBBoard:
		b, ok := BoardBounds(e)
		return b, true, reasonIf(!ok)
	case *circuit.PCBPanel:
		b, ok := PanelBounds(e)
		return b, true, reasonIf(!ok)

	case *circuit.PCBComponent:
		return rect(e.Center, e.Width, e.Height)
	case *circuit.PCBSilkscreenRect:
		return rect(e.Center, e.Width, e.Height)
	case *circuit.PCBCourtyardRect:
		return rect(e.Center, e.Width, e.Height)
	case *circuit.PCBSilkscreenCircle:
		return circle(e.Center, e.Radius)
	case *circuit.PCBSMTPad:
		return padBounds(e.Shape, e.X, e.Y, e.Width, e.Height, e.Radius, e.CCWRotation, e.Points)
	case *circuit.PCBSolderPaste:
		return padBounds(e.Shape, e.X, e.Y, e.Width, e.Height, e.Radius, 0, nil)
	case *circuit.PCBCopperPour:
		if e.Shape == "polygon" {
			return polygon(e.Points)
		}
		return rect(e.Center, e.Width, e.Height)
	case *circuit.PCBKeepout:
		if e.Shape == "circle" {
			return circle(e.Center, e.Radius)
		}
		return rect(e.Center, e.Width, e.Height)
	case *circuit.PCBCutout:
		switch e.Shape {
		case "polygon":
			return polygon(e.Points)
		case "circle":
			return circle(e.Center, e.Radius)
		default:
			return rect(e.Center, e.Width, e.Height)
		}

	case *circuit.PCBHole:
		return point(e.X, e.Y)
	case *circuit.PCBVia:
		return point(e.X, e.Y)
	case *circuit.PCBPlatedHole:
		return point(e.X, e.Y)
	case *circuit.PCBPort:
		return point(e.X, e.Y)
	case *circuit.PCBTraceError:
		return xy(e.Center)
	case *circuit.PCBSilkscreenText:
		return xy(e.AnchorPosition)
	case *circuit.PCBFabricationNoteText:
		return xy(e.AnchorPosition)
	case *circuit.PCBCopperText:
		return xy(e.AnchorPosition)
	case *circuit.PCBSilkscreenLine:
		return segment(e.X1, e.Y1, e.X2, e.Y2)

	case *circuit.PCBTrace:
		pts := make([]circuit.XY, 0, len(e.Route))
		for _, p := range e.Route {
			pts = append(pts, circuit.XY{X: p.X, Y: p.Y})
		}
		return polygon(pts)
	case *circuit.PCBSilkscreenPath:
		return polygon(e.Route)
	case *circuit.PCBFabricationNotePath:
		return polygon(e.Route)

	case *circuit.SchematicComponent, *circuit.SchematicPort, *circuit.SchematicTrace,
		*circuit.SchematicText, *circuit.SchematicBox, *circuit.SchematicLine,
		*circuit.SchematicNetLabel,
		*circuit.SourceComponent, *circuit.SourcePort, *circuit.SourceTrace, *circuit.SourceNet,
		*circuit.Unknown:
		return none, false, ""
	case *circuit.Malformed:
		return none, false, ReasonMalformed
	default:
		return none, false, ReasonUnhandled
	}
}

func reasonIf(bad bool) string {
	if bad {
		return ReasonUnparseable
	}
	return ""
}

// The helpers below return the (bounds, board, reason) triple used by the
// element switches. They never count towards board bounds.

func rect(c circuit.XY, w, h circuit.Length) (geom.Bounds, bool, string) {
	b, ok := rectBounds(c, w, h)
	return b, false, reasonIf(!ok)
}

func rectBounds(c circuit.XY, w, h circuit.Length) (geom.Bounds, bool) {
	center, ok := c.Point()
	width, okW := w.Value()
	height, okH := h.Value()
	if !ok || !okW || !okH {
		return geom.EmptyBounds(), false
	}
	return geom.RectBounds(center, width, height), true
}

func circle(c circuit.XY, r circuit.Length) (geom.Bounds, bool, string) {
	center, ok := c.Point()
	radius, okR := r.Value()
	if !ok || !okR {
		return geom.EmptyBounds(), false, ReasonUnparseable
	}
	return geom.RectBounds(center, 2*radius, 2*radius), false, ""
}

func point(x, y circuit.Length) (geom.Bounds, bool, string) {
	return xy(circuit.XY{X: x, Y: y})
}

func xy(p circuit.XY) (geom.Bounds, bool, string) {
	pt, ok := p.Point()
	if !ok {
		return geom.EmptyBounds(), false, ReasonUnparseable
	}
	return geom.PointsBounds([]geom.Point{pt}), false, ""
}

func segment(x1, y1, x2, y2 circuit.Length) (geom.Bounds, bool, string) {
	return polygon([]circuit.XY{{X: x1, Y: y1}, {X: x2, Y: y2}})
}

// polygon expands by every parseable vertex. A path with no parseable
// vertex is skipped.
func polygon(pts []circuit.XY) (geom.Bounds, bool, string) {
	parsed, _ := circuit.Points(pts)
	if len(parsed) == 0 {
		return geom.EmptyBounds(), false, ReasonUnparseable
	}
	return geom.PointsBounds(parsed), false, ""
}

func padBounds(shape string, x, y, w, h, r circuit.Length, ccw float64, pts []circuit.XY) (geom.Bounds, bool, string) {
	c := circuit.XY{X: x, Y: y}
	switch shape {
	case "circle":
		return circle(c, r)
	case "polygon":
		return polygon(pts)
	case "rotated_rect":
		b, ok := rectBounds(c, w, h)
		if !ok {
			return b, false, ReasonUnparseable
		}
		return rotatedBounds(b, ccw), false, ""
	default:
		return rect(c, w, h)
	}
}

// rotatedBounds returns the axis-aligned bounds of b rotated ccw degrees
// about its centre.
func rotatedBounds(b geom.Bounds, ccw float64) geom.Bounds {
	if ccw == 0 {
		return b
	}
	c := b.Center()
	out := geom.EmptyBounds()
	for _, p := range b.Corners() {
		out.ExpandPoint(p.Rotate(c, ccw*degToRad))
	}
	return out
}
