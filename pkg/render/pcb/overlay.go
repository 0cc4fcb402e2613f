package pcb

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/netlist"
	"github.com/matzehuels/circuitsvg/pkg/svg"
)

// circleSegments approximates round mask openings.
const circleSegments = 24

// ratsNest draws the guide lines computed by netlist.RatsNest. Lines whose
// ports already have a drawn trace are dashed and darker.
func (e *emitter) ratsNest(els circuit.Elements, logger *log.Logger) []*svg.Node {
	lines := netlist.RatsNest(els, netlist.Options{Logger: logger})
	out := make([]*svg.Node, 0, len(lines))
	for _, l := range lines {
		color := e.theme.RatsNest
		if l.IsInNet {
			color = e.theme.RatsNestInNet()
		}
		n := e.line(l.Start, l.End, 0, color).Set("stroke-width", svg.Num(hairline))
		if l.IsInNet {
			dashed(n, 2, 2)
		}
		n.Set("data-net-id", l.NetID)
		out = append(out, tag(n, circuit.KindPCBRatsNest, "overlay", l.PCBPortID))
	}
	return out
}

// soldermask covers each board on the given side, leaving openings over
// the pads of that side and over every plated hole.
func (e *emitter) soldermask(els circuit.Elements, side string) []*svg.Node {
	var openings [][]geom.Point
	for _, el := range els {
		if pts := maskOpening(el, side); len(pts) >= 3 {
			openings = append(openings, pts)
		}
	}

	var out []*svg.Node
	for _, b := range circuit.Filter[*circuit.PCBBoard](els) {
		shape := boardPolygon(b)
		if len(shape) < 3 {
			continue
		}
		parts := []string{svg.Path(e.pts(shape), true)}
		for _, o := range openings {
			parts = append(parts, svg.Path(e.pts(o), true))
		}
		n := svg.El("path",
			"d", strings.Join(parts, " "),
			"fill", e.theme.Soldermask,
			"fill-rule", "evenodd",
		)
		out = append(out, tag(n, circuit.KindPCBSoldermask, side, b.PCBBoardID))
	}
	return out
}

func boardPolygon(b *circuit.PCBBoard) []geom.Point {
	if len(b.Outline) >= 3 {
		if pts, dropped := circuit.Points(b.Outline); dropped == 0 {
			return pts
		}
	}
	c, ok := b.Center.Point()
	w, okW := b.Width.Value()
	h, okH := b.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	corners := geom.RectBounds(c, w, h).Corners()
	return corners[:]
}

// maskOpening returns the outline of the copper an element exposes on
// side, or nil.
func maskOpening(el circuit.Element, side string) []geom.Point {
	switch v := el.(type) {
	case *circuit.PCBSMTPad:
		if sideOr(v.Layer, "top") != side {
			return nil
		}
		c, ok := circuit.XY{X: v.X, Y: v.Y}.Point()
		switch v.Shape {
		case "polygon":
			pts, dropped := circuit.Points(v.Points)
			if dropped > 0 {
				return nil
			}
			return pts
		case "circle":
			r, okR := v.Radius.Value()
			if !ok || !okR {
				return nil
			}
			return circlePoints(c, r)
		}
		w, okW := v.Width.Value()
		h, okH := v.Height.Value()
		if !ok || !okW || !okH {
			return nil
		}
		return rotatedCorners(c, w, h, v.CCWRotation)
	case *circuit.PCBPlatedHole:
		c, ok := circuit.XY{X: v.X, Y: v.Y}.Point()
		w, h := v.OuterSize()
		if !ok || w <= 0 || h <= 0 {
			return nil
		}
		if v.Shape == "circle" || v.Shape == "" {
			return circlePoints(c, w/2)
		}
		return rotatedCorners(c, w, h, 0)
	}
	return nil
}

func rotatedCorners(c geom.Point, w, h, ccw float64) []geom.Point {
	corners := geom.RectBounds(c, w, h).Corners()
	pts := slices.Clone(corners[:])
	if ccw != 0 {
		for i, p := range pts {
			pts[i] = p.Rotate(c, ccw*degToRad)
		}
	}
	return pts
}

func circlePoints(c geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = geom.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}
