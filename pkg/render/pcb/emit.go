package pcb

import (
	"math"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/svg"
)

// emitter draws one element. It returns nothing for sub-shapes it does not
// recognise or geometry it cannot parse.
type emitter struct {
	*drawCtx
	showPorts bool
}

func (e *emitter) emit(el circuit.Element) []*svg.Node {
	switch v := el.(type) {
	case *circuit.PCBBoard:
		return e.board(v)
	case *circuit.PCBPanel:
		return one(e.panel(v))
	case *circuit.PCBComponent:
		return one(e.component(v))
	case *circuit.PCBSMTPad:
		return one(e.smtpad(v))
	case *circuit.PCBSolderPaste:
		return one(e.paste(v))
	case *circuit.PCBPlatedHole:
		return e.platedHole(v)
	case *circuit.PCBHole:
		return one(e.hole(v))
	case *circuit.PCBVia:
		return e.via(v)
	case *circuit.PCBTrace:
		return e.trace(v)
	case *circuit.PCBCopperPour:
		return one(e.copperPour(v))
	case *circuit.PCBKeepout:
		return one(e.keepout(v))
	case *circuit.PCBCutout:
		return one(e.cutout(v))
	case *circuit.PCBSilkscreenText:
		return one(e.textElement(&v.TextElement, v.Type(), v.ElementID(), e.theme.Silkscreen(v.Layer)))
	case *circuit.PCBFabricationNoteText:
		return one(e.textElement(&v.TextElement, v.Type(), v.ElementID(), e.theme.FabricationNote))
	case *circuit.PCBCopperText:
		return one(e.textElement(&v.TextElement, v.Type(), v.ElementID(), e.theme.Copper(v.Layer)))
	case *circuit.PCBSilkscreenPath:
		return one(e.pathElement(&v.PathElement, v.Type(), v.ElementID(), e.theme.Silkscreen(v.Layer)))
	case *circuit.PCBFabricationNotePath:
		return one(e.pathElement(&v.PathElement, v.Type(), v.ElementID(), e.theme.FabricationNote))
	case *circuit.PCBSilkscreenRect:
		return one(e.silkscreenRect(v))
	case *circuit.PCBSilkscreenCircle:
		return one(e.silkscreenCircle(v))
	case *circuit.PCBSilkscreenLine:
		return one(e.silkscreenLine(v))
	case *circuit.PCBCourtyardRect:
		return one(e.courtyard(v))
	case *circuit.PCBPort:
		if !e.showPorts {
			return nil
		}
		return one(e.port(v))
	case *circuit.PCBTraceError:
		return one(e.traceError(v))
	default:
		return nil
	}
}

func one(n *svg.Node) []*svg.Node {
	if n == nil {
		return nil
	}
	return []*svg.Node{n}
}

// sideOr returns layer, or def when it is unset.
func sideOr(layer, def string) string {
	if layer == "" {
		return def
	}
	return layer
}

func (e *emitter) boardShape(b *circuit.PCBBoard) *svg.Node {
	if len(b.Outline) >= 3 {
		if pts, dropped := circuit.Points(b.Outline); dropped == 0 {
			return svg.El("path", "d", svg.Path(e.pts(pts), true))
		}
	}
	c, ok := b.Center.Point()
	w, okW := b.Width.Value()
	h, okH := b.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	return e.rect(c, w, h, 0)
}

// board draws the substrate fill on the global layer, beneath bottom-side
// copper, and an unfilled outline on the board layer.
func (e *emitter) board(b *circuit.PCBBoard) []*svg.Node {
	fill := e.boardShape(b)
	if fill == nil {
		return nil
	}
	outline := e.boardShape(b)
	fill.Set("fill", e.theme.Board)
	outline.Set("fill", "none").
		Set("stroke", e.theme.BoardOutline).
		Set("stroke-width", svg.Num(hairline))
	return []*svg.Node{
		tag(fill, circuit.KindPCBSubstrate, "global", b.PCBBoardID),
		tag(outline, b.Type(), "board", b.PCBBoardID),
	}
}

func (e *emitter) panel(p *circuit.PCBPanel) *svg.Node {
	c, ok := p.Center.Point()
	w, okW := p.Width.Value()
	h, okH := p.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	n := outline(e.rect(c, w, h, 0), e.theme.BoardOutline, svg.Num(hairline))
	return tag(dashed(n, 6, 4), p.Type(), "board", p.PCBPanelID)
}

// component has no fill or stroke. It marks the footprint extent for
// consumers that select by data-id.
func (e *emitter) component(v *circuit.PCBComponent) *svg.Node {
	c, ok := v.Center.Point()
	w, okW := v.Width.Value()
	h, okH := v.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	n := e.rotatedRect(c, w, h, v.Rotation).Set("fill", "none").Set("stroke", "none")
	return tag(n, v.Type(), sideOr(v.Layer, "top"), v.PCBComponentID)
}

// padShape draws the common pad geometry used by SMT pads and paste.
func (e *emitter) padShape(shape string, x, y, w, h, r circuit.Length, ccw float64, points []circuit.XY) *svg.Node {
	c, ok := circuit.XY{X: x, Y: y}.Point()
	if shape == "polygon" {
		pts, dropped := circuit.Points(points)
		if dropped > 0 || len(pts) < 3 {
			return nil
		}
		return e.polygon(pts)
	}
	if !ok {
		return nil
	}
	if shape == "circle" {
		rv, ok := r.Value()
		if !ok {
			return nil
		}
		return e.circle(c, rv)
	}
	wv, okW := w.Value()
	hv, okH := h.Value()
	if !okW || !okH {
		return nil
	}
	switch shape {
	case "pill":
		return e.rect(c, wv, hv, math.Min(wv, hv)/2)
	case "rotated_rect":
		return e.rotatedRect(c, wv, hv, ccw)
	default:
		return e.rect(c, wv, hv, 0)
	}
}

func (e *emitter) smtpad(p *circuit.PCBSMTPad) *svg.Node {
	n := e.padShape(p.Shape, p.X, p.Y, p.Width, p.Height, p.Radius, p.CCWRotation, p.Points)
	if n == nil {
		return nil
	}
	layer := sideOr(p.Layer, "top")
	return tag(fill(n, e.theme.Copper(layer)), p.Type(), layer, p.PCBSMTPadID)
}

func (e *emitter) paste(p *circuit.PCBSolderPaste) *svg.Node {
	n := e.padShape(p.Shape, p.X, p.Y, p.Width, p.Height, p.Radius, 0, nil)
	if n == nil {
		return nil
	}
	return tag(fill(n, e.theme.SolderPaste), p.Type(), sideOr(p.Layer, "top"), p.PCBSolderPasteID)
}

// platedHole draws the copper ring through the board and the drill on top
// of it.
func (e *emitter) platedHole(h *circuit.PCBPlatedHole) []*svg.Node {
	c, ok := circuit.XY{X: h.X, Y: h.Y}.Point()
	if !ok {
		return nil
	}
	copper := e.theme.Copper("top")
	var pad, drill *svg.Node
	switch h.Shape {
	case "oval", "pill":
		ow, oh := h.OuterSize()
		hw, hh := h.HoleWidth.Or(0), h.HoleHeight.Or(0)
		if ow <= 0 || oh <= 0 {
			return nil
		}
		pad = e.rect(c, ow, oh, math.Min(ow, oh)/2)
		if hw > 0 && hh > 0 {
			drill = e.rect(c, hw, hh, math.Min(hw, hh)/2)
		}
	case "circular_hole_with_rect_pad":
		pw, ph := h.OuterSize()
		if pw <= 0 || ph <= 0 {
			return nil
		}
		pad = e.rect(c, pw, ph, 0)
		if d := h.HoleDiameter.Or(0); d > 0 {
			drill = e.circle(c, d/2)
		}
	default:
		d := h.OuterDiameter.Or(0)
		if d <= 0 {
			return nil
		}
		pad = e.circle(c, d/2)
		if hd := h.HoleDiameter.Or(0); hd > 0 {
			drill = e.circle(c, hd/2)
		}
	}

	out := []*svg.Node{tag(fill(pad, copper), h.Type(), "through", h.PCBPlatedHoleID)}
	if drill != nil {
		out = append(out, tag(fill(drill, e.theme.Drill), circuit.KindPCBHoleDrill, "drill", h.PCBPlatedHoleID))
	}
	return out
}

func (e *emitter) hole(h *circuit.PCBHole) *svg.Node {
	c, ok := circuit.XY{X: h.X, Y: h.Y}.Point()
	if !ok {
		return nil
	}
	var n *svg.Node
	switch h.HoleShape {
	case "oval", "pill":
		w, okW := h.HoleWidth.Value()
		hh, okH := h.HoleHeight.Value()
		if !okW || !okH {
			return nil
		}
		n = e.rect(c, w, hh, math.Min(w, hh)/2)
	case "square":
		d, ok := h.HoleDiameter.Value()
		if !ok {
			return nil
		}
		n = e.rect(c, d, d, 0)
	default:
		d, ok := h.HoleDiameter.Value()
		if !ok {
			return nil
		}
		n = e.circle(c, d/2)
	}
	return tag(fill(n, e.theme.Drill), h.Type(), "drill", h.PCBHoleID)
}

func (e *emitter) via(v *circuit.PCBVia) []*svg.Node {
	c, ok := circuit.XY{X: v.X, Y: v.Y}.Point()
	od, okO := v.OuterDiameter.Value()
	if !ok || !okO {
		return nil
	}
	out := []*svg.Node{tag(fill(e.circle(c, od/2), e.theme.Copper("top")), v.Type(), "through", v.PCBViaID)}
	if hd := v.HoleDiameter.Or(0); hd > 0 {
		out = append(out, tag(fill(e.circle(c, hd/2), e.theme.Drill), circuit.KindPCBHoleDrill, "drill", v.PCBViaID))
	}
	return out
}

// trace draws one path per run of consecutive wire points on the same
// layer. Via points end a run.
func (e *emitter) trace(t *circuit.PCBTrace) []*svg.Node {
	var out []*svg.Node
	var run []geom.Point
	layer, width := "", 0.0

	flush := func() {
		if len(run) >= 2 {
			n := e.polyline(run, width, e.theme.Copper(layer))
			out = append(out, tag(n, t.Type(), layer, t.PCBTraceID))
		}
		run, width = nil, 0
	}

	for _, rp := range t.Route {
		p, ok := circuit.XY{X: rp.X, Y: rp.Y}.Point()
		if !ok {
			continue
		}
		if rp.RouteType == "via" {
			flush()
			continue
		}
		l := sideOr(rp.Layer, "top")
		if l != layer && len(run) > 0 {
			last := run[len(run)-1]
			flush()
			run = append(run, last)
		}
		layer = l
		run = append(run, p)
		width = math.Max(width, rp.Width.Or(defaultTraceWidth))
	}
	flush()
	return out
}

func (e *emitter) copperPour(p *circuit.PCBCopperPour) *svg.Node {
	var n *svg.Node
	if p.Shape == "polygon" {
		pts, dropped := circuit.Points(p.Points)
		if dropped > 0 || len(pts) < 3 {
			return nil
		}
		n = e.polygon(pts)
	} else {
		c, ok := p.Center.Point()
		w, okW := p.Width.Value()
		h, okH := p.Height.Value()
		if !ok || !okW || !okH {
			return nil
		}
		n = e.rect(c, w, h, 0)
	}
	layer := sideOr(p.Layer, "top")
	n = fill(n, e.theme.Copper(layer)).Set("fill-opacity", "0.5")
	return tag(n, p.Type(), layer, p.PCBCopperPourID)
}

func (e *emitter) keepout(k *circuit.PCBKeepout) *svg.Node {
	c, ok := k.Center.Point()
	if !ok {
		return nil
	}
	var n *svg.Node
	if k.Shape == "circle" {
		r, ok := k.Radius.Value()
		if !ok {
			return nil
		}
		n = e.circle(c, r)
	} else {
		w, okW := k.Width.Value()
		h, okH := k.Height.Value()
		if !okW || !okH {
			return nil
		}
		n = e.rect(c, w, h, 0)
	}
	n = dashed(outline(n, e.theme.Keepout, svg.Num(hairline)), 4, 2)
	return tag(n, k.Type(), "overlay", k.PCBKeepoutID)
}

// cutout is painted in the background colour over the board.
func (e *emitter) cutout(v *circuit.PCBCutout) *svg.Node {
	var n *svg.Node
	switch v.Shape {
	case "polygon":
		pts, dropped := circuit.Points(v.Points)
		if dropped > 0 || len(pts) < 3 {
			return nil
		}
		n = e.polygon(pts)
	case "circle":
		c, ok := v.Center.Point()
		r, okR := v.Radius.Value()
		if !ok || !okR {
			return nil
		}
		n = e.circle(c, r)
	default:
		c, ok := v.Center.Point()
		w, okW := v.Width.Value()
		h, okH := v.Height.Value()
		if !ok || !okW || !okH {
			return nil
		}
		n = e.rect(c, w, h, 0)
	}
	return tag(fill(n, e.theme.Background), v.Type(), "board", v.PCBCutoutID)
}

func (e *emitter) textElement(t *circuit.TextElement, kind circuit.Kind, id, color string) *svg.Node {
	p, ok := t.AnchorPosition.Point()
	if !ok || t.Text == "" {
		return nil
	}
	n := e.text(t.Text, p, t.FontSize.Or(defaultFontSize), t.CCWRotation, t.AnchorAlign, t.IsMirrored, color)
	return tag(n, kind, sideOr(t.Layer, "top"), id)
}

func (e *emitter) pathElement(p *circuit.PathElement, kind circuit.Kind, id, color string) *svg.Node {
	pts, _ := circuit.Points(p.Route)
	if len(pts) < 2 {
		return nil
	}
	n := e.polyline(pts, p.StrokeWidth.Or(defaultStrokeWidth), color)
	return tag(n, kind, sideOr(p.Layer, "top"), id)
}

func (e *emitter) silkscreenRect(r *circuit.PCBSilkscreenRect) *svg.Node {
	c, ok := r.Center.Point()
	w, okW := r.Width.Value()
	h, okH := r.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	color := e.theme.Silkscreen(r.Layer)
	n := e.rect(c, w, h, 0)
	if r.IsFilled {
		fill(n, color)
	} else {
		outline(n, color, e.px(r.StrokeWidth.Or(defaultStrokeWidth)))
	}
	return tag(n, r.Type(), sideOr(r.Layer, "top"), r.PCBSilkscreenRectID)
}

func (e *emitter) silkscreenCircle(v *circuit.PCBSilkscreenCircle) *svg.Node {
	c, ok := v.Center.Point()
	r, okR := v.Radius.Value()
	if !ok || !okR {
		return nil
	}
	n := outline(e.circle(c, r), e.theme.Silkscreen(v.Layer), e.px(v.StrokeWidth.Or(defaultStrokeWidth)))
	return tag(n, v.Type(), sideOr(v.Layer, "top"), v.PCBSilkscreenCircleID)
}

func (e *emitter) silkscreenLine(v *circuit.PCBSilkscreenLine) *svg.Node {
	a, okA := circuit.XY{X: v.X1, Y: v.Y1}.Point()
	b, okB := circuit.XY{X: v.X2, Y: v.Y2}.Point()
	if !okA || !okB {
		return nil
	}
	n := e.line(a, b, v.StrokeWidth.Or(defaultStrokeWidth), e.theme.Silkscreen(v.Layer))
	return tag(n, v.Type(), sideOr(v.Layer, "top"), v.PCBSilkscreenLineID)
}

func (e *emitter) courtyard(v *circuit.PCBCourtyardRect) *svg.Node {
	c, ok := v.Center.Point()
	w, okW := v.Width.Value()
	h, okH := v.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	n := outline(e.rect(c, w, h, 0), e.theme.Courtyard, svg.Num(hairline))
	return tag(n, v.Type(), sideOr(v.Layer, "top"), v.PCBCourtyardRectID)
}

func (e *emitter) port(p *circuit.PCBPort) *svg.Node {
	c, ok := circuit.XY{X: p.X, Y: p.Y}.Point()
	if !ok {
		return nil
	}
	n := outline(e.circle(c, portRadius), e.theme.Port, svg.Num(hairline))
	return tag(n, p.Type(), "overlay", p.PCBPortID)
}

func (e *emitter) traceError(v *circuit.PCBTraceError) *svg.Node {
	c, ok := v.Center.Point()
	if !ok {
		return nil
	}
	g := svg.El("g").Append(
		outline(e.circle(c, errorRadius), e.theme.TraceError, svg.Num(2*hairline)),
	)
	if v.Message != "" {
		label := geom.Pt(c.X, c.Y-2*errorRadius)
		g.Append(e.text(v.Message, label, defaultFontSize/2, 0, "top_center", false, e.theme.TraceError))
	}
	return tag(g, v.Type(), "overlay", v.PCBTraceErrorID)
}
