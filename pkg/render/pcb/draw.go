package pcb

import (
	"math"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/svg"
	"github.com/matzehuels/circuitsvg/pkg/theme"
)

const (
	degToRad = math.Pi / 180

	// Fallbacks in design units for strokes and sizes an element omits.
	defaultTraceWidth  = 0.15
	defaultStrokeWidth = 0.1
	defaultFontSize    = 1.0
	portRadius         = 0.2
	errorRadius        = 0.5

	// hairline is a stroke width in pixels, independent of zoom.
	hairline = 1.0
)

// drawCtx is shared by every emitter of one conversion.
type drawCtx struct {
	t     geom.Transform
	k     float64
	theme theme.PCB
}

func newDrawCtx(t geom.Transform, th theme.PCB) *drawCtx {
	return &drawCtx{t: t, k: t.ScaleFactor(), theme: th}
}

// px converts a design-space length to pixels.
func (d *drawCtx) px(mm float64) string { return svg.Num(mm * d.k) }

func (d *drawCtx) pt(p geom.Point) (string, string) {
	q := d.t.Apply(p)
	return svg.Num(q.X), svg.Num(q.Y)
}

func (d *drawCtx) pts(ps []geom.Point) []geom.Point {
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = d.t.Apply(p)
	}
	return out
}

// rect draws an axis-aligned rectangle centred on c. rx rounds the corners.
func (d *drawCtx) rect(c geom.Point, w, h, rx float64) *svg.Node {
	tl := d.t.Apply(geom.Pt(c.X-w/2, c.Y+h/2))
	n := svg.El("rect",
		"x", svg.Num(tl.X), "y", svg.Num(tl.Y),
		"width", d.px(w), "height", d.px(h),
	)
	if rx > 0 {
		n.Set("rx", d.px(rx)).Set("ry", d.px(rx))
	}
	return n
}

// rotatedRect draws a w x h rectangle centred on c, rotated ccw degrees.
func (d *drawCtx) rotatedRect(c geom.Point, w, h, ccw float64) *svg.Node {
	if ccw == 0 {
		return d.rect(c, w, h, 0)
	}
	corners := geom.RectBounds(c, w, h).Corners()
	pts := make([]geom.Point, len(corners))
	for i, p := range corners {
		pts[i] = p.Rotate(c, ccw*degToRad)
	}
	return d.polygon(pts)
}

func (d *drawCtx) circle(c geom.Point, r float64) *svg.Node {
	x, y := d.pt(c)
	return svg.El("circle", "cx", x, "cy", y, "r", d.px(r))
}

func (d *drawCtx) polygon(pts []geom.Point) *svg.Node {
	return svg.El("polygon", "points", svg.Points(d.pts(pts)))
}

// polyline draws an open stroked path of the given design-space width.
func (d *drawCtx) polyline(pts []geom.Point, width float64, color string) *svg.Node {
	return svg.El("path",
		"d", svg.Path(d.pts(pts), false),
		"fill", "none",
		"stroke", color,
		"stroke-width", d.px(width),
		"stroke-linecap", "round",
		"stroke-linejoin", "round",
	)
}

func (d *drawCtx) line(a, b geom.Point, width float64, color string) *svg.Node {
	x1, y1 := d.pt(a)
	x2, y2 := d.pt(b)
	return svg.El("line",
		"x1", x1, "y1", y1, "x2", x2, "y2", y2,
		"stroke", color, "stroke-width", d.px(width), "stroke-linecap", "round",
	)
}

// text draws a label anchored at p. ccw rotates it counter-clockwise in
// design space, which is clockwise-negative in image space.
func (d *drawCtx) text(s string, p geom.Point, size, ccw float64, align string, mirrored bool, color string) *svg.Node {
	x, y := d.pt(p)
	anchor, baseline := textAnchor(align)
	n := svg.El("text",
		"x", "0", "y", "0",
		"fill", color,
		"font-family", "Arial, sans-serif",
		"font-size", d.px(size),
		"text-anchor", anchor,
		"dominant-baseline", baseline,
	).Text(s)

	tf := "translate(" + x + " " + y + ")"
	if ccw != 0 {
		tf += " rotate(" + svg.Num(-ccw) + ")"
	}
	if mirrored {
		tf += " scale(-1 1)"
	}
	return n.Set("transform", tf)
}

// textAnchor maps an anchor alignment such as "top_left" or "center" to
// SVG text-anchor and dominant-baseline values.
func textAnchor(align string) (string, string) {
	anchor, baseline := "middle", "central"
	switch align {
	case "top_left", "center_left", "bottom_left":
		anchor = "start"
	case "top_right", "center_right", "bottom_right":
		anchor = "end"
	}
	switch align {
	case "top_left", "top_center", "top_right":
		baseline = "text-before-edge"
	case "bottom_left", "bottom_center", "bottom_right":
		baseline = "text-after-edge"
	}
	return anchor, baseline
}

func fill(n *svg.Node, color string) *svg.Node {
	return n.Set("fill", color)
}

func outline(n *svg.Node, color, width string) *svg.Node {
	return n.Set("fill", "none").Set("stroke", color).Set("stroke-width", width)
}

func dashed(n *svg.Node, on, off float64) *svg.Node {
	return n.Set("stroke-dasharray", svg.Num(on)+" "+svg.Num(off))
}

// tag marks n with paint metadata and, when id is set, the element id.
func tag(n *svg.Node, kind circuit.Kind, layer, id string) *svg.Node {
	n.Tag(string(kind), layer)
	if id != "" {
		n.Set("data-id", id)
	}
	return n
}
