package schematic

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/svg"
	"github.com/matzehuels/circuitsvg/pkg/symbols"
	"github.com/matzehuels/circuitsvg/pkg/theme"
)

// Sizes in schematic units.
const (
	strokeWidth     = 0.02
	portRadius      = 0.04
	junctionRadius  = 0.05
	defaultFontSize = 0.18
	pinFontSize     = 0.1
	labelPadding    = 0.04
)

type painter struct {
	t     geom.Transform
	k     float64
	theme theme.Schematic
}

func (p *painter) px(v float64) string { return svg.Num(v * p.k) }

func (p *painter) pt(q geom.Point) (string, string) {
	r := p.t.Apply(q)
	return svg.Num(r.X), svg.Num(r.Y)
}

func (p *painter) line(a, b geom.Point, color string) *svg.Node {
	x1, y1 := p.pt(a)
	x2, y2 := p.pt(b)
	return svg.El("line",
		"x1", x1, "y1", y1, "x2", x2, "y2", y2,
		"stroke", color, "stroke-width", p.px(strokeWidth), "stroke-linecap", "round",
	)
}

func (p *painter) rect(c geom.Point, w, h float64) *svg.Node {
	tl := p.t.Apply(geom.Pt(c.X-w/2, c.Y+h/2))
	return svg.El("rect",
		"x", svg.Num(tl.X), "y", svg.Num(tl.Y),
		"width", p.px(w), "height", p.px(h),
	)
}

func (p *painter) circle(c geom.Point, r float64) *svg.Node {
	x, y := p.pt(c)
	return svg.El("circle", "cx", x, "cy", y, "r", p.px(r))
}

func (p *painter) text(s string, at geom.Point, size, rotation float64, anchor, color string) *svg.Node {
	x, y := p.pt(at)
	ta, baseline := textAnchor(anchor)
	n := svg.El("text",
		"x", x, "y", y,
		"fill", color,
		"font-family", "sans-serif",
		"font-size", p.px(size),
		"text-anchor", ta,
		"dominant-baseline", baseline,
	).Text(s)
	if rotation != 0 {
		n.Set("transform", fmt.Sprintf("rotate(%s %s %s)", svg.Num(-rotation), x, y))
	}
	return n
}

// textAnchor maps a schematic anchor such as "left" or "top_right" to SVG
// text-anchor and dominant-baseline values. The anchor names the side of
// the text that sits on the position.
func textAnchor(anchor string) (string, string) {
	ta, baseline := "middle", "central"
	switch anchor {
	case "left", "top_left", "bottom_left", "center_left":
		ta = "start"
	case "right", "top_right", "bottom_right", "center_right":
		ta = "end"
	}
	switch anchor {
	case "top", "top_left", "top_right", "top_center":
		baseline = "text-before-edge"
	case "bottom", "bottom_left", "bottom_right", "bottom_center":
		baseline = "text-after-edge"
	}
	return ta, baseline
}

// symbol draws sym mapped by place (symbol frame to design space).
func (p *painter) symbol(sym symbols.Symbol, place geom.Transform) *svg.Node {
	full := geom.Compose(p.t, place)
	g := svg.El("g", "data-symbol-name", sym.Name)
	for _, prim := range sym.Primitives {
		if prim.Radius > 0 {
			c := full.Apply(prim.Center)
			n := svg.El("circle",
				"cx", svg.Num(c.X), "cy", svg.Num(c.Y),
				"r", svg.Num(prim.Radius*full.ScaleFactor()),
			)
			g.Append(p.stroke(n, prim.Filled))
			continue
		}
		pts := make([]geom.Point, len(prim.Points))
		for i, q := range prim.Points {
			pts[i] = full.Apply(q)
		}
		g.Append(p.stroke(svg.El("path", "d", svg.Path(pts, prim.Closed)), prim.Filled))
	}
	return g
}

func (p *painter) stroke(n *svg.Node, filled bool) *svg.Node {
	fill := "none"
	if filled {
		fill = p.theme.ComponentOutline
	}
	return n.Set("fill", fill).
		Set("stroke", p.theme.ComponentOutline).
		Set("stroke-width", p.px(strokeWidth)).
		Set("stroke-linejoin", "round")
}

func tag(n *svg.Node, kind circuit.Kind, id string) *svg.Node {
	n.Tag(string(kind), "")
	if id != "" {
		n.Set("data-id", id)
	}
	return n
}

// pinLabel is the text shown next to an unbound port.
func pinLabel(port *circuit.SchematicPort) string {
	if port.DisplayPinLabel != "" {
		return port.DisplayPinLabel
	}
	if port.PinNumber != nil {
		return strconv.Itoa(*port.PinNumber)
	}
	return ""
}

// pointKey identifies a point for junction detection, ignoring float noise.
func pointKey(q geom.Point) [2]int64 {
	return [2]int64{int64(math.Round(q.X * 1e4)), int64(math.Round(q.Y * 1e4))}
}
