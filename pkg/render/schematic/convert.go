package schematic

import (
	"cmp"
	"slices"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/buildinfo"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/paint"
	"github.com/matzehuels/circuitsvg/pkg/svg"
	"github.com/matzehuels/circuitsvg/pkg/symbols"
	"github.com/matzehuels/circuitsvg/pkg/viewport"
)

// Convert renders the schematic elements of els as an SVG document tree.
func Convert(els circuit.Elements, opts Options) (*svg.Node, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}

	agg := bounds.AggregateSchematic(els)
	for _, s := range agg.Skipped {
		opts.Logger.Debug("element skipped", "index", s.Index, "type", s.Type, "id", s.ID, "reason", s.Reason)
	}
	// No elements: schematics have no panels to prefer.
	vp, err := viewport.Resolve(viewport.Request{
		DrawPaddingOutsideBoard: true,
		Base:                    agg,
		Viewport:                opts.Viewport,
	})
	if err != nil {
		return nil, err
	}
	t := geom.BuildTransform(vp.Bounds, opts.Width, opts.Height, vp.Padding)
	p := &painter{t: t, k: t.ScaleFactor(), theme: opts.Theme.Schematic}

	ports := portsByComponent(els)
	owners := make(map[string]bool)
	for _, c := range circuit.Filter[*circuit.SchematicComponent](els) {
		if c.SchematicComponentID != "" {
			owners[c.SchematicComponentID] = true
		}
	}
	var nodes []*svg.Node
	for _, el := range els {
		switch v := el.(type) {
		case *circuit.SchematicComponent:
			nodes = append(nodes, p.component(v, ports[v.SchematicComponentID], !opts.HidePinNumbers)...)
		case *circuit.SchematicPort:
			// Ports of a missing component are drawn on their own.
			if !owners[v.SchematicComponentID] {
				nodes = append(nodes, p.port(v, !opts.HidePinNumbers)...)
			}
		case *circuit.SchematicTrace:
			nodes = append(nodes, p.trace(v)...)
		case *circuit.SchematicText:
			nodes = append(nodes, p.textElement(v)...)
		case *circuit.SchematicNetLabel:
			nodes = append(nodes, p.netLabel(v)...)
		case *circuit.SchematicBox:
			nodes = append(nodes, p.box(v)...)
		case *circuit.SchematicLine:
			nodes = append(nodes, p.schematicLine(v)...)
		}
	}
	nodes = append(nodes, p.junctions(els)...)
	nodes = paint.Order(nodes)

	bg := svg.El("rect",
		"x", "0", "y", "0",
		"width", svg.Num(opts.Width), "height", svg.Num(opts.Height),
		"fill", opts.Theme.Schematic.Background,
	).Tag(string(circuit.KindSchematicBackdrop), "")

	k := t.ScaleFactor()
	visible := geom.RectBounds(vp.Bounds.Pad(vp.Padding).Center(), opts.Width/k, opts.Height/k)
	g, err := grid.Render(visible, t, opts.Grid, circuit.KindSchematicGrid,
		opts.Theme.Schematic.Grid, opts.Theme.Schematic.GridMajor())
	if err != nil {
		return nil, err
	}

	root := svg.El("svg",
		"xmlns", svg.Namespace,
		"width", svg.Num(opts.Width),
		"height", svg.Num(opts.Height),
		"viewBox", "0 0 "+svg.Num(opts.Width)+" "+svg.Num(opts.Height),
		"data-software-used-string", buildinfo.Software(),
	)
	root.Append(bg, g)
	root.Append(nodes...)

	opts.Logger.Debug("schematic rendered", "elements", len(els), "nodes", len(nodes))
	return root, nil
}

// Render is Convert followed by serialisation.
func Render(els circuit.Elements, opts Options) ([]byte, error) {
	root, err := Convert(els, opts)
	if err != nil {
		return nil, err
	}
	return svg.Marshal(root), nil
}

func portsByComponent(els circuit.Elements) map[string][]*circuit.SchematicPort {
	out := make(map[string][]*circuit.SchematicPort)
	for _, sp := range circuit.Filter[*circuit.SchematicPort](els) {
		if sp.SchematicComponentID != "" {
			out[sp.SchematicComponentID] = append(out[sp.SchematicComponentID], sp)
		}
	}
	return out
}

// component draws c from its symbol when one exists, else as a box, plus
// its ports. A component without a usable centre still draws its ports.
func (p *painter) component(c *circuit.SchematicComponent, ports []*circuit.SchematicPort, pinNumbers bool) []*svg.Node {
	center, ok := c.Center.Point()
	if !ok {
		return p.ports(ports, pinNumbers)
	}
	w, h := c.Size.Width.Or(0), c.Size.Height.Or(0)

	sym, found := symbols.Lookup(c.SymbolName)
	if !found {
		if w <= 0 || h <= 0 {
			return p.ports(ports, pinNumbers)
		}
		body := p.rect(center, w, h).
			Set("fill", p.theme.ComponentBody).
			Set("stroke", p.theme.ComponentOutline).
			Set("stroke-width", p.px(strokeWidth))
		return append([]*svg.Node{tag(body, c.Type(), c.SchematicComponentID)}, p.ports(ports, pinNumbers)...)
	}

	place := sym.Placement(center, w, h)
	out := []*svg.Node{tag(p.symbol(sym, place), circuit.KindSchematicSymbol, c.SchematicComponentID)}

	abstract := make([]symbols.Port, 0, len(ports))
	byID := make(map[string]*circuit.SchematicPort, len(ports))
	for _, sp := range ports {
		if pos, ok := sp.Center.Point(); ok {
			abstract = append(abstract, symbols.Port{ID: sp.SchematicPortID, Pos: pos})
			byID[sp.SchematicPortID] = sp
		}
	}

	bound := make(map[string]bool)
	for _, m := range symbols.MatchPorts(abstract, sym, center) {
		bound[m.Port.ID] = true
		pin := place.Apply(m.Pin.Pos)
		lead := p.line(m.Port.Pos, pin, p.theme.Wire).Set("data-pin", m.Pin.Label)
		out = append(out, tag(lead, circuit.KindSchematicPortPin, m.Port.ID))
	}

	var unbound []*circuit.SchematicPort
	for _, sp := range ports {
		if !bound[sp.SchematicPortID] {
			unbound = append(unbound, sp)
		}
	}
	return append(out, p.ports(unbound, pinNumbers)...)
}

func (p *painter) ports(ports []*circuit.SchematicPort, pinNumbers bool) []*svg.Node {
	var out []*svg.Node
	for _, sp := range ports {
		out = append(out, p.port(sp, pinNumbers)...)
	}
	return out
}

// port draws a marker and, optionally, the pin label offset away from the
// component along the facing direction.
func (p *painter) port(sp *circuit.SchematicPort, pinNumbers bool) []*svg.Node {
	c, ok := sp.Center.Point()
	if !ok {
		return nil
	}
	marker := p.circle(c, portRadius).
		Set("fill", "none").
		Set("stroke", p.theme.Port).
		Set("stroke-width", p.px(strokeWidth))
	g := svg.El("g").Append(marker)

	if label := pinLabel(sp); pinNumbers && label != "" {
		off, anchor := facingOffset(sp.FacingDirection)
		at := geom.Pt(c.X+off.X, c.Y+off.Y)
		g.Append(p.text(label, at, pinFontSize, 0, anchor, p.theme.PinNumber))
	}
	return []*svg.Node{tag(g, sp.Type(), sp.SchematicPortID)}
}

func facingOffset(facing string) (geom.Point, string) {
	d := 2 * portRadius
	switch facing {
	case "left":
		return geom.Pt(-d, d), "right"
	case "up":
		return geom.Pt(d, d), "left"
	case "down":
		return geom.Pt(d, -d), "left"
	default:
		return geom.Pt(d, d), "left"
	}
}

func (p *painter) trace(tr *circuit.SchematicTrace) []*svg.Node {
	g := svg.El("g")
	for _, e := range tr.Edges {
		a, okA := e.From.Point()
		b, okB := e.To.Point()
		if okA && okB {
			g.Append(p.line(a, b, p.theme.Wire))
		}
	}
	if len(g.Children) == 0 {
		return nil
	}
	return []*svg.Node{tag(g, tr.Type(), tr.SchematicTraceID)}
}

// junctions marks points where three or more trace ends meet.
func (p *painter) junctions(els circuit.Elements) []*svg.Node {
	counts := make(map[[2]int64]int)
	at := make(map[[2]int64]geom.Point)
	for _, tr := range circuit.Filter[*circuit.SchematicTrace](els) {
		for _, e := range tr.Edges {
			for _, xy := range []circuit.XY{e.From, e.To} {
				if q, ok := xy.Point(); ok {
					k := pointKey(q)
					counts[k]++
					at[k] = q
				}
			}
		}
	}

	keys := make([][2]int64, 0, len(counts))
	for k, n := range counts {
		if n >= 3 {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b [2]int64) int {
		return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
	})

	out := make([]*svg.Node, 0, len(keys))
	for _, k := range keys {
		dot := p.circle(at[k], junctionRadius).Set("fill", p.theme.Junction)
		out = append(out, tag(dot, circuit.KindSchematicTrace, "").Set("class", "junction"))
	}
	return out
}

func (p *painter) textElement(v *circuit.SchematicText) []*svg.Node {
	at, ok := v.Position.Point()
	if !ok || v.Text == "" {
		return nil
	}
	color := v.Color
	if color == "" {
		color = p.theme.Label
	}
	n := p.text(v.Text, at, v.FontSize.Or(defaultFontSize), v.Rotation, v.Anchor, color)
	return []*svg.Node{tag(n, v.Type(), v.SchematicTextID)}
}

// netLabel draws the net name in an outlined box whose anchor side sits on
// the label's centre.
func (p *painter) netLabel(v *circuit.SchematicNetLabel) []*svg.Node {
	c, ok := v.Center.Point()
	if !ok || v.Text == "" {
		return nil
	}
	w := float64(len(v.Text))*defaultFontSize*0.6 + 2*labelPadding
	h := defaultFontSize + 2*labelPadding

	box := c
	switch v.AnchorSide {
	case "left":
		box.X += w / 2
	case "right":
		box.X -= w / 2
	case "top":
		box.Y -= h / 2
	case "bottom":
		box.Y += h / 2
	}

	g := svg.El("g").Append(
		p.rect(box, w, h).
			Set("fill", "none").
			Set("stroke", p.theme.NetLabel).
			Set("stroke-width", p.px(strokeWidth)),
		p.text(v.Text, box, defaultFontSize, 0, "center", p.theme.NetLabel),
	)
	if v.SourceNetID != "" {
		g.Set("data-net-id", v.SourceNetID)
	}
	return []*svg.Node{tag(g, v.Type(), v.SchematicNetLabelID)}
}

func (p *painter) box(v *circuit.SchematicBox) []*svg.Node {
	c, ok := circuit.XY{X: v.X, Y: v.Y}.Point()
	w, okW := v.Width.Value()
	h, okH := v.Height.Value()
	if !ok || !okW || !okH {
		return nil
	}
	n := p.rect(c, w, h).
		Set("fill", "none").
		Set("stroke", p.theme.Box).
		Set("stroke-width", p.px(strokeWidth))
	if v.IsDashed {
		n.Set("stroke-dasharray", p.px(4*strokeWidth)+" "+p.px(2*strokeWidth))
	}
	return []*svg.Node{tag(n, v.Type(), v.SchematicBoxID)}
}

func (p *painter) schematicLine(v *circuit.SchematicLine) []*svg.Node {
	a, okA := circuit.XY{X: v.X1, Y: v.Y1}.Point()
	b, okB := circuit.XY{X: v.X2, Y: v.Y2}.Point()
	if !okA || !okB {
		return nil
	}
	n := p.line(a, b, p.theme.ComponentOutline)
	if sw, ok := v.StrokeWidth.Value(); ok {
		n.Set("stroke-width", p.px(sw))
	}
	return []*svg.Node{tag(n, v.Type(), v.SchematicLineID)}
}
