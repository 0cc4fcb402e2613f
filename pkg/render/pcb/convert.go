package pcb

import (
	"slices"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/buildinfo"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/paint"
	"github.com/matzehuels/circuitsvg/pkg/svg"
	"github.com/matzehuels/circuitsvg/pkg/viewport"
)

// Frame is the resolved geometry of one conversion.
type Frame struct {
	Bounds    bounds.Result   `json:"bounds"`
	Viewport  viewport.Result `json:"viewport"`
	Transform geom.Transform  `json:"transform"`
	// Visible is the design-space area covered by the whole image, which
	// is larger than the viewport along one axis when aspect ratios differ.
	Visible geom.Bounds `json:"visible"`
}

// Resolve computes the frame for els without drawing anything.
func Resolve(els circuit.Elements, opts Options) (Frame, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return Frame{}, err
	}
	return resolve(els, opts)
}

func resolve(els circuit.Elements, opts Options) (Frame, error) {
	agg := bounds.Aggregate(els)
	for _, s := range agg.Skipped {
		opts.Logger.Debug("element skipped", "index", s.Index, "type", s.Type, "id", s.ID, "reason", s.Reason)
	}

	vp, err := viewport.Resolve(viewport.Request{
		Elements:                els,
		DrawPaddingOutsideBoard: opts.drawPadding(),
		Base:                    agg,
		Viewport:                opts.Viewport,
		Target:                  opts.Target,
	})
	if err != nil {
		return Frame{}, err
	}

	t := geom.BuildTransform(vp.Bounds, opts.Width, opts.Height, vp.Padding)
	k := t.ScaleFactor()
	visible := geom.RectBounds(vp.Bounds.Pad(vp.Padding).Center(), opts.Width/k, opts.Height/k)

	opts.Logger.Debug("frame resolved", "source", vp.Source, "world", vp.Bounds, "padding", vp.Padding, "scale", t.ScaleFactor())
	return Frame{Bounds: agg, Viewport: vp, Transform: t, Visible: visible}, nil
}

// Convert renders els as an SVG document tree.
func Convert(els circuit.Elements, opts Options) (*svg.Node, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}
	frame, err := resolve(els, opts)
	if err != nil {
		return nil, err
	}

	e := &emitter{drawCtx: newDrawCtx(frame.Transform, opts.Theme.PCB), showPorts: opts.ShowPorts}

	var nodes []*svg.Node
	for _, el := range els {
		nodes = append(nodes, e.emit(el)...)
	}
	if opts.ShowSolderMask {
		for _, side := range []string{LayerBottom, LayerTop} {
			nodes = append(nodes, e.soldermask(els, side)...)
		}
	}
	if opts.ShowRatsNest {
		nodes = append(nodes, e.ratsNest(els, opts.Logger)...)
	}
	nodes = filterLayer(nodes, opts.Layer)
	nodes = paint.Order(nodes)

	bg := svg.El("rect",
		"x", "0", "y", "0",
		"width", svg.Num(opts.Width), "height", svg.Num(opts.Height),
		"fill", opts.Theme.PCB.Background,
	).Tag(string(circuit.KindPCBBackground), "global")

	g, err := grid.Render(frame.Visible, frame.Transform, opts.Grid, circuit.KindPCBGrid,
		opts.Theme.PCB.Grid, opts.Theme.PCB.GridMajor())
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

	opts.Logger.Debug("pcb rendered", "elements", len(els), "nodes", len(nodes))
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

// filterLayer drops nodes on the opposite copper side.
func filterLayer(nodes []*svg.Node, layer string) []*svg.Node {
	var hidden string
	switch layer {
	case LayerTop:
		hidden = LayerBottom
	case LayerBottom:
		hidden = LayerTop
	default:
		return nodes
	}
	return slices.DeleteFunc(nodes, func(n *svg.Node) bool {
		return n.Attr(svg.AttrLayer) == hidden
	})
}
