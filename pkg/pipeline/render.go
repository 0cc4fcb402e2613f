package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/netlist"
	"github.com/matzehuels/circuitsvg/pkg/render"
	"github.com/matzehuels/circuitsvg/pkg/render/nets"
	"github.com/matzehuels/circuitsvg/pkg/render/pcb"
	"github.com/matzehuels/circuitsvg/pkg/render/schematic"
)

// Report is the json output. Only the fields of the rendered view are set.
type Report struct {
	View         string                `json:"view"`
	ElementCount int                   `json:"element_count"`
	Kinds        map[circuit.Kind]int  `json:"kinds"`
	Frame        *pcb.Frame            `json:"frame,omitempty"`
	Bounds       *bounds.Result        `json:"bounds,omitempty"`
	Connectivity *netlist.Connectivity `json:"connectivity,omitempty"`
}

// Render draws els in every requested format without touching a cache.
func Render(ctx context.Context, els circuit.Elements, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var conn netlist.Connectivity
	if opts.View == ViewNets {
		conn = netlist.Build(els)
	}

	var doc []byte
	if opts.NeedsSVG() {
		var err error
		if doc, err = renderSVG(ctx, els, conn, opts); err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = doc
		case FormatPNG:
			data, err = render.ToPNG(ctx, doc, opts.PNGScale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, doc)
		case FormatJSON:
			data, err = renderReport(els, conn, opts)
		case FormatDOT:
			data = []byte(nets.ToDOT(els, conn, opts.Nets))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderSVG(ctx context.Context, els circuit.Elements, conn netlist.Connectivity, opts Options) ([]byte, error) {
	switch opts.View {
	case ViewSchematic:
		return schematic.Render(els, opts.Schematic)
	case ViewNets:
		return nets.RenderSVG(ctx, nets.ToDOT(els, conn, opts.Nets))
	default:
		return pcb.Render(els, opts.PCB)
	}
}

func renderReport(els circuit.Elements, conn netlist.Connectivity, opts Options) ([]byte, error) {
	rep := Report{
		View:         opts.View,
		ElementCount: len(els),
		Kinds:        els.CountByKind(),
	}
	switch opts.View {
	case ViewPCB:
		frame, err := pcb.Resolve(els, opts.PCB)
		if err != nil {
			return nil, err
		}
		rep.Frame = &frame
	case ViewSchematic:
		agg := bounds.AggregateSchematic(els)
		rep.Bounds = &agg
	case ViewNets:
		rep.Connectivity = &conn
	}
	return json.MarshalIndent(rep, "", "  ")
}
