package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
	"github.com/matzehuels/circuitsvg/pkg/viewport"
)

// renderFlags are the drawing flags shared by render, bounds and inspect.
type renderFlags struct {
	view     string
	formats  string
	width    float64
	height   float64
	pngScale float64

	layer      string
	board      string
	panel      string
	viewport   []float64
	padding    bool
	ratsNest   bool
	ports      bool
	solderMask bool
	grid       float64
	majorGrid  float64
	hidePins   bool

	detailed   bool
	singletons bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.view, "view", pipeline.DefaultView, "view to draw: pcb, schematic, nets")
	fs.StringVarP(&f.formats, "format", "f", pipeline.FormatSVG, "output formats, comma-separated: svg, png, pdf, json, dot")
	fs.Float64Var(&f.width, "width", pipeline.DefaultWidth, "image width in pixels")
	fs.Float64Var(&f.height, "height", pipeline.DefaultHeight, "image height in pixels")
	fs.Float64Var(&f.pngScale, "png-scale", pipeline.DefaultPNGScale, "zoom factor for png output")

	fs.StringVar(&f.layer, "layer", "", "pcb layer to emphasise (top, bottom)")
	fs.StringVar(&f.board, "board", "", "frame the pcb_board with this id")
	fs.StringVar(&f.panel, "panel", "", "frame the pcb_panel with this id")
	fs.Float64SliceVar(&f.viewport, "viewport", nil, "frame an exact design rectangle: minX,minY,maxX,maxY")
	fs.BoolVar(&f.padding, "padding", true, "draw padding outside the board outline")
	fs.BoolVar(&f.ratsNest, "ratsnest", false, "draw rats-nest lines for unrouted connections")
	fs.BoolVar(&f.ports, "ports", false, "draw pcb ports")
	fs.BoolVar(&f.solderMask, "soldermask", false, "draw the solder mask")
	fs.Float64Var(&f.grid, "grid", 0, "grid cell size in design units (0 disables the grid)")
	fs.Float64Var(&f.majorGrid, "major-grid", 0, "major grid cell size in design units")
	fs.BoolVar(&f.hidePins, "hide-pins", false, "hide schematic pin numbers")

	fs.BoolVar(&f.detailed, "detailed", false, "list physical net members in the nets view")
	fs.BoolVar(&f.singletons, "singletons", false, "keep single-port nets in the nets view")
}

// options builds pipeline options from the flags, letting cfg fill in
// whatever was not set on the command line.
func (f *renderFlags) options(cmd *cobra.Command, cfg *Config) (pipeline.Options, error) {
	changed := cmd.Flags().Changed

	opts := pipeline.Options{
		View:     f.view,
		Formats:  pipeline.ParseFormats(f.formats),
		Width:    f.width,
		Height:   f.height,
		PNGScale: f.pngScale,
	}

	opts.PCB.Layer = f.layer
	opts.PCB.ShowRatsNest = f.ratsNest
	opts.PCB.ShowPorts = f.ports
	opts.PCB.ShowSolderMask = f.solderMask
	if changed("padding") {
		pad := f.padding
		opts.PCB.DrawPaddingOutsideBoard = &pad
	}
	if f.board != "" || f.panel != "" {
		for _, id := range []string{f.board, f.panel} {
			if id == "" {
				continue
			}
			if err := errors.ValidateElementID(id); err != nil {
				return opts, err
			}
		}
		opts.PCB.Target = &viewport.Target{PCBBoardID: f.board, PCBPanelID: f.panel}
	}
	if changed("viewport") {
		if len(f.viewport) != 4 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "--viewport needs 4 values (got %d)", len(f.viewport))
		}
		vp := geom.Bounds{MinX: f.viewport[0], MinY: f.viewport[1], MaxX: f.viewport[2], MaxY: f.viewport[3]}
		opts.PCB.Viewport = &vp
		opts.Schematic.Viewport = &vp
	}

	opts.PCB.Grid.CellSize = f.grid
	opts.PCB.Grid.MajorCellSize = f.majorGrid
	opts.Schematic.Grid = opts.PCB.Grid
	opts.Schematic.HidePinNumbers = f.hidePins

	opts.Nets.Detailed = f.detailed
	opts.Nets.IncludeSingletons = f.singletons

	if err := cfg.applyTo(&opts, changed); err != nil {
		return opts, err
	}
	return opts, nil
}
