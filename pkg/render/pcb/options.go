package pcb

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/theme"
	"github.com/matzehuels/circuitsvg/pkg/viewport"
)

// Default image size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Layer filters for Options.Layer.
const (
	LayerAll    = ""
	LayerTop    = "top"
	LayerBottom = "bottom"
)

// Options controls a PCB conversion. The zero value renders an 800x600
// image with the default theme.
type Options struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Viewport frames an exact design-space rectangle with no padding.
	Viewport *geom.Bounds `json:"viewport,omitempty"`
	// Target frames a single panel or board.
	Target *viewport.Target `json:"viewportTarget,omitempty"`
	// DrawPaddingOutsideBoard defaults to true.
	DrawPaddingOutsideBoard *bool `json:"drawPaddingOutsideBoard,omitempty"`

	ShowRatsNest   bool         `json:"showRatsNest,omitempty"`
	ShowPorts      bool         `json:"showPorts,omitempty"`
	ShowSolderMask bool         `json:"showSolderMask,omitempty"`
	Layer          string       `json:"layer,omitempty"`
	Grid           grid.Options `json:"grid,omitempty"`

	Theme  *theme.Theme `json:"-"`
	Logger *log.Logger  `json:"-"`
}

func (o *Options) validateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	switch o.Layer {
	case LayerAll, LayerTop, LayerBottom:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "layer must be top or bottom (got %q)", o.Layer)
	}
	if err := o.Grid.Validate(); err != nil {
		return err
	}
	if o.Theme == nil {
		t := theme.Default()
		o.Theme = &t
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

func (o Options) drawPadding() bool {
	return o.DrawPaddingOutsideBoard == nil || *o.DrawPaddingOutsideBoard
}
