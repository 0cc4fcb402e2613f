package schematic

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/theme"
)

// Options controls a schematic conversion.
type Options struct {
	Width    float64      `json:"width,omitempty"`
	Height   float64      `json:"height,omitempty"`
	Viewport *geom.Bounds `json:"viewport,omitempty"`
	Grid     grid.Options `json:"grid,omitempty"`

	// HidePinNumbers suppresses pin labels next to unbound ports.
	HidePinNumbers bool `json:"hidePinNumbers,omitempty"`

	Theme  *theme.Theme `json:"-"`
	Logger *log.Logger  `json:"-"`
}

func (o *Options) validateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = 1200
	}
	if o.Height == 0 {
		o.Height = 600
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
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
