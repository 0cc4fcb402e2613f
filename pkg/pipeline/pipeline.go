// Package pipeline runs the decode → resolve → render pipeline shared by the
// CLI and the HTTP server.
//
// # Architecture
//
// A run has two stages:
//
//  1. Decode: parse the element JSON array into a [circuit.Elements]
//  2. Render: draw one view (pcb, schematic or nets) and encode it in each
//     requested format (svg, png, pdf, json, dot)
//
// Rendering is a pure function of the input bytes and the options, so every
// artifact is cached under the SHA-256 of the input plus a hash of the
// options. PNG and PDF are converted from the SVG with rsvg-convert.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, input, pipeline.Options{
//	    View:    pipeline.ViewPCB,
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [Render] skips the cache entirely.
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/render/nets"
	"github.com/matzehuels/circuitsvg/pkg/render/pcb"
	"github.com/matzehuels/circuitsvg/pkg/render/schematic"
	"github.com/matzehuels/circuitsvg/pkg/theme"
)

const (
	// DefaultWidth is the default image width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default image height in pixels.
	DefaultHeight = 600.0

	// DefaultPNGScale is the rsvg-convert zoom used for PNG output.
	DefaultPNGScale = 2.0
)

// Views.
const (
	ViewPCB       = "pcb"
	ViewSchematic = "schematic"
	ViewNets      = "nets"
)

// DefaultView is the view rendered when none is requested.
const DefaultView = ViewPCB

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewPCB:       true,
	ViewSchematic: true,
	ViewNets:      true,
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// Options configures one pipeline run. It is JSON-serialisable and its JSON
// form is hashed into the artifact cache key, so every field that changes
// the output must be serialised.
type Options struct {
	View     string   `json:"view,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`

	// Per-view options. Width, Height, Theme and Logger above are copied
	// into PCB and Schematic when those leave them unset.
	PCB       pcb.Options       `json:"pcb"`
	Schematic schematic.Options `json:"schematic"`
	Nets      nets.Options      `json:"nets"`

	Theme *theme.Theme `json:"theme,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-"` // bypass cache reads
	Logger  *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Elements is the decoded input.
	Elements circuit.Elements

	// InputHash is the content hash of the input bytes.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	SkippedCount int
	DecodeTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool     // every artifact came from cache
	Hits      []string // formats served from cache
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidView, "invalid view: %q (must be one of: pcb, schematic, nets)", view)
	}
	return nil
}

// ValidateFormat checks that a format is valid for view.
func ValidateFormat(view, format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	if format == FormatDOT && view != ViewNets {
		return errors.New(errors.ErrCodeInvalidFormat, "format dot is only available for the nets view")
	}
	return nil
}

// ValidateFormats checks that all formats are valid for view.
func ValidateFormats(view string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(view, f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.View, o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.PNGScale < 0 || math.IsNaN(o.PNGScale) || math.IsInf(o.PNGScale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "png scale must be positive (got %g)", o.PNGScale)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.propagate()
	o.validated = true
	return nil
}

func (o *Options) propagate() {
	if o.PCB.Width == 0 {
		o.PCB.Width = o.Width
	}
	if o.PCB.Height == 0 {
		o.PCB.Height = o.Height
	}
	if o.Schematic.Width == 0 {
		o.Schematic.Width = o.Width
	}
	if o.Schematic.Height == 0 {
		o.Schematic.Height = o.Height
	}
	if o.PCB.Theme == nil {
		o.PCB.Theme = o.Theme
	}
	if o.Schematic.Theme == nil {
		o.Schematic.Theme = o.Theme
	}
	if o.PCB.Logger == nil {
		o.PCB.Logger = o.Logger
	}
	if o.Schematic.Logger == nil {
		o.Schematic.Logger = o.Logger
	}
}

// NeedsSVG reports whether any requested format is derived from the SVG.
func (o *Options) NeedsSVG() bool {
	return slices.ContainsFunc(o.Formats, func(f string) bool {
		return f == FormatSVG || f == FormatPNG || f == FormatPDF
	})
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz"
	}
	return "application/octet-stream"
}
