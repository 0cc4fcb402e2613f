// Package grid draws the optional background grid.
//
// A non-positive cell size disables the grid: [Render] returns nil and no
// error. A major cell size, when set, must be a positive whole multiple of
// the cell size (to a relative tolerance of 1e-6); anything else is a
// caller mistake and fails with INVALID_GRID.
package grid

import (
	"math"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	"github.com/matzehuels/circuitsvg/pkg/svg"
)

const (
	// ratioTolerance is the relative tolerance for majorCellSize/cellSize.
	ratioTolerance = 1e-6

	// MaxLines caps the number of lines in each direction.
	MaxLines = 5000

	minorStroke = 0.5
	majorStroke = 1.0
)

// Options configures the grid. Sizes are in design units.
type Options struct {
	CellSize       float64 `json:"cellSize" toml:"cell_size"`
	MajorCellSize  float64 `json:"majorCellSize,omitempty" toml:"major_cell_size"`
	LineColor      string  `json:"lineColor,omitempty" toml:"line_color"`
	MajorLineColor string  `json:"majorLineColor,omitempty" toml:"major_line_color"`
}

// Enabled reports whether the options draw anything.
func (o Options) Enabled() bool { return o.CellSize > 0 }

// MajorEvery returns how many cells make up one major cell, or 0 when there
// are no major lines. It fails if MajorCellSize is set but is not a
// positive whole multiple of CellSize.
func (o Options) MajorEvery() (int, error) {
	if o.MajorCellSize == 0 {
		return 0, nil
	}
	ratio := o.MajorCellSize / o.CellSize
	k := math.Round(ratio)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) ||
		o.MajorCellSize < 0 || k < 1 || math.Abs(ratio-k) > ratioTolerance*ratio {
		return 0, errors.New(errors.ErrCodeInvalidGrid,
			"majorCellSize must be a positive multiple of cellSize (got cellSize=%g, majorCellSize=%g)",
			o.CellSize, o.MajorCellSize)
	}
	return int(k), nil
}

// Validate checks the options without drawing. Disabled grids are valid.
func (o Options) Validate() error {
	if !o.Enabled() {
		return nil
	}
	_, err := o.MajorEvery()
	return err
}

// Render draws grid lines covering area, mapped through t. kind tags the
// group for paint ordering (pcb_grid or schematic_grid). Empty colours fall
// back to lineColor and majorColor.
func Render(area geom.Bounds, t geom.Transform, o Options, kind circuit.Kind, lineColor, majorColor string) (*svg.Node, error) {
	if !o.Enabled() || area.IsEmpty() {
		return nil, nil
	}
	every, err := o.MajorEvery()
	if err != nil {
		return nil, err
	}

	cell := o.CellSize
	i0, i1 := int64(math.Ceil(area.MinX/cell)), int64(math.Floor(area.MaxX/cell))
	j0, j1 := int64(math.Ceil(area.MinY/cell)), int64(math.Floor(area.MaxY/cell))
	if i1-i0 > MaxLines || j1-j0 > MaxLines {
		return nil, errors.New(errors.ErrCodeInvalidGrid,
			"cellSize %g is too small for the viewport (more than %d lines)", cell, MaxLines)
	}

	minor := pick(o.LineColor, lineColor)
	major := pick(o.MajorLineColor, majorColor)

	g := svg.El("g", "class", "grid").Tag(string(kind), "")
	line := func(a, b geom.Point, isMajor bool) {
		p, q := t.Apply(a), t.Apply(b)
		stroke, width := minor, minorStroke
		if isMajor {
			stroke, width = major, majorStroke
		}
		g.Append(svg.El("line",
			"x1", svg.Num(p.X), "y1", svg.Num(p.Y),
			"x2", svg.Num(q.X), "y2", svg.Num(q.Y),
			"stroke", stroke, "stroke-width", svg.Num(width),
		))
	}
	isMajor := func(i int64) bool { return every > 0 && i%int64(every) == 0 }

	for i := i0; i <= i1; i++ {
		x := float64(i) * cell
		line(geom.Pt(x, area.MinY), geom.Pt(x, area.MaxY), isMajor(i))
	}
	for j := j0; j <= j1; j++ {
		y := float64(j) * cell
		line(geom.Pt(area.MinX, y), geom.Pt(area.MaxX, y), isMajor(j))
	}
	return g, nil
}

func pick(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
