package geom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Bounds is an axis-aligned rectangle with inclusive extents.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// EmptyBounds returns the {+Inf, +Inf, -Inf, -Inf} sentinel.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// RectBounds returns the bounds of a width x height rectangle centred on c.
func RectBounds(c Point, width, height float64) Bounds {
	return Bounds{
		MinX: c.X - width/2,
		MinY: c.Y - height/2,
		MaxX: c.X + width/2,
		MaxY: c.Y + height/2,
	}
}

// PointsBounds returns the bounds of pts, or EmptyBounds if pts is empty.
func PointsBounds(pts []Point) Bounds {
	b := EmptyBounds()
	for _, p := range pts {
		b.ExpandPoint(p)
	}
	return b
}

// IsEmpty reports whether b has never been expanded.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// ExpandPoint grows b to include p.
func (b *Bounds) ExpandPoint(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// ExpandRect grows b to include a width x height rectangle centred on c.
func (b *Bounds) ExpandRect(c Point, width, height float64) {
	b.Union(RectBounds(c, width, height))
}

// Union grows b to include o. An empty o leaves b unchanged.
func (b *Bounds) Union(o Bounds) {
	if o.IsEmpty() {
		return
	}
	b.MinX = math.Min(b.MinX, o.MinX)
	b.MinY = math.Min(b.MinY, o.MinY)
	b.MaxX = math.Max(b.MaxX, o.MaxX)
	b.MaxY = math.Max(b.MaxY, o.MaxY)
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Pad returns b grown by p on every side.
func (b Bounds) Pad(p float64) Bounds {
	return Bounds{MinX: b.MinX - p, MinY: b.MinY - p, MaxX: b.MaxX + p, MaxY: b.MaxY + p}
}

// Contains reports whether o lies within b (edges inclusive).
func (b Bounds) Contains(o Bounds) bool {
	return o.MinX >= b.MinX && o.MinY >= b.MinY && o.MaxX <= b.MaxX && o.MaxY <= b.MaxY
}

// Corners returns the four corners of b, counter-clockwise from (MinX, MinY).
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

func (b Bounds) String() string {
	if b.IsEmpty() {
		return "{empty}"
	}
	return fmt.Sprintf("{%g, %g, %g, %g}", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

type jsonBounds Bounds

// MarshalJSON writes an empty b as null, since JSON has no infinities.
func (b Bounds) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(jsonBounds(b))
}

// UnmarshalJSON reads null as the empty sentinel.
func (b *Bounds) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = EmptyBounds()
		return nil
	}
	return json.Unmarshal(data, (*jsonBounds)(b))
}
