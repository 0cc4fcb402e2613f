package symbols

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// Primitive is one stroke of a symbol drawing. Exactly one of Points or
// Radius is meaningful: a path, or a circle centred on Center.
type Primitive struct {
	Points []geom.Point
	Closed bool
	Filled bool
	Center geom.Point
	Radius float64
}

// Pin is a connection point of a symbol.
type Pin struct {
	Label string
	Pos   geom.Point
}

// Symbol is a drawable schematic symbol in its own frame.
type Symbol struct {
	Name       string
	Primitives []Primitive
	Pins       []Pin
}

// Bounds returns the extent of the drawing and pins.
func (s Symbol) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, p := range s.Primitives {
		if p.Radius > 0 {
			b.Union(geom.RectBounds(p.Center, 2*p.Radius, 2*p.Radius))
		}
		for _, pt := range p.Points {
			b.ExpandPoint(pt)
		}
	}
	for _, pin := range s.Pins {
		b.ExpandPoint(pin.Pos)
	}
	return b
}

// Center returns the centre of Bounds.
func (s Symbol) Center() geom.Point { return s.Bounds().Center() }

// rotate returns s turned ccw quarter turns about the origin.
func (s Symbol) rotate(quarters int) Symbol {
	rad := float64(quarters) * math.Pi / 2
	rot := func(p geom.Point) geom.Point { return snap(p.Rotate(geom.Point{}, rad)) }

	out := Symbol{Name: s.Name}
	for _, p := range s.Primitives {
		q := Primitive{Closed: p.Closed, Filled: p.Filled, Center: rot(p.Center), Radius: p.Radius}
		for _, pt := range p.Points {
			q.Points = append(q.Points, rot(pt))
		}
		out.Primitives = append(out.Primitives, q)
	}
	for _, pin := range s.Pins {
		out.Pins = append(out.Pins, Pin{Label: pin.Label, Pos: rot(pin.Pos)})
	}
	return out
}

// snap removes floating-point noise left by quarter-turn rotations.
func snap(p geom.Point) geom.Point {
	r := func(v float64) float64 { return math.Round(v*1e9) / 1e9 }
	return geom.Pt(r(p.X), r(p.Y))
}

// Placement maps symbol coordinates into design space so the symbol is
// centred on center and scaled uniformly to fit within size. A zero size
// keeps the symbol's natural scale.
func (s Symbol) Placement(center geom.Point, width, height float64) geom.Transform {
	b := s.Bounds()
	k := 1.0
	if width > 0 && height > 0 && b.Width() > 0 && b.Height() > 0 {
		k = math.Min(width/b.Width(), height/b.Height())
	}
	c := b.Center()
	return geom.Compose(
		geom.Translate(center.X, center.Y),
		geom.Scale(k, k),
		geom.Translate(-c.X, -c.Y),
	)
}

// directions lists facings in counter-clockwise quarter-turn order.
var directions = []string{"right", "up", "left", "down"}

var aliases = map[string]string{"horz": "right", "vert": "down"}

var library = buildLibrary()

func buildLibrary() map[string]Symbol {
	lib := make(map[string]Symbol)
	for _, base := range baseSymbols {
		start := slices.Index(directions, base.facing)
		for q := range directions {
			dir := directions[(start+q)%len(directions)]
			sym := base.symbol.rotate(q)
			sym.Name = base.name + "_" + dir
			lib[sym.Name] = sym
		}
	}
	return lib
}

// Lookup returns the symbol called name, resolving orientation aliases.
func Lookup(name string) (Symbol, bool) {
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		if dir, ok := aliases[name[i+1:]]; ok {
			name = name[:i+1] + dir
		}
	}
	s, ok := library[name]
	return s, ok
}

// Names lists every symbol name in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
