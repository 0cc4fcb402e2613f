package symbols

import "github.com/matzehuels/circuitsvg/pkg/geom"

type baseSymbol struct {
	name   string
	facing string
	symbol Symbol
}

func path(closed bool, pts ...float64) Primitive {
	p := Primitive{Closed: closed}
	for i := 0; i+1 < len(pts); i += 2 {
		p.Points = append(p.Points, geom.Pt(pts[i], pts[i+1]))
	}
	return p
}

func filled(p Primitive) Primitive {
	p.Filled = true
	return p
}

func twoPins() []Pin {
	return []Pin{
		{Label: "1", Pos: geom.Pt(-0.55, 0)},
		{Label: "2", Pos: geom.Pt(0.55, 0)},
	}
}

// Two-terminal symbols face right with pin 1 on the left.
var baseSymbols = []baseSymbol{
	{name: "boxresistor", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.3, 0),
			path(true, -0.3, -0.12, 0.3, -0.12, 0.3, 0.12, -0.3, 0.12),
			path(false, 0.3, 0, 0.55, 0),
		},
		Pins: twoPins(),
	}},
	{name: "resistor", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.3, 0, -0.25, 0.12, -0.15, -0.12, -0.05, 0.12,
				0.05, -0.12, 0.15, 0.12, 0.25, -0.12, 0.3, 0, 0.55, 0),
		},
		Pins: twoPins(),
	}},
	{name: "capacitor", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.05, 0),
			path(false, -0.05, -0.2, -0.05, 0.2),
			path(false, 0.05, -0.2, 0.05, 0.2),
			path(false, 0.05, 0, 0.55, 0),
		},
		Pins: twoPins(),
	}},
	{name: "inductor", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.3, 0, -0.25, 0.1, -0.15, 0.1, -0.1, 0,
				-0.05, 0.1, 0.05, 0.1, 0.1, 0, 0.15, 0.1, 0.25, 0.1, 0.3, 0, 0.55, 0),
		},
		Pins: twoPins(),
	}},
	{name: "diode", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.15, 0),
			filled(path(true, -0.15, -0.15, -0.15, 0.15, 0.15, 0)),
			path(false, 0.15, -0.15, 0.15, 0.15),
			path(false, 0.15, 0, 0.55, 0),
		},
		Pins: twoPins(),
	}},
	{name: "led", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, -0.15, 0),
			filled(path(true, -0.15, -0.15, -0.15, 0.15, 0.15, 0)),
			path(false, 0.15, -0.15, 0.15, 0.15),
			path(false, 0.15, 0, 0.55, 0),
			path(false, 0, 0.2, 0.12, 0.32),
			path(false, 0.1, 0.2, 0.22, 0.32),
		},
		Pins: twoPins(),
	}},
	{name: "fuse", facing: "right", symbol: Symbol{
		Primitives: []Primitive{
			path(false, -0.55, 0, 0.55, 0),
			path(true, -0.25, -0.08, 0.25, -0.08, 0.25, 0.08, -0.25, 0.08),
		},
		Pins: twoPins(),
	}},
	{name: "ground", facing: "down", symbol: Symbol{
		Primitives: []Primitive{
			path(false, 0, 0.3, 0, 0),
			path(false, -0.2, 0, 0.2, 0),
			path(false, -0.12, -0.07, 0.12, -0.07),
			path(false, -0.05, -0.14, 0.05, -0.14),
		},
		Pins: []Pin{{Label: "1", Pos: geom.Pt(0, 0.3)}},
	}},
	{name: "power", facing: "up", symbol: Symbol{
		Primitives: []Primitive{
			path(false, 0, -0.3, 0, 0),
			path(false, -0.2, 0, 0.2, 0),
		},
		Pins: []Pin{{Label: "1", Pos: geom.Pt(0, -0.3)}},
	}},
}
