package bounds

import (
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// AggregateSchematic computes the bounds of the schematic elements of a
// collection. Schematics have no boards, so HasBoardBounds is always false.
func AggregateSchematic(els circuit.Elements) Result {
	a := newAggregator()
	for i, el := range els {
		b, reason := schematicElementBounds(el)
		if reason != "" {
			a.skip(i, el, reason)
			continue
		}
		a.add(b, false)
	}
	return a.res
}

func schematicElementBounds(el circuit.Element) (geom.Bounds, string) {
	switch e := el.(type) {
	case *circuit.SchematicComponent:
		b, _, r := rect(e.Center, e.Size.Width, e.Size.Height)
		return b, r
	case *circuit.SchematicPort:
		b, _, r := xy(e.Center)
		return b, r
	case *circuit.SchematicNetLabel:
		b, _, r := xy(e.Center)
		return b, r
	case *circuit.SchematicText:
		b, _, r := xy(e.Position)
		return b, r
	case *circuit.SchematicBox:
		b, _, r := rect(circuit.XY{X: e.X, Y: e.Y}, e.Width, e.Height)
		return b, r
	case *circuit.SchematicLine:
		b, _, r := segment(e.X1, e.Y1, e.X2, e.Y2)
		return b, r
	case *circuit.SchematicTrace:
		pts := make([]circuit.XY, 0, 2*len(e.Edges))
		for _, edge := range e.Edges {
			pts = append(pts, edge.From, edge.To)
		}
		b, _, r := polygon(pts)
		return b, r
	case *circuit.Malformed:
		if isSchematic(e.Kind) {
			return geom.EmptyBounds(), ReasonMalformed
		}
		return geom.EmptyBounds(), ""
	default:
		// PCB, source and unknown elements have no schematic geometry.
		return geom.EmptyBounds(), ""
	}
}

func isSchematic(k circuit.Kind) bool {
	switch k {
	case circuit.KindSchematicComponent, circuit.KindSchematicPort, circuit.KindSchematicTrace,
		circuit.KindSchematicText, circuit.KindSchematicBox, circuit.KindSchematicLine,
		circuit.KindSchematicNetLabel:
		return true
	}
	return false
}
