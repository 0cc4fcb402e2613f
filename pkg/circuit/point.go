package circuit

import "github.com/matzehuels/circuitsvg/pkg/geom"

// XY is a point as it appears in the input.
type XY struct {
	X Length `json:"x"`
	Y Length `json:"y"`
}

// At returns a valid XY for (x, y) millimetres.
func At(x, y float64) XY { return XY{X: MM(x), Y: MM(y)} }

// Point returns the parsed point and whether both coordinates were valid.
func (p XY) Point() (geom.Point, bool) {
	x, okX := p.X.Value()
	y, okY := p.Y.Value()
	return geom.Pt(x, y), okX && okY
}

// Points parses every vertex of pts, dropping invalid ones. The second
// result reports how many were dropped.
func Points(pts []XY) ([]geom.Point, int) {
	out := make([]geom.Point, 0, len(pts))
	dropped := 0
	for _, p := range pts {
		if pt, ok := p.Point(); ok {
			out = append(out, pt)
		} else {
			dropped++
		}
	}
	return out, dropped
}

// Size is a width/height pair used by schematic elements.
type Size struct {
	Width  Length `json:"width"`
	Height Length `json:"height"`
}
