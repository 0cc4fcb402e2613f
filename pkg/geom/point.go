package geom

import "gonum.org/v1/gonum/spatial/r2"

// Point is a position in either design or image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	v := r2.Add(p.vec(), q.vec())
	return Point{X: v.X, Y: v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	v := r2.Sub(p.vec(), q.vec())
	return Point{X: v.X, Y: v.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a.vec(), b.vec()))
}

// Rotate returns p rotated counter-clockwise by rad radians about c.
func (p Point) Rotate(c Point, rad float64) Point {
	v := r2.Rotate(p.vec(), rad, c.vec())
	return Point{X: v.X, Y: v.Y}
}
