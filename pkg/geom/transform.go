package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinWorldExtent is the smallest world width or height BuildTransform will
// scale to. Narrower rectangles are widened about their centre, which keeps
// the scale factor finite for single points rendered without padding.
const MinWorldExtent = 1e-3

// Transform is a 2x3 affine matrix in SVG order:
//
//	| A C E |
//	| B D F |
//
// mapping (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{A: 1, D: 1} }

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Transform { return Transform{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform { return Transform{A: sx, D: sy} }

func (t Transform) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.A, t.C, t.E,
		t.B, t.D, t.F,
		0, 0, 1,
	})
}

func fromMatrix(m mat.Matrix) Transform {
	return Transform{
		A: m.At(0, 0), C: m.At(0, 1), E: m.At(0, 2),
		B: m.At(1, 0), D: m.At(1, 1), F: m.At(1, 2),
	}
}

// Compose multiplies ts left to right, so the last transform is applied to
// a point first: Compose(T, S)(p) == T(S(p)).
func Compose(ts ...Transform) Transform {
	acc := Identity().dense()
	for _, t := range ts {
		next := mat.NewDense(3, 3, nil)
		next.Mul(acc, t.dense())
		acc = next
	}
	return fromMatrix(acc)
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	x, y := t.ApplyXY(p.X, p.Y)
	return Point{X: x, Y: y}
}

// ApplyXY maps (x, y) through t.
func (t Transform) ApplyXY(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// ScaleFactor returns |A|, the pixels per design unit used for stroke
// widths, radii and font sizes.
func (t Transform) ScaleFactor() float64 { return math.Abs(t.A) }

// Inverse returns the transform mapping image space back to design space.
func (t Transform) Inverse() (Transform, error) {
	if t.A*t.D-t.B*t.C == 0 {
		return Transform{}, fmt.Errorf("transform %s is singular", t)
	}
	var inv mat.Dense
	if err := inv.Inverse(t.dense()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Transform{}, fmt.Errorf("invert %s: %w", t, err)
		}
	}
	return fromMatrix(&inv), nil
}

// ApplyInverse maps an image-space point back to design space.
func (t Transform) ApplyInverse(p Point) (Point, error) {
	inv, err := t.Inverse()
	if err != nil {
		return Point{}, err
	}
	return inv.Apply(p), nil
}

// String formats t as an SVG transform attribute value.
func (t Transform) String() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", t.A, t.B, t.C, t.D, t.E, t.F)
}

// BuildTransform maps world (grown by padding on each side) into a
// width x height image. The scale is uniform, the world is centred in the
// image, and Y is flipped so design-space up is image-space up.
func BuildTransform(world Bounds, width, height, padding float64) Transform {
	world = world.Pad(padding)
	world = ensureExtent(world)

	worldW, worldH := world.Width(), world.Height()
	scale := math.Min(width/worldW, height/worldH)

	offsetX := (width - worldW*scale) / 2
	offsetY := (height - worldH*scale) / 2

	return Compose(
		Translate(offsetX, height-offsetY),
		Scale(scale, -scale),
		Translate(-world.MinX, -world.MinY),
	)
}

func ensureExtent(b Bounds) Bounds {
	c := b.Center()
	if b.Width() < MinWorldExtent {
		b.MinX, b.MaxX = c.X-MinWorldExtent/2, c.X+MinWorldExtent/2
	}
	if b.Height() < MinWorldExtent {
		b.MinY, b.MaxY = c.Y-MinWorldExtent/2, c.Y+MinWorldExtent/2
	}
	return b
}
