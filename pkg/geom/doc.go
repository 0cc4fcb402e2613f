// Package geom provides the planar primitives shared by every conversion:
// points, axis-aligned bounds and the affine transform that maps design
// space (millimetres, Y up) onto image space (pixels, Y down).
//
// # Bounds
//
// [Bounds] starts out empty, using +Inf/-Inf sentinels so that the first
// expansion always wins. An empty Bounds must never be used as output; check
// [Bounds.IsEmpty] (or the HasBounds flag reported by the bounds package)
// before reading the numbers.
//
// # Transform
//
// [BuildTransform] derives the single [Transform] threaded through all shape
// emitters of one conversion. Emitters size strokes, radii and fonts with
// [Transform.ScaleFactor] rather than a separately passed scale, so geometry
// and pixel sizes can never drift apart.
//
//	t := geom.BuildTransform(world, 800, 600, 1)
//	x, y := t.ApplyXY(10, 5)
//	strokeWidth := 0.15 * t.ScaleFactor()
package geom
