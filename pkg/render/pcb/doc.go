// Package pcb renders a circuit element collection as a top-down board view.
//
// [Convert] runs the full pipeline: bounds aggregation, viewport resolution,
// a single design-to-image [geom.Transform], per-kind shape emission,
// paint ordering and finally the document root. Every emitter receives the
// same transform and derives stroke widths, radii and font sizes from its
// scale factor, so geometry and strokes never drift apart.
//
// Emitted nodes carry data-type and data-pcb-layer attributes. These drive
// [paint.Order] and stay in the output, where they are useful for styling
// and for tests that select nodes by kind.
//
// Rendering is pure: the element collection is only read, and no state is
// kept between calls.
package pcb
