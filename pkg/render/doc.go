// Package render converts finished SVG documents to other formats.
//
// The per-view renderers live in subpackages:
//
//   - [pcb]: board view (copper, mask, silkscreen, drills, rats nest)
//   - [schematic]: schematic view with built-in symbols
//   - [nets]: net connectivity diagram laid out by Graphviz
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Both honour context cancellation.
//
//	doc, err := pcb.Render(elements, pcb.Options{Width: 800, Height: 600})
//	pdf, err := render.ToPDF(ctx, doc)
//	png, err := render.ToPNG(ctx, doc, 2.0) // 2x scale
package render
