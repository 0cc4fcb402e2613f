// Package nets draws net connectivity as a node-link diagram.
//
// Each net becomes an ellipse and each source port a box, grouped into a
// cluster per source component. Edges join ports to their nets. The
// diagram is emitted as Graphviz DOT by [ToDOT] and laid out by
// [RenderSVG], which embeds Graphviz through go-graphviz; no external
// binary is needed for SVG. [RenderPDF] and [RenderPNG] convert the SVG
// with rsvg-convert (see package render).
package nets
