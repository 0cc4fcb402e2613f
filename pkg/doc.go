// Package pkg provides the core libraries for circuitsvg.
//
// # Overview
//
// circuitsvg turns a flat JSON array of circuit elements into drawings of
// the printed circuit board, the schematic, and the net connectivity. The
// pkg directory is organized into four areas:
//
//  1. Model - [circuit] elements and [geom] points, bounds and transforms
//  2. Framing - [bounds] aggregation, [viewport] resolution, [grid] overlays
//  3. Drawing - [render/pcb], [render/schematic], [render/nets], [paint] order,
//     [netlist] rats nest, [symbols] port matching, [svg] documents, [theme]
//  4. Plumbing - [pipeline] orchestration, [cache], [io], [server],
//     [observability], [errors]
//
// # Architecture
//
// The data flow of a render:
//
//	element JSON
//	     ↓
//	[circuit] package (decode by type tag)
//	     ↓
//	[bounds] + [viewport] packages (world rectangle)
//	     ↓
//	[geom] package (world → image transform)
//	     ↓
//	[render/pcb] or [render/schematic] (SVG node tree, painter's order)
//	     ↓
//	SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/circuitsvg/pkg/circuit"
//	    "github.com/matzehuels/circuitsvg/pkg/render/pcb"
//	)
//
//	els, _ := circuit.Decode(data)
//	svg, _ := pcb.Render(els, pcb.Options{Width: 800, Height: 600})
//
// Use [pipeline.Runner] for multi-format output with caching.
package pkg
