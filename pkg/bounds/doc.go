// Package bounds computes the spatial extent of an element collection.
//
// [Aggregate] makes one pass over a PCB collection and returns the overall
// bounds plus a narrower board-only bounds covering pcb_board and pcb_panel
// elements. [AggregateSchematic] does the same for schematic elements.
// [TextureBounds] is the strict variant used when a board-relative texture
// needs a frame: panels win over boards, and a collection with neither is
// an error.
//
// # Skips
//
// An element whose coordinates cannot be parsed does not contribute to the
// bounds and does not fail the call. It is recorded in [Result.Skipped]
// with a reason, and callers may log it.
package bounds
