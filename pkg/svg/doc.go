// Package svg is the vector document tree every renderer produces.
//
// A [Node] is a named element with a string-keyed attribute map, children
// and optional text. Renderers build a tree, reorder children with
// paint.Order, and serialise with [Node.WriteTo] or [Marshal]. Attributes
// are written in sorted order so the same tree always serialises to the
// same bytes, which keeps artifact cache keys and golden tests stable.
//
// Numbers go through [Num], which rounds to four decimal places.
package svg
