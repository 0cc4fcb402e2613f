// Package circuit defines the element collection a conversion reads.
//
// A design is a flat, ordered list of tagged records. Each record carries a
// "type" discriminator ("pcb_board", "pcb_smtpad", "schematic_port", ...)
// which [Decode] uses to pick a concrete Go type. Every concrete type
// implements [Element]; consumers dispatch with a type switch.
//
// # Permissive decoding
//
// Coordinates and dimensions are [Length] values. A Length accepts a JSON
// number (millimetres) or a string with an optional unit suffix ("1.6mm",
// "0.1in", "20mil"). Values that cannot be parsed do not fail the decode:
// the Length is simply marked invalid and the consumer decides whether the
// element can still be used. Records whose structure cannot be decoded at
// all become [Malformed]; records with an unrecognised type become
// [Unknown]. Only input that is not a JSON array is an error.
//
// The collection is owned by the caller and never mutated by this module.
package circuit
