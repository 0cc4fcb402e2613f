// Package schematic renders the schematic view of a circuit element
// collection.
//
// Components whose symbol_name names a built-in symbol (see package
// symbols) are drawn from that symbol, scaled into the component's box.
// Their schematic ports are bound to symbol pins with
// [symbols.MatchPorts]; a bound port is drawn as a short lead from the
// port to its pin. Ports left unbound, and the ports of components without
// a symbol, are drawn as plain markers. Components without a symbol are
// drawn as a labelled box.
//
// Traces, text, net labels, annotation boxes and lines are drawn as given.
// Points where three or more trace ends meet get a junction dot.
package schematic
