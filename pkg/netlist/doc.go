// Package netlist derives electrical connectivity from an element
// collection and synthesises rats-nest guide lines from it.
//
// [Build] groups ids into nets with a union-find over the links the
// collection declares: source traces join their ports and nets, PCB ports
// join their source port, pads and plated holes join their PCB port, PCB
// traces join the ports their route touches, and vias join their trace.
// Net ids are assigned in order of first appearance, so the same input
// always yields the same ids.
//
// [RatsNest] draws, for every PCB port on a net, a line to the nearest other
// positioned member of that net. It never fails: if connectivity cannot be
// computed the error is logged and no lines are returned.
package netlist
