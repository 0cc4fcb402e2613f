// Package symbols provides the built-in schematic symbol library and binds
// a component's ports to a symbol's pins.
//
// Symbols are drawn in their own unit coordinate frame (Y up) and come in
// four orientations named by the direction the symbol faces: "resistor_right",
// "resistor_up", "resistor_left", "resistor_down". "_horz" and "_vert" are
// aliases for "_right" and "_down".
//
// # Port matching
//
// [MatchPorts] pairs abstract ports (where the input places a component's
// ports) with symbol pins by angle. Each side's angles are measured from
// its own centre, because the component and the symbol have independent
// frames. Abstract ports are taken in ascending angle order and each claims
// the unclaimed pin with the smallest wrap-around angular distance; a best
// candidate further than [MaxAngularDistance] is rejected and the port is
// left unmatched. This is a greedy assignment, not an optimal one.
package symbols
