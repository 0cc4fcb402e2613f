package netlist

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// Line is one rats-nest guide, in design space.
type Line struct {
	Start     geom.Point `json:"start"`
	End       geom.Point `json:"end"`
	IsInNet   bool       `json:"isInNet"`
	PCBPortID string     `json:"pcbPortId"`
	NetID     string     `json:"netId"`
}

// Options configures RatsNest.
type Options struct {
	// Connectivity overrides how nets are computed. Defaults to Build.
	Connectivity func(circuit.Elements) (Connectivity, error)
	Logger       *log.Logger
}

func (o *Options) setDefaults() {
	if o.Connectivity == nil {
		o.Connectivity = func(els circuit.Elements) (Connectivity, error) { return Build(els), nil }
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// RatsNest returns one line per PCB port that has a same-net neighbour.
// A port's neighbour is the positioned net member at the smallest strictly
// positive distance; the first such minimum found wins. Members are
// scanned in sorted id order.
func RatsNest(els circuit.Elements, opts Options) []Line {
	opts.setDefaults()

	conn, err := safeConnectivity(els, opts.Connectivity)
	if err != nil {
		opts.Logger.Warn("rats nest skipped", "error", err)
		return nil
	}

	positions := Positions(els)
	traced := tracedSourcePorts(els)

	var lines []Line
	for _, port := range circuit.Filter[*circuit.PCBPort](els) {
		p, ok := circuit.XY{X: port.X, Y: port.Y}.Point()
		if !ok {
			continue
		}
		net, ok := conn.NetOf(port.PCBPortID)
		if !ok {
			continue
		}
		end, found := nearest(p, conn.Nets[net], positions)
		if !found {
			continue
		}
		lines = append(lines, Line{
			Start:     p,
			End:       end,
			IsInNet:   traced[port.SourcePortID],
			PCBPortID: port.PCBPortID,
			NetID:     net,
		})
	}
	opts.Logger.Debug("rats nest", "nets", len(conn.Nets), "lines", len(lines))
	return lines
}

func safeConnectivity(els circuit.Elements, fn func(circuit.Elements) (Connectivity, error)) (conn Connectivity, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connectivity: %v", r)
		}
	}()
	return fn(els)
}

// nearest finds the member of net closest to p at a strictly positive
// distance.
func nearest(p geom.Point, members []string, positions map[string]geom.Point) (geom.Point, bool) {
	best, bestDist, found := geom.Point{}, math.Inf(1), false
	for _, id := range members {
		q, ok := positions[id]
		if !ok {
			continue
		}
		d := geom.Distance(p, q)
		if d > 0 && d < bestDist {
			best, bestDist, found = q, d, true
		}
	}
	return best, found
}

// Positions returns the design-space location of every positioned net
// member: PCB ports, SMT pads, plated holes and vias.
func Positions(els circuit.Elements) map[string]geom.Point {
	out := make(map[string]geom.Point)
	put := func(id string, x, y circuit.Length) {
		if id == "" {
			return
		}
		if p, ok := (circuit.XY{X: x, Y: y}).Point(); ok {
			out[id] = p
		}
	}
	for _, el := range els {
		switch e := el.(type) {
		case *circuit.PCBPort:
			put(e.PCBPortID, e.X, e.Y)
		case *circuit.PCBSMTPad:
			put(e.PCBSMTPadID, e.X, e.Y)
		case *circuit.PCBPlatedHole:
			put(e.PCBPlatedHoleID, e.X, e.Y)
		case *circuit.PCBVia:
			put(e.PCBViaID, e.X, e.Y)
		}
	}
	return out
}

// tracedSourcePorts returns the source ports referenced by a source trace
// that connects at least one net, which marks an explicit drawn
// connection.
func tracedSourcePorts(els circuit.Elements) map[string]bool {
	out := make(map[string]bool)
	for _, st := range circuit.Filter[*circuit.SourceTrace](els) {
		if len(st.ConnectedSourceNetIDs) == 0 {
			continue
		}
		for _, id := range st.ConnectedSourcePortIDs {
			out[id] = true
		}
	}
	return out
}
