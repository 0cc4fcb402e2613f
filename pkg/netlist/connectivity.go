package netlist

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
)

// NetPrefix prefixes every synthesised net id.
const NetPrefix = "connectivity_net"

// Connectivity is a net map and its inverse.
type Connectivity struct {
	// Nets maps a net id to its member ids, sorted.
	Nets map[string][]string `json:"nets"`
	// IDToNet maps a member id to its net id.
	IDToNet map[string]string `json:"id_to_net"`
}

// NetOf returns the net of id, if any.
func (c Connectivity) NetOf(id string) (string, bool) {
	n, ok := c.IDToNet[id]
	return n, ok
}

// NetIDs returns the net ids in numeric order.
func (c Connectivity) NetIDs() []string {
	ids := make([]string, 0, len(c.Nets))
	for id := range c.Nets {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(a), len(b)), cmp.Compare(a, b))
	})
	return ids
}

// unionFind is a disjoint-set over string ids that remembers insertion
// order.
type unionFind struct {
	parent map[string]string
	order  []string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) add(id string) {
	if id == "" {
		return
	}
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
		u.order = append(u.order, id)
	}
}

func (u *unionFind) find(id string) string {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		next := u.parent[id]
		u.parent[id] = root
		id = next
	}
	return root
}

func (u *unionFind) union(ids ...string) {
	var first string
	for _, id := range ids {
		if id == "" {
			continue
		}
		u.add(id)
		if first == "" {
			first = id
			continue
		}
		a, b := u.find(first), u.find(id)
		if a != b {
			u.parent[b] = a
		}
	}
}

// Build computes connectivity for els. Every trace id joins the net it
// connects. Ids that are linked to nothing form
// single-member nets.
func Build(els circuit.Elements) Connectivity {
	u := newUnionFind()
	for _, el := range els {
		switch e := el.(type) {
		case *circuit.SourcePort:
			u.add(e.SourcePortID)
		case *circuit.SourceNet:
			u.add(e.SourceNetID)
		case *circuit.SourceTrace:
			ids := append([]string{e.SourceTraceID}, e.ConnectedSourcePortIDs...)
			u.union(append(ids, e.ConnectedSourceNetIDs...)...)
		case *circuit.PCBPort:
			u.union(e.PCBPortID, e.SourcePortID)
		case *circuit.PCBSMTPad:
			u.union(e.PCBSMTPadID, e.PCBPortID)
		case *circuit.PCBPlatedHole:
			u.union(e.PCBPlatedHoleID, e.PCBPortID)
		case *circuit.PCBTrace:
			u.union(append([]string{e.PCBTraceID, e.SourceTraceID}, e.PortIDs()...)...)
		case *circuit.PCBVia:
			u.union(e.PCBViaID, e.PCBTraceID)
		case *circuit.PCBCopperPour:
			u.union(e.PCBCopperPourID, e.SourceNetID)
		}
	}

	conn := Connectivity{
		Nets:    make(map[string][]string),
		IDToNet: make(map[string]string, len(u.order)),
	}
	netOfRoot := make(map[string]string)
	for _, id := range u.order {
		root := u.find(id)
		net, ok := netOfRoot[root]
		if !ok {
			net = fmt.Sprintf("%s%d", NetPrefix, len(netOfRoot))
			netOfRoot[root] = net
		}
		conn.IDToNet[id] = net
		conn.Nets[net] = append(conn.Nets[net], id)
	}
	for _, members := range conn.Nets {
		slices.Sort(members)
	}
	return conn
}
