package netlist

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

func port(id, source string, x, y float64) *circuit.PCBPort {
	return &circuit.PCBPort{PCBPortID: id, SourcePortID: source, X: circuit.MM(x), Y: circuit.MM(y)}
}

func fixture() circuit.Elements {
	return circuit.Elements{
		&circuit.SourcePort{SourcePortID: "sp1"},
		&circuit.SourcePort{SourcePortID: "sp2"},
		&circuit.SourcePort{SourcePortID: "sp3"},
		&circuit.SourcePort{SourcePortID: "sp4"},
		&circuit.SourceNet{SourceNetID: "gnd"},
		&circuit.SourceTrace{SourceTraceID: "st1", ConnectedSourcePortIDs: []string{"sp1", "sp2"}, ConnectedSourceNetIDs: []string{"gnd"}},
		&circuit.SourceTrace{SourceTraceID: "st2", ConnectedSourcePortIDs: []string{"sp2", "sp3"}},
		port("pp1", "sp1", 0, 0),
		port("pp2", "sp2", 3, 4),
		port("pp3", "sp3", 10, 0),
		port("pp4", "sp4", 1, 1),
		&circuit.PCBSMTPad{PCBSMTPadID: "pad1", PCBPortID: "pp1", X: circuit.MM(0), Y: circuit.MM(0)},
	}
}

func TestBuild(t *testing.T) {
	conn := Build(fixture())

	net, ok := conn.NetOf("pp1")
	if !ok {
		t.Fatal("pp1 has no net")
	}
	for _, id := range []string{"sp1", "sp2", "sp3", "gnd", "pp2", "pp3", "pad1"} {
		if got, _ := conn.NetOf(id); got != net {
			t.Errorf("NetOf(%s) = %s, want %s", id, got, net)
		}
	}
	if other, _ := conn.NetOf("pp4"); other == net {
		t.Error("pp4 should be on its own net")
	}
	if !strings.HasPrefix(net, NetPrefix) {
		t.Errorf("net id %q lacks prefix", net)
	}
	if len(conn.NetIDs()) != len(conn.Nets) {
		t.Error("NetIDs length mismatch")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, b := Build(fixture()), Build(fixture())
	for id, net := range a.IDToNet {
		if b.IDToNet[id] != net {
			t.Errorf("id %s: %s vs %s", id, net, b.IDToNet[id])
		}
	}
	if got, _ := a.NetOf("sp1"); got != NetPrefix+"0" {
		t.Errorf("first net = %s, want %s0", got, NetPrefix)
	}
}

func TestBuildTraceRouteJoinsPorts(t *testing.T) {
	els := circuit.Elements{
		port("a", "", 0, 0),
		port("b", "", 5, 0),
		&circuit.PCBTrace{PCBTraceID: "t", Route: []circuit.RoutePoint{
			{StartPCBPortID: "a"}, {EndPCBPortID: "b"},
		}},
		&circuit.PCBVia{PCBViaID: "v", PCBTraceID: "t"},
	}
	conn := Build(els)
	na, _ := conn.NetOf("a")
	nb, _ := conn.NetOf("b")
	nv, _ := conn.NetOf("v")
	if na != nb || na != nv {
		t.Errorf("nets a=%s b=%s v=%s, want equal", na, nb, nv)
	}
}

func TestRatsNest(t *testing.T) {
	lines := RatsNest(fixture(), Options{})

	byPort := map[string]Line{}
	for _, l := range lines {
		byPort[l.PCBPortID] = l
	}

	// pp4 is alone on its net.
	if _, ok := byPort["pp4"]; ok {
		t.Error("pp4 should have no rats nest line")
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %+v", len(lines), lines)
	}

	// pad1 sits on pp1 and is excluded by distance, not id.
	if got := byPort["pp1"].End; got != geom.Pt(3, 4) {
		t.Errorf("pp1 nearest = %v, want (3, 4)", got)
	}
	if got := byPort["pp2"].End; got != geom.Pt(0, 0) {
		t.Errorf("pp2 nearest = %v, want (0, 0)", got)
	}
	if got := byPort["pp3"].End; got != geom.Pt(3, 4) {
		t.Errorf("pp3 nearest = %v, want (3, 4)", got)
	}

	if !byPort["pp1"].IsInNet || !byPort["pp2"].IsInNet {
		t.Error("ports on a trace with a net should be in net")
	}
	if byPort["pp3"].IsInNet {
		t.Error("pp3's only trace has no net, so it is not in net")
	}
}

func TestRatsNestSymmetry(t *testing.T) {
	lines := RatsNest(fixture(), Options{})
	var d1, d2 float64
	for _, l := range lines {
		switch l.PCBPortID {
		case "pp1":
			d1 = geom.Distance(l.Start, l.End)
		case "pp2":
			d2 = geom.Distance(l.Start, l.End)
		}
	}
	if math.Abs(d1-d2) > 1e-12 || d1 != 5 {
		t.Errorf("mutual nearest distances %v and %v, want both 5", d1, d2)
	}
}

func TestRatsNestFailsSoft(t *testing.T) {
	for name, fn := range map[string]func(circuit.Elements) (Connectivity, error){
		"error": func(circuit.Elements) (Connectivity, error) { return Connectivity{}, errors.New("boom") },
		"panic": func(circuit.Elements) (Connectivity, error) { panic("boom") },
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewWithOptions(&buf, log.Options{})
			lines := RatsNest(fixture(), Options{Connectivity: fn, Logger: logger})
			if lines != nil {
				t.Errorf("lines = %v, want nil", lines)
			}
			if !strings.Contains(buf.String(), "rats nest skipped") {
				t.Errorf("log = %q, want warning", buf.String())
			}
		})
	}
}

func ExampleBuild() {
	conn := Build(circuit.Elements{
		&circuit.SourceTrace{SourceTraceID: "t", ConnectedSourcePortIDs: []string{"a", "b"}},
		&circuit.SourcePort{SourcePortID: "c"},
	})
	for _, net := range conn.NetIDs() {
		fmt.Println(net, conn.Nets[net])
	}
	// Output:
	// connectivity_net0 [a b t]
	// connectivity_net1 [c]
}
