package symbols

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/geom"
)

const eps = 1e-9

func deg(d float64) float64 { return d * math.Pi / 180 }

func at(c geom.Point, degrees, r float64) geom.Point {
	return geom.Pt(c.X+r*math.Cos(deg(degrees)), c.Y+r*math.Sin(deg(degrees)))
}

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{359, 2, 3},
		{2, 359, 3},
		{0, 180, 180},
		{-90, 270, 0},
		{10, 370, 0},
		{45, 90, 45},
	}
	for _, tt := range tests {
		got := AngularDistance(deg(tt.a), deg(tt.b))
		if math.Abs(got-deg(tt.want)) > eps {
			t.Errorf("AngularDistance(%v°, %v°) = %v°, want %v°", tt.a, tt.b, got*180/math.Pi, tt.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{-10, -math.Pi, 0, math.Pi, 2 * math.Pi, 7} {
		n := NormalizeAngle(a)
		if n < 0 || n >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v out of range", a, n)
		}
	}
}

func TestMatchWrapsAround(t *testing.T) {
	sym := Symbol{Pins: []Pin{
		{Label: "A", Pos: at(geom.Point{}, 2, 1)},
		{Label: "B", Pos: at(geom.Point{}, 182, 1)},
	}}
	// The symbol's centre is the middle of its pins, which is the origin.
	center := geom.Pt(50, 50)
	got := MatchPorts([]Port{{ID: "p", Pos: at(center, 359, 3)}}, sym, center)
	if len(got) != 1 || got[0].Pin.Label != "A" {
		t.Fatalf("MatchPorts = %+v, want p -> A", got)
	}
	if math.Abs(got[0].Distance-deg(3)) > eps {
		t.Errorf("Distance = %v°, want 3°", got[0].Distance*180/math.Pi)
	}
}

func TestMatchIdenticalAngles(t *testing.T) {
	angles := []float64{0, 60, 120, 180, 240, 300}
	var sym Symbol
	var ports []Port
	center := geom.Pt(-4, 7)
	for i, a := range angles {
		sym.Pins = append(sym.Pins, Pin{Label: fmt.Sprint(i), Pos: at(geom.Point{}, a, 1)})
		ports = append(ports, Port{ID: fmt.Sprint(i), Pos: at(center, a, 2.5)})
	}

	got := MatchPorts(ports, sym, center)
	if len(got) != len(angles) {
		t.Fatalf("got %d matches, want %d", len(got), len(angles))
	}
	for _, m := range got {
		if m.Port.ID != m.Pin.Label {
			t.Errorf("port %s matched pin %s", m.Port.ID, m.Pin.Label)
		}
		if m.Distance > eps {
			t.Errorf("port %s distance %v, want 0", m.Port.ID, m.Distance)
		}
	}
}

func TestMatchRejectsPoorAlignment(t *testing.T) {
	sym, _ := Lookup("boxresistor_right")
	center := geom.Pt(0, 0)
	got := MatchPorts([]Port{{ID: "top", Pos: geom.Pt(0, 1)}}, sym, center)
	if len(got) != 0 {
		t.Errorf("MatchPorts = %+v, want no match at 90°", got)
	}
}

func TestMatchNeverExceedsPins(t *testing.T) {
	sym, _ := Lookup("boxresistor_right")
	center := geom.Pt(0, 0)
	ports := []Port{
		{ID: "l", Pos: geom.Pt(-1, 0)},
		{ID: "r", Pos: geom.Pt(1, 0)},
		{ID: "r2", Pos: geom.Pt(1, 0.1)},
	}
	got := MatchPorts(ports, sym, center)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	seen := map[string]bool{}
	for _, m := range got {
		if seen[m.Pin.Label] {
			t.Errorf("pin %s matched twice", m.Pin.Label)
		}
		seen[m.Pin.Label] = true
	}
}

func TestMatchGreedyLowestAngleWins(t *testing.T) {
	sym, _ := Lookup("ground_down")
	center := geom.Pt(0, 0)
	ports := []Port{
		{ID: "100", Pos: at(center, 100, 1)},
		{ID: "80", Pos: at(center, 80, 1)},
	}
	got := MatchPorts(ports, sym, center)
	if len(got) != 1 || got[0].Port.ID != "80" {
		t.Errorf("MatchPorts = %+v, want the 80° port to win", got)
	}
}

func TestLookup(t *testing.T) {
	horz, ok := Lookup("boxresistor_horz")
	if !ok {
		t.Fatal("boxresistor_horz not found")
	}
	if horz.Name != "boxresistor_right" {
		t.Errorf("alias resolved to %s", horz.Name)
	}
	if _, ok := Lookup("flux_capacitor_right"); ok {
		t.Error("unknown symbol found")
	}

	down, _ := Lookup("resistor_vert")
	if p := down.Pins[0].Pos; math.Abs(p.X) > eps || math.Abs(p.Y-0.55) > eps {
		t.Errorf("resistor_down pin 1 = %v, want (0, 0.55)", p)
	}
	if got := len(Names()); got != 4*len(baseSymbols) {
		t.Errorf("Names() = %d symbols", got)
	}
}

func TestPlacement(t *testing.T) {
	sym, _ := Lookup("boxresistor_right")
	tr := sym.Placement(geom.Pt(5, 5), 2.2, 10)
	got := tr.Apply(sym.Pins[1].Pos)
	if math.Abs(got.X-6.1) > eps || math.Abs(got.Y-5) > eps {
		t.Errorf("placed pin 2 = %v, want (6.1, 5)", got)
	}
}
