package symbols

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// MaxAngularDistance is the largest angle, in radians, at which a port is
// still bound to a pin.
const MaxAngularDistance = math.Pi / 4

// Port is an abstract port position to be bound to a symbol pin.
type Port struct {
	ID  string
	Pos geom.Point
}

// Match binds one port to one pin.
type Match struct {
	Port     Port
	Pin      Pin
	Distance float64 // angular distance in radians
}

// NormalizeAngle maps a to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// AngularDistance returns the wrap-around distance between two angles, in
// [0, π].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Angle returns the direction of p as seen from c.
func Angle(c, p geom.Point) float64 {
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

type angled[T any] struct {
	item  T
	angle float64
}

func byAngle[T any](items []T, center geom.Point, pos func(T) geom.Point) []angled[T] {
	out := make([]angled[T], len(items))
	for i, it := range items {
		out[i] = angled[T]{item: it, angle: NormalizeAngle(Angle(center, pos(it)))}
	}
	slices.SortStableFunc(out, func(a, b angled[T]) int { return cmp.Compare(a.angle, b.angle) })
	return out
}

// MatchPorts binds ports, measured from center, to the pins of sym,
// measured from the symbol's own centre. The result is in ascending port
// angle order and never holds more matches than sym has pins.
func MatchPorts(ports []Port, sym Symbol, center geom.Point) []Match {
	abstract := byAngle(ports, center, func(p Port) geom.Point { return p.Pos })
	pins := byAngle(sym.Pins, sym.Center(), func(p Pin) geom.Point { return p.Pos })
	claimed := make([]bool, len(pins))

	var matches []Match
	for _, ap := range abstract {
		best, bestDist := -1, math.Inf(1)
		for i, pin := range pins {
			if claimed[i] {
				continue
			}
			if d := AngularDistance(ap.angle, pin.angle); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 || bestDist > MaxAngularDistance {
			continue
		}
		claimed[best] = true
		matches = append(matches, Match{Port: ap.item, Pin: pins[best].item, Distance: bestDist})
	}
	return matches
}
