package geom

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Fatal("EmptyBounds() should be empty")
	}
	if !math.IsInf(b.MinX, 1) || !math.IsInf(b.MaxY, -1) {
		t.Errorf("unexpected sentinels: %+v", b)
	}

	b.ExpandPoint(Pt(2, 3))
	if b.IsEmpty() {
		t.Fatal("bounds should not be empty after expansion")
	}
	if b != (Bounds{2, 3, 2, 3}) {
		t.Errorf("single point bounds = %v", b)
	}
}

func TestUnionIgnoresEmpty(t *testing.T) {
	b := Bounds{0, 0, 1, 1}
	b.Union(EmptyBounds())
	if b != (Bounds{0, 0, 1, 1}) {
		t.Errorf("union with empty changed bounds: %v", b)
	}
}

func TestRectBounds(t *testing.T) {
	got := RectBounds(Pt(0, 0), 10, 10)
	if got != (Bounds{-5, -5, 5, 5}) {
		t.Errorf("RectBounds() = %v", got)
	}
	if !got.Contains(Bounds{-1, -1, 5, 5}) {
		t.Error("Contains should be edge inclusive")
	}
}

func TestDistanceAndRotate(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
	p := Pt(1, 0).Rotate(Pt(0, 0), math.Pi/2)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-1) > 1e-12 {
		t.Errorf("Rotate() = %v, want (0, 1)", p)
	}
}

func TestBoundsJSON(t *testing.T) {
	data, err := json.Marshal(EmptyBounds())
	if err != nil {
		t.Fatalf("Marshal(empty) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(empty) = %s, want null", data)
	}

	var b Bounds
	if err := json.Unmarshal([]byte("null"), &b); err != nil || !b.IsEmpty() {
		t.Errorf("Unmarshal(null) = %v, %v; want empty", b, err)
	}

	in := Bounds{MinX: -1, MinY: 2, MaxX: 3, MaxY: 4}
	data, _ = json.Marshal(in)
	if string(data) != `{"minX":-1,"minY":2,"maxX":3,"maxY":4}` {
		t.Errorf("Marshal = %s", data)
	}
	if err := json.Unmarshal(data, &b); err != nil || b != in {
		t.Errorf("Unmarshal = %v, %v; want %v", b, err, in)
	}
}
