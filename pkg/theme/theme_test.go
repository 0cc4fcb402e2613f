package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"#ABC", "#aabbcc"},
		{"rgb(0, 128, 255)", "#0080ff"},
		{"rgba(255, 0, 0, 0.5)", "rgba(255, 0, 0, 0.5)"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := Normalize("not-a-colour"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("Normalize(bad) error = %v, want INVALID_COLOR", err)
	}
}

func TestDarkenLighten(t *testing.T) {
	dark, err := Darken("#808080", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	light, err := Lighten("#808080", 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !(dark < "#808080" && light > "#808080") {
		t.Errorf("Darken = %s, Lighten = %s", dark, light)
	}
	if got, _ := Lighten("#ffffff", 0.5); got != "#ffffff" {
		t.Errorf("Lighten(white) = %s, want clamped #ffffff", got)
	}
}

func TestTranslucent(t *testing.T) {
	got, err := Translucent("#ff0000", 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if got != "rgba(255, 0, 0, 0.25)" {
		t.Errorf("Translucent = %s", got)
	}
}

func TestDefaultColoursParse(t *testing.T) {
	d := Default()
	for _, section := range []string{"pcb", "schematic"} {
		fields := d.PCB.fields()
		if section == "schematic" {
			fields = d.Schematic.fields()
		}
		for key, ptr := range fields {
			if _, err := Normalize(*ptr); err != nil {
				t.Errorf("default %s.%s = %q does not parse: %v", section, key, *ptr, err)
			}
		}
	}
}

func TestApply(t *testing.T) {
	base := Default()
	got, err := base.Apply(Overrides{
		"pcb":       {"top_copper": "gold"},
		"schematic": {"wire": "rgb(0,0,255)"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.PCB.TopCopper != "#ffd700" {
		t.Errorf("TopCopper = %s", got.PCB.TopCopper)
	}
	if got.Schematic.Wire != "#0000ff" {
		t.Errorf("Wire = %s", got.Schematic.Wire)
	}
	if base.PCB.TopCopper == got.PCB.TopCopper {
		t.Error("Apply modified its receiver")
	}

	for _, bad := range []Overrides{
		{"pcb": {"nope": "red"}},
		{"board": {"top_copper": "red"}},
		{"pcb": {"top_copper": "nah"}},
	} {
		if _, err := base.Apply(bad); !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("Apply(%v) error = %v, want INVALID_COLOR", bad, err)
		}
	}
}

func TestCopper(t *testing.T) {
	p := Default().PCB
	if p.Copper("bottom") != p.BottomCopper || p.Copper("inner2") != p.InnerCopper || p.Copper("top") != p.TopCopper {
		t.Error("Copper picked the wrong colour")
	}
	if p.RatsNestInNet() == p.RatsNest {
		t.Error("RatsNestInNet should differ from RatsNest")
	}
}

func ExampleKeys() {
	fmt.Println(strings.Join(Keys("schematic")[:3], " "))
	// Output: background box component_body
}
