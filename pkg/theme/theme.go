// Package theme holds the colours renderers draw with.
//
// A [Theme] is passed explicitly into every conversion; there is no
// process-wide colour table. [Default] returns the built-in palette and
// [Theme.Apply] layers user overrides (from the CLI config file or API
// options) on top of it. All colours are CSS colour strings and are
// normalised on the way in.
//
// A few colours are derived rather than configured: major grid lines are
// a lighter shade of the minor grid colour, and rats-nest lines that
// already have a drawn trace are a darker shade of the rats-nest colour.
package theme

import (
	"slices"
	"strings"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// PCB colours. Field names double as override keys via their toml tags.
type PCB struct {
	Background       string `toml:"background" json:"background"`
	Board            string `toml:"board" json:"board"`
	BoardOutline     string `toml:"board_outline" json:"board_outline"`
	TopCopper        string `toml:"top_copper" json:"top_copper"`
	BottomCopper     string `toml:"bottom_copper" json:"bottom_copper"`
	InnerCopper      string `toml:"inner_copper" json:"inner_copper"`
	Drill            string `toml:"drill" json:"drill"`
	Soldermask       string `toml:"soldermask" json:"soldermask"`
	SolderPaste      string `toml:"solder_paste" json:"solder_paste"`
	TopSilkscreen    string `toml:"top_silkscreen" json:"top_silkscreen"`
	BottomSilkscreen string `toml:"bottom_silkscreen" json:"bottom_silkscreen"`
	Courtyard        string `toml:"courtyard" json:"courtyard"`
	FabricationNote  string `toml:"fabrication_note" json:"fabrication_note"`
	Keepout          string `toml:"keepout" json:"keepout"`
	TraceError       string `toml:"trace_error" json:"trace_error"`
	RatsNest         string `toml:"rats_nest" json:"rats_nest"`
	Port             string `toml:"port" json:"port"`
	Grid             string `toml:"grid" json:"grid"`
}

// Schematic colours.
type Schematic struct {
	Background       string `toml:"background" json:"background"`
	ComponentBody    string `toml:"component_body" json:"component_body"`
	ComponentOutline string `toml:"component_outline" json:"component_outline"`
	Wire             string `toml:"wire" json:"wire"`
	Junction         string `toml:"junction" json:"junction"`
	Port             string `toml:"port" json:"port"`
	PinNumber        string `toml:"pin_number" json:"pin_number"`
	Label            string `toml:"label" json:"label"`
	NetLabel         string `toml:"net_label" json:"net_label"`
	Box              string `toml:"box" json:"box"`
	Grid             string `toml:"grid" json:"grid"`
}

// Theme is the complete palette for one conversion.
type Theme struct {
	PCB       PCB       `toml:"pcb" json:"pcb"`
	Schematic Schematic `toml:"schematic" json:"schematic"`
}

// Default returns the built-in palette.
func Default() Theme {
	return Theme{
		PCB: PCB{
			Background:       "#000000",
			Board:            "#0b3d1d",
			BoardOutline:     "rgba(255, 255, 255, 0.5)",
			TopCopper:        "#c83434",
			BottomCopper:     "#4d7fc4",
			InnerCopper:      "#f2eda1",
			Drill:            "#ff26e2",
			Soldermask:       "rgba(0, 136, 0, 0.35)",
			SolderPaste:      "rgba(192, 192, 192, 0.6)",
			TopSilkscreen:    "#f2eda1",
			BottomSilkscreen: "#5da9e9",
			Courtyard:        "#ff00ff",
			FabricationNote:  "rgba(255, 255, 255, 0.5)",
			Keepout:          "#ff6b6b",
			TraceError:       "#ff0000",
			RatsNest:         "#f2eda1",
			Port:             "rgba(255, 255, 255, 0.5)",
			Grid:             "#1e1e1e",
		},
		Schematic: Schematic{
			Background:       "#f5f1ed",
			ComponentBody:    "#f5f1ed",
			ComponentOutline: "#820000",
			Wire:             "#008200",
			Junction:         "#008200",
			Port:             "#840000",
			PinNumber:        "#a90000",
			Label:            "#006464",
			NetLabel:         "#840000",
			Box:              "#840000",
			Grid:             "#e0dcd8",
		},
	}
}

// Copper returns the copper colour for a layer token.
func (p PCB) Copper(layer string) string {
	switch {
	case layer == "bottom":
		return p.BottomCopper
	case strings.HasPrefix(layer, "inner"):
		return p.InnerCopper
	default:
		return p.TopCopper
	}
}

// Silkscreen returns the silkscreen colour for a layer token.
func (p PCB) Silkscreen(layer string) string {
	if layer == "bottom" {
		return p.BottomSilkscreen
	}
	return p.TopSilkscreen
}

// RatsNestInNet is the de-emphasised colour for rats-nest lines whose ports
// are already joined by a drawn trace.
func (p PCB) RatsNestInNet() string {
	return derive(p.RatsNest, func(c string) (string, error) { return Darken(c, 0.35) })
}

// GridMajor is the colour of major grid lines.
func (p PCB) GridMajor() string {
	return derive(p.Grid, func(c string) (string, error) { return Lighten(c, 0.12) })
}

// GridMajor is the colour of major grid lines.
func (s Schematic) GridMajor() string {
	return derive(s.Grid, func(c string) (string, error) { return Darken(c, 0.12) })
}

func (p *PCB) fields() map[string]*string {
	return map[string]*string{
		"background":        &p.Background,
		"board":             &p.Board,
		"board_outline":     &p.BoardOutline,
		"top_copper":        &p.TopCopper,
		"bottom_copper":     &p.BottomCopper,
		"inner_copper":      &p.InnerCopper,
		"drill":             &p.Drill,
		"soldermask":        &p.Soldermask,
		"solder_paste":      &p.SolderPaste,
		"top_silkscreen":    &p.TopSilkscreen,
		"bottom_silkscreen": &p.BottomSilkscreen,
		"courtyard":         &p.Courtyard,
		"fabrication_note":  &p.FabricationNote,
		"keepout":           &p.Keepout,
		"trace_error":       &p.TraceError,
		"rats_nest":         &p.RatsNest,
		"port":              &p.Port,
		"grid":              &p.Grid,
	}
}

func (s *Schematic) fields() map[string]*string {
	return map[string]*string{
		"background":        &s.Background,
		"component_body":    &s.ComponentBody,
		"component_outline": &s.ComponentOutline,
		"wire":              &s.Wire,
		"junction":          &s.Junction,
		"port":              &s.Port,
		"pin_number":        &s.PinNumber,
		"label":             &s.Label,
		"net_label":         &s.NetLabel,
		"box":               &s.Box,
		"grid":              &s.Grid,
	}
}

// Overrides are user-supplied colours keyed by section ("pcb" or
// "schematic") and then by field key.
type Overrides map[string]map[string]string

// Apply returns a copy of t with overrides applied. Every override is
// validated; unknown sections or keys and unparseable colours fail with
// INVALID_COLOR naming the offending key.
func (t Theme) Apply(o Overrides) (Theme, error) {
	out := t
	sections := map[string]map[string]*string{
		"pcb":       out.PCB.fields(),
		"schematic": out.Schematic.fields(),
	}
	for _, section := range sortedKeys(o) {
		fields, ok := sections[section]
		if !ok {
			return t, errors.New(errors.ErrCodeInvalidColor, "unknown theme section %q", section)
		}
		for _, key := range sortedKeys(o[section]) {
			dst, ok := fields[key]
			if !ok {
				return t, errors.New(errors.ErrCodeInvalidColor, "unknown theme key %s.%s", section, key)
			}
			c, err := Normalize(o[section][key])
			if err != nil {
				return t, errors.Wrap(errors.ErrCodeInvalidColor, err, "theme key %s.%s", section, key)
			}
			*dst = c
		}
	}
	return out, nil
}

// Keys lists the override keys of a section in sorted order.
func Keys(section string) []string {
	var t Theme
	switch section {
	case "pcb":
		return sortedKeys(t.PCB.fields())
	case "schematic":
		return sortedKeys(t.Schematic.fields())
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
