package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// Normalize parses any CSS colour and returns it as #rrggbb, or as
// rgba(r, g, b, a) when it is translucent.
func Normalize(color string) (string, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", color)
	}
	return format(c), nil
}

func format(c csscolorparser.Color) string {
	if c.A >= 1 {
		return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to255(c.R), to255(c.G), to255(c.B), trimFloat(c.A))
}

// Darken lowers the HSL lightness of color by amount (0..1).
func Darken(color string, amount float64) (string, error) {
	return shift(color, -amount)
}

// Lighten raises the HSL lightness of color by amount (0..1).
func Lighten(color string, amount float64) (string, error) {
	return shift(color, amount)
}

// Translucent returns color with its alpha replaced by alpha.
func Translucent(color string, alpha float64) (string, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", color)
	}
	c.A = math.Max(0, math.Min(1, alpha))
	return format(c), nil
}

func shift(color string, dl float64) (string, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", color)
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l+dl).Clamped().Hex(), nil
}

func to255(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*1000)/1000)
}

// derive applies fn and falls back to color when color cannot be parsed.
func derive(color string, fn func(string) (string, error)) string {
	if out, err := fn(color); err == nil {
		return out
	}
	return color
}
