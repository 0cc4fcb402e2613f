package circuit

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// unitScale converts a unit suffix to millimetres.
var unitScale = map[string]float64{
	"":    1,
	"mm":  1,
	"cm":  10,
	"in":  25.4,
	"mil": 0.0254,
}

// Length is a distance in millimetres. The zero Length is invalid (absent).
type Length struct {
	mm    float64
	valid bool
}

// MM returns a valid Length of v millimetres.
func MM(v float64) Length { return Length{mm: v, valid: true} }

// Value returns the distance in millimetres and whether it was parseable.
func (l Length) Value() (float64, bool) { return l.mm, l.valid }

// Valid reports whether the length was present and parseable.
func (l Length) Valid() bool { return l.valid }

// Or returns the distance, or def if l is invalid.
func (l Length) Or(def float64) float64 {
	if !l.valid {
		return def
	}
	return l.mm
}

// UnmarshalJSON accepts numbers and unit-suffixed strings. It never returns
// an error; unparseable input leaves l invalid.
func (l *Length) UnmarshalJSON(data []byte) error {
	*l = Length{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	if mm, ok := ParseDistance(v); ok {
		*l = MM(mm)
	}
	return nil
}

// MarshalJSON writes a valid length as a number and an invalid one as null.
func (l Length) MarshalJSON() ([]byte, error) {
	if !l.valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.mm)
}

// ParseDistance converts a decoded JSON value to millimetres. It reports
// false for anything that is not a finite number or a number with a known
// unit suffix.
func ParseDistance(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, isFinite(x)
	case int:
		return float64(x), true
	case string:
		return parseDistanceString(x)
	default:
		return 0, false
	}
}

func parseDistanceString(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	i := len(s)
	for i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
		i--
	}
	scale, ok := unitScale[s[i:]]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil || !isFinite(n) {
		return 0, false
	}
	return n * scale, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
