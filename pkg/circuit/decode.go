package circuit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// Elements is an ordered element collection. Order matters only for paint
// stability.
type Elements []Element

// Decode parses a JSON array of tagged records. Only a document that is not
// a JSON array is an error; records that cannot be decoded come back as
// *Malformed and records with an unrecognised tag as *Unknown.
func Decode(data []byte) (Elements, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "element collection must be a JSON array")
	}
	out := make(Elements, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeOne(raw))
	}
	return out, nil
}

func decodeOne(raw json.RawMessage) Element {
	var tag struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return &Malformed{Raw: raw, Err: err}
	}
	el := New(tag.Type)
	if el == nil {
		return &Unknown{Kind: tag.Type, Raw: raw}
	}
	if err := json.Unmarshal(raw, el); err != nil {
		return &Malformed{Kind: tag.Type, Raw: raw, Err: err}
	}
	return el
}

// Encode writes els back as a JSON array. Known elements are re-tagged with
// their kind; Unknown and Malformed records are written verbatim.
func Encode(els Elements) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, el := range els {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := encodeOne(el)
		if err != nil {
			return nil, fmt.Errorf("encode element %d (%s): %w", i, el.Type(), err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func encodeOne(el Element) ([]byte, error) {
	switch e := el.(type) {
	case *Unknown:
		return e.Raw, nil
	case *Malformed:
		return e.Raw, nil
	}
	body, err := json.Marshal(el)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, _ := json.Marshal(el.Type())
	fields["type"] = tag
	return json.Marshal(fields)
}

// Filter returns the elements of els with concrete type T, in order.
func Filter[T Element](els Elements) []T {
	var out []T
	for _, el := range els {
		if t, ok := el.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// CountByKind tallies elements per type tag.
func (els Elements) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, el := range els {
		counts[el.Type()]++
	}
	return counts
}

// Find returns the first element of kind k whose id is id.
func (els Elements) Find(k Kind, id string) (Element, bool) {
	for _, el := range els {
		if el.Type() == k && el.ElementID() == id {
			return el, true
		}
	}
	return nil, false
}

// HasKind reports whether any element has kind k.
func (els Elements) HasKind(k Kind) bool {
	for _, el := range els {
		if el.Type() == k {
			return true
		}
	}
	return false
}
