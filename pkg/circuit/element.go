package circuit

import "encoding/json"

// Element is one record of the input collection. Implementations are the
// concrete kind structs in this package plus Unknown and Malformed.
type Element interface {
	// Type returns the element's "type" tag.
	Type() Kind
	// ElementID returns the element's own id field, or "" if it has none.
	ElementID() string
}

// Layered is implemented by elements that sit on a single named layer.
type Layered interface {
	Element
	LayerName() string
}

// Unknown is an element whose type tag is not recognised. It is kept so that
// re-encoding a collection is lossless, but is otherwise ignored.
type Unknown struct {
	Kind Kind
	Raw  json.RawMessage
}

func (u *Unknown) Type() Kind        { return u.Kind }
func (u *Unknown) ElementID() string { return "" }

// Malformed is a recognised element whose body failed to decode, for
// example because a string field held an object.
type Malformed struct {
	Kind Kind
	Raw  json.RawMessage
	Err  error
}

func (m *Malformed) Type() Kind        { return m.Kind }
func (m *Malformed) ElementID() string { return "" }
