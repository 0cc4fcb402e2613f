package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/circuitsvg/pkg/geom"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Metadata attributes read by paint ordering.
const (
	AttrType  = "data-type"
	AttrLayer = "data-pcb-layer"
)

// Node is one element of the document tree.
type Node struct {
	Name       string
	Attributes map[string]string
	Children   []*Node
	Value      string
}

// El returns a node named name with the given attribute key/value pairs.
// A trailing key without a value is ignored.
func El(name string, kv ...string) *Node {
	n := &Node{Name: name, Attributes: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attributes[kv[i]] = kv[i+1]
	}
	return n
}

// Set sets attribute k and returns n.
func (n *Node) Set(k, v string) *Node {
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	n.Attributes[k] = v
	return n
}

// Attr returns attribute k, or "".
func (n *Node) Attr(k string) string { return n.Attributes[k] }

// Append adds children, skipping nils, and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text sets the node's character data and returns n.
func (n *Node) Text(s string) *Node {
	n.Value = s
	return n
}

// Tag sets the paint metadata used by paint.Order.
func (n *Node) Tag(kind, layer string) *Node {
	n.Set(AttrType, kind)
	if layer != "" {
		n.Set(AttrLayer, layer)
	}
	return n
}

// Walk calls fn for n and every descendant, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// WriteTo serialises n and its descendants as XML.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.write(&buf, 0)
	return buf.WriteTo(w)
}

// Marshal returns n as an XML document fragment ending in a newline.
func Marshal(n *Node) []byte {
	var buf bytes.Buffer
	n.write(&buf, 0)
	return buf.Bytes()
}

func (n *Node) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(n.Name)

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteString(`="`)
		escape(buf, n.Attributes[k])
		buf.WriteByte('"')
	}

	switch {
	case len(n.Children) == 0 && n.Value == "":
		buf.WriteString("/>\n")
	case len(n.Children) == 0:
		buf.WriteByte('>')
		escape(buf, n.Value)
		buf.WriteString("</" + n.Name + ">\n")
	default:
		buf.WriteString(">\n")
		if n.Value != "" {
			buf.WriteString(indent + "  ")
			escape(buf, n.Value)
			buf.WriteByte('\n')
		}
		for _, c := range n.Children {
			c.write(buf, depth+1)
		}
		buf.WriteString(indent + "</" + n.Name + ">\n")
	}
}

func escape(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}

// Num formats f rounded to four decimal places, without trailing zeros.
func Num(f float64) string {
	r := math.Round(f*1e4) / 1e4
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Points formats pts for a polyline or polygon "points" attribute.
func Points(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = Num(p.X) + "," + Num(p.Y)
	}
	return strings.Join(parts, " ")
}

// Path formats pts as path data, closing the path if closed is set.
func Path(pts []geom.Point, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(Num(p.X) + " " + Num(p.Y))
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}
