package schematic

import (
	"strings"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/svg"
)

func count(root *svg.Node, kind circuit.Kind) int {
	n := 0
	for _, c := range root.Children {
		if c.Attr(svg.AttrType) == string(kind) {
			n++
		}
	}
	return n
}

func find(root *svg.Node, id string) *svg.Node {
	for _, c := range root.Children {
		if c.Attr("data-id") == id {
			return c
		}
	}
	return nil
}

func component(id, symbol string, w, h float64) *circuit.SchematicComponent {
	return &circuit.SchematicComponent{
		SchematicComponentID: id,
		Center:               circuit.At(0, 0),
		Size:                 circuit.Size{Width: circuit.MM(w), Height: circuit.MM(h)},
		SymbolName:           symbol,
	}
}

func port(id, comp string, x, y float64) *circuit.SchematicPort {
	return &circuit.SchematicPort{SchematicPortID: id, SchematicComponentID: comp, Center: circuit.At(x, y)}
}

func TestConvertSymbolBindsPorts(t *testing.T) {
	els := circuit.Elements{
		component("r1", "boxresistor_horz", 1.1, 0.24),
		port("p1", "r1", -0.55, 0),
		port("p2", "r1", 0.55, 0),
		port("p3", "r1", 0, 0.5),
	}
	root, err := Convert(els, Options{})
	if err != nil {
		t.Fatal(err)
	}

	sym := find(root, "r1")
	if sym == nil || sym.Attr(svg.AttrType) != string(circuit.KindSchematicSymbol) {
		t.Fatal("resistor not drawn from its symbol")
	}
	if sym.Attr("data-symbol-name") != "boxresistor_right" {
		t.Errorf("symbol = %q", sym.Attr("data-symbol-name"))
	}
	if len(sym.Children) != 3 {
		t.Errorf("got %d primitives, want 3", len(sym.Children))
	}

	if got := count(root, circuit.KindSchematicPortPin); got != 2 {
		t.Errorf("got %d bound ports, want 2", got)
	}
	if n := find(root, "p1"); n == nil || n.Attr("data-pin") != "1" {
		t.Error("p1 should bind to pin 1")
	}
	// p3 points up, 90 degrees from any pin.
	if n := find(root, "p3"); n == nil || n.Attr(svg.AttrType) != string(circuit.KindSchematicPort) {
		t.Error("p3 should be drawn as an unbound port")
	}
}

func TestConvertPortsSurviveBadComponent(t *testing.T) {
	bad := component("u1", "boxresistor_horz", 1, 1)
	bad.Center = circuit.XY{X: circuit.Length{}, Y: circuit.MM(0)}
	els := circuit.Elements{
		bad,
		port("p1", "u1", -1, 0),
		port("p2", "u1", 1, 0),
		port("p3", "missing", 0, 1),
	}
	root, err := Convert(els, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if find(root, "u1") != nil {
		t.Error("component without a centre should not be drawn")
	}
	for _, id := range []string{"p1", "p2", "p3"} {
		n := find(root, id)
		if n == nil || n.Attr(svg.AttrType) != string(circuit.KindSchematicPort) {
			t.Errorf("port %s not drawn", id)
		}
	}
	if got := count(root, circuit.KindSchematicPort); got != 3 {
		t.Errorf("got %d ports, want 3", got)
	}
}

func TestConvertBoxFallback(t *testing.T) {
	pin := 3
	els := circuit.Elements{
		component("u1", "", 2, 1),
		&circuit.SchematicPort{SchematicPortID: "p1", SchematicComponentID: "u1", Center: circuit.At(-1, 0), PinNumber: &pin, FacingDirection: "left"},
	}
	root, err := Convert(els, Options{})
	if err != nil {
		t.Fatal(err)
	}
	body := find(root, "u1")
	if body == nil || body.Name != "rect" {
		t.Fatal("component without symbol should be a box")
	}
	p := find(root, "p1")
	if p == nil || len(p.Children) != 2 || p.Children[1].Value != "3" {
		t.Error("port should carry its pin number label")
	}

	root, err = Convert(els, Options{HidePinNumbers: true})
	if err != nil {
		t.Fatal(err)
	}
	if p := find(root, "p1"); len(p.Children) != 1 {
		t.Error("pin number drawn despite HidePinNumbers")
	}
}

func TestConvertJunctions(t *testing.T) {
	edge := func(x1, y1, x2, y2 float64) circuit.Edge {
		return circuit.Edge{From: circuit.At(x1, y1), To: circuit.At(x2, y2)}
	}
	els := circuit.Elements{
		&circuit.SchematicTrace{SchematicTraceID: "t1", Edges: []circuit.Edge{edge(0, 0, 1, 1)}},
		&circuit.SchematicTrace{SchematicTraceID: "t2", Edges: []circuit.Edge{edge(1, 1, 2, 1)}},
		&circuit.SchematicTrace{SchematicTraceID: "t3", Edges: []circuit.Edge{edge(1, 1, 1, 3)}},
	}
	root, err := Convert(els, Options{})
	if err != nil {
		t.Fatal(err)
	}
	junctions := 0
	root.Walk(func(n *svg.Node) {
		if n.Attr("class") == "junction" {
			junctions++
		}
	})
	if junctions != 1 {
		t.Errorf("got %d junctions, want 1", junctions)
	}
	if got := count(root, circuit.KindSchematicTrace); got != 4 {
		t.Errorf("got %d trace nodes, want 3 traces + 1 junction", got)
	}
}

func TestConvertAnnotations(t *testing.T) {
	els := circuit.Elements{
		&circuit.SchematicText{SchematicTextID: "txt", Text: "Power", Position: circuit.At(0, 2), Anchor: "left", Color: "#ff0000"},
		&circuit.SchematicNetLabel{SchematicNetLabelID: "nl", SourceNetID: "net_gnd", Text: "GND", Center: circuit.At(1, 0), AnchorSide: "left"},
		&circuit.SchematicBox{SchematicBoxID: "box", X: circuit.MM(0), Y: circuit.MM(0), Width: circuit.MM(4), Height: circuit.MM(3), IsDashed: true},
		&circuit.SchematicLine{SchematicLineID: "ln", X1: circuit.MM(-2), Y1: circuit.MM(-1), X2: circuit.MM(2), Y2: circuit.MM(-1)},
	}
	root, err := Convert(els, Options{})
	if err != nil {
		t.Fatal(err)
	}

	txt := find(root, "txt")
	if txt == nil || txt.Attr("fill") != "#ff0000" || txt.Attr("text-anchor") != "start" {
		t.Errorf("text = %+v", txt)
	}
	if nl := find(root, "nl"); nl == nil || nl.Attr("data-net-id") != "net_gnd" {
		t.Error("net label missing its net id")
	}
	if box := find(root, "box"); box == nil || box.Attr("stroke-dasharray") == "" {
		t.Error("dashed box not dashed")
	}
	if find(root, "ln") == nil {
		t.Error("line not drawn")
	}

	// Boxes paint under lines, which paint under labels and text.
	order := []string{"box", "ln", "nl", "txt"}
	prev := -1
	for _, id := range order {
		i := -1
		for j, c := range root.Children {
			if c.Attr("data-id") == id {
				i = j
			}
		}
		if i <= prev {
			t.Errorf("%s painted out of order", id)
		}
		prev = i
	}
}

func TestConvertEmpty(t *testing.T) {
	out, err := Render(nil, Options{Width: 200, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `data-type="schematic_background"`) {
		t.Errorf("empty schematic lacks a background:\n%s", out)
	}
}

func TestConvertInvalidGrid(t *testing.T) {
	_, err := Convert(nil, Options{Grid: grid.Options{CellSize: 5, MajorCellSize: 12}})
	if !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Errorf("err = %v, want INVALID_GRID", err)
	}
}

func TestConvertIgnoresPCBElements(t *testing.T) {
	els := circuit.Elements{
		&circuit.PCBPanel{PCBPanelID: "panel", Center: circuit.At(100, 100), Width: circuit.MM(500), Height: circuit.MM(500)},
		component("u1", "", 2, 1),
	}
	root, err := Convert(els, Options{Width: 400, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	// u1 plus 1 unit of padding frames a 4x3 world; the panel must not
	// widen it.
	body := find(root, "u1")
	if body == nil {
		t.Fatal("u1 not drawn")
	}
	if w := body.Attr("width"); w != "133.3333" {
		t.Errorf("body width = %s px, want 133.3333", w)
	}
}
