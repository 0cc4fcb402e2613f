package svg

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/geom"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.00001, "0"},
		{1.5, "1.5"},
		{1.23456, "1.2346"},
		{100, "100"},
		{-3.25, "-3.25"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshalSortsAndEscapes(t *testing.T) {
	n := El("text", "y", "2", "x", "1").Text(`R1 & <C2>`)
	got := string(Marshal(n))
	want := "<text x=\"1\" y=\"2\">R1 &amp; &lt;C2&gt;</text>\n"
	if got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}

	n = El("g", "title", `a "quoted" value`)
	if got := string(Marshal(n)); !strings.Contains(got, `title="a &#34;quoted&#34; value"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
}

func TestAppendSkipsNil(t *testing.T) {
	n := El("g").Append(nil, El("rect"), nil)
	if len(n.Children) != 1 {
		t.Errorf("Children = %d, want 1", len(n.Children))
	}
}

func TestWalk(t *testing.T) {
	root := El("svg").Append(El("g").Append(El("rect"), El("circle")), El("text"))
	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name) })
	if got := strings.Join(names, ","); got != "svg,g,rect,circle,text" {
		t.Errorf("Walk order = %s", got)
	}
}

func TestPath(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if got := Path(pts, true); got != "M 0 0 L 1 0 L 1 1 Z" {
		t.Errorf("Path = %q", got)
	}
	if got := Points(pts); got != "0,0 1,0 1,1" {
		t.Errorf("Points = %q", got)
	}
	if Path(nil, true) != "" {
		t.Error("Path(nil) not empty")
	}
}

func ExampleMarshal() {
	root := El("svg", "xmlns", Namespace, "width", "10", "height", "10")
	root.Append(El("circle", "cx", Num(5), "cy", Num(5), "r", Num(2.5)).Tag("pcb_via", "through"))
	fmt.Print(string(Marshal(root)))
	// Output:
	// <svg height="10" width="10" xmlns="http://www.w3.org/2000/svg">
	//   <circle cx="5" cy="5" data-pcb-layer="through" data-type="pcb_via" r="2.5"/>
	// </svg>
}
