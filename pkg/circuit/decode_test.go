package circuit

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

func TestDecodeEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		els, err := Decode([]byte(fmt.Sprintf(`[{"type":%q}]`, k)))
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", k, err)
		}
		if len(els) != 1 {
			t.Fatalf("Decode(%s) returned %d elements", k, len(els))
		}
		if els[0].Type() != k {
			t.Errorf("Decode(%s).Type() = %s", k, els[0].Type())
		}
		switch els[0].(type) {
		case *Unknown, *Malformed:
			t.Errorf("Decode(%s) returned %T", k, els[0])
		}
	}
}

func TestDecodeFields(t *testing.T) {
	input := `[
		{"type":"pcb_board","pcb_board_id":"b1","center":{"x":0,"y":"1mm"},"width":"10mm","height":5,
		 "outline":[{"x":0,"y":0},{"x":1,"y":0},{"x":"bad","y":1}]},
		{"type":"pcb_smtpad","pcb_smtpad_id":"p1","shape":"rect","x":1,"y":2,"width":0.5,"height":0.6,"layer":"top","pcb_port_id":"pp1"},
		{"type":"pcb_trace","pcb_trace_id":"t1","route":[
			{"route_type":"wire","x":0,"y":0,"width":0.2,"layer":"top","start_pcb_port_id":"pp1"},
			{"route_type":"wire","x":1,"y":0,"width":0.2,"layer":"top","end_pcb_port_id":"pp2"}]},
		{"type":"pcb_silkscreen_text","pcb_silkscreen_text_id":"s1","text":"R1","anchor_position":{"x":1,"y":1},"font_size":1,"layer":"top"},
		{"type":"source_trace","source_trace_id":"st1","connected_source_port_ids":["a","b"],"connected_source_net_ids":["n1"]}
	]`
	els, err := Decode([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	board := els[0].(*PCBBoard)
	if c, ok := board.Center.Point(); !ok || c.Y != 1 {
		t.Errorf("board center = %v, %v", c, ok)
	}
	if w, _ := board.Width.Value(); w != 10 {
		t.Errorf("board width = %v", w)
	}
	if pts, dropped := Points(board.Outline); len(pts) != 2 || dropped != 1 {
		t.Errorf("outline parsed %d points, dropped %d", len(pts), dropped)
	}

	pad := els[1].(*PCBSMTPad)
	if pad.LayerName() != "top" || pad.PCBPortID != "pp1" {
		t.Errorf("pad = %+v", pad)
	}

	trace := els[2].(*PCBTrace)
	if got := strings.Join(trace.PortIDs(), ","); got != "pp1,pp2" {
		t.Errorf("PortIDs() = %s", got)
	}

	text := els[3].(*PCBSilkscreenText)
	if text.Text != "R1" || text.ElementID() != "s1" || text.LayerName() != "top" {
		t.Errorf("text = %+v", text)
	}

	st := els[4].(*SourceTrace)
	if len(st.ConnectedSourceNetIDs) != 1 {
		t.Errorf("source trace = %+v", st)
	}
}

func TestDecodeUnknownAndMalformed(t *testing.T) {
	els, err := Decode([]byte(`[
		{"type":"pcb_mystery","foo":1},
		{"type":"pcb_board","pcb_board_id":7},
		42
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if u, ok := els[0].(*Unknown); !ok || u.Kind != "pcb_mystery" {
		t.Errorf("els[0] = %#v, want Unknown", els[0])
	}
	if m, ok := els[1].(*Malformed); !ok || m.Kind != KindPCBBoard || m.Err == nil {
		t.Errorf("els[1] = %#v, want Malformed pcb_board", els[1])
	}
	if _, ok := els[2].(*Malformed); !ok {
		t.Errorf("els[2] = %#v, want Malformed", els[2])
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode([]byte(`{"type":"pcb_board"}`))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Decode(object) error = %v, want INVALID_INPUT", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := Elements{
		&PCBBoard{PCBBoardID: "b1", Center: At(1, 2), Width: MM(10), Height: MM(5)},
		&Unknown{Kind: "x", Raw: json.RawMessage(`{"type":"x","k":1}`)},
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := out[0].(*PCBBoard)
	if !ok || b.PCBBoardID != "b1" || b.Width.Or(0) != 10 {
		t.Errorf("round trip board = %#v", out[0])
	}
	if out[1].Type() != "x" {
		t.Errorf("round trip unknown = %#v", out[1])
	}
}

func TestFilterAndFind(t *testing.T) {
	els := Elements{
		&PCBPort{PCBPortID: "a"},
		&PCBBoard{PCBBoardID: "b"},
		&PCBPort{PCBPortID: "c"},
	}
	if ports := Filter[*PCBPort](els); len(ports) != 2 || ports[1].PCBPortID != "c" {
		t.Errorf("Filter = %v", ports)
	}
	if _, ok := els.Find(KindPCBBoard, "b"); !ok {
		t.Error("Find(board b) failed")
	}
	if _, ok := els.Find(KindPCBBoard, "a"); ok {
		t.Error("Find matched wrong kind")
	}
	if got := els.CountByKind()[KindPCBPort]; got != 2 {
		t.Errorf("CountByKind = %d", got)
	}
}

func ExampleDecode() {
	els, _ := Decode([]byte(`[{"type":"pcb_board","width":"1in","height":10,"center":{"x":0,"y":0}}]`))
	b := els[0].(*PCBBoard)
	fmt.Println(b.Type(), b.Width.Or(0), b.Height.Or(0))
	// Output: pcb_board 25.4 10
}
