package viewport

import (
	"testing"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
)

func board(id string, cx, cy, w, h float64) *circuit.PCBBoard {
	return &circuit.PCBBoard{PCBBoardID: id, Center: circuit.At(cx, cy), Width: circuit.MM(w), Height: circuit.MM(h)}
}

func panel(id string, cx, cy, w, h float64) *circuit.PCBPanel {
	return &circuit.PCBPanel{PCBPanelID: id, Center: circuit.At(cx, cy), Width: circuit.MM(w), Height: circuit.MM(h)}
}

func request(els circuit.Elements, pad bool) Request {
	return Request{Elements: els, DrawPaddingOutsideBoard: pad, Base: bounds.Aggregate(els)}
}

func TestResolve(t *testing.T) {
	loose := &circuit.PCBComponent{Center: circuit.At(20, 0), Width: circuit.MM(2), Height: circuit.MM(2)}
	withPanel := circuit.Elements{panel("p1", 50, 50, 100, 100), board("b1", 25, 25, 10, 10)}
	withBoard := circuit.Elements{board("b1", 0, 0, 10, 10), loose}
	outlined := board("b2", 0, 0, 100, 100)
	outlined.Outline = []circuit.XY{circuit.At(0, 0), circuit.At(4, 0), circuit.At(4, 3)}
	explicit := geom.Bounds{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}

	tests := []struct {
		name    string
		req     Request
		want    geom.Bounds
		padding float64
		source  Source
	}{
		{
			name: "explicit viewport wins and has no padding",
			req: func() Request {
				r := request(withPanel, true)
				r.Viewport = &explicit
				r.Target = &Target{PCBBoardID: "b1"}
				return r
			}(),
			want:   explicit,
			source: SourceViewport,
		},
		{
			name: "panel target",
			req: func() Request {
				r := request(withPanel, true)
				r.Target = &Target{PCBPanelID: "p1", PCBBoardID: "b1"}
				return r
			}(),
			want:   geom.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
			source: SourcePanelTarget,
		},
		{
			name:   "board target",
			req:    func() Request { r := request(withPanel, true); r.Target = &Target{PCBBoardID: "b1"}; return r }(),
			want:   geom.Bounds{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30},
			source: SourceBoardTarget,
		},
		{
			name: "board target uses outline",
			req: func() Request {
				r := request(circuit.Elements{outlined}, true)
				r.Target = &Target{PCBBoardID: "b2"}
				return r
			}(),
			want:   geom.Bounds{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3},
			source: SourceBoardTarget,
		},
		{
			name:    "panels by default",
			req:     request(withPanel, true),
			want:    geom.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
			padding: 1,
			source:  SourcePanels,
		},
		{
			name:   "board only without padding",
			req:    request(withBoard, false),
			want:   geom.Bounds{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5},
			source: SourceBoard,
		},
		{
			name:    "overall bounds with padding",
			req:     request(withBoard, true),
			want:    geom.Bounds{MinX: -5, MinY: -5, MaxX: 21, MaxY: 5},
			padding: 1,
			source:  SourceBounds,
		},
		{
			name:   "loose components without a board",
			req:    request(circuit.Elements{loose}, false),
			want:   geom.Bounds{MinX: 19, MinY: -1, MaxX: 21, MaxY: 1},
			source: SourceBounds,
		},
		{
			name:    "nothing at all",
			req:     request(nil, true),
			want:    emptyWorld,
			padding: 1,
			source:  SourceEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.req)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Bounds != tt.want {
				t.Errorf("Bounds = %v, want %v", got.Bounds, tt.want)
			}
			if got.Padding != tt.padding {
				t.Errorf("Padding = %v, want %v", got.Padding, tt.padding)
			}
			if got.Source != tt.source {
				t.Errorf("Source = %v, want %v", got.Source, tt.source)
			}
		})
	}
}

func TestResolveMissingTarget(t *testing.T) {
	els := circuit.Elements{board("b1", 0, 0, 10, 10)}
	for _, target := range []*Target{{PCBPanelID: "nope"}, {PCBBoardID: "nope"}} {
		r := request(els, true)
		r.Target = target
		_, err := Resolve(r)
		if !errors.Is(err, errors.ErrCodeViewportTargetNotFound) {
			t.Errorf("Resolve(%+v) error = %v, want VIEWPORT_TARGET_NOT_FOUND", *target, err)
		}
	}
}

func TestResolveInvalidViewport(t *testing.T) {
	r := request(nil, false)
	r.Viewport = &geom.Bounds{MinX: 5, MaxX: 1}
	if _, err := Resolve(r); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Resolve() error = %v, want INVALID_INPUT", err)
	}
}
