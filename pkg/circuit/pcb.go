package circuit

// PCBBoard is a physical board. When Outline has at least three valid
// points it takes precedence over Center/Width/Height.
type PCBBoard struct {
	PCBBoardID string `json:"pcb_board_id"`
	PCBPanelID string `json:"pcb_panel_id,omitempty"`
	Center     XY     `json:"center"`
	Width      Length `json:"width"`
	Height     Length `json:"height"`
	Thickness  Length `json:"thickness"`
	NumLayers  int    `json:"num_layers,omitempty"`
	Outline    []XY   `json:"outline,omitempty"`
	Material   string `json:"material,omitempty"`
}

func (*PCBBoard) Type() Kind          { return KindPCBBoard }
func (e *PCBBoard) ElementID() string { return e.PCBBoardID }

// PCBPanel is a fabrication sheet holding one or more boards.
type PCBPanel struct {
	PCBPanelID string `json:"pcb_panel_id"`
	Center     XY     `json:"center"`
	Width      Length `json:"width"`
	Height     Length `json:"height"`
}

func (*PCBPanel) Type() Kind          { return KindPCBPanel }
func (e *PCBPanel) ElementID() string { return e.PCBPanelID }

type PCBComponent struct {
	PCBComponentID    string  `json:"pcb_component_id"`
	SourceComponentID string  `json:"source_component_id,omitempty"`
	Center            XY      `json:"center"`
	Width             Length  `json:"width"`
	Height            Length  `json:"height"`
	Rotation          float64 `json:"rotation,omitempty"`
	Layer             string  `json:"layer,omitempty"`
}

func (*PCBComponent) Type() Kind          { return KindPCBComponent }
func (e *PCBComponent) ElementID() string { return e.PCBComponentID }
func (e *PCBComponent) LayerName() string { return e.Layer }

// PCBSMTPad is a surface-mount pad. Shape is one of rect, rotated_rect,
// circle, pill or polygon.
type PCBSMTPad struct {
	PCBSMTPadID    string  `json:"pcb_smtpad_id"`
	PCBComponentID string  `json:"pcb_component_id,omitempty"`
	PCBPortID      string  `json:"pcb_port_id,omitempty"`
	Shape          string  `json:"shape"`
	X              Length  `json:"x"`
	Y              Length  `json:"y"`
	Width          Length  `json:"width"`
	Height         Length  `json:"height"`
	Radius         Length  `json:"radius"`
	CCWRotation    float64 `json:"ccw_rotation,omitempty"`
	Points         []XY    `json:"points,omitempty"`
	Layer          string  `json:"layer"`
}

func (*PCBSMTPad) Type() Kind          { return KindPCBSMTPad }
func (e *PCBSMTPad) ElementID() string { return e.PCBSMTPadID }
func (e *PCBSMTPad) LayerName() string { return e.Layer }

type PCBSolderPaste struct {
	PCBSolderPasteID string `json:"pcb_solder_paste_id"`
	Shape            string `json:"shape"`
	X                Length `json:"x"`
	Y                Length `json:"y"`
	Width            Length `json:"width"`
	Height           Length `json:"height"`
	Radius           Length `json:"radius"`
	Layer            string `json:"layer"`
}

func (*PCBSolderPaste) Type() Kind          { return KindPCBSolderPaste }
func (e *PCBSolderPaste) ElementID() string { return e.PCBSolderPasteID }
func (e *PCBSolderPaste) LayerName() string { return e.Layer }

// PCBPlatedHole is a through-hole pad. Shape is one of circle, oval, pill
// or circular_hole_with_rect_pad.
type PCBPlatedHole struct {
	PCBPlatedHoleID string   `json:"pcb_plated_hole_id"`
	PCBPortID       string   `json:"pcb_port_id,omitempty"`
	PCBComponentID  string   `json:"pcb_component_id,omitempty"`
	Shape           string   `json:"shape"`
	X               Length   `json:"x"`
	Y               Length   `json:"y"`
	OuterDiameter   Length   `json:"outer_diameter"`
	HoleDiameter    Length   `json:"hole_diameter"`
	OuterWidth      Length   `json:"outer_width"`
	OuterHeight     Length   `json:"outer_height"`
	HoleWidth       Length   `json:"hole_width"`
	HoleHeight      Length   `json:"hole_height"`
	RectPadWidth    Length   `json:"rect_pad_width"`
	RectPadHeight   Length   `json:"rect_pad_height"`
	Layers          []string `json:"layers,omitempty"`
}

func (*PCBPlatedHole) Type() Kind          { return KindPCBPlatedHole }
func (e *PCBPlatedHole) ElementID() string { return e.PCBPlatedHoleID }

// OuterSize returns the copper extent of the hole's pad.
func (e *PCBPlatedHole) OuterSize() (w, h float64) {
	switch e.Shape {
	case "circular_hole_with_rect_pad":
		return e.RectPadWidth.Or(0), e.RectPadHeight.Or(0)
	case "oval", "pill":
		return e.OuterWidth.Or(0), e.OuterHeight.Or(0)
	default:
		d := e.OuterDiameter.Or(0)
		return d, d
	}
}

// PCBHole is an unplated drill. HoleShape is circle, oval or square.
type PCBHole struct {
	PCBHoleID    string `json:"pcb_hole_id"`
	HoleShape    string `json:"hole_shape"`
	X            Length `json:"x"`
	Y            Length `json:"y"`
	HoleDiameter Length `json:"hole_diameter"`
	HoleWidth    Length `json:"hole_width"`
	HoleHeight   Length `json:"hole_height"`
}

func (*PCBHole) Type() Kind          { return KindPCBHole }
func (e *PCBHole) ElementID() string { return e.PCBHoleID }

type PCBVia struct {
	PCBViaID      string   `json:"pcb_via_id"`
	PCBTraceID    string   `json:"pcb_trace_id,omitempty"`
	X             Length   `json:"x"`
	Y             Length   `json:"y"`
	OuterDiameter Length   `json:"outer_diameter"`
	HoleDiameter  Length   `json:"hole_diameter"`
	Layers        []string `json:"layers,omitempty"`
}

func (*PCBVia) Type() Kind          { return KindPCBVia }
func (e *PCBVia) ElementID() string { return e.PCBViaID }

// RoutePoint is one vertex of a trace route. RouteType is "wire" or "via".
type RoutePoint struct {
	RouteType      string `json:"route_type"`
	X              Length `json:"x"`
	Y              Length `json:"y"`
	Width          Length `json:"width"`
	Layer          string `json:"layer,omitempty"`
	FromLayer      string `json:"from_layer,omitempty"`
	ToLayer        string `json:"to_layer,omitempty"`
	StartPCBPortID string `json:"start_pcb_port_id,omitempty"`
	EndPCBPortID   string `json:"end_pcb_port_id,omitempty"`
}

type PCBTrace struct {
	PCBTraceID    string       `json:"pcb_trace_id"`
	SourceTraceID string       `json:"source_trace_id,omitempty"`
	Route         []RoutePoint `json:"route"`
}

func (*PCBTrace) Type() Kind          { return KindPCBTrace }
func (e *PCBTrace) ElementID() string { return e.PCBTraceID }

// PortIDs returns every pcb_port id referenced by the route, in order and
// without duplicates.
func (e *PCBTrace) PortIDs() []string {
	var ids []string
	seen := map[string]bool{}
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, p := range e.Route {
		add(p.StartPCBPortID)
		add(p.EndPCBPortID)
	}
	return ids
}

type PCBCopperPour struct {
	PCBCopperPourID string `json:"pcb_copper_pour_id"`
	SourceNetID     string `json:"source_net_id,omitempty"`
	Shape           string `json:"shape"`
	Center          XY     `json:"center"`
	Width           Length `json:"width"`
	Height          Length `json:"height"`
	Points          []XY   `json:"points,omitempty"`
	Layer           string `json:"layer"`
}

func (*PCBCopperPour) Type() Kind          { return KindPCBCopperPour }
func (e *PCBCopperPour) ElementID() string { return e.PCBCopperPourID }
func (e *PCBCopperPour) LayerName() string { return e.Layer }

type PCBKeepout struct {
	PCBKeepoutID string   `json:"pcb_keepout_id"`
	Shape        string   `json:"shape"`
	Center       XY       `json:"center"`
	Width        Length   `json:"width"`
	Height       Length   `json:"height"`
	Radius       Length   `json:"radius"`
	Layers       []string `json:"layers,omitempty"`
}

func (*PCBKeepout) Type() Kind          { return KindPCBKeepout }
func (e *PCBKeepout) ElementID() string { return e.PCBKeepoutID }

type PCBCutout struct {
	PCBCutoutID string `json:"pcb_cutout_id"`
	Shape       string `json:"shape"`
	Center      XY     `json:"center"`
	Width       Length `json:"width"`
	Height      Length `json:"height"`
	Radius      Length `json:"radius"`
	Points      []XY   `json:"points,omitempty"`
}

func (*PCBCutout) Type() Kind          { return KindPCBCutout }
func (e *PCBCutout) ElementID() string { return e.PCBCutoutID }

// TextElement holds the fields shared by silkscreen, fabrication and copper
// text.
type TextElement struct {
	Text           string  `json:"text"`
	AnchorPosition XY      `json:"anchor_position"`
	AnchorAlign    string  `json:"anchor_alignment,omitempty"`
	FontSize       Length  `json:"font_size"`
	Layer          string  `json:"layer"`
	CCWRotation    float64 `json:"ccw_rotation,omitempty"`
	IsMirrored     bool    `json:"is_mirrored,omitempty"`
}

func (e *TextElement) LayerName() string { return e.Layer }

type PCBSilkscreenText struct {
	PCBSilkscreenTextID string `json:"pcb_silkscreen_text_id"`
	TextElement
}

func (*PCBSilkscreenText) Type() Kind          { return KindPCBSilkscreenText }
func (e *PCBSilkscreenText) ElementID() string { return e.PCBSilkscreenTextID }

type PCBFabricationNoteText struct {
	PCBFabricationNoteTextID string `json:"pcb_fabrication_note_text_id"`
	TextElement
}

func (*PCBFabricationNoteText) Type() Kind { return KindPCBFabricationNoteText }
func (e *PCBFabricationNoteText) ElementID() string {
	return e.PCBFabricationNoteTextID
}

type PCBCopperText struct {
	PCBCopperTextID string `json:"pcb_copper_text_id"`
	TextElement
}

func (*PCBCopperText) Type() Kind          { return KindPCBCopperText }
func (e *PCBCopperText) ElementID() string { return e.PCBCopperTextID }

// PathElement holds the fields shared by silkscreen and fabrication paths.
type PathElement struct {
	Route       []XY   `json:"route"`
	StrokeWidth Length `json:"stroke_width"`
	Layer       string `json:"layer"`
}

func (e *PathElement) LayerName() string { return e.Layer }

type PCBSilkscreenPath struct {
	PCBSilkscreenPathID string `json:"pcb_silkscreen_path_id"`
	PathElement
}

func (*PCBSilkscreenPath) Type() Kind          { return KindPCBSilkscreenPath }
func (e *PCBSilkscreenPath) ElementID() string { return e.PCBSilkscreenPathID }

type PCBFabricationNotePath struct {
	PCBFabricationNotePathID string `json:"pcb_fabrication_note_path_id"`
	PathElement
}

func (*PCBFabricationNotePath) Type() Kind { return KindPCBFabricationNotePath }
func (e *PCBFabricationNotePath) ElementID() string {
	return e.PCBFabricationNotePathID
}

type PCBSilkscreenRect struct {
	PCBSilkscreenRectID string `json:"pcb_silkscreen_rect_id"`
	Center              XY     `json:"center"`
	Width               Length `json:"width"`
	Height              Length `json:"height"`
	StrokeWidth         Length `json:"stroke_width"`
	IsFilled            bool   `json:"is_filled,omitempty"`
	Layer               string `json:"layer"`
}

func (*PCBSilkscreenRect) Type() Kind          { return KindPCBSilkscreenRect }
func (e *PCBSilkscreenRect) ElementID() string { return e.PCBSilkscreenRectID }
func (e *PCBSilkscreenRect) LayerName() string { return e.Layer }

type PCBSilkscreenCircle struct {
	PCBSilkscreenCircleID string `json:"pcb_silkscreen_circle_id"`
	Center                XY     `json:"center"`
	Radius                Length `json:"radius"`
	StrokeWidth           Length `json:"stroke_width"`
	Layer                 string `json:"layer"`
}

func (*PCBSilkscreenCircle) Type() Kind          { return KindPCBSilkscreenCircle }
func (e *PCBSilkscreenCircle) ElementID() string { return e.PCBSilkscreenCircleID }
func (e *PCBSilkscreenCircle) LayerName() string { return e.Layer }

type PCBSilkscreenLine struct {
	PCBSilkscreenLineID string `json:"pcb_silkscreen_line_id"`
	X1                  Length `json:"x1"`
	Y1                  Length `json:"y1"`
	X2                  Length `json:"x2"`
	Y2                  Length `json:"y2"`
	StrokeWidth         Length `json:"stroke_width"`
	Layer               string `json:"layer"`
}

func (*PCBSilkscreenLine) Type() Kind          { return KindPCBSilkscreenLine }
func (e *PCBSilkscreenLine) ElementID() string { return e.PCBSilkscreenLineID }
func (e *PCBSilkscreenLine) LayerName() string { return e.Layer }

type PCBCourtyardRect struct {
	PCBCourtyardRectID string `json:"pcb_courtyard_rect_id"`
	Center             XY     `json:"center"`
	Width              Length `json:"width"`
	Height             Length `json:"height"`
	Layer              string `json:"layer"`
}

func (*PCBCourtyardRect) Type() Kind          { return KindPCBCourtyardRect }
func (e *PCBCourtyardRect) ElementID() string { return e.PCBCourtyardRectID }
func (e *PCBCourtyardRect) LayerName() string { return e.Layer }

// PCBPort is the physical location of a logical source port.
type PCBPort struct {
	PCBPortID      string   `json:"pcb_port_id"`
	SourcePortID   string   `json:"source_port_id"`
	PCBComponentID string   `json:"pcb_component_id,omitempty"`
	X              Length   `json:"x"`
	Y              Length   `json:"y"`
	Layers         []string `json:"layers,omitempty"`
}

func (*PCBPort) Type() Kind          { return KindPCBPort }
func (e *PCBPort) ElementID() string { return e.PCBPortID }

// PCBTraceError is a routing error reported by an upstream checker. It is
// drawn, never computed.
type PCBTraceError struct {
	PCBTraceErrorID string   `json:"pcb_trace_error_id"`
	ErrorType       string   `json:"error_type,omitempty"`
	Message         string   `json:"message"`
	Center          XY       `json:"center"`
	PCBTraceID      string   `json:"pcb_trace_id,omitempty"`
	PCBPortIDs      []string `json:"pcb_port_ids,omitempty"`
}

func (*PCBTraceError) Type() Kind          { return KindPCBTraceError }
func (e *PCBTraceError) ElementID() string { return e.PCBTraceErrorID }
