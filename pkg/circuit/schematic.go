package circuit

// SchematicComponent is a component on the schematic sheet. When SymbolName
// names a built-in symbol the component is drawn from that symbol.
type SchematicComponent struct {
	SchematicComponentID string  `json:"schematic_component_id"`
	SourceComponentID    string  `json:"source_component_id,omitempty"`
	Center               XY      `json:"center"`
	Size                 Size    `json:"size"`
	Rotation             float64 `json:"rotation,omitempty"`
	SymbolName           string  `json:"symbol_name,omitempty"`
}

func (*SchematicComponent) Type() Kind          { return KindSchematicComponent }
func (e *SchematicComponent) ElementID() string { return e.SchematicComponentID }

type SchematicPort struct {
	SchematicPortID      string `json:"schematic_port_id"`
	SchematicComponentID string `json:"schematic_component_id,omitempty"`
	SourcePortID         string `json:"source_port_id,omitempty"`
	Center               XY     `json:"center"`
	FacingDirection      string `json:"facing_direction,omitempty"`
	SideOfComponent      string `json:"side_of_component,omitempty"`
	TrueCCWIndex         *int   `json:"true_ccw_index,omitempty"`
	PinNumber            *int   `json:"pin_number,omitempty"`
	DisplayPinLabel      string `json:"display_pin_label,omitempty"`
}

func (*SchematicPort) Type() Kind          { return KindSchematicPort }
func (e *SchematicPort) ElementID() string { return e.SchematicPortID }

// Edge is one straight segment of a schematic trace.
type Edge struct {
	From XY `json:"from"`
	To   XY `json:"to"`
}

type SchematicTrace struct {
	SchematicTraceID string `json:"schematic_trace_id"`
	SourceTraceID    string `json:"source_trace_id,omitempty"`
	Edges            []Edge `json:"edges"`
}

func (*SchematicTrace) Type() Kind          { return KindSchematicTrace }
func (e *SchematicTrace) ElementID() string { return e.SchematicTraceID }

type SchematicText struct {
	SchematicTextID string  `json:"schematic_text_id"`
	Text            string  `json:"text"`
	Position        XY      `json:"position"`
	Rotation        float64 `json:"rotation,omitempty"`
	Anchor          string  `json:"anchor,omitempty"`
	FontSize        Length  `json:"font_size"`
	Color           string  `json:"color,omitempty"`
}

func (*SchematicText) Type() Kind          { return KindSchematicText }
func (e *SchematicText) ElementID() string { return e.SchematicTextID }

// SchematicBox is an annotation rectangle centred on (X, Y).
type SchematicBox struct {
	SchematicBoxID string `json:"schematic_box_id"`
	X              Length `json:"x"`
	Y              Length `json:"y"`
	Width          Length `json:"width"`
	Height         Length `json:"height"`
	IsDashed       bool   `json:"is_dashed,omitempty"`
}

func (*SchematicBox) Type() Kind          { return KindSchematicBox }
func (e *SchematicBox) ElementID() string { return e.SchematicBoxID }

type SchematicLine struct {
	SchematicLineID string `json:"schematic_line_id"`
	X1              Length `json:"x1"`
	Y1              Length `json:"y1"`
	X2              Length `json:"x2"`
	Y2              Length `json:"y2"`
	StrokeWidth     Length `json:"stroke_width"`
}

func (*SchematicLine) Type() Kind          { return KindSchematicLine }
func (e *SchematicLine) ElementID() string { return e.SchematicLineID }

type SchematicNetLabel struct {
	SchematicNetLabelID string `json:"schematic_net_label_id"`
	SourceNetID         string `json:"source_net_id,omitempty"`
	Text                string `json:"text"`
	Center              XY     `json:"center"`
	AnchorSide          string `json:"anchor_side,omitempty"`
}

func (*SchematicNetLabel) Type() Kind          { return KindSchematicNetLabel }
func (e *SchematicNetLabel) ElementID() string { return e.SchematicNetLabelID }
