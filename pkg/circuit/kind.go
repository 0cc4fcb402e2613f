package circuit

// Kind is the "type" discriminator of an element.
type Kind string

// PCB element kinds.
const (
	KindPCBBoard               Kind = "pcb_board"
	KindPCBPanel               Kind = "pcb_panel"
	KindPCBComponent           Kind = "pcb_component"
	KindPCBSMTPad              Kind = "pcb_smtpad"
	KindPCBSolderPaste         Kind = "pcb_solder_paste"
	KindPCBPlatedHole          Kind = "pcb_plated_hole"
	KindPCBHole                Kind = "pcb_hole"
	KindPCBVia                 Kind = "pcb_via"
	KindPCBTrace               Kind = "pcb_trace"
	KindPCBCopperPour          Kind = "pcb_copper_pour"
	KindPCBKeepout             Kind = "pcb_keepout"
	KindPCBCutout              Kind = "pcb_cutout"
	KindPCBSilkscreenText      Kind = "pcb_silkscreen_text"
	KindPCBSilkscreenPath      Kind = "pcb_silkscreen_path"
	KindPCBSilkscreenRect      Kind = "pcb_silkscreen_rect"
	KindPCBSilkscreenCircle    Kind = "pcb_silkscreen_circle"
	KindPCBSilkscreenLine      Kind = "pcb_silkscreen_line"
	KindPCBFabricationNoteText Kind = "pcb_fabrication_note_text"
	KindPCBFabricationNotePath Kind = "pcb_fabrication_note_path"
	KindPCBCopperText          Kind = "pcb_copper_text"
	KindPCBCourtyardRect       Kind = "pcb_courtyard_rect"
	KindPCBPort                Kind = "pcb_port"
	KindPCBTraceError          Kind = "pcb_trace_error"
)

// Schematic element kinds.
const (
	KindSchematicComponent Kind = "schematic_component"
	KindSchematicPort      Kind = "schematic_port"
	KindSchematicTrace     Kind = "schematic_trace"
	KindSchematicText      Kind = "schematic_text"
	KindSchematicBox       Kind = "schematic_box"
	KindSchematicLine      Kind = "schematic_line"
	KindSchematicNetLabel  Kind = "schematic_net_label"
)

// Source (logical netlist) element kinds.
const (
	KindSourceComponent Kind = "source_component"
	KindSourcePort      Kind = "source_port"
	KindSourceTrace     Kind = "source_trace"
	KindSourceNet       Kind = "source_net"
)

// Kinds synthesised by the renderer rather than read from input. They only
// appear as paint metadata.
const (
	KindPCBRatsNest       Kind = "pcb_rats_nest"
	KindPCBHoleDrill      Kind = "pcb_plated_hole_drill"
	KindPCBSoldermask     Kind = "pcb_soldermask"
	KindPCBGrid           Kind = "pcb_grid"
	KindPCBBackground     Kind = "pcb_background"
	KindPCBSubstrate      Kind = "pcb_board_substrate"
	KindSchematicGrid     Kind = "schematic_grid"
	KindSchematicSymbol   Kind = "schematic_symbol"
	KindSchematicPortPin  Kind = "schematic_port_pin"
	KindSchematicBackdrop Kind = "schematic_background"
)

// registry maps every decodable kind to a constructor. Adding a kind here
// without a case in the bounds aggregator and emitters is caught by the
// coverage tests in those packages.
var registry = map[Kind]func() Element{
	KindPCBBoard:               func() Element { return &PCBBoard{} },
	KindPCBPanel:               func() Element { return &PCBPanel{} },
	KindPCBComponent:           func() Element { return &PCBComponent{} },
	KindPCBSMTPad:              func() Element { return &PCBSMTPad{} },
	KindPCBSolderPaste:         func() Element { return &PCBSolderPaste{} },
	KindPCBPlatedHole:          func() Element { return &PCBPlatedHole{} },
	KindPCBHole:                func() Element { return &PCBHole{} },
	KindPCBVia:                 func() Element { return &PCBVia{} },
	KindPCBTrace:               func() Element { return &PCBTrace{} },
	KindPCBCopperPour:          func() Element { return &PCBCopperPour{} },
	KindPCBKeepout:             func() Element { return &PCBKeepout{} },
	KindPCBCutout:              func() Element { return &PCBCutout{} },
	KindPCBSilkscreenText:      func() Element { return &PCBSilkscreenText{} },
	KindPCBSilkscreenPath:      func() Element { return &PCBSilkscreenPath{} },
	KindPCBSilkscreenRect:      func() Element { return &PCBSilkscreenRect{} },
	KindPCBSilkscreenCircle:    func() Element { return &PCBSilkscreenCircle{} },
	KindPCBSilkscreenLine:      func() Element { return &PCBSilkscreenLine{} },
	KindPCBFabricationNoteText: func() Element { return &PCBFabricationNoteText{} },
	KindPCBFabricationNotePath: func() Element { return &PCBFabricationNotePath{} },
	KindPCBCopperText:          func() Element { return &PCBCopperText{} },
	KindPCBCourtyardRect:       func() Element { return &PCBCourtyardRect{} },
	KindPCBPort:                func() Element { return &PCBPort{} },
	KindPCBTraceError:          func() Element { return &PCBTraceError{} },

	KindSchematicComponent: func() Element { return &SchematicComponent{} },
	KindSchematicPort:      func() Element { return &SchematicPort{} },
	KindSchematicTrace:     func() Element { return &SchematicTrace{} },
	KindSchematicText:      func() Element { return &SchematicText{} },
	KindSchematicBox:       func() Element { return &SchematicBox{} },
	KindSchematicLine:      func() Element { return &SchematicLine{} },
	KindSchematicNetLabel:  func() Element { return &SchematicNetLabel{} },

	KindSourceComponent: func() Element { return &SourceComponent{} },
	KindSourcePort:      func() Element { return &SourcePort{} },
	KindSourceTrace:     func() Element { return &SourceTrace{} },
	KindSourceNet:       func() Element { return &SourceNet{} },
}

// Kinds returns every kind Decode understands, in no particular order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

// New returns a zero element of kind k, or nil if k is not recognised.
func New(k Kind) Element {
	if ctor, ok := registry[k]; ok {
		return ctor()
	}
	return nil
}
