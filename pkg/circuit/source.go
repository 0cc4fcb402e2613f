package circuit

type SourceComponent struct {
	SourceComponentID string `json:"source_component_id"`
	Name              string `json:"name"`
	FType             string `json:"ftype,omitempty"`
}

func (*SourceComponent) Type() Kind          { return KindSourceComponent }
func (e *SourceComponent) ElementID() string { return e.SourceComponentID }

type SourcePort struct {
	SourcePortID      string `json:"source_port_id"`
	SourceComponentID string `json:"source_component_id,omitempty"`
	Name              string `json:"name"`
	PinNumber         *int   `json:"pin_number,omitempty"`
}

func (*SourcePort) Type() Kind          { return KindSourcePort }
func (e *SourcePort) ElementID() string { return e.SourcePortID }

// SourceTrace is a logical connection between ports and nets. A trace with
// at least one connected net is an explicit drawn connection.
type SourceTrace struct {
	SourceTraceID          string   `json:"source_trace_id"`
	ConnectedSourcePortIDs []string `json:"connected_source_port_ids"`
	ConnectedSourceNetIDs  []string `json:"connected_source_net_ids"`
}

func (*SourceTrace) Type() Kind          { return KindSourceTrace }
func (e *SourceTrace) ElementID() string { return e.SourceTraceID }

type SourceNet struct {
	SourceNetID string `json:"source_net_id"`
	Name        string `json:"name"`
	IsGround    bool   `json:"is_ground,omitempty"`
	IsPower     bool   `json:"is_power,omitempty"`
}

func (*SourceNet) Type() Kind          { return KindSourceNet }
func (e *SourceNet) ElementID() string { return e.SourceNetID }
