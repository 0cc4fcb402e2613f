// Package paint orders rendered nodes so layers composite correctly.
//
// [Order] is a stable sort keyed first by physical layer and then by element
// type. Both keys are read from node metadata attributes (data-pcb-layer and
// data-type). Nodes with an unknown layer sort after every known layer, and
// nodes with an unknown type sort after most known types; a new element kind
// that needs an exact position must be added to [TypePriorities].
package paint

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/svg"
)

// Fallback priorities for unrecognised metadata.
const (
	UnknownLayerPriority = 500
	UnknownTypePriority  = 100
)

// LayerPriorities maps fixed layer tokens to paint order. Inner copper
// layers are handled by [LayerPriority] as 5+N.
var LayerPriorities = map[string]int{
	"global":  -100,
	"bottom":  0,
	"board":   2,
	"through": 18,
	"top":     20,
	"drill":   30,
	"overlay": 40,
}

const innerLayerBase = 5

// LayerPriority returns the paint priority of a layer token.
func LayerPriority(layer string) int {
	if p, ok := LayerPriorities[layer]; ok {
		return p
	}
	if n, ok := innerLayer(layer); ok {
		return innerLayerBase + n
	}
	return UnknownLayerPriority
}

// innerLayer parses "inner<N>".
func innerLayer(layer string) (int, bool) {
	rest, ok := strings.CutPrefix(layer, "inner")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// TypePriorities maps element kinds to paint order within a layer.
var TypePriorities = map[circuit.Kind]int{
	circuit.KindPCBBackground:          0,
	circuit.KindPCBGrid:                1,
	circuit.KindPCBSubstrate:           2,
	circuit.KindPCBBoard:               10,
	circuit.KindPCBPanel:               10,
	circuit.KindPCBCutout:              15,
	circuit.KindPCBHole:                18,
	circuit.KindPCBHoleDrill:           19,
	circuit.KindPCBPlatedHole:          20,
	circuit.KindPCBTrace:               30,
	circuit.KindPCBSMTPad:              30,
	circuit.KindPCBCopperText:          30,
	circuit.KindPCBCopperPour:          35,
	circuit.KindPCBVia:                 36,
	circuit.KindPCBSoldermask:          40,
	circuit.KindPCBSolderPaste:         45,
	circuit.KindPCBSilkscreenText:      50,
	circuit.KindPCBSilkscreenPath:      50,
	circuit.KindPCBSilkscreenRect:      50,
	circuit.KindPCBSilkscreenCircle:    50,
	circuit.KindPCBSilkscreenLine:      50,
	circuit.KindPCBComponent:           60,
	circuit.KindPCBCourtyardRect:       60,
	circuit.KindPCBKeepout:             65,
	circuit.KindPCBFabricationNoteText: 70,
	circuit.KindPCBFabricationNotePath: 70,
	circuit.KindPCBTraceError:          80,
	circuit.KindPCBRatsNest:            85,
	circuit.KindPCBPort:                90,

	circuit.KindSchematicBackdrop:  0,
	circuit.KindSchematicGrid:      1,
	circuit.KindSchematicBox:       20,
	circuit.KindSchematicLine:      25,
	circuit.KindSchematicComponent: 30,
	circuit.KindSchematicSymbol:    30,
	circuit.KindSchematicTrace:     40,
	circuit.KindSchematicPort:      50,
	circuit.KindSchematicPortPin:   50,
	circuit.KindSchematicNetLabel:  60,
	circuit.KindSchematicText:      70,
}

// TypePriority returns the paint priority of an element kind.
func TypePriority(kind string) int {
	if p, ok := TypePriorities[circuit.Kind(kind)]; ok {
		return p
	}
	return UnknownTypePriority
}

// Compare orders two nodes by layer, then type.
func Compare(a, b *svg.Node) int {
	if c := cmp.Compare(LayerPriority(a.Attr(svg.AttrLayer)), LayerPriority(b.Attr(svg.AttrLayer))); c != 0 {
		return c
	}
	return cmp.Compare(TypePriority(a.Attr(svg.AttrType)), TypePriority(b.Attr(svg.AttrType)))
}

// Order returns a copy of nodes sorted for painting. Nodes with equal keys
// keep their input order. The input slice is not modified.
func Order(nodes []*svg.Node) []*svg.Node {
	out := slices.Clone(nodes)
	slices.SortStableFunc(out, Compare)
	return out
}
