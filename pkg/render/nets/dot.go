package nets

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/netlist"
	"github.com/matzehuels/circuitsvg/pkg/render"
)

// Options configures net diagram rendering.
type Options struct {
	// Detailed lists the physical members (pcb ports, pads, traces) of
	// each net in its label.
	Detailed bool
	// IncludeSingletons keeps unnamed nets with a single port, which are
	// usually unconnected pins.
	IncludeSingletons bool
}

// ToDOT converts the connectivity of els to Graphviz DOT. conn is
// usually netlist.Build(els).
func ToDOT(els circuit.Elements, conn netlist.Connectivity, opts Options) string {
	ports := circuit.Filter[*circuit.SourcePort](els)
	names := netNames(els)
	components := make(map[string]string)
	for _, c := range circuit.Filter[*circuit.SourceComponent](els) {
		components[c.SourceComponentID] = cmp.Or(c.Name, c.SourceComponentID)
	}

	portsOfNet := make(map[string][]*circuit.SourcePort)
	for _, p := range ports {
		if net, ok := conn.NetOf(p.SourcePortID); ok {
			portsOfNet[net] = append(portsOfNet[net], p)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	drawn := make(map[string]bool)
	var edges []string
	for _, net := range conn.NetIDs() {
		members := portsOfNet[net]
		named := namedNets(conn.Nets[net], names)
		if len(members) == 0 || (len(members) == 1 && len(named) == 0 && !opts.IncludeSingletons) {
			continue
		}
		label := fmtNetLabel(net, conn.Nets[net], named, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=\"#fff3c4\", label=%q];\n", net, label)
		for _, p := range members {
			drawn[p.SourcePortID] = true
			edges = append(edges, fmt.Sprintf("  %q -- %q;\n", p.SourcePortID, net))
		}
	}

	buf.WriteString("\n")
	writeClusters(&buf, ports, drawn, components)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// writeClusters groups drawn ports by component. Ports without a component
// are written at the top level.
func writeClusters(buf *bytes.Buffer, ports []*circuit.SourcePort, drawn map[string]bool, components map[string]string) {
	byComp := make(map[string][]*circuit.SourcePort)
	for _, p := range ports {
		if drawn[p.SourcePortID] {
			byComp[p.SourceComponentID] = append(byComp[p.SourceComponentID], p)
		}
	}

	ids := make([]string, 0, len(byComp))
	for id := range byComp {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		indent := "  "
		if id != "" {
			fmt.Fprintf(buf, "  subgraph %q {\n", "cluster_"+id)
			fmt.Fprintf(buf, "    label=%q;\n    style=\"rounded\";\n", cmp.Or(components[id], id))
			indent = "    "
		}
		for _, p := range byComp[id] {
			fmt.Fprintf(buf, "%s%q [shape=box, style=\"rounded,filled\", fillcolor=white, label=%q];\n",
				indent, p.SourcePortID, portLabel(p))
		}
		if id != "" {
			buf.WriteString("  }\n")
		}
	}
}

func portLabel(p *circuit.SourcePort) string {
	if p.Name != "" {
		return p.Name
	}
	if p.PinNumber != nil {
		return "pin" + strconv.Itoa(*p.PinNumber)
	}
	return p.SourcePortID
}

// netNames maps synthesised net ids to the names of the source nets they
// contain.
func netNames(els circuit.Elements) map[string]string {
	out := make(map[string]string)
	for _, n := range circuit.Filter[*circuit.SourceNet](els) {
		out[n.SourceNetID] = cmp.Or(n.Name, n.SourceNetID)
	}
	return out
}

// namedNets returns the source net names among members.
func namedNets(members []string, names map[string]string) []string {
	var named []string
	for _, m := range members {
		if n, ok := names[m]; ok {
			named = append(named, n)
		}
	}
	return named
}

func fmtNetLabel(net string, members, named []string, detailed bool) string {
	label := net
	if len(named) > 0 {
		label = strings.Join(named, " / ")
	}
	if !detailed {
		return label
	}
	return label + "\n" + strings.Join(members, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root tag, which carries pt units and
// a translated origin, with a plain pixel-sized one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
