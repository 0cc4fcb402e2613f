package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/netlist"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
	"github.com/matzehuels/circuitsvg/pkg/render/pcb"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "inspect <file.json>",
		Short: "Browse the elements of a circuit interactively",
		Long: `Inspect opens an interactive list of every element with its net and its
position in the rendered PCB image. Press enter to show an element's JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(errors.ErrCodeUnsupported, "inspect needs an interactive terminal")
			}
			opts, err := flags.options(cmd, c.cfg())
			if err != nil {
				return err
			}
			opts.View = pipeline.ViewPCB
			opts.Formats = []string{pipeline.FormatSVG}
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			els, err := cio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			frame, err := pcb.Resolve(els, opts.PCB)
			if err != nil {
				return err
			}

			m := newInspectModel(args[0], els, frame, netlist.Build(els), opts.Width, opts.Height)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// inspectModel - Interactive element browser
// =============================================================================

// inspectModel is the bubbletea model for browsing elements.
type inspectModel struct {
	Name     string
	Elements circuit.Elements
	Frame    pcb.Frame
	Conn     netlist.Connectivity

	// ImageWidth and ImageHeight are the rendered image size in pixels.
	ImageWidth, ImageHeight float64

	Cursor int
	Offset int
	Height int
	Detail bool
}

func newInspectModel(name string, els circuit.Elements, frame pcb.Frame, conn netlist.Connectivity, w, h float64) inspectModel {
	return inspectModel{
		Name:        name,
		Elements:    els,
		Frame:       frame,
		Conn:        conn,
		ImageWidth:  w,
		ImageHeight: h,
		Height:      15,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Elements)-1, 0)
		case "enter":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *inspectModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Elements) == 0 {
		b.WriteString(listDimStyle.Render("  no elements"))
		return b.String()
	}

	if m.Detail {
		b.WriteString(m.detailView())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %s", m.Cursor+1, len(m.Elements), m.extent())))
	return b.String()
}

func (m inspectModel) listView() string {
	end := min(m.Offset+m.Height, len(m.Elements))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		el := m.Elements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			string(el.Type()),
			orDash(el.ElementID()),
			orDash(layerOf(el)),
			orDash(m.netOf(el)),
			orDash(m.imagePosition(el)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Type", "ID", "Layer", "Net", "Image px").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listDimStyle
			}
			return listNormalStyle
		})
	return t.Render()
}

func (m inspectModel) detailView() string {
	el := m.Elements[m.Cursor]

	var b strings.Builder
	b.WriteString(listSelectedStyle.Render(fmt.Sprintf("%s %s", el.Type(), el.ElementID())))
	b.WriteString("\n")
	if bb, ok := bounds.ElementBounds(el); ok {
		b.WriteString(listDimStyle.Render("bounds " + bb.String()))
		b.WriteString("\n")
	}
	if net := m.netOf(el); net != "" {
		b.WriteString(listDimStyle.Render("net " + net))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listNormalStyle.Render(elementJSON(el)))
	return b.String()
}

// extent reports the design-space rectangle covered by the image by mapping
// its corners back through the frame transform.
func (m inspectModel) extent() string {
	tl, err := m.Frame.Transform.ApplyInverse(geom.Point{})
	if err != nil {
		return ""
	}
	br, err := m.Frame.Transform.ApplyInverse(geom.Point{X: m.ImageWidth, Y: m.ImageHeight})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("image covers (%s, %s) to (%s, %s)",
		formatNum(tl.X), formatNum(tl.Y), formatNum(br.X), formatNum(br.Y))
}

// imagePosition returns the pixel position of the centre of el.
func (m inspectModel) imagePosition(el circuit.Element) string {
	bb, ok := bounds.ElementBounds(el)
	if !ok {
		return ""
	}
	p := m.Frame.Transform.Apply(bb.Center())
	return fmt.Sprintf("%.0f, %.0f", p.X, p.Y)
}

func (m inspectModel) netOf(el circuit.Element) string {
	id := el.ElementID()
	if id == "" {
		return ""
	}
	net, _ := m.Conn.NetOf(id)
	return net
}

func layerOf(el circuit.Element) string {
	if l, ok := el.(circuit.Layered); ok {
		return l.LayerName()
	}
	return ""
}

// elementJSON returns el as indented JSON including its type tag.
func elementJSON(el circuit.Element) string {
	data, err := circuit.Encode(circuit.Elements{el})
	if err != nil {
		return err.Error()
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil || len(arr) != 1 {
		return string(data)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, arr[0], "", "  "); err != nil {
		return string(arr[0])
	}
	return out.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
