package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/bounds"
	"github.com/matzehuels/circuitsvg/pkg/circuit"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/geom"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
	"github.com/matzehuels/circuitsvg/pkg/render/pcb"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// boundsCommand creates the bounds command.
func (c *CLI) boundsCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "bounds <file.json>",
		Short: "Show the bounds, viewport and transform of a circuit",
		Long: `Bounds aggregates the design-space extent of every element, resolves the
viewport the renderer would frame, and prints the resulting image transform.
Elements that contribute no geometry are listed with the reason.`,
		Example: `  circuitsvg bounds board.json
  circuitsvg bounds --panel panel1 --width 1200 board.json
  circuitsvg bounds --view schematic board.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.cfg())
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatJSON}
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			els, err := cio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			switch opts.View {
			case pipeline.ViewPCB:
				frame, err := pcb.Resolve(els, opts.PCB)
				if err != nil {
					return err
				}
				printFrame(args[0], els, frame)
			case pipeline.ViewSchematic:
				agg := bounds.AggregateSchematic(els)
				fmt.Println(StyleTitle.Render(args[0]))
				printKeyValue("View", opts.View)
				printKeyValue("Elements", strconv.Itoa(len(els)))
				fmt.Println(boundsTable([]namedBounds{{"bounds", agg.Bounds, agg.HasBounds}}))
				printSkips(agg.Skipped)
			default:
				return errors.New(errors.ErrCodeInvalidView, "bounds supports the pcb and schematic views (got %q)", opts.View)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printFrame(name string, els circuit.Elements, f pcb.Frame) {
	fmt.Println(StyleTitle.Render(name))
	printKeyValue("View", pipeline.ViewPCB)
	printKeyValue("Elements", strconv.Itoa(len(els)))
	printKeyValue("Source", StyleHighlight.Render(string(f.Viewport.Source)))
	printKeyValue("Padding", formatNum(f.Viewport.Padding))
	printKeyValue("Scale", formatNum(f.Transform.ScaleFactor())+" px/unit")
	printKeyValue("Transform", f.Transform.String())

	rows := []namedBounds{
		{"elements", f.Bounds.Bounds, f.Bounds.HasBounds},
		{"boards", f.Bounds.BoardBounds, f.Bounds.HasBoardBounds},
	}
	if b, ok := bounds.PanelsBounds(els); ok {
		rows = append(rows, namedBounds{"panels", b, true})
	}
	rows = append(rows,
		namedBounds{"viewport", f.Viewport.Bounds, true},
		namedBounds{"visible", f.Visible, !f.Visible.IsEmpty()},
	)
	fmt.Println(boundsTable(rows))
	printSkips(f.Bounds.Skipped)
}

type namedBounds struct {
	name  string
	b     geom.Bounds
	valid bool
}

// boundsTable renders one row per rectangle. Rows without bounds show dashes.
func boundsTable(rows []namedBounds) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		if !r.valid {
			data[i] = []string{r.name, "-", "-", "-", "-", "-", "-"}
			continue
		}
		data[i] = []string{
			r.name,
			formatNum(r.b.MinX), formatNum(r.b.MinY),
			formatNum(r.b.MaxX), formatNum(r.b.MaxY),
			formatNum(r.b.Width()), formatNum(r.b.Height()),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "minX", "minY", "maxX", "maxY", "width", "height").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case !rows[row].valid:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

func printSkips(skips []bounds.Skip) {
	if len(skips) == 0 {
		return
	}
	printWarning("%d element(s) skipped", len(skips))
	data := make([][]string, len(skips))
	for i, s := range skips {
		data[i] = []string{strconv.Itoa(s.Index), string(s.Type), s.ID, s.Reason}
	}
	fmt.Println(table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "type", "id", "reason").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return StyleDim
		}).
		Render())
}

// formatNum prints v with at most four decimals.
func formatNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
