package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

// netsCommand creates the nets command.
func (c *CLI) netsCommand() *cobra.Command {
	var (
		format     string
		output     string
		detailed   bool
		singletons bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "nets <file.json>",
		Short: "Draw the net connectivity of a circuit",
		Long: `Nets builds the connectivity of a circuit (source traces joining ports and
nets) and writes it as a Graphviz graph. DOT and the json report go to stdout
by default; svg, png and pdf are laid out with Graphviz and written next to
the input or to --output.`,
		Example: `  circuitsvg nets board.json | dot -Tsvg > nets.svg
  circuitsvg nets -f svg --detailed board.json -o nets.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				View:    pipeline.ViewNets,
				Formats: pipeline.ParseFormats(format),
				Logger:  c.Logger,
			}
			opts.Nets.Detailed = detailed
			opts.Nets.IncludeSingletons = singletons
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if len(opts.Formats) != 1 {
				return errors.New(errors.ErrCodeInvalidFormat, "nets writes exactly one format")
			}
			format = opts.Formats[0]

			data, err := cio.ReadFile(args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Execute(cmd.Context(), data, opts)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = cio.Stdin
				if format != pipeline.FormatDOT && format != pipeline.FormatJSON {
					path = outputPath(args[0], "", format, true)
				}
			}
			if err := cio.WriteArtifact(path, res.Artifacts[format]); err != nil {
				return err
			}
			if path != cio.Stdin {
				printSuccess("Wrote net diagram")
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot, svg, png, pdf, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().BoolVar(&detailed, "detailed", false, "list physical net members in each net label")
	cmd.Flags().BoolVar(&singletons, "singletons", false, "keep unnamed single-port nets")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
