package cli

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

// renderResult is the outcome of rendering one input file.
type renderResult struct {
	input  string
	files  []string
	stats  pipeline.Stats
	cached bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   renderFlags
		output  string
		jobs    int
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "render <file.json>...",
		Short: "Render circuit JSON files to SVG, PNG, PDF or JSON",
		Long: `Render draws each input file in the selected view and writes one output file
per format next to the input (board.json -> board.svg). Use "-" to read from
stdin. With a single input and format, --output names the file and "-"
writes to stdout.

Files are rendered in parallel; results are cached by content hash.`,
		Example: `  circuitsvg render board.json
  circuitsvg render --view schematic -f svg,png *.json
  circuitsvg render --board b1 --ratsnest --grid 1 board.json -o board.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.cfg())
			if err != nil {
				return err
			}
			opts.Refresh = refresh

			// Validate a copy so each file can still attach its own logger.
			check := opts
			if err := check.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if output == cio.Stdin && (len(args) > 1 || len(check.Formats) > 1) {
				return errors.New(errors.ErrCodeInvalidInput, "--output - needs a single input and a single format")
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			return c.runRender(cmd.Context(), runner, args, output, jobs, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single input) or base path")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files rendered in parallel")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender renders every input concurrently and prints a summary per file
// in input order.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, inputs []string, output string, jobs int, opts pipeline.Options) error {
	quiet := output == cio.Stdin
	prog := newProgress(c.Logger)

	results := make([]renderResult, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	var spinner *renderSpinner
	if !quiet && len(inputs) > 1 {
		spinner = newRenderSpinner(ctx, c.spinnerOut, len(inputs))
		spinner.Start()
	}
	for i, input := range inputs {
		g.Go(func() error {
			logger := c.Logger.With("file", input)
			res, err := renderFile(withLogger(ctx, logger), runner, input, output, len(inputs) == 1, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = res
			spinner.Advance(input, res.stats)
			return nil
		})
	}
	err := g.Wait()
	spinner.Stop()
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}

	for _, res := range results {
		printSuccess("Rendered %s", res.input)
		printStats(res.stats, res.cached)
		sort.Strings(res.files)
		for _, f := range res.files {
			printFile(f)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(inputs)))
	return nil
}

func renderFile(ctx context.Context, runner *pipeline.Runner, input, output string, single bool, opts pipeline.Options) (renderResult, error) {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	data, err := cio.ReadFile(input)
	if err != nil {
		return renderResult{}, err
	}
	res, err := runner.Execute(ctx, data, opts)
	if err != nil {
		return renderResult{}, err
	}

	out := renderResult{input: input, stats: res.Stats, cached: res.CacheInfo.RenderHit}
	singleFile := single && len(res.Artifacts) == 1
	for format, artifact := range res.Artifacts {
		path := outputPath(input, output, format, singleFile)
		if err := cio.WriteArtifact(path, artifact); err != nil {
			return renderResult{}, err
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(artifact))
		out.files = append(out.files, path)
	}
	return out, nil
}
