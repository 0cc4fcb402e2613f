package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitsvg/pkg/buildinfo"
	"github.com/matzehuels/circuitsvg/pkg/cache"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "circuitsvg"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = "localhost:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
	spinnerOut io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), spinnerOut: os.Stderr}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "circuitsvg renders circuit element JSON as PCB and schematic drawings",
		Long: `circuitsvg converts a flat JSON array of circuit elements (boards, pads,
traces, schematic symbols, nets) into SVG, PNG or PDF drawings of the PCB or
the schematic, and into net connectivity diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/circuitsvg/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.boundsCommand())
	root.AddCommand(c.netsCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	if c.config != nil {
		return nil
	}
	cfg, err := loadConfig(c.configPath, c.Logger)
	if err != nil {
		return err
	}
	c.config = cfg
	return nil
}

// cfg returns the loaded config, or an empty one when the root pre-run
// hook has not run (as in tests calling commands directly).
func (c *CLI) cfg() *Config {
	if c.config == nil {
		return &Config{}
	}
	return c.config
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	runner.TTL = c.cfg().Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cc := c.cfg().Cache
	if cc.RedisAddr != "" || cc.RedisURL != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			URL:    cc.RedisURL,
			Addr:   cc.RedisAddr,
			Prefix: cc.Prefix,
		})
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the
// per-user cache directory.
func (c *CLI) cacheDir() (string, error) {
	if dir := c.cfg().Cache.Dir; dir != "" {
		return dir, nil
	}
	return cache.DefaultDir()
}

// outputPath returns the path of the format artifact for input. An explicit
// output is used as is when only one artifact is written; otherwise its
// extension is replaced per format. JSON reports get a .report.json suffix
// so they never overwrite the input.
func outputPath(input, output, format string, single bool) string {
	if output == "-" {
		return output
	}
	if output != "" && single {
		return output
	}
	base := output
	if base == "" {
		base = input
		if input == "-" {
			base = "circuit"
		}
	}
	if format == pipeline.FormatJSON {
		return basePath(base) + ".report.json"
	}
	return basePath(base) + "." + format
}

// basePath strips the extension from path.
func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// isTerminal reports whether stdout is a character device.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
