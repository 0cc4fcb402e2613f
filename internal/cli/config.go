package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/circuitsvg/pkg/grid"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
	"github.com/matzehuels/circuitsvg/pkg/theme"
)

// Config is the optional TOML config file. Command-line flags override
// every value set here.
//
//	width = 1200
//	show_rats_nest = true
//
//	[grid]
//	cell_size = 1
//
//	[theme.pcb]
//	board = "#0b3d0b"
//
//	[cache]
//	redis_addr = "localhost:6379"
//	ttl = "24h"
type Config struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	View    string   `toml:"view"`
	Formats []string `toml:"formats"`

	DrawPaddingOutsideBoard *bool  `toml:"draw_padding_outside_board"`
	ShowRatsNest            bool   `toml:"show_rats_nest"`
	ShowSolderMask          bool   `toml:"show_solder_mask"`
	ShowPorts               bool   `toml:"show_ports"`
	Layer                   string `toml:"layer"`

	Grid  grid.Options    `toml:"grid"`
	Theme theme.Overrides `toml:"theme"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the artifact cache backend. RedisAddr or RedisURL
// switch from the file cache to Redis.
type CacheConfig struct {
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	RedisURL  string   `toml:"redis_url"`
	Prefix    string   `toml:"prefix"`
	TTL       duration `toml:"ttl"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// duration decodes TOML strings such as "36h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// defaultConfigPath returns ~/.config/circuitsvg/config.toml, honouring
// XDG_CONFIG_HOME.
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, which may be missing; an explicit path must exist.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	if _, err := theme.Default().Apply(cfg.Theme); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	logger.Debug("loaded config", "file", path)
	return &cfg, nil
}

// applyTo copies config values into opts for every setting whose flag was
// not given on the command line.
func (cfg *Config) applyTo(opts *pipeline.Options, changed func(flag string) bool) error {
	if cfg.Width != 0 && !changed("width") {
		opts.Width = cfg.Width
	}
	if cfg.Height != 0 && !changed("height") {
		opts.Height = cfg.Height
	}
	if cfg.View != "" && !changed("view") {
		opts.View = cfg.View
	}
	if len(cfg.Formats) > 0 && !changed("format") {
		opts.Formats = cfg.Formats
	}

	if cfg.DrawPaddingOutsideBoard != nil && !changed("padding") {
		opts.PCB.DrawPaddingOutsideBoard = cfg.DrawPaddingOutsideBoard
	}
	if cfg.ShowRatsNest && !changed("ratsnest") {
		opts.PCB.ShowRatsNest = true
	}
	if cfg.ShowSolderMask && !changed("soldermask") {
		opts.PCB.ShowSolderMask = true
	}
	if cfg.ShowPorts && !changed("ports") {
		opts.PCB.ShowPorts = true
	}
	if cfg.Layer != "" && !changed("layer") {
		opts.PCB.Layer = cfg.Layer
	}

	if cfg.Grid.CellSize != 0 && !changed("grid") {
		opts.PCB.Grid = cfg.Grid
		opts.Schematic.Grid = cfg.Grid
	}

	if len(cfg.Theme) > 0 {
		base := theme.Default()
		if opts.Theme != nil {
			base = *opts.Theme
		}
		t, err := base.Apply(cfg.Theme)
		if err != nil {
			return err
		}
		opts.Theme = &t
	}
	return nil
}
