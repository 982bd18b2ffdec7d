package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Front ends selectable with Config.UI
const (
	UIPlain = "plain"
	UITerm  = "term"
	UIGUI   = "gui"
)

// PatternPlacement puts a named pattern at an origin cell
type PatternPlacement struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	RunConfig

	FrameRate      time.Duration      `json:"frame_rate"`
	UseMemoryPool  bool               `json:"use_memory_pool"`
	UseBoundedGrid bool               `json:"use_bounded_grid"`
	Interactive    bool               `json:"interactive"`
	Seed           int64              `json:"seed"`
	UI             string             `json:"ui"`
	CellSize       int                `json:"cell_size"`
	Cells          [][2]int           `json:"cells"`
	Patterns       []PatternPlacement `json:"patterns"`
	Verbose        bool               `json:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RunConfig: RunConfig{
			Width:      30,
			Height:     30,
			StartAlive: 90,
			MaxCycles:  0,
		},
		FrameRate:      100 * time.Millisecond,
		UseMemoryPool:  true,
		UseBoundedGrid: true, // Enable active region optimization
		Interactive:    false,
		Seed:           1,
		UI:             UIPlain,
		CellSize:       9,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override file values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width (1-100)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (1-100)")
	fs.IntVar(&c.StartAlive, "alive", c.StartAlive, "number of starting alive cells")
	fs.IntVar(&c.MaxCycles, "cycles", c.MaxCycles, "maximum cycles to run, 0 until extinction")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse generation buffers")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only evaluate the live region")
	fs.BoolVar(&c.Interactive, "prompt", c.Interactive, "ask for the run parameters on stdin")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random placement")
	fs.StringVar(&c.UI, "ui", c.UI, "front end: plain, term or gui")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels for the gui")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// ValidateUI checks the selected front end
func (c Config) ValidateUI() error {
	switch c.UI {
	case UIPlain, UITerm, UIGUI:
		return nil
	}
	return errors.Wrapf(ErrInvalidConfiguration, "[ValidateUI] unknown ui %q", c.UI)
}
