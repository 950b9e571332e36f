package config

import (
	"connect4/game"
	"connect4/searcher"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "connect4/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type SearchConfig struct {
	Depth      int    `json:"depth"`
	Alpha      int    `json:"alpha"`
	Beta       int    `json:"beta"`
	Seed       uint64 `json:"seed"` // 0 seeds from the clock
	Goroutines int    `json:"goroutines"`
	InPlace    bool   `json:"in_place"`
}

type ExperimentConfig struct {
	Games     int    `json:"games"` // Per matchup
	OutputDir string `json:"output_dir"`
	Depths    []int  `json:"depths"`
	Baseline  int    `json:"baseline_depth"` // 0 plays a random agent
}

type Config struct {
	LogLevel   string           `json:"log_level"`
	Search     SearchConfig     `json:"search"`
	Weights    game.Weights     `json:"weights"`
	Experiment ExperimentConfig `json:"experiment"`
}

var DefaultConfig = Config{
	LogLevel: "info",
	Search: SearchConfig{
		Depth:      3,
		Alpha:      searcher.DefaultAlpha,
		Beta:       searcher.DefaultBeta,
		Goroutines: 1,
	},
	Weights: game.DefaultWeights,
	Experiment: ExperimentConfig{
		Games:     10,
		OutputDir: "experiments",
		Depths:    []int{1, 2, 3, 4, 5},
		Baseline:  3,
	},
}

// InitConfig loads the config file from the XDG config directories, falling back to defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return Load("")
	}
	return Load(absPath)
}

// Load reads path over DefaultConfig. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	config.Experiment.Depths = append([]int(nil), DefaultConfig.Experiment.Depths...)
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.Search.Depth < 0 {
		return &InvalidConfig{"search depth must not be negative"}
	}
	if c.Search.Alpha >= c.Search.Beta {
		return &InvalidConfig{"search alpha must be lower than beta"}
	}
	if c.Search.Goroutines < 1 {
		return &InvalidConfig{"search needs at least one goroutine"}
	}
	if c.Experiment.Games < 1 {
		return &InvalidConfig{"experiment needs at least one game per matchup"}
	}
	if c.Experiment.Baseline < 0 {
		return &InvalidConfig{"experiment baseline depth must not be negative"}
	}
	for _, depth := range c.Experiment.Depths {
		if depth < 0 {
			return &InvalidConfig{"experiment depths must not be negative"}
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// SearchOptions translates the search settings shared by every agent into Minimax options.
// Search.InPlace is a per-agent choice and is left to the caller.
func (c *Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithWindow(c.Search.Alpha, c.Search.Beta),
		searcher.WithGoroutines(c.Search.Goroutines),
		searcher.WithEvaluator(game.NewEvaluator(c.Weights)),
	}
	if c.Search.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Search.Seed))
	}
	return options
}

// Save writes the config to the user's XDG config directory and returns its path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err = json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}
