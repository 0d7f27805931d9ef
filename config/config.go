// Package config holds the solver's runtime configuration, loaded from
// command-line flags plus an optional YAML settings file for engine
// tuning.
package config

import (
	"fmt"
	"os"

	"github.com/namsral/flag"
	"gopkg.in/yaml.v3"

	"github.com/zdavid4525/checkers-ai/eval"
)

// DefaultPlies is the default search depth limit.
const DefaultPlies = 9

// DefaultMaxTurns caps the number of plies the game loop will play before
// giving up on reaching a terminal position.
const DefaultMaxTurns = 500

type Config struct {
	InputFile  string
	OutputFile string

	Plies    int
	MaxTurns int

	SettingsFile string
	Settings     Settings

	SelfPlayGames int
	Debug         bool
}

// Settings are engine tunables read from the optional YAML settings file.
type Settings struct {
	Evaluation eval.Weights `yaml:"evaluation"`

	DisableIterativeDeepening bool    `yaml:"disable_iterative_deepening"`
	DisableTranspositionTable bool    `yaml:"disable_transposition_table"`
	TranspositionTableMemory  float64 `yaml:"transposition_table_memory"`
}

func defaultSettings() Settings {
	return Settings{
		Evaluation:               eval.DefaultWeights(),
		TranspositionTableMemory: 0.05,
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("checkers", flag.ContinueOnError)
	fs.StringVar(&c.InputFile, "inputfile", "", "the input file that contains the puzzle grid")
	fs.StringVar(&c.OutputFile, "outputfile", "", "the output file that will contain the solution")
	fs.IntVar(&c.Plies, "plies", DefaultPlies, "search depth limit in plies")
	fs.IntVar(&c.MaxTurns, "maxturns", DefaultMaxTurns, "maximum number of plies to play before stopping")
	fs.StringVar(&c.SettingsFile, "settings", "", "optional YAML file with engine settings")
	fs.IntVar(&c.SelfPlayGames, "selfplay", 0, "instead of solving, play this many randomized self-play games and report the outcomes")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Settings = defaultSettings()
	if c.SettingsFile != "" {
		if err := c.loadSettings(c.SettingsFile); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) loadSettings(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c.Settings); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return nil
}
