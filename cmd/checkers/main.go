// The checkers command solves a checkers puzzle: it reads a grid position
// from -inputfile, plays best moves for both sides with the alpha-beta
// solver until the game ends, and writes the resulting sequence of grids
// to -outputfile. It exits 0 on a successfully written solution and
// non-zero if the input is missing or malformed.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zdavid4525/checkers-ai/automatic"
	"github.com/zdavid4525/checkers-ai/config"
	"github.com/zdavid4525/checkers-ai/gridio"
)

var (
	GitVersion string
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = log.Output(output)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("bad-config")
		os.Exit(1)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if GitVersion != "" {
		log.Info().Str("version", GitVersion).Msg("checkers-solver")
	}

	if cfg.SelfPlayGames > 0 {
		results, err := automatic.PlayRandomGames(context.Background(), cfg.SelfPlayGames, cfg.MaxTurns)
		if err != nil {
			log.Error().Err(err).Msg("self-play-failed")
			os.Exit(1)
		}
		fmt.Println(automatic.Summarize(results))
		return
	}

	if cfg.InputFile == "" || cfg.OutputFile == "" {
		log.Error().Msg("both -inputfile and -outputfile are required")
		os.Exit(1)
	}

	pos, err := gridio.ParsePositionFile(cfg.InputFile)
	if err != nil {
		log.Error().Err(err).Str("inputfile", cfg.InputFile).Msg("cannot-read-puzzle")
		os.Exit(1)
	}

	runner, err := automatic.NewGameRunner(nil, cfg)
	if err != nil {
		log.Error().Err(err).Msg("cannot-initialize-solver")
		os.Exit(1)
	}
	start := time.Now()
	if err := runner.PlayFullGame(context.Background(), pos); err != nil {
		log.Error().Err(err).Msg("solve-failed")
		os.Exit(1)
	}
	g := runner.Game()
	if winner, werr := g.Winner(); werr == nil {
		log.Info().
			Str("winner", winner.String()).
			Int("plies", g.NumTurns()).
			Float64("elapsed-sec", time.Since(start).Seconds()).
			Msg("solved")
	}

	if err := gridio.WritePositionsFile(cfg.OutputFile, g.History()); err != nil {
		log.Error().Err(err).Str("outputfile", cfg.OutputFile).Msg("cannot-write-solution")
		os.Exit(1)
	}
}
