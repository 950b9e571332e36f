package main

import (
	"connect4/config"
	"connect4/experiments"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON config file (default: search the XDG config directories)")
	experiment := flag.String("experiment", "depth", "Experiment to run: depth or implementation")
	depth := flag.Int("depth", 0, "Override the search depth")
	games := flag.Int("games", 0, "Override the number of games per matchup")
	seed := flag.Uint64("seed", 0, "Override the search seed")
	save := flag.Bool("save-config", false, "Write the effective config to the XDG config directory and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *games > 0 {
		cfg.Experiment.Games = *games
	}
	if *seed > 0 {
		cfg.Search.Seed = *seed
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Str("path", path).Msg("saved config")
		return
	}

	dir, err := run(*experiment, cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	log.Info().Str("dir", dir).Msgf("finished %s experiment", *experiment)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

func run(experiment string, cfg *config.Config) (string, error) {
	switch experiment {
	case "depth":
		return experiments.RunDepthExperiment(cfg)
	case "implementation":
		return experiments.RunImplementationExperiment(cfg)
	default:
		return "", fmt.Errorf("unknown experiment %q", experiment)
	}
}
