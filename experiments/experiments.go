package experiments

import (
	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunDepthExperiment pairs a baseline agent against one search agent per configured depth.
// It returns the directory the records were written to.
func RunDepthExperiment(cfg *config.Config) (string, error) {
	baseline := metrics.AgentConfig{
		ID:      0,
		Depth:   cfg.Experiment.Baseline,
		Random:  cfg.Experiment.Baseline == 0,
		InPlace: cfg.Search.InPlace,
	}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range cfg.Experiment.Depths {
		ac := metrics.AgentConfig{ID: i + 1, Depth: depth, InPlace: cfg.Search.InPlace}
		configs = append(configs, ac)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, ac})
	}

	return runExperiment(cfg, "depth", configs, matchUps)
}

// RunImplementationExperiment plays clone, in-place and root-parallel search at the same
// depth against each other. Results only differ in tie-breaks, so it mostly measures speed.
func RunImplementationExperiment(cfg *config.Config) (string, error) {
	depth := cfg.Search.Depth
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: depth, Goroutines: 1},
		{ID: 2, Depth: depth, Goroutines: 1, InPlace: true},
		{ID: 3, Depth: depth, Goroutines: 4},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[0], configs[2]},
		{configs[1], configs[2]},
	}

	return runExperiment(cfg, "implementation", configs, matchUps)
}

func runExperiment(cfg *config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	games := cfg.Experiment.Games
	for i := range configs {
		configs[i].Seed = agentSeed(cfg.Search.Seed, configs[i].ID)
		if configs[i].Goroutines == 0 {
			configs[i].Goroutines = cfg.Search.Goroutines
		}
	}
	// Matchups hold copies, refresh them with the seeds assigned above
	for _, matchUp := range matchUps {
		for i := range matchUp {
			for _, ac := range configs {
				if ac.ID == matchUp[i].ID {
					matchUp[i] = ac
				}
			}
		}
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]
		wins := map[string]int{}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		agent1 := createAgent(cfg, config1)
		agent2 := createAgent(cfg, config2)
		for i := 0; i < games; i++ {
			// Alternate who moves first; agent1 always plays A
			first := game.A
			if i%2 == 1 {
				first = game.B
			}
			e := engine.NewLocalEngine(agent1, agent2, first)
			_, gameMetric, moveMetrics := e.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				Matchup:    mi + 1,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
			wins[gameMetric.Winner]++

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, games, gameMetric.Winner)
		}
		log.Info().
			Int("agent1_wins", wins[game.A.String()]).
			Int("agent2_wins", wins[game.B.String()]).
			Int("draws", wins[""]).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return writeRecords(cfg.Experiment.OutputDir, name, configs, gameRecords, moveRecords)
}

func writeRecords(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir(), nil
}

func createAgent(cfg *config.Config, ac metrics.AgentConfig) agent.Agent {
	if ac.Random {
		return agent.NewRandomAgent(rand.New(rand.NewSource(ac.Seed)))
	}

	options := cfg.SearchOptions()
	options = append(options,
		searcher.WithGoroutines(ac.Goroutines),
		searcher.WithSeed(ac.Seed),
		searcher.WithMetrics(),
	)
	if ac.InPlace {
		options = append(options, searcher.WithInPlace())
	}
	return agent.NewSearchAgent(searcher.NewMinimax(options...), ac.Depth)
}

// agentSeed derives a per-agent seed. A zero base seed falls back to the clock.
func agentSeed(base uint64, id int) uint64 {
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}
	return base + uint64(id)
}
