package main

import (
	"fmt"

	zerologlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llmgames/twentyq/internal/game"
	"github.com/llmgames/twentyq/internal/sim"
)

func newSimulateCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run automated self-play rounds and report success statistics.",
		Args:  cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return runSimulate(c, cfg)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&cfg.rounds, "rounds", "n", 10, "number of rounds to simulate (env: TWENTYQ_ROUNDS)")
	fs.IntVar(&cfg.workers, "workers", 1, "number of rounds to run concurrently (env: TWENTYQ_WORKERS)")
	fs.StringVar(&cfg.conceptsFile, "concepts", "", "path to a concept catalog, one concept per line (env: TWENTYQ_CONCEPTS)")
	fs.StringVar(&cfg.exportFile, "export-file", "", "append batch results to this file (env: TWENTYQ_EXPORT_FILE)")
	fs.StringVar(&cfg.responderModel, "responder-model", "", "model used by the responder, defaults to --model (env: TWENTYQ_RESPONDER_MODEL)")
	fs.Float64Var(&cfg.responderTemp, "responder-temperature", 0, "sampling temperature for the responder (env: TWENTYQ_RESPONDER_TEMPERATURE)")

	return cmd
}

func runSimulate(cmd *cobra.Command, cfg *Config) error {
	provider, err := cfg.buildProvider()
	if err != nil {
		return err
	}

	concepts := sim.DefaultConcepts
	if cfg.conceptsFile != "" {
		concepts, err = sim.ReadConcepts(cfg.conceptsFile)
		if err != nil {
			return err
		}
	}

	responderModel := cfg.responderModel
	if responderModel == "" {
		responderModel = cfg.model
	}

	runner := &sim.Runner{
		Responder:            provider,
		ResponderModel:       responderModel,
		ResponderTemperature: cfg.responderTemp,
		Workers:              cfg.workers,
	}
	factory := func() *game.Session {
		return game.NewSession(provider, game.Config{
			MaxQuestions: cfg.maxQuestions,
			Model:        cfg.model,
			Temperature:  cfg.guesserTemp,
		})
	}

	zerologlog.Info().
		Str("provider", cfg.provider).
		Str("model", cfg.model).
		Int("rounds", cfg.rounds).
		Int("concepts", len(concepts)).
		Int("workers", cfg.workers).
		Msg("starting batch")

	summary, err := runner.Evaluate(cmd.Context(), factory, concepts, cfg.rounds)
	if err != nil {
		return err
	}

	if cfg.verbose {
		for i, res := range summary.Results {
			zerologlog.Info().
				Int("round", i+1).
				Str("concept", res.Concept).
				Str("outcome", string(res.Outcome)).
				Int("questions", res.QuestionsUsed).
				Msg("round finished")
		}
	}
	zerologlog.Info().
		Int("successes", summary.SuccessCount).
		Float64("success_rate", summary.SuccessRate).
		Float64("avg_questions", summary.AverageQuestions).
		Msg("batch finished")

	fmt.Printf("Successes: %d/%d (%.0f%%)\n", summary.SuccessCount, len(summary.Results), summary.SuccessRate*100)
	fmt.Printf("Average questions used: %.2f\n", summary.AverageQuestions)

	if cfg.exportFile != "" {
		if err := sim.ExportSummary(summary, cfg.exportFile); err != nil {
			return err
		}
		zerologlog.Info().Str("file", cfg.exportFile).Msg("results exported")
	}

	return nil
}
