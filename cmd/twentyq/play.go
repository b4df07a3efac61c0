package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	zerologlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llmgames/twentyq/internal/game"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactive game: think of an object and answer the guesser's questions with Yes or No.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			provider, err := cfg.buildProvider()
			if err != nil {
				return err
			}
			if cfg.verbose {
				zerologlog.Info().Str("provider", cfg.provider).Str("model", cfg.model).Int("max_questions", cfg.maxQuestions).Msg("starting interactive game")
			}
			session := game.NewSession(provider, game.Config{
				MaxQuestions: cfg.maxQuestions,
				Model:        cfg.model,
				Temperature:  cfg.guesserTemp,
			})
			return runPlay(cmd.Context(), session)
		},
	}
}

func runPlay(ctx context.Context, session *game.Session) error {
	fmt.Println("AI:", game.OpeningMessage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Your answer (Yes/No): ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		res, err := session.SubmitTurn(ctx, input)
		if err != nil {
			// A failed completion leaves the session playable; anything
			// else ends the game.
			var ce *game.CompletionError
			if errors.As(err, &ce) {
				fmt.Println("The model could not be reached, try answering again:", ce.Err)
				continue
			}
			return err
		}

		fmt.Println("AI:", res.Response)

		if res.TokenMatch {
			fmt.Printf("The AI guessed the object in %d question(s)!\n", res.QuestionCount)
			return nil
		}
		if res.QuestionCount >= session.MaxQuestions() {
			fmt.Printf("Game over! The AI failed to guess the object in %d questions.\n", session.MaxQuestions())
			return nil
		}
	}
	return scanner.Err()
}
