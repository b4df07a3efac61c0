package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llmgames/twentyq/internal/ai"
	"github.com/llmgames/twentyq/internal/ai/ollama"
	"github.com/llmgames/twentyq/internal/ai/openai"
	"github.com/llmgames/twentyq/internal/config"
)

type Config struct {
	provider       string
	model          string
	responderModel string
	maxQuestions   int
	guesserTemp    float64
	responderTemp  float64

	rounds       int
	workers      int
	conceptsFile string
	exportFile   string

	verbose bool
}

func (c *Config) validate() error {
	if c.provider != "openai" && c.provider != "ollama" {
		return fmt.Errorf("unknown provider (must be openai or ollama): %s", c.provider)
	}
	if c.maxQuestions < 1 {
		return fmt.Errorf("invalid question budget (must be at least 1): %d", c.maxQuestions)
	}
	return nil
}

func (c *Config) buildProvider() (ai.Provider, error) {
	env := config.FromEnv()
	switch c.provider {
	case "openai":
		return openai.New(env.OpenAIKey, env.OpenAIBaseURL), nil
	case "ollama":
		return ollama.New(env.OllamaHost), nil
	}
	return nil, fmt.Errorf("unknown provider: %s", c.provider)
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TWENTYQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "twentyq",
		Short:         "Play 20 Questions against an LLM guesser, or benchmark it with automated self-play.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.provider, "provider", "openai", "completion provider, openai or ollama (env: TWENTYQ_PROVIDER)")
	fs.StringVar(&cfg.model, "model", "gpt-3.5-turbo", "model used by the guesser (env: TWENTYQ_MODEL)")
	fs.IntVar(&cfg.maxQuestions, "max-questions", 20, "question budget per round (env: TWENTYQ_MAX_QUESTIONS)")
	fs.Float64Var(&cfg.guesserTemp, "guesser-temperature", 0.7, "sampling temperature for the guesser (env: TWENTYQ_GUESSER_TEMPERATURE)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: TWENTYQ_VERBOSE)")

	cmd.AddCommand(newPlayCmd(cfg), newSimulateCmd(cfg))

	bindEnv(v, fs)
	for _, sub := range cmd.Commands() {
		bindEnv(v, sub.Flags())
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("twentyq v{{.Version}}\n")

	return cmd
}

func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}
