package config

import "os"

// Config holds provider credentials and endpoints. Game parameters live on
// the CLI flag surface; only secrets and hosts come straight from the
// environment.
type Config struct {
	OpenAIKey     string
	OpenAIBaseURL string
	OllamaHost    string
}

func FromEnv() Config {
	c := Config{}
	c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	c.OllamaHost = getenv("OLLAMA_HOST", "http://localhost:11434")
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
