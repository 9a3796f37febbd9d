// Package config reads the service configuration from the environment.
package config

import "os"

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// GenAIAPIKey enables caption suggestions when set.
	GenAIAPIKey string
	// GenAIModel overrides the default suggestion model.
	GenAIModel string
	// SeedFile optionally points at a JSON array of post inputs loaded
	// into the store at startup.
	SeedFile string
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Addr:        addr,
		GenAIAPIKey: os.Getenv("GEMINI_API_KEY"),
		GenAIModel:  os.Getenv("GENAI_MODEL"),
		SeedFile:    os.Getenv("SEED_FILE"),
	}
}
