// Package config reads the service configuration from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPort = 5000

// Config holds everything the service needs at startup. A missing
// credential degrades the corresponding feature instead of blocking boot.
type Config struct {
	Port int

	WatsonAPIKey string
	WatsonURL    string

	GroqAPIKey string
	GroqModel  string

	LastFMAPIKey string
}

// Load reads configuration from a .env file (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         portFromEnv(),
		WatsonAPIKey: os.Getenv("IBM_NLU_APIKEY"),
		WatsonURL:    os.Getenv("IBM_NLU_URL"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    os.Getenv("GROQ_MODEL"),
		LastFMAPIKey: os.Getenv("LASTFM_API_KEY"),
	}
}

func portFromEnv() int {
	raw := os.Getenv("PORT")
	if raw == "" {
		return defaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}
