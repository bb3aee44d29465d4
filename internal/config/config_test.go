package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("IBM_NLU_APIKEY", "")
	t.Setenv("IBM_NLU_URL", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("LASTFM_API_KEY", "")

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Errorf("port: got %d, want %d", cfg.Port, defaultPort)
	}
	if cfg.WatsonAPIKey != "" || cfg.GroqAPIKey != "" || cfg.LastFMAPIKey != "" {
		t.Errorf("expected empty credentials, got %+v", cfg)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("IBM_NLU_APIKEY", "w-key")
	t.Setenv("IBM_NLU_URL", "https://nlu.example")
	t.Setenv("GROQ_API_KEY", "g-key")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("LASTFM_API_KEY", "l-key")

	cfg := Load()
	if cfg.Port != 8088 {
		t.Errorf("port: got %d", cfg.Port)
	}
	if cfg.WatsonAPIKey != "w-key" || cfg.WatsonURL != "https://nlu.example" {
		t.Errorf("watson config: %+v", cfg)
	}
	if cfg.GroqAPIKey != "g-key" || cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Errorf("groq config: %+v", cfg)
	}
	if cfg.LastFMAPIKey != "l-key" {
		t.Errorf("lastfm config: %+v", cfg)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	for _, raw := range []string{"not-a-number", "-1", "0"} {
		t.Setenv("PORT", raw)
		if cfg := Load(); cfg.Port != defaultPort {
			t.Errorf("PORT=%q: got %d, want default %d", raw, cfg.Port, defaultPort)
		}
	}
}
