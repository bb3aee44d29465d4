package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avaldez-labs/moodtunes/internal/adapters/groq"
	"github.com/avaldez-labs/moodtunes/internal/adapters/lastfm"
	"github.com/avaldez-labs/moodtunes/internal/adapters/rest"
	"github.com/avaldez-labs/moodtunes/internal/adapters/watson"
	"github.com/avaldez-labs/moodtunes/internal/config"
	"github.com/avaldez-labs/moodtunes/internal/core/services"
)

func main() {
	// 1. Configuration (Environment Variables)
	// A missing credential degrades that feature; it never blocks startup.
	cfg := config.Load()
	if cfg.WatsonAPIKey == "" || cfg.WatsonURL == "" {
		log.Println("WARN: IBM_NLU_APIKEY/IBM_NLU_URL not set, tone analysis degrades to neutral")
	}
	if cfg.GroqAPIKey == "" {
		log.Println("WARN: GROQ_API_KEY not set, replies will report a configuration error")
	}
	if cfg.LastFMAPIKey == "" {
		log.Println("WARN: LASTFM_API_KEY not set, song lookups return empty lists")
	}

	// 2. Initialize "Driven" Adapters (The Tools)
	classifier := watson.NewClient(cfg.WatsonAPIKey, cfg.WatsonURL, nil)
	replies := groq.NewClient(cfg.GroqAPIKey, "", cfg.GroqModel)
	catalog := lastfm.NewClient(cfg.LastFMAPIKey, "")

	// 3. Initialize Core Logic (The Driver)
	svc := services.NewOrchestrator(classifier, replies, catalog)

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(svc)

	// 5. Start the Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Println("------------------------------------------------")
	log.Printf("🎶 Moodtunes API is running on http://localhost%s", addr)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
