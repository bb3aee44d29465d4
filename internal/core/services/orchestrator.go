package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
	"github.com/avaldez-labs/moodtunes/internal/core/ports"
)

// ErrInvalidInput marks caller mistakes (missing required arguments) so the
// HTTP layer can answer 400 instead of 500.
var ErrInvalidInput = errors.New("invalid input")

// ToneReading is a classified tone together with its catalog tag.
type ToneReading struct {
	Label string
	Score float64
	Tag   string
}

// Orchestrator coordinates the three upstream collaborators.
type Orchestrator struct {
	classifier ports.ToneClassifier
	replies    ports.ReplyGenerator
	catalog    ports.TrackCatalog
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(classifier ports.ToneClassifier, replies ports.ReplyGenerator, catalog ports.TrackCatalog) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		replies:    replies,
		catalog:    catalog,
	}
}

// AnalyzeTone classifies text and maps the detected emotion to a catalog tag.
func (o *Orchestrator) AnalyzeTone(ctx context.Context, text string) (ToneReading, error) {
	tone, err := o.classifier.AnalyzeTone(ctx, text)
	if err != nil {
		return ToneReading{}, fmt.Errorf("service: tone analysis: %w", err)
	}
	return ToneReading{
		Label: tone.Label,
		Score: tone.Score,
		Tag:   domain.GenreForTone(tone.Label),
	}, nil
}

// GenerateReply produces a reply for the given turns. Windowing of the
// conversation is the caller's responsibility.
func (o *Orchestrator) GenerateReply(ctx context.Context, turns []string, tone string) (string, error) {
	reply, err := o.replies.GenerateReply(ctx, turns, tone)
	if err != nil {
		return "", fmt.Errorf("service: generate reply: %w", err)
	}
	return reply, nil
}

// TopTracksByTag looks up the catalog's top tracks for a mood tag.
func (o *Orchestrator) TopTracksByTag(ctx context.Context, tag string, limit int) ([]domain.Track, error) {
	if tag == "" {
		return nil, fmt.Errorf("service: %w: tag required", ErrInvalidInput)
	}
	tracks, err := o.catalog.TopTracksByTag(ctx, tag, limit)
	if err != nil {
		return nil, fmt.Errorf("service: top tracks: %w", err)
	}
	return tracks, nil
}

// SimilarTracks looks up tracks similar to a seed track.
func (o *Orchestrator) SimilarTracks(ctx context.Context, track, artist string, limit int) ([]domain.Track, error) {
	if track == "" || artist == "" {
		return nil, fmt.Errorf("service: %w: track and artist required", ErrInvalidInput)
	}
	tracks, err := o.catalog.SimilarTracks(ctx, track, artist, limit)
	if err != nil {
		return nil, fmt.Errorf("service: similar tracks: %w", err)
	}
	return tracks, nil
}
