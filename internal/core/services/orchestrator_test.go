package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
)

type stubClassifier struct {
	result domain.ToneResult
	err    error
}

func (s *stubClassifier) AnalyzeTone(ctx context.Context, text string) (domain.ToneResult, error) {
	return s.result, s.err
}

type stubReplies struct {
	reply string
	err   error
}

func (s *stubReplies) GenerateReply(ctx context.Context, turns []string, tone string) (string, error) {
	return s.reply, s.err
}

type stubCatalog struct {
	tracks []domain.Track
	err    error

	gotTag, gotTrack, gotArtist string
	gotLimit                    int
}

func (s *stubCatalog) TopTracksByTag(ctx context.Context, tag string, limit int) ([]domain.Track, error) {
	s.gotTag, s.gotLimit = tag, limit
	return s.tracks, s.err
}

func (s *stubCatalog) SimilarTracks(ctx context.Context, track, artist string, limit int) ([]domain.Track, error) {
	s.gotTrack, s.gotArtist, s.gotLimit = track, artist, limit
	return s.tracks, s.err
}

func TestAnalyzeToneMapsGenre(t *testing.T) {
	tests := []struct {
		label   string
		wantTag string
	}{
		{"joy", "happy"},
		{"fear", "melancholic"},
		{"neutral", "chill"},
		{"something-new", "chill"},
	}

	for _, tt := range tests {
		svc := NewOrchestrator(&stubClassifier{result: domain.ToneResult{Label: tt.label, Score: 0.9}}, &stubReplies{}, &stubCatalog{})
		reading, err := svc.AnalyzeTone(context.Background(), "text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reading.Label != tt.label || reading.Score != 0.9 || reading.Tag != tt.wantTag {
			t.Errorf("AnalyzeTone(%s): got %+v, want tag %q", tt.label, reading, tt.wantTag)
		}
	}
}

func TestAnalyzeToneWrapsClassifierError(t *testing.T) {
	svc := NewOrchestrator(&stubClassifier{err: errors.New("boom")}, &stubReplies{}, &stubCatalog{})
	_, err := svc.AnalyzeTone(context.Background(), "text")
	if err == nil || err.Error() != "service: tone analysis: boom" {
		t.Errorf("got %v", err)
	}
}

func TestTrackLookupsValidateInput(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewOrchestrator(&stubClassifier{}, &stubReplies{}, catalog)

	if _, err := svc.TopTracksByTag(context.Background(), "", 8); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty tag: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.SimilarTracks(context.Background(), "", "artist", 8); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty track: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.SimilarTracks(context.Background(), "track", "", 8); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty artist: got %v, want ErrInvalidInput", err)
	}
	if catalog.gotLimit != 0 {
		t.Error("catalog must not be called for invalid input")
	}
}

func TestTrackLookupsForwardParameters(t *testing.T) {
	catalog := &stubCatalog{tracks: []domain.Track{{Name: "a"}, {Name: "b"}}}
	svc := NewOrchestrator(&stubClassifier{}, &stubReplies{}, catalog)

	tracks, err := svc.TopTracksByTag(context.Background(), "chill", 8)
	if err != nil || len(tracks) != 2 {
		t.Fatalf("got (%v, %v)", tracks, err)
	}
	if catalog.gotTag != "chill" || catalog.gotLimit != 8 {
		t.Errorf("forwarded: tag=%q limit=%d", catalog.gotTag, catalog.gotLimit)
	}

	if _, err := svc.SimilarTracks(context.Background(), "Yesterday", "The Beatles", 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.gotTrack != "Yesterday" || catalog.gotArtist != "The Beatles" {
		t.Errorf("forwarded: track=%q artist=%q", catalog.gotTrack, catalog.gotArtist)
	}
}
