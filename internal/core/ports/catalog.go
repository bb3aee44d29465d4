package ports

import (
	"context"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
)

// TrackCatalog looks up tracks by mood tag or by similarity to a seed track.
//
// Both operations run in degraded mode when the catalog credential is
// missing or the upstream is unreachable: they return an empty slice and a
// nil error. Only a malformed response body surfaces as ErrCatalog.
// Upstream result order is preserved.
type TrackCatalog interface {
	TopTracksByTag(ctx context.Context, tag string, limit int) ([]domain.Track, error)
	SimilarTracks(ctx context.Context, track, artist string, limit int) ([]domain.Track, error)
}
