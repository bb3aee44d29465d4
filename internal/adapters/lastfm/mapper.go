package lastfm

import "github.com/avaldez-labs/moodtunes/internal/core/domain"

// mapTracks converts wire tracks to the canonical domain shape, preserving
// upstream order. A missing artist stays absent, never "".
func mapTracks(wire []lastfmTrack) []domain.Track {
	tracks := make([]domain.Track, 0, len(wire))
	for _, t := range wire {
		tracks = append(tracks, domain.Track{
			Name:   t.Name,
			Artist: t.Artist.Name,
			URL:    t.URL,
		})
	}
	return tracks
}
