package lastfm

import "encoding/json"

// topTracksResponse is the wire shape of tag.gettoptracks.
type topTracksResponse struct {
	Tracks struct {
		Track []lastfmTrack `json:"track"`
	} `json:"tracks"`
}

// similarTracksResponse is the wire shape of track.getsimilar.
type similarTracksResponse struct {
	SimilarTracks struct {
		Track []lastfmTrack `json:"track"`
	} `json:"similartracks"`
}

type lastfmTrack struct {
	Name   string      `json:"name"`
	URL    string      `json:"url"`
	Artist artistField `json:"artist"`
}

// artistField tolerates the upstream's inconsistent artist shapes: a nested
// object with a name field, a bare string, or nothing at all. The union is
// resolved here, at the deserialization boundary, to an optional name so the
// rest of the code never re-inspects it.
type artistField struct {
	Name *string
}

func (a *artistField) UnmarshalJSON(data []byte) error {
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Name != "" {
		a.Name = &obj.Name
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && s != "" {
		a.Name = &s
		return nil
	}

	// Unusable shape: treat the artist as unknown rather than failing the
	// whole track list.
	a.Name = nil
	return nil
}
