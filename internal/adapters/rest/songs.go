package rest

import (
	"encoding/json"
	"net/http"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
)

type topSongsRequest struct {
	Tag string `json:"tag"`
}

type similarSongsRequest struct {
	Track  string `json:"track"`
	Artist string `json:"artist"`
}

type songsResponse struct {
	Tracks []domain.Track `json:"tracks"`
}

// TopSongs handles POST /songs
func (h *Handler) TopSongs(w http.ResponseWriter, r *http.Request) {
	// 1. Decode the Request Body
	var req topSongsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Validate Input
	if req.Tag == "" {
		writeError(w, http.StatusBadRequest, "tag required")
		return
	}

	// 3. Call the Service. The catalog client swallows network failures
	// into an empty list; only a malformed upstream body reaches this
	// error path.
	tracks, err := h.svc.TopTracksByTag(r.Context(), req.Tag, defaultTrackLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// 4. Return the Response
	writeJSON(w, http.StatusOK, songsResponse{Tracks: tracks})
}

// SimilarSongs handles POST /simmilarsongs
func (h *Handler) SimilarSongs(w http.ResponseWriter, r *http.Request) {
	var req similarSongsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Track == "" || req.Artist == "" {
		writeError(w, http.StatusBadRequest, "track and artist required")
		return
	}

	tracks, err := h.svc.SimilarTracks(r.Context(), req.Track, req.Artist, defaultTrackLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, songsResponse{Tracks: tracks})
}
