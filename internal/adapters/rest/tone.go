package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
	"github.com/avaldez-labs/moodtunes/internal/core/services"
)

// toneRequest accepts either a conversation window or a bare text field.
// A present context wins over text, even when both are set.
type toneRequest struct {
	Context []string `json:"context"`
	Text    string   `json:"text"`
}

type toneResponse struct {
	ToneID    string  `json:"tone_id"`
	Score     float64 `json:"score"`
	LastFMTag string  `json:"lastfm_tag"`
}

// AnalyzeTone handles POST /tone
func (h *Handler) AnalyzeTone(w http.ResponseWriter, r *http.Request) {
	// 1. Decode the Request Body
	var req toneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Pick the classifier input: the most recent turns when a context
	// was submitted (nil means the field was absent), else the text field.
	text := req.Text
	if req.Context != nil {
		text = strings.Join(lastN(req.Context, toneContextWindow), " ")
	}

	// 3. Call the Service
	// A classifier failure degrades to neutral so the chat flow never sees
	// a hard failure from this route.
	reading, err := h.svc.AnalyzeTone(r.Context(), text)
	if err != nil {
		log.Printf("tone analysis degraded to neutral: %v", err)
		reading = services.ToneReading{
			Label: domain.LabelNeutral,
			Score: 0.0,
			Tag:   domain.GenreForTone(domain.LabelNeutral),
		}
	}

	// 4. Return the Response
	writeJSON(w, http.StatusOK, toneResponse{
		ToneID:    reading.Label,
		Score:     reading.Score,
		LastFMTag: reading.Tag,
	})
}
