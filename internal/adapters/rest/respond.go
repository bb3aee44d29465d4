package rest

import (
	"encoding/json"
	"net/http"
)

type respondRequest struct {
	Context []string `json:"context"`
	Tone    string   `json:"tone"`
}

type respondResponse struct {
	Response string `json:"response"`
}

// GenerateResponse handles POST /response
//
// This route never returns a non-200 for a completion failure: the error is
// wrapped into a textual reply so the chat flow stays uninterrupted.
func (h *Handler) GenerateResponse(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tone := req.Tone
	if tone == "" {
		tone = "neutral"
	}

	reply, err := h.svc.GenerateReply(r.Context(), lastN(req.Context, replyContextWindow), tone)
	if err != nil {
		reply = "Error generating reply: " + err.Error()
	}

	writeJSON(w, http.StatusOK, respondResponse{Response: reply})
}
