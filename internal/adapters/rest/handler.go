package rest

import (
	_ "embed"
	"net/http"

	"github.com/avaldez-labs/moodtunes/internal/core/services"
)

// Window and limit defaults applied by the HTTP surface before calling the
// core service.
const (
	toneContextWindow  = 3
	replyContextWindow = 6
	defaultTrackLimit  = 8
)

//go:embed static/index.html
var indexHTML []byte

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc   *services.Orchestrator // Dependency on the Core Service
	chain http.Handler           // router wrapped in middleware
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator) *Handler {
	h := &Handler{svc: svc}

	router := http.NewServeMux()
	h.routes(router)
	h.chain = recoverPanics(allowCORS(logRequests(router)))

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request through the middleware chain.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes(router *http.ServeMux) {
	// Chat UI
	router.HandleFunc("GET /{$}", h.Home)
	// Tone & conversation
	router.HandleFunc("POST /tone", h.AnalyzeTone)
	router.HandleFunc("POST /response", h.GenerateResponse)
	// Track lookups
	router.HandleFunc("POST /songs", h.TopSongs)
	router.HandleFunc("POST /simmilarsongs", h.SimilarSongs)
}

// Home serves the static chat page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}
