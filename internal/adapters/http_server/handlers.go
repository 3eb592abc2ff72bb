package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"waypoint_parks/internal/app"
)

type Handlers struct{ Q *app.QueryService }

// notFoundBody matches the reference backend byte for byte.
var notFoundBody = []byte(`{"error": "Route not found"}`)

// MountHandlers registers the park listing plus the JSON 404 fallback.
// Unknown paths and non-GET methods share the same not-found response;
// the client treats anything but the one route as a miss.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/api/parks", h.listParks)
	s.mux.NotFound(routeNotFound)
	s.mux.MethodNotAllowed(routeNotFound)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundBody)
}

func (h *Handlers) listParks(w http.ResponseWriter, r *http.Request) {
	parks := h.Q.ListParks(r.Context())

	etag, body := calcETagAndBody(parks)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, body)
}
