package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CTAG07/confluxer/pkg/confluxer"
)

// maxGenerateCount caps the number of names a single request may ask for.
const maxGenerateCount = 100

// GenerateAPI holds the dependencies for the generation API handlers.
type GenerateAPI struct {
	c      *confluxer.Confluxer
	rng    confluxer.Rand
	logger *slog.Logger
}

// GenerateResponse is the body returned by /api/generate.
type GenerateResponse struct {
	Names []string `json:"names"`
}

// NewGenerateAPI creates a new instance of the GenerateAPI.
func NewGenerateAPI(c *confluxer.Confluxer, rng confluxer.Rand, logger *slog.Logger) *GenerateAPI {
	return &GenerateAPI{
		c:      c,
		rng:    rng,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for all /api endpoints.
func (a *GenerateAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", a.handleGenerate)
	mux.HandleFunc("/api/stats", a.handleStats)
}

// handleGenerate handles GET /api/generate?length=N&count=K.
func (a *GenerateAPI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		a.respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()
	length, err := strconv.Atoi(query.Get("length"))
	if err != nil {
		a.respondWithError(w, http.StatusBadRequest, "Query parameter 'length' must be an integer")
		return
	}
	count := 1
	if raw := query.Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 || count > maxGenerateCount {
			a.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Query parameter 'count' must be between 1 and %d", maxGenerateCount))
			return
		}
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, ok, err := a.c.NextWith(a.rng, length)
		if err != nil {
			if errors.Is(err, confluxer.ErrEmptyCorpus) {
				a.respondWithError(w, http.StatusServiceUnavailable, "The corpus is empty, nothing can be generated")
				return
			}
			a.logger.Error("Failed to generate", "length", length, "error", err)
			a.respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate: %v", err))
			return
		}
		if !ok {
			break
		}
		names = append(names, name)
	}

	a.respondWithJSON(w, http.StatusOK, GenerateResponse{Names: names})
}

// handleStats handles GET /api/stats.
func (a *GenerateAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		a.respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	a.respondWithJSON(w, http.StatusOK, a.c.Stats())
}

func (a *GenerateAPI) respondWithError(w http.ResponseWriter, code int, message string) {
	a.respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON writes payload as JSON. Encoding failures go to the logger,
// never to stdout.
func (a *GenerateAPI) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			a.logger.Error("Failed to encode JSON response", "status", code, "error", err)
		}
	}
}
