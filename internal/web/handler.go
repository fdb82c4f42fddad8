// Package web hosts the phaselab HTTP API and the embedded analyzer page.
// Routes and response envelopes follow the established wire contract so
// existing front ends work against this server unmodified.
// Implements: prd005-http-api; docs/ARCHITECTURE § HTTP API.
package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mesh-intelligence/phaselab/internal/results"
	"github.com/mesh-intelligence/phaselab/pkg/analyzer"
	"github.com/mesh-intelligence/phaselab/pkg/types"
)

//go:embed index.html
var indexHTML []byte

// Handler serves the analyzer API backed by an immutable catalog. The
// journal is optional; when nil, save requests are ignored.
type Handler struct {
	catalog  *types.Catalog
	analyzer *analyzer.Analyzer
	journal  *results.Journal
}

// NewHandler builds the HTTP handler for the analyzer server.
func NewHandler(catalog *types.Catalog, a *analyzer.Analyzer, journal *results.Journal) http.Handler {
	h := &Handler{catalog: catalog, analyzer: a, journal: journal}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.home)
	mux.HandleFunc("/api/liquids", h.listSubstances)
	mux.HandleFunc("/api/analyze", h.analyze)
	mux.HandleFunc("/api/health", h.health)

	return withCORS(mux)
}

// withCORS adds permissive cross-origin headers and answers preflight
// requests so browser front ends on other origins can call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// home serves the embedded analyzer page.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// listSubstances returns the substance keys and display names in catalog
// order.
func (h *Handler) listSubstances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// The liquids object is assembled by hand so the JSON text keeps the
	// catalog's insertion order; marshaling a map would sort the keys.
	var liquids bytes.Buffer
	liquids.WriteString("{")
	for i, s := range h.catalog.List() {
		if i > 0 {
			liquids.WriteString(",")
		}
		key, err := json.Marshal(s.Key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		name, err := json.Marshal(s.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		liquids.Write(key)
		liquids.WriteString(":")
		liquids.Write(name)
	}
	liquids.WriteString("}")

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"liquids": json.RawMessage(liquids.Bytes()),
	})
}

// analyzeRequest is the POST /api/analyze body.
type analyzeRequest struct {
	Temperature *float64 `json:"temperature"`
	Pressure    *float64 `json:"pressure"`
	Liquid      string   `json:"liquid"`
	Save        bool     `json:"save"`
}

// analyze classifies a substance state and optionally journals the result.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Temperature == nil || req.Liquid == "" {
		writeError(w, http.StatusBadRequest, "temperature and liquid are required")
		return
	}
	pressure := 1.0
	if req.Pressure != nil {
		pressure = *req.Pressure
	}

	result, err := h.analyzer.Analyze(*req.Temperature, pressure, req.Liquid)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrInvalidPressure) || errors.Is(err, types.ErrUnknownSubstance) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	if req.Save && h.journal != nil {
		if _, err := h.journal.Append(result); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("save result: %v", err))
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": result,
	})
}

// health reports server liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"message": "phaselab state analyzer server is running",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
