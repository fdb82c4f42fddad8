package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/phaselab/internal/results"
	"github.com/mesh-intelligence/phaselab/pkg/analyzer"
	"github.com/mesh-intelligence/phaselab/pkg/types"
)

func newTestHandler(t *testing.T) (http.Handler, *results.Journal) {
	t.Helper()
	catalog := types.DefaultCatalog()
	journal := results.NewJournal(t.TempDir())
	return NewHandler(catalog, analyzer.New(catalog), journal), journal
}

func TestListSubstances(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/liquids", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool              `json:"success"`
		Liquids map[string]string `json:"liquids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Liquids, 5)
	assert.Equal(t, "Water (H₂O)", body.Liquids["water"])

	// The raw JSON text must keep catalog order.
	text := rec.Body.String()
	assert.Less(t, strings.Index(text, `"water"`), strings.Index(text, `"ethanol"`))
	assert.Less(t, strings.Index(text, `"nitrogen"`), strings.Index(text, `"oxygen"`))
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantState  string
		wantErrSub string
	}{
		{
			name:       "liquid water",
			body:       `{"temperature": 25.0, "pressure": 1.0, "liquid": "water"}`,
			wantStatus: http.StatusOK,
			wantState:  types.StateLiquid,
		},
		{
			name:       "pressure shifts boiling point",
			body:       `{"temperature": 105.0, "pressure": 2.0, "liquid": "water"}`,
			wantStatus: http.StatusOK,
			wantState:  types.StateLiquid,
		},
		{
			name:       "frozen at boundary",
			body:       `{"temperature": 0.0, "pressure": 1.0, "liquid": "water"}`,
			wantStatus: http.StatusOK,
			wantState:  types.StateSolid,
		},
		{
			name:       "pressure defaults to one atm",
			body:       `{"temperature": 101.0, "liquid": "water"}`,
			wantStatus: http.StatusOK,
			wantState:  types.StateGas,
		},
		{
			name:       "unknown substance",
			body:       `{"temperature": 10.0, "pressure": 1.0, "liquid": "helium"}`,
			wantStatus: http.StatusBadRequest,
			wantErrSub: "unknown substance",
		},
		{
			name:       "invalid pressure",
			body:       `{"temperature": 10.0, "pressure": -1.0, "liquid": "water"}`,
			wantStatus: http.StatusBadRequest,
			wantErrSub: "pressure",
		},
		{
			name:       "malformed body",
			body:       `{"temperature": `,
			wantStatus: http.StatusBadRequest,
			wantErrSub: "invalid request body",
		},
		{
			name:       "missing fields",
			body:       `{"liquid": "water"}`,
			wantStatus: http.StatusBadRequest,
			wantErrSub: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Success bool                  `json:"success"`
				Error   string                `json:"error"`
				Results *types.AnalysisResult `json:"results"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantStatus == http.StatusOK {
				assert.True(t, body.Success)
				require.NotNil(t, body.Results)
				assert.Equal(t, tt.wantState, body.Results.State)
				return
			}
			assert.False(t, body.Success)
			assert.Contains(t, body.Error, tt.wantErrSub)
		})
	}
}

func TestAnalyzeSavesToJournal(t *testing.T) {
	h, journal := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"temperature": 120.0, "pressure": 1.0, "liquid": "water", "save": true}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := journal.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.StateGas, entries[0].State)
	assert.NotEmpty(t, entries[0].AnalysisTime)
}

func TestAnalyzeWithoutSaveDoesNotJournal(t *testing.T) {
	h, journal := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"temperature": 25.0, "pressure": 1.0, "liquid": "water"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := journal.All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHomeServesEmbeddedPage(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Liquid State Analyzer")
}

func TestHomeUnknownPath(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/analyze", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/liquids", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
