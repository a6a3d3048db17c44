package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"netlog-analyzer/internal/models"
)

func testServer() *Server {
	stable := models.Stable
	summary := models.RunSummary{
		Targets: []models.TargetReport{
			{Target: "altnews.in", Stability: &stable, Measurements: []models.Measurement{{Timestamp: "t", Hops: []models.Hop{}}}},
		},
		Stable: []string{"altnews.in"},
	}
	return New(summary, 8080, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleSummary(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary models.RunSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	require.Equal(t, []string{"altnews.in"}, summary.Stable)
}

func TestHandleTarget(t *testing.T) {
	h := testServer().Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/targets/altnews.in", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.TargetReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	require.Equal(t, "altnews.in", report.Target)
	require.Equal(t, models.Stable, *report.Stability)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/targets/unknown.example", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/summary", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
