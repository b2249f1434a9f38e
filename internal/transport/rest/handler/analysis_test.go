package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdash/internal/cache"
	"brewdash/internal/config"
	"brewdash/internal/logger"
	"brewdash/internal/model"
	"brewdash/internal/service"
)

// newTestHandler wires the handler against a fake HR sheet endpoint with
// AI narration disabled.
func newTestHandler(t *testing.T, hrPayload string) (*AnalysisHandler, func()) {
	t.Helper()
	sheetSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hrPayload))
	}))

	log := logger.New()
	queue := service.NewRequestQueue(time.Millisecond)
	aiClient := service.NewAIClient(&config.AIConfig{}, queue, log)
	analysisSvc := service.NewAnalysisService(
		service.NewFourPService(log),
		service.NewQuestionService(log),
		service.NewNarratorService(aiClient, 30, log),
		cache.NewMemoryCache(time.Hour),
		nil,
		log,
	)
	sheets := service.NewSheetsClient(&config.SourcesConfig{HRURL: sheetSrv.URL, TimeoutMS: 2000}, log)

	h := NewAnalysisHandler(analysisSvc, sheets)
	return h, func() {
		queue.Close()
		sheetSrv.Close()
	}
}

func TestFourPEndpoint(t *testing.T) {
	h, done := newTestHandler(t, `[{"q2":"Every time","q2_remarks":"manager backs our calls"}]`)
	defer done()

	r := mux.NewRouter()
	r.HandleFunc("/v1/analysis/4p", h.FourP).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/v1/analysis/4p", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var analysis model.FourPAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, 100.0, analysis.People.Percentage)
	assert.Equal(t, 30.0, analysis.OverallPercentage)
}

func TestQuestionsEndpoint(t *testing.T) {
	h, done := newTestHandler(t, `[{"q2":"Never"},{"q2":"Never"},{"q3":"Every time"}]`)
	defer done()

	r := mux.NewRouter()
	r.HandleFunc("/v1/analysis/questions", h.Questions).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/v1/analysis/questions?limit=1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report model.QuestionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Best, 1)
	assert.Equal(t, "q2", report.Best[0].Distribution.QuestionID)
	assert.NotEmpty(t, report.Best[0].Summary)
}

func TestMonthlyQuestionsEndpoint_RequiresAMID(t *testing.T) {
	h, done := newTestHandler(t, `[]`)
	defer done()

	r := mux.NewRouter()
	r.HandleFunc("/v1/analysis/questions/monthly", h.MonthlyQuestions).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/v1/analysis/questions/monthly", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFourPEndpoint_UpstreamFailure(t *testing.T) {
	sheetSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer sheetSrv.Close()

	log := logger.New()
	queue := service.NewRequestQueue(time.Millisecond)
	defer queue.Close()
	aiClient := service.NewAIClient(&config.AIConfig{}, queue, log)
	analysisSvc := service.NewAnalysisService(
		service.NewFourPService(log),
		service.NewQuestionService(log),
		service.NewNarratorService(aiClient, 30, log),
		cache.NewMemoryCache(time.Hour),
		nil,
		log,
	)
	sheets := service.NewSheetsClient(&config.SourcesConfig{HRURL: sheetSrv.URL, TimeoutMS: 2000}, log)
	h := NewAnalysisHandler(analysisSvc, sheets)

	req := httptest.NewRequest(http.MethodGet, "/v1/analysis/4p", nil)
	rec := httptest.NewRecorder()
	h.FourP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
