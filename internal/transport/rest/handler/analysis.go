package handler

import (
	"net/http"
	"strconv"

	"brewdash/internal/model"
	"brewdash/internal/service"
)

const defaultRankSize = 3

// AnalysisHandler handles the dashboard analysis endpoints
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
	sheets      *service.SheetsClient
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService, sheets *service.SheetsClient) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc, sheets: sheets}
}

// FourP handles GET /v1/analysis/4p
func (h *AnalysisHandler) FourP(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)

	data, err := h.sheets.FetchAll(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	analysis, err := h.analysisSvc.FourP(r.Context(), filters, data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Questions handles GET /v1/analysis/questions
func (h *AnalysisHandler) Questions(w http.ResponseWriter, r *http.Request) {
	data, err := h.sheets.FetchAll(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	report := h.analysisSvc.QuestionPerformance(r.Context(), data.HR, rankSize(r))
	writeJSON(w, http.StatusOK, report)
}

// MonthlyQuestions handles GET /v1/analysis/questions/monthly
func (h *AnalysisHandler) MonthlyQuestions(w http.ResponseWriter, r *http.Request) {
	amID := r.URL.Query().Get("amId")
	if amID == "" {
		writeError(w, http.StatusBadRequest, "amId is required")
		return
	}

	data, err := h.sheets.FetchAll(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	monthly := h.analysisSvc.MonthlyQuestionPerformance(amID, data.HR, rankSize(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"months":      monthly,
		"latestMonth": service.LatestMonth(monthly),
	})
}

func rankSize(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultRankSize
}

func filtersFromQuery(r *http.Request) *model.Filters {
	q := r.URL.Query()
	filters := &model.Filters{
		Region:      q.Get("region"),
		Store:       q.Get("store"),
		AreaManager: q.Get("areaManager"),
	}
	start, end := q.Get("start"), q.Get("end")
	if start != "" || end != "" {
		filters.DateRange = &model.DateRange{Start: start, End: end}
	}
	return filters
}
