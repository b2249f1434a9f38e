package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdash/internal/cache"
	"brewdash/internal/config"
	"brewdash/internal/logger"
	"brewdash/internal/model"
)

// newAnalysisService wires the pipeline with an in-memory cache and the AI
// path disabled, so narration always takes the deterministic fallback.
func newAnalysisService(t *testing.T) (*AnalysisService, func()) {
	t.Helper()
	log := logger.New()
	queue := NewRequestQueue(time.Millisecond)
	aiClient := NewAIClient(&config.AIConfig{}, queue, log)
	svc := NewAnalysisService(
		NewFourPService(log),
		NewQuestionService(log),
		NewNarratorService(aiClient, 30, log),
		cache.NewMemoryCache(time.Hour),
		nil,
		log,
	)
	return svc, queue.Close
}

func TestFourP_WeightedOverall(t *testing.T) {
	svc, done := newAnalysisService(t)
	defer done()

	data := &model.ChecklistData{
		Operations: []model.SubmissionRecord{
			{"CG_1": "Yes"},
			{"CG_1": "Yes"},
			{"CG_1": "No"},
		},
	}

	analysis, err := svc.FourP(context.Background(), nil, data)
	require.NoError(t, err)

	assert.Equal(t, 66.7, analysis.Place.Percentage)
	// Only place contributes: 66.7 * 0.20, other categories stay at full
	// weight with zero percentage.
	assert.Equal(t, 13.3, analysis.OverallPercentage)
	assert.False(t, analysis.Place.AIGenerated)
	require.Len(t, analysis.Place.Insights, 1)
	assert.False(t, analysis.GeneratedAt.IsZero())
}

func TestFourP_CacheHitSkipsRecompute(t *testing.T) {
	svc, done := newAnalysisService(t)
	defer done()
	ctx := context.Background()

	data := &model.ChecklistData{
		Operations: []model.SubmissionRecord{{"CG_1": "Yes"}},
	}
	filters := &model.Filters{Region: "North"}

	first, err := svc.FourP(ctx, filters, data)
	require.NoError(t, err)

	// Different data, same filters: the cached result must come back.
	changed := &model.ChecklistData{
		Operations: []model.SubmissionRecord{{"CG_1": "No"}, {"CG_1": "No"}},
	}
	second, err := svc.FourP(ctx, filters, changed)
	require.NoError(t, err)

	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
	assert.Equal(t, first.Place.Percentage, second.Place.Percentage)
}

func TestFourP_DistinctFiltersDistinctEntries(t *testing.T) {
	svc, done := newAnalysisService(t)
	defer done()
	ctx := context.Background()

	data := &model.ChecklistData{
		Operations: []model.SubmissionRecord{
			{"CG_1": "Yes", "region": "North"},
			{"CG_1": "No", "region": "South"},
		},
	}

	north, err := svc.FourP(ctx, &model.Filters{Region: "North"}, data)
	require.NoError(t, err)
	south, err := svc.FourP(ctx, &model.Filters{Region: "South"}, data)
	require.NoError(t, err)

	assert.Equal(t, 100.0, north.Place.Percentage)
	assert.Equal(t, 0.0, south.Place.Percentage)
}

func TestApplyFilters(t *testing.T) {
	svc, done := newAnalysisService(t)
	defer done()

	data := &model.ChecklistData{
		HR: []model.SubmissionRecord{
			{"q2": "Every time", "region": "North", "storeName": "Indiranagar", "amId": "am-1", "submissionTime": "10/01/2026"},
			{"q2": "Never", "region": "South", "storeName": "Jayanagar", "amId": "am-2", "submissionTime": "10/02/2026"},
			{"q2": "Never", "region": "North", "storeName": "Koramangala", "amId": "am-1"},
		},
	}

	tests := []struct {
		name    string
		filters *model.Filters
		want    int
	}{
		{"nil passes all", nil, 3},
		{"empty passes all", &model.Filters{}, 3},
		{"region", &model.Filters{Region: "North"}, 2},
		{"store", &model.Filters{Store: "Jayanagar"}, 1},
		{"area manager", &model.Filters{AreaManager: "am-1"}, 2},
		{"date range excludes undated", &model.Filters{DateRange: &model.DateRange{Start: "2026-01-01", End: "2026-01-31"}}, 1},
		{"open-ended range", &model.Filters{DateRange: &model.DateRange{Start: "2026-02-01"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := svc.applyFilters(tt.filters, data)
			assert.Len(t, filtered.HR, tt.want)
		})
	}
}

func TestQuestionPerformance_NarratedReport(t *testing.T) {
	svc, done := newAnalysisService(t)
	defer done()

	subs := []model.SubmissionRecord{
		{"q2": "Never", "q3": "Every time"},
		{"q2": "Never", "q3": "Every time"},
	}

	report := svc.QuestionPerformance(context.Background(), subs, 2)

	require.Len(t, report.Best, 2)
	require.Len(t, report.Worst, 2)
	assert.Equal(t, "q2", report.Best[0].Distribution.QuestionID)
	assert.Equal(t, "q3", report.Worst[0].Distribution.QuestionID)
	for _, insight := range report.Best {
		assert.NotEmpty(t, insight.Summary)
		assert.False(t, insight.AIGenerated)
	}
}
