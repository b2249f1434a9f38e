package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdash/internal/logger"
	"brewdash/internal/model"
)

func newQuestionService() *QuestionService {
	return NewQuestionService(logger.New())
}

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name  string
		raw   interface{}
		score int
		ok    bool
	}{
		{"label never", "Never", 5, true},
		{"label every time", "every time", 1, true},
		{"label excellent", "Excellent", 5, true},
		{"label poor", "poor", 1, true},
		{"numeric in range", float64(4), 4, true},
		{"int in range", 2, 2, true},
		{"numeric out of range", float64(9), 0, false},
		{"leading digit", "3 - sometimes", 3, true},
		{"garbage", "banana", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := extractScore(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestDistributions_Tally(t *testing.T) {
	svc := newQuestionService()
	subs := []model.SubmissionRecord{
		{"q2": "Every time", "q2_remarks": "fully empowered"},
		{"q2": "Never"},
		{"q2": "Sometime"},
		{"q2": "banana"}, // not counted
	}

	dists := svc.Distributions(subs)
	d := findDist(t, dists, "q2")

	assert.Equal(t, 3, d.TotalResponses)
	assert.Equal(t, 1, d.Count1)
	assert.Equal(t, 1, d.Count3)
	assert.Equal(t, 1, d.Count5)
	assert.Equal(t, 1, d.BadCount)
	assert.Equal(t, 1, d.GoodCount)
	assert.Equal(t, []string{"fully empowered"}, d.Remarks)
	assert.False(t, d.IsReverseScored)
}

func TestDistributions_ReverseFlagSet(t *testing.T) {
	svc := newQuestionService()
	dists := svc.Distributions(nil)

	for _, d := range dists {
		assert.Equal(t, d.QuestionID == "q1" || d.QuestionID == "q4" || d.QuestionID == "q6",
			d.IsReverseScored, "question %s", d.QuestionID)
	}
}

func TestDistributions_AllScaleQuestionsPresent(t *testing.T) {
	svc := newQuestionService()
	dists := svc.Distributions(nil)

	require.Len(t, dists, 10)
	ids := make([]string, len(dists))
	for i, d := range dists {
		ids[i] = d.QuestionID
	}
	assert.NotContains(t, ids, "q10")
	assert.NotContains(t, ids, "q11")
}

func TestBestWorst_Ranking(t *testing.T) {
	svc := newQuestionService()
	subs := []model.SubmissionRecord{
		// q2 everyone positive, q3 everyone negative, q5 mixed.
		{"q2": "Every time", "q3": "Never", "q5": "Every time"},
		{"q2": "Every time", "q3": "Never", "q5": "Never"},
		{"q2": "Most of the time", "q3": "At Time", "q5": "Sometime"},
	}

	perf := svc.BestWorst(svc.Distributions(subs), 3)

	require.Len(t, perf.Best, 3)
	require.Len(t, perf.Worst, 3)
	// With the shared label table, "Never" reads as level 5 and "Every
	// time" as level 1, so q3 lands on top and q2 at the bottom.
	assert.Equal(t, "q3", perf.Best[0].QuestionID)
	assert.Equal(t, "q2", perf.Worst[0].QuestionID)
}

func TestBestWorst_ReverseScoredInverted(t *testing.T) {
	svc := newQuestionService()
	// q1 (reverse) and q2 (normal) get identical responses: mostly 5s.
	subs := []model.SubmissionRecord{
		{"q1": "Never", "q2": "Never"},
		{"q1": "Never", "q2": "Never"},
	}

	perf := svc.BestWorst(svc.Distributions(subs), 2)

	// Same distribution, opposite reading: the reverse-scored question
	// ranks below the normal one.
	require.Len(t, perf.Best, 2)
	assert.Equal(t, "q2", perf.Best[0].QuestionID)
	assert.Equal(t, "q1", perf.Worst[0].QuestionID)
}

func TestBestWorst_ZeroResponseExcluded(t *testing.T) {
	svc := newQuestionService()
	subs := []model.SubmissionRecord{
		{"q2": "Every time"},
	}

	perf := svc.BestWorst(svc.Distributions(subs), 3)

	require.Len(t, perf.Best, 1)
	require.Len(t, perf.Worst, 1)
	assert.Equal(t, "q2", perf.Best[0].QuestionID)
}

func TestBestWorst_TieBreaksOnQuestionID(t *testing.T) {
	svc := newQuestionService()
	// q5 and q7 get identical answers.
	subs := []model.SubmissionRecord{
		{"q5": "Never", "q7": "Excellent"},
	}

	perf := svc.BestWorst(svc.Distributions(subs), 2)

	require.Len(t, perf.Best, 2)
	assert.Equal(t, "q5", perf.Best[0].QuestionID)
	assert.Equal(t, "q7", perf.Best[1].QuestionID)
}

func TestMonthlyByAM_Buckets(t *testing.T) {
	svc := newQuestionService()
	subs := []model.SubmissionRecord{
		{"amId": "am-1", "submissionTime": "05/01/2026 10:30", "q2": "Every time"},
		{"amId": "am-1", "submissionTime": "20/01/2026", "q2": "Never"},
		{"amId": "am-1", "submissionTime": "03/02/2026", "q2": "Sometime"},
		{"amId": "am-2", "submissionTime": "10/01/2026", "q2": "Never"},
		{"amId": "am-1", "submissionTime": "not a date", "q2": "Never"},
	}

	monthly := svc.MonthlyByAM("am-1", subs, 3)

	require.Len(t, monthly, 2)
	require.Contains(t, monthly, "2026-01")
	require.Contains(t, monthly, "2026-02")

	jan := findDist(t, monthly["2026-01"].Best, "q2")
	assert.Equal(t, 2, jan.TotalResponses)

	assert.Equal(t, "2026-02", LatestMonth(monthly))
}

func TestLatestMonth_Empty(t *testing.T) {
	assert.Equal(t, "", LatestMonth(nil))
}

func findDist(t *testing.T, dists []*model.ResponseDistribution, id string) *model.ResponseDistribution {
	t.Helper()
	for _, d := range dists {
		if d.QuestionID == id {
			return d
		}
	}
	t.Fatalf("distribution %s not found", id)
	return nil
}
