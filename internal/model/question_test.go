package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findQuestion(t *testing.T, questions []Question, id string) *Question {
	t.Helper()
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	t.Fatalf("question %s not found", id)
	return nil
}

func TestScoreAnswer_LabelMatching(t *testing.T) {
	q := findQuestion(t, HRQuestions, "q2")

	tests := []struct {
		name  string
		raw   interface{}
		score int
		max   int
		ok    bool
	}{
		{"exact label", "Every time", 5, 5, true},
		{"case insensitive", "every TIME", 5, 5, true},
		{"padded", "  Never ", 1, 5, true},
		{"numeric string", "4", 4, 5, true},
		{"float answer", float64(3), 3, 5, true},
		{"out of range number", 9, 0, 0, false},
		{"unknown label", "banana", 0, 0, false},
		{"empty string", "", 0, 0, false},
		{"nil", nil, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, max, ok := q.ScoreAnswer(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.max, max)
		})
	}
}

func TestScoreAnswer_ReversePolarity(t *testing.T) {
	// q1 asks about work pressure: "Never" is the desirable answer.
	q := findQuestion(t, HRQuestions, "q1")

	score, max, ok := q.ScoreAnswer("Never")
	require.True(t, ok)
	assert.Equal(t, 5, score)
	assert.Equal(t, 5, max)

	score, _, ok = q.ScoreAnswer("Every time")
	require.True(t, ok)
	assert.Equal(t, 1, score)
}

func TestScoreAnswer_PenaltyChoices(t *testing.T) {
	q := findQuestion(t, TrainingQuestions, "LMS_1")

	score, max, ok := q.ScoreAnswer("No")
	require.True(t, ok)
	assert.Equal(t, -4, score)
	assert.Equal(t, 4, max)
}

func TestScoreAnswer_TextQuestionsNeverScore(t *testing.T) {
	q := findQuestion(t, HRQuestions, "q10")

	_, _, ok := q.ScoreAnswer("Ravi")
	assert.False(t, ok)
}

func TestRemarksField(t *testing.T) {
	q := Question{ID: "q3"}
	assert.Equal(t, "q3_remarks", q.RemarksField())
}

func TestGetField(t *testing.T) {
	sub := SubmissionRecord{
		"answered": "Yes",
		"blank":    "   ",
		"number":   float64(4),
	}

	_, ok := sub.GetField("answered")
	assert.True(t, ok)
	_, ok = sub.GetField("blank")
	assert.False(t, ok)
	_, ok = sub.GetField("missing")
	assert.False(t, ok)

	assert.Equal(t, "4", sub.StringField("number"))
}

func TestQuestionsFor_EverySourceHasCatalog(t *testing.T) {
	for _, src := range AllSources {
		assert.NotEmpty(t, QuestionsFor(src), "source %s", src)
	}
}

func TestCategoryWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, c := range Categories {
		total += CategoryWeights[c]
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
