package model

import (
	"strconv"
	"strings"
)

// QuestionType describes how a checklist question is answered
type QuestionType string

const (
	QuestionTypeRadio    QuestionType = "radio"
	QuestionTypeInput    QuestionType = "input"
	QuestionTypeTextarea QuestionType = "textarea"
)

// Choice is one selectable answer with its score contribution
type Choice struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one checklist item. Radio questions carry their choice set;
// input/textarea questions have none and are excluded from scoring.
type Question struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Type    QuestionType `json:"type"`
	Choices []Choice     `json:"choices,omitempty"`
}

// MaxScore returns the highest score among the question's choices.
func (q *Question) MaxScore() int {
	max := 0
	for _, c := range q.Choices {
		if c.Score > max {
			max = c.Score
		}
	}
	return max
}

// ScoreAnswer resolves a raw answer value against the question's choice set.
// String answers match choice labels case-insensitively; numeric answers are
// accepted when they fall inside the question's score range. Anything else
// reports false and the answer is treated as absent, never as zero.
func (q *Question) ScoreAnswer(raw interface{}) (score, max int, ok bool) {
	if len(q.Choices) == 0 {
		return 0, 0, false
	}
	max = q.MaxScore()
	if max == 0 {
		return 0, 0, false
	}

	switch v := raw.(type) {
	case string:
		label := strings.ToLower(strings.TrimSpace(v))
		if label == "" {
			return 0, 0, false
		}
		for _, c := range q.Choices {
			if strings.ToLower(c.Label) == label {
				return c.Score, max, true
			}
		}
		if n, err := strconv.Atoi(label); err == nil {
			return q.scoreNumeric(n, max)
		}
	case float64:
		return q.scoreNumeric(int(v), max)
	case int:
		return q.scoreNumeric(v, max)
	}
	return 0, 0, false
}

func (q *Question) scoreNumeric(n, max int) (int, int, bool) {
	min := q.Choices[0].Score
	for _, c := range q.Choices {
		if c.Score < min {
			min = c.Score
		}
	}
	if n < min || n > max {
		return 0, 0, false
	}
	return n, max, true
}

// RemarksField returns the name of the free-text remarks column paired with
// this question in the sheet.
func (q *Question) RemarksField() string {
	return q.ID + "_remarks"
}
