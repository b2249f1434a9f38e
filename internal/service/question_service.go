package service

import (
	"regexp"
	"sort"
	"strings"

	"brewdash/internal/logger"
	"brewdash/internal/model"
)

// scaleQuestionIDs are the HR survey items answered on the 1-5 scale;
// the two free-text items are excluded.
var scaleQuestionIDs = []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9", "q12"}

// reverseScored marks questions where a high response level signals a
// problem rather than a strength.
var reverseScored = map[string]bool{"q1": true, "q4": true, "q6": true}

// distributionLabelScores maps answer labels onto the shared 1-5 response
// level regardless of which question they belong to. Frequency labels read
// in problem polarity: "Never" is level 5.
var distributionLabelScores = map[string]int{
	"never":            5,
	"at time":          4,
	"sometime":         3,
	"most of the time": 2,
	"every time":       1,
	"excellent":        5,
	"very good":        4,
	"good":             3,
	"average":          2,
	"poor":             1,
}

var digitPattern = regexp.MustCompile(`(\d)`)

// QuestionService builds per-question response distributions from survey
// submissions and ranks the strongest and weakest items.
type QuestionService struct {
	log *logger.Logger
}

func NewQuestionService(log *logger.Logger) *QuestionService {
	return &QuestionService{log: log}
}

// extractScore resolves a raw answer to a 1-5 response level: numbers in
// range pass through, labels go through the shared table, and as a last
// resort the first digit of the string is tried.
func extractScore(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		if v >= 1 && v <= 5 {
			return v, true
		}
	case float64:
		n := int(v)
		if n >= 1 && n <= 5 {
			return n, true
		}
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if score, ok := distributionLabelScores[s]; ok {
			return score, true
		}
		if m := digitPattern.FindString(s); m != "" {
			n := int(m[0] - '0')
			if n >= 1 && n <= 5 {
				return n, true
			}
		}
	}
	return 0, false
}

// Distributions tallies the response levels of every scale question across
// a submission set. Every scale question appears in the result, including
// ones nobody answered.
func (s *QuestionService) Distributions(subs []model.SubmissionRecord) []*model.ResponseDistribution {
	byID := make(map[string]*model.ResponseDistribution, len(scaleQuestionIDs))
	order := make([]*model.ResponseDistribution, 0, len(scaleQuestionIDs))

	for _, q := range model.HRQuestions {
		if !containsID(scaleQuestionIDs, q.ID) {
			continue
		}
		d := &model.ResponseDistribution{
			QuestionID:      q.ID,
			QuestionTitle:   q.Title,
			Remarks:         []string{},
			IsReverseScored: reverseScored[q.ID],
		}
		byID[q.ID] = d
		order = append(order, d)
	}

	for _, sub := range subs {
		for id, d := range byID {
			if raw, ok := sub.GetField(id); ok {
				if score, valid := extractScore(raw); valid {
					d.TotalResponses++
					switch score {
					case 1:
						d.Count1++
					case 2:
						d.Count2++
					case 3:
						d.Count3++
					case 4:
						d.Count4++
					case 5:
						d.Count5++
					}
				}
			}
			if remark := sub.StringField(id + "_remarks"); remark != "" {
				d.Remarks = append(d.Remarks, remark)
			}
		}
	}

	for _, d := range order {
		if d.TotalResponses == 0 {
			continue
		}
		d.BadCount = d.Count1 + d.Count2
		d.NeutralCount = d.Count3
		d.GoodCount = d.Count4 + d.Count5
		d.BadPercentage = float64(d.BadCount) / float64(d.TotalResponses) * 100
		d.GoodPercentage = float64(d.GoodCount) / float64(d.TotalResponses) * 100
	}
	return order
}

// BestWorst ranks the distributions and returns the top and bottom n.
// Questions without any response are excluded; ties break on question ID
// so the ranking is stable across runs. Worst is ordered worst-first.
func (s *QuestionService) BestWorst(dists []*model.ResponseDistribution, n int) *model.QuestionPerformance {
	answered := make([]*model.ResponseDistribution, 0, len(dists))
	for _, d := range dists {
		if d.TotalResponses > 0 {
			answered = append(answered, d)
		}
	}

	sort.SliceStable(answered, func(i, j int) bool {
		pi, pj := rankScore(answered[i]), rankScore(answered[j])
		if pi != pj {
			return pi > pj
		}
		return answered[i].QuestionID < answered[j].QuestionID
	})

	if n > len(answered) {
		n = len(answered)
	}
	best := make([]*model.ResponseDistribution, n)
	copy(best, answered[:n])

	worst := make([]*model.ResponseDistribution, n)
	for i := 0; i < n; i++ {
		worst[i] = answered[len(answered)-1-i]
	}
	return &model.QuestionPerformance{Best: best, Worst: worst}
}

func rankScore(d *model.ResponseDistribution) float64 {
	perf := d.GoodPercentage - d.BadPercentage
	if d.IsReverseScored {
		// High response levels mean the problem occurs often.
		perf = -perf
	}
	return perf
}

// MonthlyByAM buckets one area manager's submissions by calendar month and
// ranks each bucket separately. Keys are YYYY-MM.
func (s *QuestionService) MonthlyByAM(amID string, subs []model.SubmissionRecord, n int) map[string]*model.QuestionPerformance {
	byMonth := make(map[string][]model.SubmissionRecord)
	for _, sub := range subs {
		if sub.StringField("amId") != amID {
			continue
		}
		t, ok := ParseSubmissionDate(sub.StringField("submissionTime"))
		if !ok {
			continue
		}
		key := t.Format("2006-01")
		byMonth[key] = append(byMonth[key], sub)
	}

	out := make(map[string]*model.QuestionPerformance, len(byMonth))
	for key, monthSubs := range byMonth {
		out[key] = s.BestWorst(s.Distributions(monthSubs), n)
	}
	return out
}

// LatestMonth returns the most recent month key in a monthly result set,
// or "" when empty.
func LatestMonth(monthly map[string]*model.QuestionPerformance) string {
	latest := ""
	for key := range monthly {
		if key > latest {
			latest = key
		}
	}
	return latest
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
