package service

import (
	"math"
	"strings"

	"brewdash/internal/logger"
	"brewdash/internal/model"
)

// categoryByQuestion maps every scored checklist question to its 4P
// category. Questions absent from this table are excluded from category
// scoring entirely.
var categoryByQuestion = map[string]model.Category{
	// HR survey: the whole employee survey speaks to People.
	"q1": model.CategoryPeople, "q2": model.CategoryPeople, "q3": model.CategoryPeople,
	"q4": model.CategoryPeople, "q5": model.CategoryPeople, "q6": model.CategoryPeople,
	"q7": model.CategoryPeople, "q8": model.CategoryPeople, "q9": model.CategoryPeople,
	"q12": model.CategoryPeople,

	// Operations: Cheerful Greeting is the store environment, except the
	// FDU/merch items (product presentation) and grooming (people).
	"CG_1": model.CategoryPlace, "CG_2": model.CategoryPlace, "CG_3": model.CategoryPlace,
	"CG_4": model.CategoryPlace, "CG_5": model.CategoryPlace, "CG_6": model.CategoryPlace,
	"CG_7": model.CategoryPlace, "CG_8": model.CategoryPlace,
	"CG_9": model.CategoryProduct, "CG_10": model.CategoryProduct,
	"CG_11": model.CategoryPeople,
	"CG_12": model.CategoryPlace, "CG_13": model.CategoryPlace,

	// Order Taking Assistance: till discipline and controls, except the
	// partner-knowledge item and SOP service.
	"OTA_1": model.CategoryProcess, "OTA_2": model.CategoryPeople, "OTA_3": model.CategoryProcess,
	"OTA_4": model.CategoryProcess, "OTA_5": model.CategoryProcess, "OTA_6": model.CategoryProcess,
	"OTA_7": model.CategoryProcess, "OTA_8": model.CategoryProcess, "OTA_9": model.CategoryProcess,
	"OTA_10": model.CategoryProduct, "OTA_11": model.CategoryProcess,

	// Friendly & Accurate Service: execution process.
	"FAS_1": model.CategoryProcess, "FAS_2": model.CategoryProcess, "FAS_3": model.CategoryProcess,
	"FAS_4": model.CategoryProcess, "FAS_5": model.CategoryProcess, "FAS_6": model.CategoryPeople,
	"FAS_7": model.CategoryProcess, "FAS_8": model.CategoryProcess, "FAS_9": model.CategoryProduct,
	"FAS_10": model.CategoryProduct, "FAS_11": model.CategoryProcess, "FAS_12": model.CategoryProcess,
	"FAS_13": model.CategoryProcess,

	// Feedback with Solution: P&L and control reviews.
	"FWS_1": model.CategoryProcess, "FWS_2": model.CategoryProcess, "FWS_3": model.CategoryProcess,
	"FWS_4": model.CategoryProcess, "FWS_5": model.CategoryProcess, "FWS_6": model.CategoryProcess,
	"FWS_7": model.CategoryProcess, "FWS_8": model.CategoryPeople, "FWS_9": model.CategoryProcess,
	"FWS_10": model.CategoryProcess, "FWS_11": model.CategoryProcess, "FWS_12": model.CategoryProcess,
	"FWS_13": model.CategoryProcess,

	// Enjoyable Experience: the guest-facing environment.
	"ENJ_1": model.CategoryPlace, "ENJ_2": model.CategoryPlace, "ENJ_3": model.CategoryPeople,
	"ENJ_4": model.CategoryPlace, "ENJ_5": model.CategoryPlace, "ENJ_6": model.CategoryPlace,
	"ENJ_7": model.CategoryPlace,

	// Enthusiastic Exit: team recognition and motivation.
	"EX_1": model.CategoryPeople, "EX_2": model.CategoryPeople, "EX_3": model.CategoryPeople,
	"EX_4": model.CategoryPeople, "EX_5": model.CategoryPeople, "EX_6": model.CategoryPeople,

	// Training audit: materials, LMS, buddy program and progression are
	// all people development; coffee knowledge items speak to Product and
	// the CX walkthrough to Place.
	"TM_1": model.CategoryPeople, "TM_2": model.CategoryPeople, "TM_3": model.CategoryPeople,
	"TM_4": model.CategoryPeople, "TM_5": model.CategoryPeople, "TM_6": model.CategoryPeople,
	"TM_7": model.CategoryPeople, "TM_8": model.CategoryPeople, "TM_9": model.CategoryPeople,
	"LMS_1": model.CategoryPeople, "LMS_2": model.CategoryPeople, "LMS_3": model.CategoryPeople,
	"Buddy_1": model.CategoryPeople, "Buddy_2": model.CategoryPeople, "Buddy_3": model.CategoryPeople,
	"Buddy_4": model.CategoryPeople, "Buddy_5": model.CategoryPeople, "Buddy_6": model.CategoryPeople,
	"NJ_1": model.CategoryPeople, "NJ_2": model.CategoryPeople, "NJ_3": model.CategoryPeople,
	"NJ_4": model.CategoryPeople, "NJ_5": model.CategoryPeople, "NJ_6": model.CategoryPeople,
	"NJ_7": model.CategoryPeople,
	"PK_1": model.CategoryPeople,
	"PK_2": model.CategoryProduct, "PK_3": model.CategoryProduct, "PK_4": model.CategoryProduct,
	"PK_5": model.CategoryProduct,
	"PK_6": model.CategoryPeople, "PK_7": model.CategoryPeople,
	"CX_1": model.CategoryPlace, "CX_2": model.CategoryPlace, "CX_3": model.CategoryPlace,
	"CX_4": model.CategoryPlace, "CX_5": model.CategoryPlace, "CX_6": model.CategoryPlace,
	"CX_7": model.CategoryPlace, "CX_8": model.CategoryPlace, "CX_9": model.CategoryPlace,
	"AP_1": model.CategoryProcess, "AP_2": model.CategoryProcess, "AP_3": model.CategoryProcess,

	// QA audit: product standards.
	"QA_1": model.CategoryProduct, "QA_2": model.CategoryProduct, "QA_3": model.CategoryProduct,
	"QA_4": model.CategoryProduct, "QA_5": model.CategoryProduct, "QA_6": model.CategoryProduct,
	"QA_7": model.CategoryProduct, "QA_8": model.CategoryProduct, "QA_9": model.CategoryProduct,
	"QA_10": model.CategoryProduct,

	// Finance audit: cash and stock controls.
	"FIN_1": model.CategoryProcess, "FIN_2": model.CategoryProcess, "FIN_3": model.CategoryProcess,
	"FIN_4": model.CategoryProcess, "FIN_5": model.CategoryProcess, "FIN_6": model.CategoryProcess,
	"FIN_7": model.CategoryProcess, "FIN_8": model.CategoryProcess,
}

// defaultCategory is where remarks of unmapped questions land, per source.
var defaultCategory = map[model.Source]model.Category{
	model.SourceHR:         model.CategoryPeople,
	model.SourceOperations: model.CategoryProcess,
	model.SourceTraining:   model.CategoryPeople,
	model.SourceQA:         model.CategoryProduct,
	model.SourceFinance:    model.CategoryProcess,
}

// CategoryFor returns the 4P category of a question ID, when mapped.
func CategoryFor(questionID string) (model.Category, bool) {
	c, ok := categoryByQuestion[questionID]
	return c, ok
}

// minRemarkLength filters out throwaway remarks ("ok", "na", "-").
const minRemarkLength = 5

// FourPService folds scored answers from every checklist source into the
// four category tallies and collects the remarks that go with them.
type FourPService struct {
	log *logger.Logger
}

func NewFourPService(log *logger.Logger) *FourPService {
	return &FourPService{log: log}
}

// Aggregate walks every submission of every source, scores each mapped
// answer into its category, and gathers substantive remarks. The same
// input always produces the same tallies.
func (s *FourPService) Aggregate(data *model.ChecklistData) (map[model.Category]*model.CategoryResult, []model.Remark) {
	results := make(map[model.Category]*model.CategoryResult, len(model.Categories))
	for _, c := range model.Categories {
		results[c] = &model.CategoryResult{Insights: []model.FourPInsight{}}
	}
	var remarks []model.Remark

	for _, src := range model.AllSources {
		questions := model.QuestionsFor(src)
		for _, sub := range data.BySource(src) {
			for i := range questions {
				q := &questions[i]

				if q.Type == model.QuestionTypeTextarea {
					// Free-text answers are remarks in their own right.
					if text := strings.TrimSpace(sub.StringField(q.ID)); len(text) > minRemarkLength {
						remarks = append(remarks, model.Remark{Text: text, Source: src, Category: model.CategoryPeople})
					}
					continue
				}

				cat, mapped := categoryByQuestion[q.ID]

				// Remarks are kept even for questions excluded from
				// scoring; they land in the source's home category.
				if text := strings.TrimSpace(sub.StringField(q.RemarksField())); len(text) > minRemarkLength {
					rcat := cat
					if !mapped {
						rcat = defaultCategory[src]
					}
					remarks = append(remarks, model.Remark{Text: text, Source: src, Category: rcat})
				}

				if !mapped {
					continue
				}

				raw, present := sub.GetField(q.ID)
				if present {
					if score, max, ok := q.ScoreAnswer(raw); ok {
						results[cat].Score += score
						results[cat].MaxScore += max
					}
				}
			}
		}
	}

	for _, r := range results {
		r.Percentage = percentageOf(r.Score, r.MaxScore)
	}
	return results, remarks
}

// percentageOf converts a score pair into a one-decimal percentage. A zero
// max yields 0, and penalty scores below zero are clamped so the result
// stays inside [0, 100].
func percentageOf(score, max int) float64 {
	if max <= 0 {
		return 0
	}
	p := float64(score) / float64(max) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return round1(p)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
