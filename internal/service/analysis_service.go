package service

import (
	"context"
	"time"

	"brewdash/internal/cache"
	"brewdash/internal/logger"
	"brewdash/internal/model"
	"brewdash/internal/repository"
)

// AnalysisService is the orchestrator behind the dashboard endpoints: it
// filters raw submissions, runs the category aggregation, narrates the
// outcome, and keeps cache and snapshot store in sync.
type AnalysisService struct {
	fourP     *FourPService
	questions *QuestionService
	narrator  *NarratorService
	cache     cache.AnalysisCache
	repo      repository.AnalysisRepo // optional
	log       *logger.Logger
}

func NewAnalysisService(
	fourP *FourPService,
	questions *QuestionService,
	narrator *NarratorService,
	analysisCache cache.AnalysisCache,
	repo repository.AnalysisRepo,
	log *logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		fourP:     fourP,
		questions: questions,
		narrator:  narrator,
		cache:     analysisCache,
		repo:      repo,
		log:       log,
	}
}

// FourP computes the cross-checklist analysis for one filter view. A valid
// cached result is returned as-is; cache and snapshot failures are logged
// and never fail the request.
func (s *AnalysisService) FourP(ctx context.Context, filters *model.Filters, data *model.ChecklistData) (*model.FourPAnalysis, error) {
	key := cache.Fingerprint(filters)

	if cached, err := s.cache.Get(ctx, key); err != nil {
		s.log.WithError(err).Warn("analysis cache read failed")
	} else if cached != nil {
		s.log.WithField("key", key).Debug("analysis cache hit")
		return cached, nil
	}

	filtered := s.applyFilters(filters, data)
	results, remarks := s.fourP.Aggregate(filtered)
	insights, aiGenerated := s.narrator.CategoryInsights(ctx, results, remarks, filtered)

	analysis := &model.FourPAnalysis{GeneratedAt: time.Now()}
	overall := 0.0
	for _, c := range model.Categories {
		r := results[c]
		r.Insights = insights[c]
		r.AIGenerated = aiGenerated
		overall += r.Percentage * model.CategoryWeights[c]
		*analysis.Result(c) = *r
	}
	analysis.OverallPercentage = round1(overall)

	if err := s.cache.Put(ctx, key, analysis); err != nil {
		s.log.WithError(err).Warn("analysis cache write failed")
	}
	if s.repo != nil {
		if err := s.repo.SaveSnapshot(ctx, key, analysis); err != nil {
			s.log.WithError(err).Warn("analysis snapshot save failed")
		}
	}
	return analysis, nil
}

// QuestionPerformance ranks the survey questions of a submission set and
// narrates each ranked entry.
func (s *AnalysisService) QuestionPerformance(ctx context.Context, subs []model.SubmissionRecord, n int) *model.QuestionReport {
	perf := s.questions.BestWorst(s.questions.Distributions(subs), n)
	return &model.QuestionReport{
		Best:  s.narrate(ctx, perf.Best),
		Worst: s.narrate(ctx, perf.Worst),
	}
}

// MonthlyQuestionPerformance ranks one area manager's submissions month by
// month, without narration.
func (s *AnalysisService) MonthlyQuestionPerformance(amID string, subs []model.SubmissionRecord, n int) map[string]*model.QuestionPerformance {
	return s.questions.MonthlyByAM(amID, subs, n)
}

func (s *AnalysisService) narrate(ctx context.Context, dists []*model.ResponseDistribution) []model.QuestionInsight {
	out := make([]model.QuestionInsight, 0, len(dists))
	for _, d := range dists {
		summary, aiGenerated := s.narrator.SummarizeQuestion(ctx, d)
		out = append(out, model.QuestionInsight{Distribution: d, Summary: summary, AIGenerated: aiGenerated})
	}
	return out
}

// applyFilters narrows every source to the submissions matching the view.
// A nil filter set passes everything through untouched.
func (s *AnalysisService) applyFilters(filters *model.Filters, data *model.ChecklistData) *model.ChecklistData {
	if filters == nil || (filters.DateRange == nil && filters.Region == "" && filters.Store == "" && filters.AreaManager == "") {
		return data
	}
	return &model.ChecklistData{
		HR:         filterSubs(filters, data.HR),
		Operations: filterSubs(filters, data.Operations),
		Training:   filterSubs(filters, data.Training),
		QA:         filterSubs(filters, data.QA),
		Finance:    filterSubs(filters, data.Finance),
	}
}

func filterSubs(f *model.Filters, subs []model.SubmissionRecord) []model.SubmissionRecord {
	out := make([]model.SubmissionRecord, 0, len(subs))
	for _, sub := range subs {
		if f.Region != "" && sub.StringField("region") != f.Region {
			continue
		}
		if f.Store != "" && storeOf(sub) != f.Store {
			continue
		}
		if f.AreaManager != "" && sub.StringField("amId") != f.AreaManager {
			continue
		}
		if f.DateRange != nil && !inRange(f.DateRange, sub) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func storeOf(sub model.SubmissionRecord) string {
	if v := sub.StringField("storeName"); v != "" {
		return v
	}
	return sub.StringField("store")
}

// inRange checks the submission timestamp against an inclusive YYYY-MM-DD
// window. Submissions without a parseable date are excluded once a date
// filter is active.
func inRange(r *model.DateRange, sub model.SubmissionRecord) bool {
	t, ok := ParseSubmissionDate(sub.StringField("submissionTime"))
	if !ok {
		return false
	}
	day := t.Format("2006-01-02")
	if r.Start != "" && day < r.Start {
		return false
	}
	if r.End != "" && day > r.End {
		return false
	}
	return true
}
