package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"brewdash/internal/logger"
	"brewdash/internal/model"
)

// NarratorService turns scored data into human-readable findings. The AI
// path is attempted when configured; every failure degrades to a
// deterministic template so the dashboard never renders empty.
type NarratorService struct {
	ai  *AIClient
	max int // remarks per category handed to the model
	log *logger.Logger
}

func NewNarratorService(ai *AIClient, maxRemarks int, log *logger.Logger) *NarratorService {
	if maxRemarks <= 0 {
		maxRemarks = 30
	}
	return &NarratorService{ai: ai, max: maxRemarks, log: log}
}

const questionSystemPrompt = `You are analyzing employee feedback for a specific HR survey question.

CRITICAL RULES:
1. ONLY report what's EXPLICITLY written in the employee remarks
2. DO NOT infer coffee quality, equipment issues, or operational problems unless employees specifically mentioned them
3. DO NOT mention "coffee", "espresso machines", "grinders", "beverages" unless employees wrote about them
4. Focus on the actual survey question topic
5. Be concise - 1-2 sentences maximum
6. Use employee's own words and topics

If employees didn't mention something, don't invent it.`

// SummarizeQuestion narrates one ranked question. Without remarks there is
// nothing for the model to read, so the score-only summary is returned
// directly and no request is dispatched.
func (s *NarratorService) SummarizeQuestion(ctx context.Context, d *model.ResponseDistribution) (summary string, aiGenerated bool) {
	if len(d.Remarks) == 0 {
		return scoreOnlySummary(d), false
	}
	if !s.ai.IsConfigured() {
		return scoreOnlySummary(d), false
	}

	goodPct := int(math.Round(float64(d.GoodCount) / float64(d.TotalResponses) * 100))
	badPct := int(math.Round(float64(d.BadCount) / float64(d.TotalResponses) * 100))

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %q\n", d.QuestionTitle)
	if d.IsReverseScored {
		b.WriteString("(Note: This question is reverse-scored - low ratings mean positive, high ratings mean negative)\n")
	}
	fmt.Fprintf(&b, "\nScore Distribution: %d%% positive, %d%% negative\n", goodPct, badPct)
	fmt.Fprintf(&b, "\nEmployee Remarks (%d comments):\n", len(d.Remarks))
	for i, r := range d.Remarks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString("\nProvide a 1-2 sentence summary of what employees ACTUALLY wrote about this question. Only mention topics that employees specifically discussed.")

	out, err := s.ai.Complete(ctx, questionSystemPrompt, b.String(), 150)
	if err != nil {
		s.log.WithError(err).Warn("question narration failed, using score summary")
		return scoreOnlySummary(d), false
	}
	return out, true
}

// scoreOnlySummary reports the score split when no free text exists. The
// positive and negative readings swap for reverse-scored questions, where
// low response levels are the desirable outcome.
func scoreOnlySummary(d *model.ResponseDistribution) string {
	if d.TotalResponses == 0 {
		return "No responses recorded for this question"
	}
	goodPct := int(math.Round(float64(d.GoodCount) / float64(d.TotalResponses) * 100))
	badPct := int(math.Round(float64(d.BadCount) / float64(d.TotalResponses) * 100))

	if d.IsReverseScored {
		switch {
		case badPct > 60:
			return fmt.Sprintf("%d%% of employees rated this positively (indicating minimal issues)", badPct)
		case goodPct > 60:
			return fmt.Sprintf("%d%% of employees indicated frequent challenges in this area", goodPct)
		default:
			return fmt.Sprintf("Mixed responses - %d%% positive, %d%% indicating challenges", badPct, goodPct)
		}
	}
	switch {
	case goodPct > 60:
		return fmt.Sprintf("%d%% of employees rated this positively", goodPct)
	case badPct > 60:
		return fmt.Sprintf("%d%% of employees indicated concerns in this area", badPct)
	default:
		return fmt.Sprintf("Mixed responses - %d%% positive, %d%% concerns", goodPct, badPct)
	}
}

const categorySystemPrompt = "You are an expert business analyst specializing in restaurant operations and employee experience. Provide concise, actionable insights in JSON format."

// CategoryInsights narrates all four categories in a single structured
// request. On any failure every category falls back to its template
// insight and the analysis is marked as not AI-generated.
func (s *NarratorService) CategoryInsights(
	ctx context.Context,
	results map[model.Category]*model.CategoryResult,
	remarks []model.Remark,
	data *model.ChecklistData,
) (map[model.Category][]model.FourPInsight, bool) {
	// Without remarks there is nothing for the model to read.
	if len(remarks) > 0 && s.ai.IsConfigured() {
		insights, err := s.aiCategoryInsights(ctx, results, remarks, data)
		if err == nil {
			return insights, true
		}
		s.log.WithError(err).Warn("category narration failed, using fallback insights")
	}

	fallback := make(map[model.Category][]model.FourPInsight, len(model.Categories))
	for _, c := range model.Categories {
		fallback[c] = []model.FourPInsight{fallbackInsight(c, results[c].Percentage, countRemarks(remarks, c))}
	}
	return fallback, false
}

func (s *NarratorService) aiCategoryInsights(
	ctx context.Context,
	results map[model.Category]*model.CategoryResult,
	remarks []model.Remark,
	data *model.ChecklistData,
) (map[model.Category][]model.FourPInsight, error) {
	byCategory := make(map[model.Category][]string, len(model.Categories))
	for _, r := range remarks {
		if len(byCategory[r.Category]) < s.max {
			byCategory[r.Category] = append(byCategory[r.Category], r.Text)
		}
	}

	var b strings.Builder
	b.WriteString("You are analyzing employee feedback and operational audit data for a coffee chain across the 4P framework: People, Process, Product, and Place.\n\n")
	b.WriteString("**Data Summary:**\n")
	fmt.Fprintf(&b, "- HR Surveys: %d submissions\n", len(data.HR))
	fmt.Fprintf(&b, "- Operations Audits: %d submissions\n", len(data.Operations))
	fmt.Fprintf(&b, "- Training Records: %d records\n", len(data.Training))
	fmt.Fprintf(&b, "- QA Audits: %d audits\n", len(data.QA))
	fmt.Fprintf(&b, "- Finance Data: %d records\n", len(data.Finance))
	b.WriteString("\n**Remarks by Category:**\n")
	writeRemarkSection(&b, "PEOPLE (Employee Experience, Team, Culture)", byCategory[model.CategoryPeople])
	writeRemarkSection(&b, "PROCESS (Operations, Workflows, Efficiency)", byCategory[model.CategoryProcess])
	writeRemarkSection(&b, "PRODUCT (Coffee Quality, Food, Menu)", byCategory[model.CategoryProduct])
	writeRemarkSection(&b, "PLACE (Store Condition, Ambiance, Facilities)", byCategory[model.CategoryPlace])
	b.WriteString(`
Analyze these remarks and provide:
1. Top 3-5 insights (positive trends) for each P
2. Top 3-5 concerns (issues to address) for each P

Only describe topics the remarks explicitly raise. Format your response as JSON:
{
  "people": [
    {"summary": "Brief insight title", "explanation": "Detailed explanation", "score": 1-5},
    ...
  ],
  "process": [...],
  "product": [...],
  "place": [...]
}`)

	content, err := s.ai.Complete(ctx, categorySystemPrompt, b.String(), 2000)
	if err != nil {
		return nil, err
	}

	block, ok := extractJSONBlock(content)
	if !ok {
		return nil, fmt.Errorf("could not extract json from ai response")
	}
	var parsed struct {
		People  []model.FourPInsight `json:"people"`
		Process []model.FourPInsight `json:"process"`
		Product []model.FourPInsight `json:"product"`
		Place   []model.FourPInsight `json:"place"`
	}
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ai insights: %w", err)
	}
	if len(parsed.People)+len(parsed.Process)+len(parsed.Product)+len(parsed.Place) == 0 {
		return nil, fmt.Errorf("ai response contained no insights")
	}
	return map[model.Category][]model.FourPInsight{
		model.CategoryPeople:  parsed.People,
		model.CategoryProcess: parsed.Process,
		model.CategoryProduct: parsed.Product,
		model.CategoryPlace:   parsed.Place,
	}, nil
}

func writeRemarkSection(b *strings.Builder, heading string, texts []string) {
	fmt.Fprintf(b, "\n**%s:**\n", heading)
	for _, t := range texts {
		fmt.Fprintf(b, "- %s\n", t)
	}
}

// extractJSONBlock pulls the first balanced {...} object out of a model
// reply, tolerating markdown code fences around it.
func extractJSONBlock(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if i := strings.LastIndex(content, "```"); i >= 0 {
			content = content[:i]
		}
	}

	start := strings.Index(content, "{")
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return content[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// fallbackInsight is the deterministic one-liner per category when the AI
// path is unavailable.
func fallbackInsight(c model.Category, percentage float64, remarkCount int) model.FourPInsight {
	level := "needs attention"
	switch {
	case percentage >= 80:
		level = "excellent"
	case percentage >= 60:
		level = "good"
	case percentage >= 40:
		level = "fair"
	}

	switch c {
	case model.CategoryPeople:
		return model.FourPInsight{
			Summary:     fmt.Sprintf("Employee experience score: %.1f%% (%s)", percentage, level),
			Explanation: fmt.Sprintf("Based on %d feedback items from HR surveys and team assessments.", remarkCount),
			Source:      "HR Survey",
			Score:       percentage / 20,
		}
	case model.CategoryProcess:
		return model.FourPInsight{
			Summary:     fmt.Sprintf("Operational efficiency: %.1f%% (%s)", percentage, level),
			Explanation: fmt.Sprintf("Process compliance and workflow efficiency measured across %d audit points.", remarkCount),
			Source:      "Operations Audit",
			Score:       percentage / 20,
		}
	case model.CategoryProduct:
		return model.FourPInsight{
			Summary:     fmt.Sprintf("Product quality: %.1f%% (%s)", percentage, level),
			Explanation: fmt.Sprintf("Coffee and food quality scores from %d quality checks and audits.", remarkCount),
			Source:      "QA Audit",
			Score:       percentage / 20,
		}
	default:
		return model.FourPInsight{
			Summary:     fmt.Sprintf("Store condition: %.1f%% (%s)", percentage, level),
			Explanation: fmt.Sprintf("Cleanliness, ambiance, and facility maintenance across %d inspection points.", remarkCount),
			Source:      "Operations Audit",
			Score:       percentage / 20,
		}
	}
}

func countRemarks(remarks []model.Remark, c model.Category) int {
	n := 0
	for _, r := range remarks {
		if r.Category == c {
			n++
		}
	}
	return n
}
