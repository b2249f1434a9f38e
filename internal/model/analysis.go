package model

import "time"

// Category is one of the four fixed analysis dimensions
type Category string

const (
	CategoryPeople  Category = "people"
	CategoryProcess Category = "process"
	CategoryProduct Category = "product"
	CategoryPlace   Category = "place"
)

// Categories lists the four dimensions in weight order.
var Categories = []Category{CategoryPeople, CategoryProcess, CategoryProduct, CategoryPlace}

// CategoryWeights is the fixed contribution of each category to the overall
// percentage. The weights sum to 1.0 and are never redistributed, even when
// a category has no contributing data.
var CategoryWeights = map[Category]float64{
	CategoryPeople:  0.30,
	CategoryProcess: 0.25,
	CategoryProduct: 0.25,
	CategoryPlace:   0.20,
}

// Remark is one free-text comment collected during aggregation, tagged with
// where it came from.
type Remark struct {
	Text     string   `json:"text"`
	Source   Source   `json:"source"`
	Category Category `json:"category"`
}

// FourPInsight is one narrated finding for a category
type FourPInsight struct {
	Summary     string  `json:"summary"`
	Explanation string  `json:"explanation"`
	Source      string  `json:"source"`
	Score       float64 `json:"score"` // 0-5
}

// CategoryResult holds the scored outcome of one category
type CategoryResult struct {
	Score       int            `json:"score"`
	MaxScore    int            `json:"maxScore"`
	Percentage  float64        `json:"percentage"`
	Insights    []FourPInsight `json:"insights"`
	AIGenerated bool           `json:"aiGenerated"`
}

// FourPAnalysis is the complete cross-checklist analysis handed to the
// presentation layer.
type FourPAnalysis struct {
	People            CategoryResult `json:"people" bson:"people"`
	Process           CategoryResult `json:"process" bson:"process"`
	Product           CategoryResult `json:"product" bson:"product"`
	Place             CategoryResult `json:"place" bson:"place"`
	OverallPercentage float64        `json:"overallPercentage" bson:"overallPercentage"`
	GeneratedAt       time.Time      `json:"generatedAt" bson:"generatedAt"`
}

// Result returns the category result by tag.
func (a *FourPAnalysis) Result(c Category) *CategoryResult {
	switch c {
	case CategoryPeople:
		return &a.People
	case CategoryProcess:
		return &a.Process
	case CategoryProduct:
		return &a.Product
	case CategoryPlace:
		return &a.Place
	}
	return nil
}

// ResponseDistribution tallies the 1-5 response levels of one question
// across a submission set. The counts always reflect the literal scale;
// reverse scoring is applied only when ranking.
type ResponseDistribution struct {
	QuestionID      string   `json:"questionId"`
	QuestionTitle   string   `json:"questionTitle"`
	Count1          int      `json:"count1"`
	Count2          int      `json:"count2"`
	Count3          int      `json:"count3"`
	Count4          int      `json:"count4"`
	Count5          int      `json:"count5"`
	TotalResponses  int      `json:"totalResponses"`
	BadCount        int      `json:"badCount"`     // 1s + 2s
	NeutralCount    int      `json:"neutralCount"` // 3s
	GoodCount       int      `json:"goodCount"`    // 4s + 5s
	BadPercentage   float64  `json:"badPercentage"`
	GoodPercentage  float64  `json:"goodPercentage"`
	Remarks         []string `json:"remarks"`
	IsReverseScored bool     `json:"isReverseScored"`
}

// QuestionPerformance holds the ranked best and worst questions of one
// distribution run; worst is ordered worst-first.
type QuestionPerformance struct {
	Best  []*ResponseDistribution `json:"best"`
	Worst []*ResponseDistribution `json:"worst"`
}

// QuestionInsight pairs a ranked question with its narrated summary.
type QuestionInsight struct {
	Distribution *ResponseDistribution `json:"distribution"`
	Summary      string                `json:"summary"`
	AIGenerated  bool                  `json:"aiGenerated"`
}

// QuestionReport is the narrated form of a QuestionPerformance.
type QuestionReport struct {
	Best  []QuestionInsight `json:"best"`
	Worst []QuestionInsight `json:"worst"`
}

// DateRange bounds an analysis window; dates are YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filters is the active filter set of a dashboard view. Its canonical JSON
// form doubles as the cache fingerprint, so fields must keep a stable order
// and must not be omitted when empty.
type Filters struct {
	DateRange   *DateRange `json:"dateRange"`
	Region      string     `json:"region"`
	Store       string     `json:"store"`
	AreaManager string     `json:"areaManager"`
}
