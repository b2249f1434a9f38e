package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Source identifies which checklist a submission came from
type Source string

const (
	SourceHR         Source = "hr"
	SourceOperations Source = "operations"
	SourceTraining   Source = "training"
	SourceQA         Source = "qa"
	SourceFinance    Source = "finance"
)

// DisplayName returns the human-readable name used in insight text
func (s Source) DisplayName() string {
	switch s {
	case SourceHR:
		return "HR Survey"
	case SourceOperations:
		return "Operations Audit"
	case SourceTraining:
		return "Training Audit"
	case SourceQA:
		return "QA Audit"
	case SourceFinance:
		return "Finance Audit"
	}
	return string(s)
}

// SubmissionRecord is one filled checklist instance as returned by the
// spreadsheet-backed endpoints: a flat mapping from field name to value.
// Records are read-only once received.
type SubmissionRecord map[string]interface{}

// GetField returns the raw value for a field. Absent fields and empty
// strings report false so callers can skip them.
func (r SubmissionRecord) GetField(name string) (interface{}, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// StringField returns the trimmed string form of a field, or "" when absent.
func (r SubmissionRecord) StringField(name string) string {
	v, ok := r.GetField(name)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// ChecklistData bundles the submission sets of all five sources for one
// analysis run.
type ChecklistData struct {
	HR         []SubmissionRecord `json:"hr"`
	Operations []SubmissionRecord `json:"operations"`
	Training   []SubmissionRecord `json:"training"`
	QA         []SubmissionRecord `json:"qa"`
	Finance    []SubmissionRecord `json:"finance"`
}

// BySource returns the submission set for one source.
func (d *ChecklistData) BySource(src Source) []SubmissionRecord {
	switch src {
	case SourceHR:
		return d.HR
	case SourceOperations:
		return d.Operations
	case SourceTraining:
		return d.Training
	case SourceQA:
		return d.QA
	case SourceFinance:
		return d.Finance
	}
	return nil
}

// Total returns the combined submission count across all sources.
func (d *ChecklistData) Total() int {
	return len(d.HR) + len(d.Operations) + len(d.Training) + len(d.QA) + len(d.Finance)
}
