package cache

import (
	"context"
	"encoding/json"
	"time"

	"brewdash/internal/model"
)

// DefaultTTL is how long a computed analysis stays valid.
const DefaultTTL = time.Hour

// AnalysisCache stores computed 4P analyses keyed by filter fingerprint.
// A nil result with nil error is a miss; callers treat errors as misses
// too, the cache is never load-bearing.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*model.FourPAnalysis, error)
	Put(ctx context.Context, key string, analysis *model.FourPAnalysis) error
}

// Fingerprint derives the cache key of a filter set from its canonical
// JSON form. Two views with the same filters always share a key; the
// unfiltered view keeps its own key, distinct from a present-but-empty
// filter set.
func Fingerprint(f *model.Filters) string {
	if f == nil {
		return "4p:analysis:nil"
	}
	data, err := json.Marshal(f)
	if err != nil {
		return "4p:analysis:invalid"
	}
	return "4p:analysis:" + string(data)
}
