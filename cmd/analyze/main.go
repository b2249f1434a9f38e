// Command analyze runs the 4P analysis offline against xlsx exports and
// prints the result as JSON. Useful for month-end reviews without the
// server or the live sheet endpoints.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"brewdash/internal/app"
	"brewdash/internal/cache"
	"brewdash/internal/config"
	"brewdash/internal/dataset"
	"brewdash/internal/logger"
	"brewdash/internal/model"
)

func main() {
	hrPath := flag.String("hr", "", "path to HR survey xlsx export")
	opsPath := flag.String("operations", "", "path to operations audit xlsx export")
	trainingPath := flag.String("training", "", "path to training audit xlsx export")
	qaPath := flag.String("qa", "", "path to QA audit xlsx export")
	financePath := flag.String("finance", "", "path to finance audit xlsx export")
	questions := flag.Bool("questions", false, "also print the question performance report")
	flag.Parse()

	log := logger.New()
	cfg := config.Load()
	application := app.Build(cfg, log, cache.NewMemoryCache(cache.DefaultTTL), nil)
	defer application.Close()

	data := &model.ChecklistData{}
	for _, src := range []struct {
		path string
		dest *[]model.SubmissionRecord
	}{
		{*hrPath, &data.HR},
		{*opsPath, &data.Operations},
		{*trainingPath, &data.Training},
		{*qaPath, &data.QA},
		{*financePath, &data.Finance},
	} {
		if src.path == "" {
			continue
		}
		subs, err := dataset.LoadWorkbook(src.path)
		if err != nil {
			log.WithError(err).Fatal("failed to load workbook")
		}
		*src.dest = subs
	}
	if data.Total() == 0 {
		fmt.Fprintln(os.Stderr, "no submissions loaded; pass at least one xlsx export")
		os.Exit(1)
	}

	ctx := context.Background()
	analysis, err := application.Analysis.FourP(ctx, nil, data)
	if err != nil {
		log.WithError(err).Fatal("analysis failed")
	}

	out := map[string]interface{}{"fourP": analysis}
	if *questions {
		out["questions"] = application.Analysis.QuestionPerformance(ctx, data.HR, 3)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.WithError(err).Fatal("failed to encode output")
	}
}
