package app

import (
	"brewdash/internal/cache"
	"brewdash/internal/config"
	"brewdash/internal/logger"
	"brewdash/internal/repository"
	"brewdash/internal/service"
)

// Build wires the analysis pipeline from configuration. The cache and the
// snapshot repository are injected so the server can choose backends; repo
// may be nil when no MongoDB is available.
func Build(cfg *config.Config, log *logger.Logger, analysisCache cache.AnalysisCache, repo repository.AnalysisRepo) *App {
	queue := service.NewRequestQueue(service.DefaultMinDelay)
	aiClient := service.NewAIClient(cfg.AI, queue, log)
	fourP := service.NewFourPService(log)
	questions := service.NewQuestionService(log)
	narrator := service.NewNarratorService(aiClient, cfg.AI.MaxRemarks, log)
	analysis := service.NewAnalysisService(fourP, questions, narrator, analysisCache, repo, log)

	return &App{
		Queue:         queue,
		AIClient:      aiClient,
		FourP:         fourP,
		Questions:     questions,
		Narrator:      narrator,
		Analysis:      analysis,
		Sheets:        service.NewSheetsClient(cfg.Sources, log),
		AnalysisCache: analysisCache,
		AnalysisRepo:  repo,
	}
}
