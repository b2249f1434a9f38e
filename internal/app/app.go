package app

import (
	"brewdash/internal/cache"
	"brewdash/internal/repository"
	"brewdash/internal/service"
)

// App bundles the wired components shared by the server and the offline
// analyzer.
type App struct {
	Queue         *service.RequestQueue
	AIClient      *service.AIClient
	FourP         *service.FourPService
	Questions     *service.QuestionService
	Narrator      *service.NarratorService
	Analysis      *service.AnalysisService
	Sheets        *service.SheetsClient
	AnalysisCache cache.AnalysisCache
	AnalysisRepo  repository.AnalysisRepo
}

// Close releases resources held by the container.
func (a *App) Close() {
	if a.Queue != nil {
		a.Queue.Close()
	}
}
