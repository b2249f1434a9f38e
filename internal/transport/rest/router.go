package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"brewdash/internal/logger"
	"brewdash/internal/service"
	"brewdash/internal/transport/rest/handler"
	"brewdash/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AnalysisService *service.AnalysisService
	SheetsClient    *service.SheetsClient
	Logger          *logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService, c.SheetsClient)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	r.Use(middleware.RequestLogging(c.Logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/analysis/4p", analysisHandler.FourP).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analysis/questions", analysisHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analysis/questions/monthly", analysisHandler.MonthlyQuestions).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
