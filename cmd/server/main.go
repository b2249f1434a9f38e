package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brewdash/internal/app"
	"brewdash/internal/cache"
	"brewdash/internal/config"
	"brewdash/internal/logger"
	"brewdash/internal/repository"
	"brewdash/internal/transport/rest"
)

func main() {
	cfg := config.Load()
	log := logger.New()
	ctx := context.Background()

	if cfg.AI.IsEnabled() {
		log.WithField("model", cfg.AI.Model).Info("ai narration enabled")
	} else {
		log.Info("ai narration disabled, using fallback insights")
	}

	// Snapshot store is optional.
	var analysisRepo repository.AnalysisRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.WithError(err).Fatal("failed to connect to MongoDB")
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.WithError(err).Fatal("failed to ping MongoDB")
		}
		analysisRepo = repository.NewAnalysisRepo(mongoClient.Database("brewdash"))
		log.Info("connected to MongoDB")
	}

	var analysisCache cache.AnalysisCache
	if cfg.CacheBackend == "redis" && cfg.RedisURI != "" {
		redisAddr := cfg.RedisURI
		if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
			redisAddr = redisAddr[8:]
		}
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.WithError(err).Fatal("failed to ping Redis")
		}
		analysisCache = cache.NewRedisCache(rdb, cache.DefaultTTL)
		log.Info("connected to Redis")
	} else {
		analysisCache = cache.NewMemoryCache(cache.DefaultTTL)
		log.Info("using in-memory analysis cache")
	}

	application := app.Build(cfg, log, analysisCache, analysisRepo)
	defer application.Close()

	router := rest.NewRouter(&rest.Container{
		AnalysisService: application.Analysis,
		SheetsClient:    application.Sheets,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
