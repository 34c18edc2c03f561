package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/config"
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/gemini"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.SetLevel(cfg.LogLevel)
	logger.Log.Info("Starting job matching backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional - rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	applicantRepo := postgres.NewApplicantRepository(dbPool)

	// 6. Setup Insight Generator (optional - matching works without it)
	var insightGen domain.InsightGenerator
	if cfg.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Insight generator unavailable", "error", err)
		} else {
			insightGen = gen
		}
	}

	// 7. Setup UseCases
	validate := validator.New()
	jobUC := usecase.NewJobUsecase(jobRepo)
	matchUC := usecase.NewMatchUsecase(jobRepo, applicantRepo, insightGen, validate, usecase.MatchConfig{
		MaxResultsCap:  cfg.MatchMaxResults,
		InsightTimeout: time.Duration(cfg.InsightTimeoutSeconds) * time.Second,
		InsightWorkers: cfg.InsightWorkers,
	})

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:   jobUC,
		MatchUC: matchUC,
		Config:  cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
