package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerboost-backend/config"
	_ "careerboost-backend/docs" // Important for Swagger
	v1 "careerboost-backend/internal/delivery/http/v1"
	"careerboost-backend/internal/usecase"
	"careerboost-backend/internal/vocab"
	"careerboost-backend/pkg/linkedin"
	"careerboost-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           CareerBoost AI API
// @version         1.0
// @description     CV analysis backend: profile extraction, ATS-style scoring, and artifact generation.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careerboost backend", "port", cfg.Port)

	// 3. Load Skill Vocabulary
	catalog, err := vocab.Load()
	if err != nil {
		logger.Log.Error("Failed to load vocabulary catalog", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Vocabulary loaded", "skills", len(catalog.Skills))

	// 4. Setup LinkedIn Client
	liClient := linkedin.NewClient(&http.Client{Timeout: cfg.LinkedInFetchTimeout()})

	// 5. Setup UseCases
	profileUC := usecase.NewProfileUsecase(catalog, liClient)
	analysisUC := usecase.NewAnalysisUsecase(catalog)
	roadmapUC := usecase.NewRoadmapUsecase(catalog)
	artifactUC := usecase.NewArtifactUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:  profileUC,
		AnalysisUC: analysisUC,
		RoadmapUC:  roadmapUC,
		ArtifactUC: artifactUC,
		Config:     cfg,
	})

	// 7. Start Server
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
