package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-candidate-intake/config"
	v1 "go-candidate-intake/internal/delivery/http/v1"
	"go-candidate-intake/internal/repository/postgres"
	"go-candidate-intake/internal/usecase"
	"go-candidate-intake/pkg/database"
	"go-candidate-intake/pkg/logger"
	"go-candidate-intake/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Candidate Intake API
// @version         1.0
// @description     Backend for candidate intake: validation, transactional persistence and profile retrieval.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidate intake backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewWorkExperienceRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	candidateUC := usecase.NewCandidateUsecase(
		candidateRepo, educationRepo, experienceRepo, resumeRepo, txManager, validate,
	)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
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
