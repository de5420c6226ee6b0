package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "secueval/docs" // Swagger documentation
	"secueval/internal/config"
	"secueval/internal/database"
	"secueval/internal/email"
	"secueval/internal/handlers"
	"secueval/internal/logger"
	"secueval/internal/middleware"
	"secueval/internal/repository"
	"secueval/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title SecuEval API
// @version 1.0
// @description Backend API for security self-assessment evaluations of essential and important entities

// @contact.name API Support
// @contact.email support@secueval.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Repositories
	axeRepo := repository.NewAxeRepository(db.DB)
	objectiveRepo := repository.NewObjectiveRepository(db.DB)
	questionRepo := repository.NewQuestionRepository(db.DB)
	evaluationRepo := repository.NewEvaluationRepository(db.DB)
	answerRepo := repository.NewAnswerRepository(db.DB)

	// Services
	emailService := email.NewService(&cfg.SMTP)
	catalogService := service.NewCatalogService(axeRepo, objectiveRepo, questionRepo)
	evaluationService := service.NewEvaluationService(evaluationRepo)
	flowService := service.NewFlowService(evaluationRepo, questionRepo, objectiveRepo, answerRepo, emailService)

	// Middleware
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	flowHandler := handlers.NewFlowHandler(flowService)

	mux := http.NewServeMux()

	// Catalog routes
	mux.HandleFunc("POST /api/v1/axes", catalogHandler.CreateAxe)
	mux.HandleFunc("GET /api/v1/axes", catalogHandler.GetAxes)
	mux.HandleFunc("GET /api/v1/axes/{id}", catalogHandler.GetAxe)
	mux.HandleFunc("PUT /api/v1/axes/{id}", catalogHandler.UpdateAxe)
	mux.HandleFunc("DELETE /api/v1/axes/{id}", catalogHandler.DeleteAxe)
	mux.HandleFunc("GET /api/v1/axes/{id}/objectives", catalogHandler.GetAxeObjectives)

	mux.HandleFunc("POST /api/v1/objectives", catalogHandler.CreateObjective)
	mux.HandleFunc("GET /api/v1/objectives", catalogHandler.GetObjectives)
	mux.HandleFunc("GET /api/v1/objectives/{id}", catalogHandler.GetObjective)
	mux.HandleFunc("PUT /api/v1/objectives/{id}", catalogHandler.UpdateObjective)
	mux.HandleFunc("DELETE /api/v1/objectives/{id}", catalogHandler.DeleteObjective)
	mux.HandleFunc("GET /api/v1/objectives/{id}/questions", catalogHandler.GetObjectiveQuestions)

	mux.HandleFunc("POST /api/v1/questions", catalogHandler.CreateQuestion)
	mux.HandleFunc("GET /api/v1/questions", catalogHandler.GetQuestions)
	mux.HandleFunc("GET /api/v1/questions/{id}", catalogHandler.GetQuestion)
	mux.HandleFunc("PUT /api/v1/questions/{id}", catalogHandler.UpdateQuestion)
	mux.HandleFunc("DELETE /api/v1/questions/{id}", catalogHandler.DeleteQuestion)

	// Evaluation routes
	mux.HandleFunc("POST /api/v1/evaluations", evaluationHandler.CreateEvaluation)
	mux.HandleFunc("GET /api/v1/evaluations/{id}", evaluationHandler.GetEvaluation)
	mux.HandleFunc("PUT /api/v1/evaluations/{id}", evaluationHandler.UpdateEvaluation)
	mux.HandleFunc("DELETE /api/v1/evaluations/{id}", evaluationHandler.DeleteEvaluation)
	mux.HandleFunc("GET /api/v1/users/{userId}/evaluations", evaluationHandler.GetUserEvaluations)
	mux.HandleFunc("GET /api/v1/users/{userId}/dashboard", evaluationHandler.GetDashboard)

	// Flow routes
	mux.HandleFunc("GET /api/v1/evaluations/{evaluationId}/next-question", flowHandler.GetNextQuestion)
	mux.HandleFunc("GET /api/v1/evaluations/{evaluationId}/current-info", flowHandler.GetCurrentInfo)
	mux.HandleFunc("POST /api/v1/evaluations/{evaluationId}/finalize-objective", flowHandler.FinalizeObjective)
	mux.HandleFunc("GET /api/v1/evaluations/{evaluationId}/verify-next-objective", flowHandler.VerifyNextObjective)
	mux.HandleFunc("GET /api/v1/evaluations/{evaluationId}/answered-details", flowHandler.GetAnsweredDetails)

	// Answer routes
	mux.HandleFunc("POST /api/v1/answers", flowHandler.PostAnswer)
	mux.HandleFunc("GET /api/v1/answers/{id}", flowHandler.GetAnswer)
	mux.HandleFunc("DELETE /api/v1/answers/{id}", flowHandler.DeleteAnswer)
	mux.HandleFunc("GET /api/v1/evaluations/{evaluationId}/answers", flowHandler.GetEvaluationAnswers)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`)); err != nil {
				slog.Error("Failed to write health check response", "error", err)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`)); err != nil {
			slog.Error("Failed to write health check response", "error", err)
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
