package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"interviewprep/internal/config"
	"interviewprep/internal/handlers"
	"interviewprep/internal/llm"
	_ "interviewprep/internal/llm/gemini"
	"interviewprep/internal/metrics"
	"interviewprep/internal/middleware"
	"interviewprep/internal/prompts"
	mongorepo "interviewprep/internal/repositories/mongo"
	"interviewprep/internal/routers"
)

func registerRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, interviewHandler *handlers.InterviewHandler, adminHandler *handlers.AdminHandler, aiHandler *handlers.AIHandler, healthHandler *handlers.HealthHandler, guard func(http.Handler) http.Handler) {
	routers.HealthRoutes(router, healthHandler)
	routers.UserRoutes(router, authHandler, userHandler, guard)
	routers.InterviewRoutes(router, interviewHandler)
	routers.AdminRoutes(router, adminHandler)
	routers.AIRoutes(router, aiHandler)
	router.Handle("/metrics", metrics.Handler())
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("db", cfg.DBName),
		zap.String("provider", cfg.Provider))

	ctx := context.Background()
	dbClient, err := mongorepo.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	userRepo := mongorepo.NewUserRepo(dbClient)
	interviewRepo := mongorepo.NewInterviewRepo(dbClient)

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, logger)
	userHandler := handlers.NewUserHandler(userRepo)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, interviewRepo, logger)
	aiHandler := handlers.NewAIHandler(aiProvider, promptManager, logger)
	healthHandler := handlers.NewHealthHandler(dbClient)

	guard := middleware.RequireAuth(cfg.JWTSecret, userRepo)

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer)
	router.Use(metrics.Middleware())

	registerRoutes(router, authHandler, userHandler, interviewHandler, adminHandler, aiHandler, healthHandler, guard)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := dbClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
