package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/presentwallah/engine/internal/api"
	"github.com/presentwallah/engine/internal/api/handlers"
	"github.com/presentwallah/engine/internal/images"
	"github.com/presentwallah/engine/internal/llm"
	"github.com/presentwallah/engine/internal/repository"
	"github.com/presentwallah/engine/internal/services"
	"github.com/presentwallah/engine/pkg/config"
	"github.com/presentwallah/engine/pkg/database"
	"github.com/presentwallah/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting document engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.AppEnv)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	revisionRepo := repository.NewRevisionRepository(db)

	completer, err := llm.NewOpenAIClient(llm.Settings{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	if err != nil {
		log.Fatal("failed to build content provider client", zap.Error(err))
	}

	// the photo source degrades to miss on every lookup without a key
	imageClient := images.NewClient(cfg.PexelsAPIKey)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer asynqClient.Close()

	jwtSecret := []byte(cfg.JWTSecret)
	validate := validator.New()

	authSvc := services.NewAuthService(userRepo, jwtSecret)
	projectSvc := services.NewProjectService(projectRepo, sectionRepo)
	contentSvc := services.NewContentService(projectRepo, sectionRepo, revisionRepo, completer, asynqClient)
	exportSvc := services.NewExportService(projectRepo, sectionRepo, imageClient)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:      jwtSecret,
		HealthHandler:   handlers.NewHealthHandler(db),
		AuthHandler:     handlers.NewAuthHandler(authSvc, validate),
		ProjectsHandler: handlers.NewProjectsHandler(projectSvc, contentSvc, exportSvc, validate),
		SectionsHandler: handlers.NewSectionsHandler(contentSvc, validate),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
