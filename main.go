package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	database "github.com/kanishkPamecha/Movies/app/db"
	appLogger "github.com/kanishkPamecha/Movies/app/logger"
	"github.com/kanishkPamecha/Movies/app/observability/metrics"
	"github.com/kanishkPamecha/Movies/config"
	"github.com/kanishkPamecha/Movies/internal/api"
	"github.com/kanishkPamecha/Movies/internal/api/auth"
	"github.com/kanishkPamecha/Movies/internal/api/genre"
	"github.com/kanishkPamecha/Movies/internal/api/movie"
	"github.com/kanishkPamecha/Movies/internal/api/upload"
	"github.com/kanishkPamecha/Movies/internal/api/user"
	"github.com/kanishkPamecha/Movies/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(&cfg)
	slog.SetDefault(logger)
	api.SetStackExposure(!cfg.IsProduction())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- Metrics Setup ---
	metricsHandler, err := metrics.SetupMeterProvider()
	if err != nil {
		logger.Error("Failed to set up meter provider", slog.Any("error", err))
		os.Exit(1)
	}
	appMetrics, err := metrics.InitAppMetrics()
	if err != nil {
		logger.Error("Failed to initialize app metrics", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Dependency Injection ---
	authRepo := auth.NewPostgresAuthRepo(pool, logger)
	authService := auth.NewAuthService(authRepo, &cfg, logger, appMetrics)
	authHandler := auth.NewAuthHandler(authService, &cfg, logger)

	userRepo := user.NewPostgresUserRepo(pool, logger)
	userService := user.NewUserService(userRepo, logger)
	userHandler := user.NewHandlerImpl(userService, logger)

	genreRepo := genre.NewPostgresGenreRepo(pool, logger)
	genreService := genre.NewGenreService(genreRepo, logger)
	genreHandler := genre.NewGenreHandler(genreService, logger)

	movieRepo := movie.NewPostgresMovieRepo(pool, logger)
	movieService := movie.NewMovieService(movieRepo, logger)
	movieHandler := movie.NewMovieHandler(movieService, logger)

	storage, err := upload.NewStorageFromConfig(&cfg)
	if err != nil {
		logger.Error("Failed to initialize upload storage", slog.Any("error", err))
		os.Exit(1)
	}
	uploadHandler := upload.NewUploadHandler(storage, &cfg, logger, appMetrics)

	// --- Router Setup ---
	mainRouter := router.SetupRouter(&router.Config{
		AppConfig:     &cfg,
		AuthHandler:   authHandler,
		UserHandler:   userHandler,
		GenreHandler:  genreHandler,
		MovieHandler:  movieHandler,
		UploadHandler: uploadHandler,
		Authenticate:  auth.Authenticate(logger, &cfg, authRepo),
		RequireAdmin:  auth.RequireAdmin(logger),
	})

	r := chi.NewMux()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(appLogger.StructuredLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.Timeout(cfg.Server.Timeout))
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Mount("/", mainRouter)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.MetricsPort),
		Handler: metricsMux,
	}

	// --- Start Servers ---
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	// Colored logs for development
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}
