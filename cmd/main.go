package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"magic_prompt_server/config"
	"magic_prompt_server/internal/admin"
	"magic_prompt_server/internal/ai"
	"magic_prompt_server/internal/api"
	"magic_prompt_server/internal/auth"
	"magic_prompt_server/internal/logger"
	"magic_prompt_server/internal/store"
	"magic_prompt_server/internal/wizard"
)

func main() {
	// --- Load .env file ---
	// Must happen BEFORE viper loads config.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Dependency Initialization ---

	// Postgres
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Could not create database pool", zap.Error(err))
	}
	defer pool.Close()
	// Only a malformed DSN stops startup; an unreachable database is reported
	// per request by the repositories.
	if err := store.Bootstrap(ctx, pool, cfg.RunMigrations, appLogger); err != nil {
		appLogger.Error("Database not ready, serving anyway", zap.Error(err))
	} else {
		appLogger.Info("Database connection established")
	}

	promptRepo := store.NewPgPromptRepository(pool, appLogger)
	profileRepo := store.NewPgProfileRepository(pool, appLogger)

	// Auth provider admin client, also used for remote token checks
	adminClient := admin.NewClient(cfg.SupabaseServiceRoleKey, cfg.SupabaseURL, appLogger)

	var verifier auth.TokenVerifier
	if cfg.SupabaseJWTSecret != "" {
		jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWTSecret, appLogger)
		if err != nil {
			appLogger.Fatal("Could not create JWT verifier", zap.Error(err))
		}
		verifier = jwtVerifier
	} else {
		appLogger.Info("SUPABASE_JWT_SECRET not set, verifying tokens against the auth provider")
		verifier = auth.NewRemoteVerifier(adminClient, appLogger)
	}
	admins := auth.NewAdminPolicy(cfg.AdminEmailList())
	if len(cfg.AdminEmailList()) == 0 {
		appLogger.Warn("ADMIN_EMAILS is empty, admin endpoints will reject every caller")
	}
	authMiddleware := auth.NewMiddleware(verifier, admins, appLogger)

	// Translation provider (optional)
	translator, err := ai.NewTranslator(ctx, ai.TranslatorConfig{
		Provider:     cfg.TranslationProvider,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		OpenAIAPIKey: cfg.OpenAIKey,
		OpenAIModel:  cfg.OpenAIModel,
	}, appLogger)
	switch {
	case errors.Is(err, ai.ErrTranslationDisabled):
		appLogger.Warn("No translation API key configured, /prompts/translate will answer 503",
			zap.String("provider", cfg.TranslationProvider))
		translator = nil
	case err != nil:
		appLogger.Fatal("Could not create translator", zap.Error(err))
	}

	apiHandler := api.NewAPIHandler(api.Dependencies{
		Sessions:   wizard.NewStore(cfg.WizardSessionTTL),
		Prompts:    promptRepo,
		Profiles:   profileRepo,
		Translator: translator,
		Admin:      adminClient,
		PublicURL:  cfg.PublicURL,
		Logger:     appLogger,
	})

	// --- Start API Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		appLogger.Info("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(api.ZapLogger(appLogger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "apikey", "x-client-info", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.RegisterRoutes(router, apiHandler, authMiddleware, api.NewPerMinuteLimiter(cfg.TranslateRatePerMinute))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // translation calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting API server", zap.String("addr", cfg.Addr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("API server listen error", zap.Error(err))
		}
		appLogger.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Received signal, shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("API server forced shutdown", zap.Error(err))
	} else {
		appLogger.Info("API server gracefully stopped")
	}

	appLogger.Info("Application exiting")
}
