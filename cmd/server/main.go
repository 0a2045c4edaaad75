// @title           Mockup Catalog Backend API
// @version         1.0.0
// @description     Backend API for a print-on-demand catalog: blank products with generated SKUs, mockup rendering of designs through Dynamic Mockups, marketplace CSV/XLSX exports and FTP delivery.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"mockup-catalog-backend/internal/cache"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/config"
	"mockup-catalog-backend/internal/database"
	"mockup-catalog-backend/internal/dynamicmockups"
	"mockup-catalog-backend/internal/ftp"
	"mockup-catalog-backend/internal/logger"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/services"
	"mockup-catalog-backend/internal/supabase"
)

func main() {
	// A missing .env is fine outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database connection string
	var dbClient *database.DatabaseClient
	if cfg.DatabaseURL == "" {
		zapLogger.Warn("DATABASE_URL not set; catalog endpoints will answer 'database not available'")
	} else {
		dbClient, err = database.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			zapLogger.Warn("failed to initialize database client", zap.Error(err))
			dbClient = nil
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(cfg.DatabaseURL, zapLogger)
			if err != nil {
				zapLogger.Warn("failed to initialize migrator", zap.Error(err))
			} else {
				if err := migrator.Run(); err != nil {
					zapLogger.Warn("migration failed", zap.Error(err))
				} else {
					zapLogger.Info("migrations completed successfully")
				}
				migrator.Close()
			}
		}
	}

	// Initialize Supabase storage, falling back to a bare storage client
	var storageClient *supabase.StorageClient
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zapLogger.Warn("failed to initialize supabase client", zap.Error(err))
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			zapLogger.Fatal("failed to initialize storage client", zap.Error(err))
		}
	} else {
		storageClient = supabaseClient.Storage()
	}

	// Rendering API and the batch orchestrator on top of it
	mockupsClient := dynamicmockups.NewClient(cfg.DynamicMockupsBaseURL, cfg.DynamicMockupsAPIKey)
	orchestrator := mockup.NewOrchestrator(mockupsClient, cfg.DefaultSmartObjectUUID, zapLogger)

	// Runs live in Redis when configured so they survive restarts
	var runStore services.RunStore
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			zapLogger.Warn("redis unavailable, keeping runs in memory", zap.Error(err))
		} else {
			defer redisClient.Close()
			runStore = cache.NewRedisRunStore(redisClient, cfg.RunTTL)
		}
	}
	if runStore == nil {
		runStore = cache.NewMemoryRunStore(cfg.RunTTL)
	}

	ftpClient := ftp.NewClient(cfg.FTPTimeout, zapLogger)

	// Handlers take interfaces; without a database they get nil and answer 500
	var a apis
	if dbClient != nil {
		issuer := catalog.NewIssuer(nil)
		a.products = services.NewProductService(dbClient, dbClient, mockupsClient, issuer, cfg.PageSize, zapLogger)
		a.designs = services.NewDesignService(dbClient, dbClient, storageClient, mockupsClient, orchestrator, runStore, zapLogger).
			WithDefaultTemplate(cfg.DefaultMockupUUID)
		a.export = services.NewExportService(dbClient, dbClient, dbClient, ftpClient, cfg.PageSize, zapLogger)
		a.settings = services.NewFTPService(dbClient, ftpClient, zapLogger)
		a.pinger = dbClient
	}

	setSwaggerHost(cfg.BaseURL)
	router := newRouter(zapLogger, a)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
}
