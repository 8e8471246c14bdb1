// @title           My Store CRM API
// @version         1.0
// @description     Customers, products, orders and reminders kept in a Google spreadsheet

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/NotMomex/my-store-crm/internal/app/routes"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

func main() {
	// load .env, the environment may already be set some other way
	envErr := godotenv.Load()

	cfg := config.GetConfig()

	logCfg := Logger.DefaultConfig()
	logCfg.Dir = cfg.LogDir
	logCfg.Level = cfg.LogLevel
	if err := Logger.SetupLogger(logCfg); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		Logger.Warning("could not load .env file: %v", envErr)
	}
	if cfg.JWTSecretGenerated {
		Logger.Warning("JWT_SECRET_KEY is not set, using a random secret; tokens are invalidated on restart")
	}

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		Logger.Error("failed to open sheet store: %v", err)
		os.Exit(1)
	}

	if cfg.SheetsSetupMode == config.SetupModeEnsure {
		if err := store.EnsureCollections(ctx, services.SheetCollections()); err != nil {
			Logger.Error("sheet setup failed: %v", err)
			os.Exit(1)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = services.NewRedisClient(cfg)
	}

	serviceContainer := container.NewServiceContainer(cfg, store, redisClient)
	defer serviceContainer.Close()

	ensureAdminExists(ctx, serviceContainer, cfg)

	r := routes.SetupRouter(serviceContainer)
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s (store: %s)", cfg.ServerPort, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("graceful shutdown failed: %v", err)
	}
}

// openStore connects the configured sheet backend
func openStore(ctx context.Context, cfg *config.Config) (*sheetstore.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		Logger.Warning("using the in-memory store, data is lost on restart")
		client := sheetstore.NewMemoryClient()
		for _, c := range services.SheetCollections() {
			client.Seed(c.Name, c.Headers)
		}
		return sheetstore.NewStore(client), nil
	case config.StoreDriverSheets:
		client, err := sheetstore.NewGoogleClient(ctx, cfg.GoogleSheetID, cfg.GoogleCredentialsPath)
		if err != nil {
			return nil, err
		}
		return sheetstore.NewStore(client), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// ensureAdminExists creates the default admin when no user exists and a
// bootstrap password is configured
func ensureAdminExists(ctx context.Context, c *container.ServiceContainer, cfg *config.Config) {
	if cfg.DefaultAdminPassword == "" {
		return
	}
	authService := c.GetService("auth").(services.InterfaceAuthService)
	created, err := authService.EnsureAdmin(ctx, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword)
	if err != nil {
		Logger.Error("failed to create default admin: %v", err)
		return
	}
	if created {
		Logger.Info("default admin %s created", cfg.DefaultAdminUsername)
	}
}
