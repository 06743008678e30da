package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/nutrishop/backend/config"
	httpDelivery "github.com/nutrishop/backend/internal/delivery/http"
	"github.com/nutrishop/backend/internal/domain"
	"github.com/nutrishop/backend/internal/infrastructure/cache"
	"github.com/nutrishop/backend/internal/infrastructure/catalog"
	"github.com/nutrishop/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	exitCode := 0
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		exitCode = 1
	}
	_ = logger.Sync()
	os.Exit(exitCode)
}

// run wires the server and blocks until it stops. Deferred cleanup runs
// before it returns.
func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting Nutrishop backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.Int("max_stores", cfg.Optimizer.MaxStores),
		zap.Int("max_combinations", cfg.Optimizer.MaxCombinations),
		zap.Duration("cache_ttl", cfg.Cache.TTL))

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	// A nil interface keeps the service from calling a missing catalog
	var offerCatalog domain.OfferCatalog
	if cfg.Catalog.BaseURL != "" {
		offerCatalog = catalog.NewClient(
			cfg.Catalog.BaseURL,
			cfg.Catalog.Timeout,
			cfg.Catalog.RequestsPerSecond,
			logger.Named("catalog"),
		)
		logger.Info("offer catalog configured", zap.String("base_url", cfg.Catalog.BaseURL))
	} else {
		logger.Warn("offer catalog not configured, requests must carry their offers")
	}

	// Initialize usecase layer
	shoppingService := usecase.NewShoppingService(
		memoryCache,
		offerCatalog,
		usecase.ShoppingServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Optimizer: usecase.OptimizerConfig{
				MaxStores:       cfg.Optimizer.MaxStores,
				MaxCombinations: cfg.Optimizer.MaxCombinations,
			},
		},
		logger.Named("shopping"),
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(shoppingService, logger.Named("http"))

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger.Named("access"))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// newLogger returns a human-readable logger in development and JSON otherwise
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
