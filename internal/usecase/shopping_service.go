package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nutrishop/backend/internal/domain"
)

// ShoppingServiceConfig holds configuration for the shopping service
type ShoppingServiceConfig struct {
	CacheTTL  time.Duration
	Optimizer OptimizerConfig
}

// ShoppingService runs optimizations for requests, fetching offers from the
// catalog when the caller sends none and caching results
type ShoppingService struct {
	cache     domain.CacheRepository
	catalog   domain.OfferCatalog
	optimizer *Optimizer
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewShoppingService creates a new shopping service with dependencies.
// catalog may be nil when offers always come with the request.
func NewShoppingService(
	cache domain.CacheRepository,
	catalog domain.OfferCatalog,
	config ShoppingServiceConfig,
	logger *zap.Logger,
) *ShoppingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ShoppingService{
		cache:     cache,
		catalog:   catalog,
		optimizer: NewOptimizer(config.Optimizer),
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Optimize resolves the offers of a request and returns the cheapest basket.
// Flow: resolve offers -> check cache -> optimize -> cache -> return
func (s *ShoppingService) Optimize(ctx context.Context, request *domain.OptimizeRequest) (*domain.OptimizationResult, error) {
	if request == nil || len(request.Needs) == 0 {
		return nil, fmt.Errorf("%w: at least one need is required", domain.ErrInvalidRequest)
	}

	offers, err := s.resolveOffers(ctx, request)
	if err != nil {
		return nil, err
	}
	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
	}

	maxStores := request.MaxStores
	if maxStores <= 0 {
		maxStores = s.optimizer.MaxStores()
	}

	cacheKey, err := generateCacheKey(request.Needs, offers, maxStores)
	if err != nil {
		return nil, err
	}

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		s.logger.Debug("optimization served from cache", zap.String("key", cacheKey))
		return cached, nil
	}

	// The optimizer itself cannot be interrupted
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Upper bound before outlier filtering drops stores
	combinations := CountCombinations(countStores(offers), maxStores)

	start := time.Now()
	result, err := s.optimizer.OptimizeShopping(request.Needs, offers, maxStores)
	if err != nil {
		s.logger.Warn("optimization failed",
			zap.Int("needs", len(request.Needs)),
			zap.Int("offers", len(offers)),
			zap.Int("max_stores", maxStores),
			zap.Int("combinations", combinations),
			zap.Int("max_combinations", s.optimizer.MaxCombinations()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("optimization completed",
		zap.Int("needs", len(request.Needs)),
		zap.Int("offers", len(offers)),
		zap.Int("combinations", combinations),
		zap.Int("max_combinations", s.optimizer.MaxCombinations()),
		zap.Int("stores_selected", len(result.Stores)),
		zap.Float64("total", result.Total),
		zap.Float64("savings", result.Savings),
		zap.Duration("elapsed", time.Since(start)))

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache optimization result", zap.Error(err))
	}

	return result, nil
}

// Classify splits needs into fresh and dry products.
func (s *ShoppingService) Classify(needs []domain.ShoppingNeed) ClassifiedNeeds {
	return ClassifyShoppingNeeds(needs)
}

// BuildShoppingList validates a meal plan and aggregates its ingredients into needs.
func (s *ShoppingService) BuildShoppingList(plan MealPlan) ([]domain.ShoppingNeed, error) {
	if err := ValidateDateRange(plan.StartDate, plan.EndDate); err != nil {
		return nil, err
	}
	if !MealDatesWithinRange(plan.MenuItems, plan.StartDate, plan.EndDate) {
		return nil, fmt.Errorf("%w: meal plan dates out of range", domain.ErrInvalidRequest)
	}
	return AggregateShoppingList(plan), nil
}

// resolveOffers returns the request offers, or fetches them from the catalog.
func (s *ShoppingService) resolveOffers(ctx context.Context, request *domain.OptimizeRequest) ([]domain.StoreOffer, error) {
	if len(request.Offers) > 0 {
		return request.Offers, nil
	}
	if len(request.StoreIDs) == 0 {
		return nil, nil
	}
	if s.catalog == nil {
		return nil, domain.ErrCatalogNotConfigured
	}

	offers, err := s.catalog.FetchOffers(ctx, request.StoreIDs)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) ||
			errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogFailure, err)
	}

	s.logger.Debug("offers fetched from catalog",
		zap.Strings("store_ids", request.StoreIDs),
		zap.Int("offers", len(offers)))
	return offers, nil
}

// countStores returns the number of distinct store IDs among offers
func countStores(offers []domain.StoreOffer) int {
	stores := make(map[string]struct{}, len(offers))
	for _, offer := range offers {
		stores[offer.StoreID] = struct{}{}
	}
	return len(stores)
}

// generateCacheKey hashes the canonical JSON of the optimization inputs.
// Format: "optimize:{sha256}"
func generateCacheKey(needs []domain.ShoppingNeed, offers []domain.StoreOffer, maxStores int) (string, error) {
	payload, err := json.Marshal(struct {
		Needs     []domain.ShoppingNeed `json:"needs"`
		Offers    []domain.StoreOffer   `json:"offers"`
		MaxStores int                   `json:"maxStores"`
	}{needs, offers, maxStores})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}

	sum := sha256.Sum256(payload)
	return "optimize:" + hex.EncodeToString(sum[:]), nil
}

// getFromCache retrieves an optimization result from cache
func (s *ShoppingService) getFromCache(ctx context.Context, key string) (*domain.OptimizationResult, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result domain.OptimizationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &result, nil
}
