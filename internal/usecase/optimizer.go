package usecase

import (
	"fmt"

	"github.com/nutrishop/backend/internal/domain"
)

// Optimizer defaults
const (
	DefaultMaxStores       = 3
	DefaultMaxCombinations = 100000
)

// OptimizerConfig holds the limits of the store combination search
type OptimizerConfig struct {
	MaxStores       int
	MaxCombinations int
}

// Optimizer finds the cheapest set of stores covering a list of needs.
// It holds no mutable state and is safe for concurrent use.
type Optimizer struct {
	maxStores       int
	maxCombinations int
}

// NewOptimizer creates an optimizer with the given configuration
func NewOptimizer(config OptimizerConfig) *Optimizer {
	maxStores := config.MaxStores
	if maxStores <= 0 {
		maxStores = DefaultMaxStores
	}

	maxCombinations := config.MaxCombinations
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}

	return &Optimizer{
		maxStores:       maxStores,
		maxCombinations: maxCombinations,
	}
}

// MaxStores returns the default store count used when a call passes none.
func (o *Optimizer) MaxStores() int {
	return o.maxStores
}

// MaxCombinations returns the combination ceiling.
func (o *Optimizer) MaxCombinations() int {
	return o.maxCombinations
}

// OptimizeShopping picks the store combination of at most maxStores stores with
// the lowest total and attaches recommendations. maxStores <= 0 uses the
// configured default.
//
// A need with an unknown unit fails the whole call with a
// *domain.UnknownUnitError, and crossing the combination ceiling fails it with
// a *domain.TooManyCombinationsError. No partial result is returned on error.
func (o *Optimizer) OptimizeShopping(
	needs []domain.ShoppingNeed,
	offers []domain.StoreOffer,
	maxStores int,
) (*domain.OptimizationResult, error) {
	if maxStores <= 0 {
		maxStores = o.maxStores
	}

	for _, need := range needs {
		if err := need.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		if _, err := Normalize(need.Quantity, need.Unit); err != nil {
			return nil, err
		}
	}

	validOffers := FilterOutliers(offers)
	storeIDs, offersByStore := groupByStore(validOffers)

	combinations, err := EnumerateCombinations(storeIDs, maxStores, o.maxCombinations)
	if err != nil {
		return nil, err
	}

	var best *domain.OptimizationResult
	for _, combination := range combinations {
		result := EvaluateCombination(needs, combination, offersByStore)
		if best == nil || result.Total < best.Total {
			best = &result
		}
	}

	if best == nil {
		return &domain.OptimizationResult{
			Stores:          []domain.StoreSummary{},
			Items:           []domain.StoreItems{},
			Recommendations: []string{noCombinationMessage},
		}, nil
	}

	best.Recommendations = GenerateRecommendations(best, needs)
	return best, nil
}

// groupByStore buckets offers per store, keeping stores in first-seen order.
func groupByStore(offers []domain.StoreOffer) ([]string, map[string][]domain.StoreOffer) {
	var storeIDs []string
	byStore := make(map[string][]domain.StoreOffer)
	for _, offer := range offers {
		if _, seen := byStore[offer.StoreID]; !seen {
			storeIDs = append(storeIDs, offer.StoreID)
		}
		byStore[offer.StoreID] = append(byStore[offer.StoreID], offer)
	}
	return storeIDs, byStore
}
