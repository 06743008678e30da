package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/nutrishop/backend/internal/domain"
)

const (
	minOutlierSample = 3
	iqrFactor        = 1.5
)

// FilterOutliers drops offers whose price per base unit falls outside the
// interquartile fences of their product group. Groups smaller than three offers
// are kept untouched.
//
// Quartiles use the nearest-rank index floor(n*p) with no interpolation.
func FilterOutliers(offers []domain.StoreOffer) []domain.StoreOffer {
	var order []string
	groups := make(map[string][]domain.StoreOffer)
	for _, offer := range offers {
		key := strings.ToLower(strings.TrimSpace(offer.ProductName))
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], offer)
	}

	filtered := make([]domain.StoreOffer, 0, len(offers))
	for _, key := range order {
		group := groups[key]
		if len(group) < minOutlierSample {
			filtered = append(filtered, group...)
			continue
		}

		prices := make([]float64, 0, len(group))
		for _, offer := range group {
			if p, ok := pricePerBaseUnit(offer); ok {
				prices = append(prices, p)
			}
		}
		if len(prices) == 0 {
			continue
		}

		lower, upper := iqrBounds(prices)
		for _, offer := range group {
			p, ok := pricePerBaseUnit(offer)
			if ok && p >= lower && p <= upper {
				filtered = append(filtered, offer)
			}
		}
	}

	return filtered
}

// iqrBounds returns the Tukey fences for the given sample.
func iqrBounds(prices []float64) (float64, float64) {
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	q1 := sorted[int(math.Floor(n*0.25))]
	q3 := sorted[int(math.Floor(n*0.75))]
	iqr := q3 - q1

	return q1 - iqrFactor*iqr, q3 + iqrFactor*iqr
}
