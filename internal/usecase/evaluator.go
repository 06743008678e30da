package usecase

import (
	"math"

	"github.com/nutrishop/backend/internal/domain"
)

// unknownStoreName labels a candidate store that has no offers
const unknownStoreName = "Magasin inconnu"

// candidate is the cheapest (store, offer) pair found so far for one need
type candidate struct {
	storeIndex int
	offer      domain.StoreOffer
	packages   float64
	totalPrice float64
}

// EvaluateCombination assigns each need to its cheapest compatible offer among
// the given stores and totals the basket. Needs without a compatible offer are
// left out. The returned result carries no recommendations.
func EvaluateCombination(
	needs []domain.ShoppingNeed,
	storeIDs []string,
	offersByStore map[string][]domain.StoreOffer,
) domain.OptimizationResult {
	items := make([]domain.StoreItems, len(storeIDs))
	stores := make([]domain.StoreSummary, len(storeIDs))

	for i, storeID := range storeIDs {
		name := unknownStoreName
		var distance *float64
		if offers := offersByStore[storeID]; len(offers) > 0 {
			name = offers[0].StoreName
			distance = offers[0].Distance
		}
		items[i] = domain.StoreItems{StoreID: storeID, StoreName: name, Items: []domain.ItemAssignment{}}
		stores[i] = domain.StoreSummary{ID: storeID, Name: name, Distance: distance}
	}

	var total, savings float64
	for _, need := range needs {
		best, ok := cheapestOffer(need, storeIDs, offersByStore)
		if !ok {
			continue
		}

		items[best.storeIndex].Items = append(items[best.storeIndex].Items, domain.ItemAssignment{
			Need:       need,
			Offer:      best.offer,
			Quantity:   best.packages,
			TotalPrice: best.totalPrice,
		})
		items[best.storeIndex].Total += best.totalPrice
		stores[best.storeIndex].Total += best.totalPrice
		total += best.totalPrice

		if best.offer.HasPromoPrice() {
			saved := (best.offer.Price - *best.offer.PromoPrice) * best.packages
			stores[best.storeIndex].Savings += saved
			savings += saved
		}
	}

	return domain.OptimizationResult{
		Stores:  stores,
		Items:   items,
		Total:   total,
		Savings: savings,
	}
}

// cheapestOffer scans stores in order, then offers in order, keeping the first
// strictly cheapest line price. Pairs whose units cannot be normalized are skipped.
func cheapestOffer(
	need domain.ShoppingNeed,
	storeIDs []string,
	offersByStore map[string][]domain.StoreOffer,
) (candidate, bool) {
	needed, err := Normalize(need.Quantity, need.Unit)
	if err != nil {
		return candidate{}, false
	}

	best := candidate{storeIndex: -1, totalPrice: math.Inf(1)}
	for storeIndex, storeID := range storeIDs {
		for _, offer := range offersByStore[storeID] {
			if !NamesMatch(need.Name, offer.ProductName) {
				continue
			}

			packSize, err := Normalize(offer.Quantity, offer.Unit)
			if err != nil {
				continue
			}
			if packSize.BaseUnit != needed.BaseUnit || packSize.Value <= 0 {
				continue
			}

			packages := math.Ceil(needed.Value / packSize.Value)
			linePrice := offer.EffectivePrice() * packages
			if linePrice < best.totalPrice {
				best = candidate{
					storeIndex: storeIndex,
					offer:      offer,
					packages:   packages,
					totalPrice: linePrice,
				}
			}
		}
	}

	return best, best.storeIndex >= 0
}
