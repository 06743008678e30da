package usecase

import (
	"fmt"
	"strconv"

	"github.com/nutrishop/backend/internal/domain"
)

// deliveryDistanceThreshold is the store distance above which delivery is suggested,
// in the caller's distance unit
const deliveryDistanceThreshold = 5.0

// noCombinationMessage is the only recommendation of an empty result
const noCombinationMessage = "Aucune combinaison de magasins trouvée"

// GenerateRecommendations builds the advisory messages for a result.
// Uncovered needs are counted globally across all selected stores.
func GenerateRecommendations(result *domain.OptimizationResult, needs []domain.ShoppingNeed) []string {
	recommendations := []string{}

	if result.Savings > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Vous économisez %.2f€ grâce aux promotions !", result.Savings))
	}

	if len(result.Stores) > 1 && result.Total > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Visiter %d magasins vous permet d'économiser %.1f%%",
				len(result.Stores), result.Savings/result.Total*100))
	}

	covered := result.CoveredNeedIDs()
	missing := 0
	for _, need := range needs {
		if !covered[need.ID] {
			missing++
		}
	}
	if missing > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d produits n'ont pas été trouvés dans les magasins sélectionnés", missing))
	}

	// Zero stores leaves maxDistance at 0
	maxDistance := 0.0
	for _, store := range result.Stores {
		maxDistance = max(maxDistance, store.DistanceOrZero())
	}
	if maxDistance > deliveryDistanceThreshold {
		recommendations = append(recommendations,
			fmt.Sprintf("Certains magasins sont à plus de %skm, envisagez la livraison",
				strconv.FormatFloat(maxDistance, 'f', -1, 64)))
	}

	return recommendations
}
