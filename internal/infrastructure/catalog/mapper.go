package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/nutrishop/backend/internal/domain"
)

const promoDateLayout = "2006-01-02"

// sizePatternRegex matches pack sizes embedded in feed product names, e.g. "500 g", "1,5L", "x6"
var sizePatternRegex = regexp.MustCompile(
	`(?i)\b\d+(?:[.,]\d+)?\s*(?:kg|g|mg|l|cl|ml|lb|lbs|oz)\b|\bx\s*\d+\b|\b\d+\s*x\b`,
)

var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// MapToStoreOffers converts a feed page to domain offers.
// Promotions are only kept when now falls inside their window.
func MapToStoreOffers(feed *feedResponse, now time.Time) []domain.StoreOffer {
	offers := make([]domain.StoreOffer, 0, len(feed.Offers))
	for _, o := range feed.Offers {
		offer := domain.StoreOffer{
			StoreID:     feed.Store.ID,
			ProductID:   o.ProductID,
			StoreName:   feed.Store.Name,
			ProductName: cleanProductName(o.Name),
			Price:       o.Price,
			Unit:        o.Unit,
			Quantity:    o.Quantity,
			Distance:    feed.Store.Distance,
		}

		if o.Promo != nil && promoActive(o.Promo, now) {
			promoPrice := o.Promo.Price
			offer.IsPromo = true
			offer.PromoPrice = &promoPrice
			offer.PromoStart = o.Promo.Start
			offer.PromoEnd = o.Promo.End
		}

		offers = append(offers, offer)
	}
	return offers
}

// cleanProductName strips pack sizes so names can be matched against ingredient names
func cleanProductName(name string) string {
	name = sizePatternRegex.ReplaceAllString(name, " ")
	name = multipleSpacesRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// promoActive reports whether now is within the promo's inclusive date window.
// A missing bound is open; an unparsable bound disables the promo.
func promoActive(promo *feedPromo, now time.Time) bool {
	today := now.UTC().Format(promoDateLayout)

	if promo.Start != "" {
		start, err := time.Parse(promoDateLayout, promo.Start)
		if err != nil {
			return false
		}
		if today < start.Format(promoDateLayout) {
			return false
		}
	}
	if promo.End != "" {
		end, err := time.Parse(promoDateLayout, promo.End)
		if err != nil {
			return false
		}
		if today > end.Format(promoDateLayout) {
			return false
		}
	}
	return true
}
