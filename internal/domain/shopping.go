package domain

import (
	"fmt"
	"strings"
)

// Base units every quantity is normalized to before comparison
const (
	BaseUnitGram  = "g"
	BaseUnitMl    = "ml"
	BaseUnitCount = "unit"
)

// Need priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ShoppingNeed is one ingredient requirement for the whole plan period
type ShoppingNeed struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
	Priority string  `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Validate checks the fields the optimizer relies on.
func (n ShoppingNeed) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("need: id is required")
	}
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("need %q: name is required", n.ID)
	}
	if n.Quantity <= 0 {
		return fmt.Errorf("need %q: quantity must be positive, got %v", n.ID, n.Quantity)
	}
	switch n.Priority {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("need %q: unknown priority %q", n.ID, n.Priority)
	}
	return nil
}

// StoreOffer is one product listing at one store
type StoreOffer struct {
	StoreID     string   `json:"storeId" yaml:"storeId"`
	ProductID   string   `json:"productId" yaml:"productId"`
	StoreName   string   `json:"storeName" yaml:"storeName"`
	ProductName string   `json:"productName" yaml:"productName"`
	Price       float64  `json:"price" yaml:"price"`
	Unit        string   `json:"unit" yaml:"unit"`
	Quantity    float64  `json:"quantity" yaml:"quantity"`
	IsPromo     bool     `json:"isPromo,omitempty" yaml:"isPromo,omitempty"`
	PromoPrice  *float64 `json:"promoPrice,omitempty" yaml:"promoPrice,omitempty"`
	PromoStart  string   `json:"promoStart,omitempty" yaml:"promoStart,omitempty"`
	PromoEnd    string   `json:"promoEnd,omitempty" yaml:"promoEnd,omitempty"`
	Distance    *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Validate checks the fields the optimizer relies on.
func (o StoreOffer) Validate() error {
	if strings.TrimSpace(o.StoreID) == "" {
		return fmt.Errorf("offer %q: storeId is required", o.ProductID)
	}
	if strings.TrimSpace(o.ProductName) == "" {
		return fmt.Errorf("offer %q: productName is required", o.ProductID)
	}
	if o.Price < 0 {
		return fmt.Errorf("offer %q: price must not be negative, got %v", o.ProductID, o.Price)
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("offer %q: quantity must be positive, got %v", o.ProductID, o.Quantity)
	}
	if o.PromoPrice != nil && *o.PromoPrice < 0 {
		return fmt.Errorf("offer %q: promoPrice must not be negative", o.ProductID)
	}
	return nil
}

// HasPromoPrice reports whether the offer is a promotion carrying a usable promo price.
// A promo price of zero is treated as absent.
func (o StoreOffer) HasPromoPrice() bool {
	return o.IsPromo && o.PromoPrice != nil && *o.PromoPrice != 0
}

// EffectivePrice is the price actually paid for one package.
func (o StoreOffer) EffectivePrice() float64 {
	if o.HasPromoPrice() {
		return *o.PromoPrice
	}
	return o.Price
}


// NormalizedQuantity is a quantity expressed in one of the base units
type NormalizedQuantity struct {
	Value    float64 `json:"value"`
	BaseUnit string  `json:"baseUnit"`
}

// StoreSummary is one selected store with its subtotal and promo savings
type StoreSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Distance *float64 `json:"distance,omitempty"`
	Total    float64  `json:"total"`
	Savings  float64  `json:"savings"`
}

// DistanceOrZero returns the store distance, 0 when unknown.
func (s StoreSummary) DistanceOrZero() float64 {
	if s.Distance == nil {
		return 0
	}
	return *s.Distance
}

// ItemAssignment binds a need to the offer chosen to cover it
type ItemAssignment struct {
	Need       ShoppingNeed `json:"need"`
	Offer      StoreOffer   `json:"offer"`
	Quantity   float64      `json:"quantity"` // packages to buy
	TotalPrice float64      `json:"totalPrice"`
}

// StoreItems is the basket bought at one store
type StoreItems struct {
	StoreID   string           `json:"storeId"`
	StoreName string           `json:"storeName"`
	Items     []ItemAssignment `json:"items"`
	Total     float64          `json:"total"`
}

// OptimizationResult is the cheapest store combination found for a set of needs
type OptimizationResult struct {
	Stores          []StoreSummary `json:"stores"`
	Items           []StoreItems   `json:"items"`
	Total           float64        `json:"total"`
	Savings         float64        `json:"savings"`
	Recommendations []string       `json:"recommendations"`
}

// CoveredNeedIDs returns the IDs of every need assigned to some store.
func (r *OptimizationResult) CoveredNeedIDs() map[string]bool {
	covered := make(map[string]bool)
	for _, store := range r.Items {
		for _, item := range store.Items {
			covered[item.Need.ID] = true
		}
	}
	return covered
}

// OptimizeRequest is the input accepted by the shopping service
type OptimizeRequest struct {
	Needs     []ShoppingNeed `json:"needs" yaml:"needs" binding:"required"`
	Offers    []StoreOffer   `json:"offers,omitempty" yaml:"offers,omitempty"`
	StoreIDs  []string       `json:"storeIds,omitempty" yaml:"storeIds,omitempty"`
	MaxStores int            `json:"maxStores,omitempty" yaml:"maxStores,omitempty"`
}
