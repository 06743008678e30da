package catalog

// feedResponse is the body of GET /v1/stores/{id}/offers
type feedResponse struct {
	Store  feedStore   `json:"store"`
	Offers []feedOffer `json:"offers"`
}

// feedStore describes the store publishing the offers
type feedStore struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Distance *float64 `json:"distance,omitempty"`
}

// feedOffer is one product listing as published by the feed
type feedOffer struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Unit      string     `json:"unit"`
	Quantity  float64    `json:"quantity"`
	Promo     *feedPromo `json:"promo,omitempty"`
}

// feedPromo is a temporary price reduction
type feedPromo struct {
	Price float64 `json:"price"`
	Start string  `json:"start,omitempty"` // YYYY-MM-DD, inclusive
	End   string  `json:"end,omitempty"`   // YYYY-MM-DD, inclusive
}
