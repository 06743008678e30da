package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are stored as JSON.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// OfferCatalog defines the interface for fetching store offers from a price feed
type OfferCatalog interface {
	FetchOffers(ctx context.Context, storeIDs []string) ([]StoreOffer, error)
}
