package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nutrishop/backend/internal/domain"
)

const (
	maxAttempts       = 3
	maxParallelStores = 4
)

// Client fetches store offers from the price feed
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
	now         func() time.Time
	backoff     func(attempt int) time.Duration
}

// NewClient creates a new catalog client.
// requestsPerSecond <= 0 defaults to 5 requests per second with a burst of 10.
func NewClient(baseURL string, timeout time.Duration, requestsPerSecond float64, logger *zap.Logger) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 10),
		logger:      logger,
		now:         time.Now,
		backoff:     exponentialBackoff,
	}
}

// exponentialBackoff returns the wait before retrying the given attempt: 500ms, 1s, 2s...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// FetchOffers fetches the offers of every store concurrently.
// Offers are returned grouped in the order of storeIDs.
func (c *Client) FetchOffers(ctx context.Context, storeIDs []string) ([]domain.StoreOffer, error) {
	perStore := make([][]domain.StoreOffer, len(storeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelStores)
	for i, storeID := range storeIDs {
		g.Go(func() error {
			offers, err := c.FetchStoreOffers(gctx, storeID)
			if err != nil {
				return fmt.Errorf("store %s: %w", storeID, err)
			}
			perStore[i] = offers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var offers []domain.StoreOffer
	for _, storeOffers := range perStore {
		offers = append(offers, storeOffers...)
	}
	return offers, nil
}

// FetchStoreOffers fetches the current offers of one store, retrying transient failures
func (c *Client) FetchStoreOffers(ctx context.Context, storeID string) ([]domain.StoreOffer, error) {
	reqURL := fmt.Sprintf("%s/v1/stores/%s/offers", c.baseURL, url.PathEscape(storeID))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		feed, retry, err := c.fetchOnce(ctx, reqURL)
		if err == nil {
			if feed.Store.ID == "" {
				feed.Store.ID = storeID
			}
			c.logger.Debug("catalog offers fetched",
				zap.String("store_id", storeID),
				zap.Int("offers", len(feed.Offers)))
			return MapToStoreOffers(feed, c.now()), nil
		}
		if !retry {
			return nil, err
		}

		lastErr = err
		c.logger.Warn("catalog request failed",
			zap.String("store_id", storeID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff(attempt)):
			}
		}
	}

	return nil, lastErr
}

// fetchOnce performs one GET. retry reports whether the failure is transient.
func (c *Client) fetchOnce(ctx context.Context, reqURL string) (*feedResponse, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Nutrishop/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("%w: %v", domain.ErrCatalogFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: reading body: %v", domain.ErrCatalogFailure, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, domain.ErrStoreNotFound
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("%w: status %d", domain.ErrCatalogFailure, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogFailure, resp.StatusCode, string(body))
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}
	return &feed, false, nil
}
