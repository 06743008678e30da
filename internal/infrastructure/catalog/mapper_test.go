package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanProductName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Lait demi-écrémé 1L", "Lait demi-écrémé"},
		{"Pâtes penne 500g", "Pâtes penne"},
		{"Yaourt nature x6", "Yaourt nature"},
		{"Huile d'olive 1,5 L", "Huile d'olive"},
		{"Tomato sauce 12 oz", "Tomato sauce"},
		{"  farine   de blé  ", "farine de blé"},
		{"Carottes", "Carottes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanProductName(tt.input))
		})
	}
}

func TestPromoActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		promo feedPromo
		want  bool
	}{
		{"open window", feedPromo{Price: 1}, true},
		{"inside window", feedPromo{Price: 1, Start: "2026-03-10", End: "2026-03-20"}, true},
		{"first day inclusive", feedPromo{Price: 1, Start: "2026-03-15"}, true},
		{"last day inclusive", feedPromo{Price: 1, End: "2026-03-15"}, true},
		{"not started", feedPromo{Price: 1, Start: "2026-03-16"}, false},
		{"expired", feedPromo{Price: 1, End: "2026-03-14"}, false},
		{"bad start date", feedPromo{Price: 1, Start: "15/03/2026"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promoActive(&tt.promo, now))
		})
	}
}

func TestMapToStoreOffers(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	distance := 2.5
	feed := &feedResponse{
		Store: feedStore{ID: "s1", Name: "Marché Central", Distance: &distance},
		Offers: []feedOffer{
			{ProductID: "p1", Name: "Lait entier 1L", Price: 1.2, Unit: "l", Quantity: 1},
			{
				ProductID: "p2", Name: "Beurre doux 250g", Price: 2.4, Unit: "g", Quantity: 250,
				Promo: &feedPromo{Price: 1.9, Start: "2026-03-01", End: "2026-03-31"},
			},
			{
				ProductID: "p3", Name: "Riz basmati", Price: 3, Unit: "kg", Quantity: 1,
				Promo: &feedPromo{Price: 2, End: "2026-02-28"},
			},
		},
	}

	offers := MapToStoreOffers(feed, now)
	require.Len(t, offers, 3)

	assert.Equal(t, "s1", offers[0].StoreID)
	assert.Equal(t, "Marché Central", offers[0].StoreName)
	assert.Equal(t, "Lait entier", offers[0].ProductName)
	assert.Equal(t, &distance, offers[0].Distance)
	assert.False(t, offers[0].IsPromo)

	assert.True(t, offers[1].IsPromo)
	require.NotNil(t, offers[1].PromoPrice)
	assert.Equal(t, 1.9, *offers[1].PromoPrice)
	assert.Equal(t, 1.9, offers[1].EffectivePrice())
	assert.Equal(t, "2026-03-31", offers[1].PromoEnd)

	assert.False(t, offers[2].IsPromo, "expired promo must be dropped")
	assert.Nil(t, offers[2].PromoPrice)
	assert.Equal(t, 3.0, offers[2].EffectivePrice())
}
