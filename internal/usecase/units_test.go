package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrishop/backend/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		want     float64
		wantUnit string
	}{
		{1, "kg", 1000, domain.BaseUnitGram},
		{2, "kilos", 2000, domain.BaseUnitGram},
		{250, "g", 250, domain.BaseUnitGram},
		{500, "mg", 0.5, domain.BaseUnitGram},
		{1, "lb", 453.592, domain.BaseUnitGram},
		{1, "oz", 28.3495, domain.BaseUnitGram},
		{1, "l", 1000, domain.BaseUnitMl},
		{1, "litre", 1000, domain.BaseUnitMl},
		{33, "cl", 330, domain.BaseUnitMl},
		{250, "ml", 250, domain.BaseUnitMl},
		{6, "u", 6, domain.BaseUnitCount},
		{2, "pièces", 2, domain.BaseUnitCount},
		{3, "unit", 3, domain.BaseUnitCount},
		{1, " KG ", 1000, domain.BaseUnitGram},
		{1, "Litres", 1000, domain.BaseUnitMl},
		{0, "g", 0, domain.BaseUnitGram},
		{5000, "mg", 5, domain.BaseUnitGram},
		{1, "OZ", 28.3495, domain.BaseUnitGram},
		{1, "kilogrammes", 1000, domain.BaseUnitGram},
		{2, "Litres", 2000, domain.BaseUnitMl},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := Normalize(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, tt.wantUnit, got.BaseUnit)
		})
	}
}

func TestNormalizeUnknownUnit(t *testing.T) {
	_, err := Normalize(1, "cup")
	require.Error(t, err)

	var unitErr *domain.UnknownUnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, "cup", unitErr.Unit)
	assert.True(t, errors.Is(err, domain.ErrUnknownUnit))
}

func TestNormalizeIsIdempotentOnBaseUnits(t *testing.T) {
	for _, unit := range []string{"kg", "cl", "u"} {
		first, err := Normalize(2, unit)
		require.NoError(t, err)

		second, err := Normalize(first.Value, first.BaseUnit)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestKnownUnitsAllNormalize(t *testing.T) {
	units := KnownUnits()
	assert.NotEmpty(t, units)
	for _, unit := range units {
		_, err := Normalize(1, unit)
		assert.NoError(t, err, unit)
	}
}

func TestPricePerBaseUnit(t *testing.T) {
	promo := 1.0

	t.Run("uses effective price", func(t *testing.T) {
		offer := domain.StoreOffer{Price: 2, Unit: "kg", Quantity: 1, IsPromo: true, PromoPrice: &promo}
		price, ok := pricePerBaseUnit(offer)
		require.True(t, ok)
		assert.InDelta(t, 0.001, price, 1e-12)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, ok := pricePerBaseUnit(domain.StoreOffer{Price: 2, Unit: "box", Quantity: 1})
		assert.False(t, ok)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, ok := pricePerBaseUnit(domain.StoreOffer{Price: 2, Unit: "g", Quantity: 0})
		assert.False(t, ok)
	})
}
