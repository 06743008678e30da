package usecase

import (
	"strings"

	"github.com/nutrishop/backend/internal/domain"
)

// weightFactors converts weight units to grams
var weightFactors = map[string]float64{
	"kg": 1000, "kgs": 1000,
	"kilogram": 1000, "kilograms": 1000,
	"kilogramme": 1000, "kilogrammes": 1000,
	"kilo": 1000, "kilos": 1000,
	"g": 1, "gram": 1, "grams": 1, "gramme": 1, "grammes": 1,
	"mg": 0.001, "milligram": 0.001, "milligrams": 0.001,
	"milligramme": 0.001, "milligrammes": 0.001,
	"lb": 453.592, "lbs": 453.592, "pound": 453.592, "pounds": 453.592,
	"oz": 28.3495, "ozs": 28.3495, "ounce": 28.3495, "ounces": 28.3495,
}

// volumeFactors converts volume units to millilitres
var volumeFactors = map[string]float64{
	"l": 1000, "lt": 1000,
	"liter": 1000, "liters": 1000, "litre": 1000, "litres": 1000,
	"ml": 1, "milliliter": 1, "milliliters": 1, "millilitre": 1, "millilitres": 1,
	"cl": 10, "centiliter": 10, "centiliters": 10, "centilitre": 10, "centilitres": 10,
}

// countUnits are counted as-is
var countUnits = map[string]bool{
	"u": true, "unit": true, "units": true,
	"pièce": true, "pièces": true, "piece": true, "pieces": true,
	"pcs": true,
}

// Normalize converts a quantity to its base unit (g, ml or unit).
// Returns a *domain.UnknownUnitError when the unit is in none of the tables.
func Normalize(value float64, unit string) (domain.NormalizedQuantity, error) {
	key := strings.ToLower(strings.TrimSpace(unit))

	if factor, ok := weightFactors[key]; ok {
		return domain.NormalizedQuantity{Value: value * factor, BaseUnit: domain.BaseUnitGram}, nil
	}
	if factor, ok := volumeFactors[key]; ok {
		return domain.NormalizedQuantity{Value: value * factor, BaseUnit: domain.BaseUnitMl}, nil
	}
	if countUnits[key] {
		return domain.NormalizedQuantity{Value: value, BaseUnit: domain.BaseUnitCount}, nil
	}

	return domain.NormalizedQuantity{}, &domain.UnknownUnitError{Unit: unit}
}

// KnownUnits lists every unit spelling accepted by Normalize.
func KnownUnits() []string {
	units := make([]string, 0, len(weightFactors)+len(volumeFactors)+len(countUnits))
	for u := range weightFactors {
		units = append(units, u)
	}
	for u := range volumeFactors {
		units = append(units, u)
	}
	for u := range countUnits {
		units = append(units, u)
	}
	return units
}

// pricePerBaseUnit returns the effective price of one base unit of the offer.
// ok is false when the offer quantity cannot be normalized or is not positive.
func pricePerBaseUnit(offer domain.StoreOffer) (float64, bool) {
	normalized, err := Normalize(offer.Quantity, offer.Unit)
	if err != nil || normalized.Value <= 0 {
		return 0, false
	}
	return offer.EffectivePrice() / normalized.Value, true
}
