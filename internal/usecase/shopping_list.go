package usecase

import (
	"fmt"
	"time"

	"github.com/nutrishop/backend/internal/domain"
)

// isoDateLayout is the only date format accepted for plan dates
const isoDateLayout = "2006-01-02"

// RecipeIngredient is one ingredient line of a recipe
type RecipeIngredient struct {
	IngredientID string  `json:"ingredientId" yaml:"ingredientId"`
	Name         string  `json:"name" yaml:"name"`
	Category     string  `json:"category,omitempty" yaml:"category,omitempty"`
	Quantity     float64 `json:"quantity" yaml:"quantity"`
	Unit         string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// MenuItem is one meal of the plan
type MenuItem struct {
	Date        string             `json:"date" yaml:"date"`
	MealType    string             `json:"mealType" yaml:"mealType"`
	RecipeName  string             `json:"recipeName" yaml:"recipeName"`
	Ingredients []RecipeIngredient `json:"ingredients" yaml:"ingredients"`
}

// MealPlan is a set of meals over a date range
type MealPlan struct {
	StartDate string     `json:"startDate" yaml:"startDate"`
	EndDate   string     `json:"endDate" yaml:"endDate"`
	MenuItems []MenuItem `json:"menuItems" yaml:"menuItems"`
}

// AggregateShoppingList sums ingredient quantities over every meal of the plan.
// Lines are merged per ingredient and unit; the first occurrence fixes the
// position, name and category of the resulting need.
func AggregateShoppingList(plan MealPlan) []domain.ShoppingNeed {
	var order []string
	aggregated := make(map[string]*domain.ShoppingNeed)

	for _, item := range plan.MenuItems {
		for _, ingredient := range item.Ingredients {
			key := ingredient.IngredientID + ":" + ingredient.Unit
			if existing, ok := aggregated[key]; ok {
				existing.Quantity += ingredient.Quantity
				continue
			}
			order = append(order, key)
			aggregated[key] = &domain.ShoppingNeed{
				ID:       ingredient.IngredientID,
				Name:     ingredient.Name,
				Quantity: ingredient.Quantity,
				Unit:     ingredient.Unit,
				Category: ingredient.Category,
			}
		}
	}

	needs := make([]domain.ShoppingNeed, 0, len(order))
	for _, key := range order {
		needs = append(needs, *aggregated[key])
	}
	return needs
}

// ValidateDateRange checks that both dates are ISO dates and start <= end.
func ValidateDateRange(start, end string) error {
	startDate, err := time.Parse(isoDateLayout, start)
	if err != nil {
		return fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidRequest, start)
	}
	endDate, err := time.Parse(isoDateLayout, end)
	if err != nil {
		return fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidRequest, end)
	}
	if startDate.After(endDate) {
		return fmt.Errorf("%w: start date %s is after end date %s", domain.ErrInvalidRequest, start, end)
	}
	return nil
}

// MealDatesWithinRange reports whether every menu item falls inside [start, end].
func MealDatesWithinRange(items []MenuItem, start, end string) bool {
	if ValidateDateRange(start, end) != nil {
		return false
	}
	startDate, _ := time.Parse(isoDateLayout, start)
	endDate, _ := time.Parse(isoDateLayout, end)

	for _, item := range items {
		date, err := time.Parse(isoDateLayout, item.Date)
		if err != nil {
			return false
		}
		if date.Before(startDate) || date.After(endDate) {
			return false
		}
	}
	return true
}
