package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrishop/backend/internal/domain"
)

func TestClassifyShoppingNeeds(t *testing.T) {
	needs := []domain.ShoppingNeed{
		need("1", "Lait", 1, "l"),
		need("2", "Pâtes", 500, "g"),
		need("3", "Crème fraîche", 20, "cl"),
		need("4", "Riz basmati", 1, "kg"),
		need("5", "Tomates cerises", 250, "g"),
	}

	classified := ClassifyShoppingNeeds(needs)

	require.Len(t, classified.Fresh, 3)
	require.Len(t, classified.Dry, 2)
	assert.Equal(t, "1", classified.Fresh[0].ID)
	assert.Equal(t, "3", classified.Fresh[1].ID)
	assert.Equal(t, "5", classified.Fresh[2].ID)
	assert.Equal(t, "2", classified.Dry[0].ID)
	assert.Equal(t, "4", classified.Dry[1].ID)

	for _, n := range classified.Fresh {
		assert.Equal(t, CategoryFresh, n.Category)
	}
	for _, n := range classified.Dry {
		assert.Equal(t, CategoryDry, n.Category)
	}
}

func TestClassifyShoppingNeedsDoesNotMutateInput(t *testing.T) {
	needs := []domain.ShoppingNeed{need("1", "Lait", 1, "l")}

	ClassifyShoppingNeeds(needs)
	assert.Empty(t, needs[0].Category)
}

func TestClassifyShoppingNeedsEmpty(t *testing.T) {
	classified := ClassifyShoppingNeeds(nil)
	assert.NotNil(t, classified.Fresh)
	assert.NotNil(t, classified.Dry)
	assert.Empty(t, classified.Fresh)
	assert.Empty(t, classified.Dry)
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "pates", foldAccents("pâtes"))
	assert.Equal(t, "creme fraiche", foldAccents("crème fraîche"))
	assert.Equal(t, "epinards", foldAccents("épinards"))
}
