package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nutrishop/backend/internal/domain"
	"github.com/nutrishop/backend/internal/usecase"
)

const needsYAML = `
needs:
  - id: "1"
    name: lait
    quantity: 2
    unit: l
  - id: "2"
    name: pâtes
    quantity: 500
    unit: g
`

const offersJSON = `[
  {"storeId":"s1","productId":"p1","storeName":"Marché","productName":"lait","price":1.2,"unit":"l","quantity":1},
  {"storeId":"s1","productId":"p2","storeName":"Marché","productName":"pâtes","price":0.9,"unit":"g","quantity":500},
  {"storeId":"s2","productId":"p3","storeName":"Hyper","productName":"lait","price":1.0,"unit":"l","quantity":1},
  {"storeId":"s2","productId":"p4","storeName":"Hyper","productName":"pâtes","price":1.5,"unit":"g","quantity":500}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOptimizeCommand(t *testing.T) {
	needs := writeFile(t, "needs.yaml", needsYAML)
	offers := writeFile(t, "offers.json", offersJSON)

	out, err := execute(t, "optimize", "--needs", needs, "--offers", offers)
	require.NoError(t, err)

	var result domain.OptimizationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	// lait at s2 (2.0) and pâtes at s1 (0.9)
	assert.InDelta(t, 2.9, result.Total, 1e-9)
	assert.Len(t, result.Stores, 2)
}

func TestOptimizeCommandSingleStore(t *testing.T) {
	needs := writeFile(t, "needs.yaml", needsYAML)
	offers := writeFile(t, "offers.json", offersJSON)

	out, err := execute(t, "optimize", "--needs", needs, "--offers", offers, "--max-stores", "1")
	require.NoError(t, err)

	var result domain.OptimizationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 3.3, result.Total, 1e-9)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "s1", result.Stores[0].ID)
}

func TestOptimizeCommandCeiling(t *testing.T) {
	needs := writeFile(t, "needs.yaml", needsYAML)
	offers := writeFile(t, "offers.json", offersJSON)

	_, err := execute(t, "optimize", "--needs", needs, "--offers", offers, "--max-combinations", "2")

	var tooMany *domain.TooManyCombinationsError
	require.True(t, errors.As(err, &tooMany))
	assert.Equal(t, 2, tooMany.Limit)
}

func TestOptimizeCommandRequiresFlags(t *testing.T) {
	_, err := execute(t, "optimize")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	needs := writeFile(t, "needs.yaml", needsYAML)

	out, err := execute(t, "classify", "--needs", needs)
	require.NoError(t, err)

	var classified usecase.ClassifiedNeeds
	require.NoError(t, json.Unmarshal([]byte(out), &classified))
	require.Len(t, classified.Fresh, 1)
	require.Len(t, classified.Dry, 1)
	assert.Equal(t, "lait", classified.Fresh[0].Name)
	assert.Equal(t, "pâtes", classified.Dry[0].Name)
}

func TestLoadList(t *testing.T) {
	t.Run("bare list", func(t *testing.T) {
		path := writeFile(t, "needs.yaml", "- id: a\n  name: riz\n  quantity: 1\n  unit: kg\n")
		needs, err := loadList[domain.ShoppingNeed](path, "needs")
		require.NoError(t, err)
		require.Len(t, needs, 1)
		assert.Equal(t, "riz", needs[0].Name)
	})

	t.Run("missing key", func(t *testing.T) {
		path := writeFile(t, "needs.yaml", "items: []\n")
		_, err := loadList[domain.ShoppingNeed](path, "needs")
		assert.ErrorContains(t, err, `missing "needs" key`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadList[domain.ShoppingNeed](filepath.Join(t.TempDir(), "nope.yaml"), "needs")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
