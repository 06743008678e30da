package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/nutrishop/backend/internal/domain"
	"github.com/nutrishop/backend/internal/usecase"
)

// optimizeOptions holds the flags of the optimize command
type optimizeOptions struct {
	needsPath       string
	offersPath      string
	maxStores       int
	maxCombinations int
}

// newRootCmd builds the command tree
func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "shopopt",
		Short:         "Find the cheapest set of stores for a shopping list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newOptimizeCmd(logger))
	root.AddCommand(newClassifyCmd())
	return root
}

func newOptimizeCmd(logger *zap.Logger) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Pick the store combination with the lowest total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.OutOrStdout(), opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.needsPath, "needs", "", "needs file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.offersPath, "offers", "", "offers file (YAML or JSON)")
	cmd.Flags().IntVar(&opts.maxStores, "max-stores", usecase.DefaultMaxStores, "maximum number of stores to visit")
	cmd.Flags().IntVar(&opts.maxCombinations, "max-combinations", usecase.DefaultMaxCombinations, "ceiling on evaluated store combinations")
	_ = cmd.MarkFlagRequired("needs")
	_ = cmd.MarkFlagRequired("offers")

	return cmd
}

func newClassifyCmd() *cobra.Command {
	var needsPath string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Split needs into fresh and dry products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			needs, err := loadList[domain.ShoppingNeed](needsPath, "needs")
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), usecase.ClassifyShoppingNeeds(needs))
		},
	}

	cmd.Flags().StringVar(&needsPath, "needs", "", "needs file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("needs")

	return cmd
}

func runOptimize(out io.Writer, opts *optimizeOptions, logger *zap.Logger) error {
	needs, err := loadList[domain.ShoppingNeed](opts.needsPath, "needs")
	if err != nil {
		return err
	}
	offers, err := loadList[domain.StoreOffer](opts.offersPath, "offers")
	if err != nil {
		return err
	}
	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			return fmt.Errorf("%s: %w", opts.offersPath, err)
		}
	}

	optimizer := usecase.NewOptimizer(usecase.OptimizerConfig{
		MaxStores:       opts.maxStores,
		MaxCombinations: opts.maxCombinations,
	})

	start := time.Now()
	result, err := optimizer.OptimizeShopping(needs, offers, opts.maxStores)
	if err != nil {
		return err
	}

	logger.Debug("optimization completed",
		zap.Int("needs", len(needs)),
		zap.Int("offers", len(offers)),
		zap.Int("stores_selected", len(result.Stores)),
		zap.Duration("elapsed", time.Since(start)))

	return writeJSON(out, result)
}

// loadList reads a YAML or JSON file holding either a bare list or a
// document with the list under key
func loadList[T any](path, key string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var list []T
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var document map[string][]T
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	list, ok := document[key]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q key", path, key)
	}
	return list, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
