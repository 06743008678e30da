package usecase

import "github.com/nutrishop/backend/internal/domain"

// GenerateCombinations appends every k-sized subset of items to results.
// Subsets are produced once each, in index-ascending order.
func GenerateCombinations(items []string, k, start int, current []string, results *[][]string) {
	if len(current) == k {
		*results = append(*results, append([]string(nil), current...))
		return
	}

	// i may go up to len(items)-(k-len(current)) inclusive, otherwise the
	// last valid subsets are never reached
	for i := start; i <= len(items)-(k-len(current)); i++ {
		GenerateCombinations(items, k, i+1, append(current, items[i]), results)
	}
}

// EnumerateCombinations returns every subset of items with 1..maxSize members.
// It stops with a *domain.TooManyCombinationsError as soon as more than
// ceiling subsets have been produced.
func EnumerateCombinations(items []string, maxSize, ceiling int) ([][]string, error) {
	limit := min(maxSize, len(items))
	var results [][]string

	for k := 1; k <= limit; k++ {
		if err := enumerateBounded(items, k, 0, make([]string, 0, k), &results, ceiling); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// enumerateBounded is GenerateCombinations with an incremental ceiling check.
func enumerateBounded(items []string, k, start int, current []string, results *[][]string, ceiling int) error {
	if len(current) == k {
		if len(*results) >= ceiling {
			return &domain.TooManyCombinationsError{Limit: ceiling, Count: len(*results) + 1}
		}
		*results = append(*results, append([]string(nil), current...))
		return nil
	}

	for i := start; i <= len(items)-(k-len(current)); i++ {
		if err := enumerateBounded(items, k, i+1, append(current, items[i]), results, ceiling); err != nil {
			return err
		}
	}
	return nil
}

// CountCombinations returns the number of subsets with 1..maxSize members of
// an n-element set, saturating at the largest int.
func CountCombinations(n, maxSize int) int {
	const maxInt = int(^uint(0) >> 1)

	total := 0
	binom := 1
	for k := 1; k <= min(maxSize, n); k++ {
		// C(n,k) = C(n,k-1) * (n-k+1) / k
		next := binom * (n - k + 1)
		if binom != 0 && next/binom != n-k+1 {
			return maxInt
		}
		binom = next / k
		if total > maxInt-binom {
			return maxInt
		}
		total += binom
	}
	return total
}
