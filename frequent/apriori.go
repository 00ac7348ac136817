package frequent

import (
	"cmp"
	"slices"
	"strings"

	"github.com/YuminosukeSato/gomine/pkg/errors"
)

// Apriori mines all frequent itemsets level-wise: 1-itemsets are filtered
// against minSupport, then each round joins the previous round's survivors
// pairwise into larger candidates, counts their support over all
// transactions, and prunes the infrequent ones. The loop ends when a round
// yields no surviving candidate.
//
// minSupport is a fraction in [0, 1]; an itemset is frequent when
// count/len(transactions) >= minSupport. Values above 1 simply yield an
// empty result. Results are ordered by level (all 1-itemsets before
// 2-itemsets, and so on) and canonically within each level. Support is
// reported as an absolute transaction count.
func Apriori[T cmp.Ordered](transactions [][]T, minSupport float64) ([]FrequentItemset[T], error) {
	if err := errors.CheckSupportFraction("Apriori", minSupport); err != nil {
		return nil, err
	}

	total := len(transactions)
	if total == 0 {
		return []FrequentItemset[T]{}, nil
	}
	minCount := minSupport * float64(total)

	results := make([]FrequentItemset[T], 0)
	seen := make(map[string]bool)

	// Level 1: document frequency of single items.
	freq := ItemFrequencies(transactions)
	items := make([]T, 0, len(freq))
	for item := range freq {
		items = append(items, item)
	}
	slices.Sort(items)

	current := make([][]T, 0, len(items))
	for _, item := range items {
		if float64(freq[item]) < minCount {
			continue
		}
		itemset := []T{item}
		results = append(results, FrequentItemset[T]{Items: itemset, Support: freq[item]})
		current = append(current, itemset)
		seen[itemsetKey(itemset)] = true
	}

	// Higher levels: join survivors pairwise, deduplicate structurally,
	// count and prune. Itemsets already counted in an earlier round are
	// skipped, which bounds the loop by the finite itemset universe.
	for len(current) > 0 {
		candidates := PairwiseUnions(current)
		slices.SortFunc(candidates, func(a, b []T) int {
			return strings.Compare(itemsetKey(a), itemsetKey(b))
		})

		var next [][]T
		prevKey := ""
		for _, candidate := range candidates {
			key := itemsetKey(candidate)
			if key == prevKey || seen[key] {
				continue
			}
			prevKey = key
			seen[key] = true

			support := CountContaining(transactions, candidate)
			// Zero-support itemsets occur in no transaction and are
			// never reported, including at minSupport 0.
			if support == 0 || float64(support) < minCount {
				continue
			}
			results = append(results, FrequentItemset[T]{Items: candidate, Support: support})
			next = append(next, candidate)
		}
		current = next
	}

	return results, nil
}
