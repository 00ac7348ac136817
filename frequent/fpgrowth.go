package frequent

import (
	"cmp"
	"slices"

	"github.com/YuminosukeSato/gomine/pkg/errors"
)

// FPGrowth mines all frequent itemsets without candidate generation. The
// transactions are compressed into a single FP-tree whose paths share
// prefixes in descending-frequency order; mining then recursively extracts
// each item's conditional pattern base and builds a smaller conditional
// tree from it.
//
// minSupport is a fraction in [0, 1], converted internally to an absolute
// count (minSupport * len(transactions)) for comparison against tree-node
// count sums. The result set is identical to Apriori's for the same input;
// only the ordering differs, so callers should compare results as a set.
func FPGrowth[T cmp.Ordered](transactions [][]T, minSupport float64) ([]FrequentItemset[T], error) {
	if err := errors.CheckSupportFraction("FPGrowth", minSupport); err != nil {
		return nil, err
	}

	total := len(transactions)
	if total == 0 {
		return []FrequentItemset[T]{}, nil
	}
	minCount := minSupport * float64(total)

	// Header order: frequent items by descending document frequency,
	// ties broken by ascending item for determinism.
	freq := ItemFrequencies(transactions)
	header := make([]T, 0, len(freq))
	for item, count := range freq {
		if float64(count) >= minCount {
			header = append(header, item)
		}
	}
	slices.SortFunc(header, func(a, b T) int {
		if d := freq[b] - freq[a]; d != 0 {
			return d
		}
		return cmp.Compare(a, b)
	})
	rank := make(map[T]int, len(header))
	for i, item := range header {
		rank[item] = i
	}

	// Re-express each transaction as its frequent items in header order
	// and insert it into the shared tree.
	tree := newFPTree[T]()
	for _, transaction := range transactions {
		ordered := make([]T, 0, len(transaction))
		for _, item := range canonical(transaction) {
			if _, ok := rank[item]; ok {
				ordered = append(ordered, item)
			}
		}
		if len(ordered) == 0 {
			continue
		}
		slices.SortFunc(ordered, func(a, b T) int {
			return rank[a] - rank[b]
		})
		tree.insert(ordered, 1)
	}

	results := make([]FrequentItemset[T], 0)
	mineTree(tree, nil, minCount, &results)
	return results, nil
}

// mineTree emits suffix+item for every header item of t meeting the
// absolute threshold, then recurses into the item's conditional tree.
// Each sibling branch builds its own conditional tree; no mutable state
// is shared across branches.
func mineTree[T cmp.Ordered](t *fpTree[T], suffix []T, minCount float64, out *[]FrequentItemset[T]) {
	for _, item := range t.headerItems() {
		support := t.chainSupport(item)
		if float64(support) < minCount || support == 0 {
			continue
		}

		found := append(slices.Clone(suffix), item)
		*out = append(*out, FrequentItemset[T]{Items: canonical(found), Support: support})

		conditional := newFPTree[T]()
		for _, path := range t.prefixPaths(item) {
			conditional.insert(path.items, path.count)
		}
		if len(conditional.heads) > 0 {
			mineTree(conditional, found, minCount, out)
		}
	}
}
