package frequent

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// FrequentItemset is the result unit shared by both mining engines: a
// canonical itemset together with the number of transactions containing it.
type FrequentItemset[T cmp.Ordered] struct {
	// Items is the itemset in canonical form: ascending order, no duplicates.
	Items []T

	// Support is the absolute support count.
	Support int
}

// Fraction returns the relative support given the total transaction count.
// Returns 0 when totalTransactions is 0.
func (f FrequentItemset[T]) Fraction(totalTransactions int) float64 {
	if totalTransactions == 0 {
		return 0
	}
	return float64(f.Support) / float64(totalTransactions)
}

// Compress collapses adjacent duplicate items into a single occurrence.
// The input must already be sorted; duplicates in an unsorted sequence may
// be non-adjacent and survive. Relative order of surviving items is
// preserved and the operation is idempotent. The input slice is not
// modified.
func Compress[T comparable](sorted []T) []T {
	return slices.Compact(slices.Clone(sorted))
}

// canonical returns the itemset form of items: sorted ascending with
// duplicates removed. The input slice is not modified.
func canonical[T cmp.Ordered](items []T) []T {
	c := slices.Clone(items)
	slices.Sort(c)
	return slices.Compact(c)
}

// ItemFrequencies tallies, for each distinct item, the number of
// transactions containing it at least once. Items appearing in no
// transaction have no entry; the map never holds zero counts.
func ItemFrequencies[T cmp.Ordered](transactions [][]T) map[T]int {
	freq := make(map[T]int)
	for _, transaction := range transactions {
		for _, item := range canonical(transaction) {
			freq[item]++
		}
	}
	return freq
}

// CountContaining counts the transactions containing every item of itemset,
// independent of order or duplication within the transaction. An empty
// itemset is vacuously contained in every transaction, so the result is
// len(transactions) in that case.
func CountContaining[T comparable](transactions [][]T, itemset []T) int {
	count := 0
	for _, transaction := range transactions {
		if containsAll(transaction, itemset) {
			count++
		}
	}
	return count
}

func containsAll[T comparable](transaction, itemset []T) bool {
	for _, item := range itemset {
		if !slices.Contains(transaction, item) {
			return false
		}
	}
	return true
}

// PairwiseUnions generates the union of every unordered pair of the given
// canonical itemsets, each union re-canonicalized. This is the candidate
// generation step: from k-itemsets it produces (k+1)-itemsets, or larger
// ones when a pair differs in more than one item. Different pairs can
// yield the same union; callers deduplicate across pairs.
func PairwiseUnions[T cmp.Ordered](itemsets [][]T) [][]T {
	var unions [][]T
	for i := 0; i < len(itemsets); i++ {
		for j := i + 1; j < len(itemsets); j++ {
			union := append(slices.Clone(itemsets[i]), itemsets[j]...)
			slices.Sort(union)
			unions = append(unions, Compress(union))
		}
	}
	return unions
}

// itemsetKey renders an itemset as a string key for structural
// deduplication. Keys compare equal iff the canonical itemsets are equal.
func itemsetKey[T any](items []T) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		fmt.Fprint(&b, item)
	}
	return b.String()
}
