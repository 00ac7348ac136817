package frequent

import (
	"reflect"
	"testing"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name   string
		sorted []string
		want   []string
	}{
		{
			name:   "no duplicates",
			sorted: []string{"a", "b", "c"},
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "adjacent duplicates removed",
			sorted: []string{"a", "a", "b", "b", "b", "c"},
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "single item",
			sorted: []string{"a"},
			want:   []string{"a"},
		},
		{
			name:   "empty",
			sorted: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.sorted)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compress(%v) = %v, want %v", tt.sorted, got, tt.want)
			}
		})
	}
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "a", "b"}
	_ = Compress(in)
	if !reflect.DeepEqual(in, []string{"a", "a", "b"}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestItemFrequencies(t *testing.T) {
	// Duplicates within a transaction count once.
	transactions := [][]string{
		{"a", "a", "b"},
		{"b", "b"},
		{"a", "b"},
	}
	got := ItemFrequencies(transactions)
	want := map[string]int{"a": 2, "b": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ItemFrequencies = %v, want %v", got, want)
	}
}

func TestCountContaining(t *testing.T) {
	transactions := [][]string{
		{"a", "b", "c"},
		{"a", "c"},
		{"b"},
	}

	tests := []struct {
		name    string
		itemset []string
		want    int
	}{
		{"single item", []string{"a"}, 2},
		{"pair", []string{"a", "c"}, 2},
		{"full transaction", []string{"a", "b", "c"}, 1},
		{"absent item", []string{"d"}, 0},
		{"empty itemset matches all", []string{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountContaining(transactions, tt.itemset)
			if got != tt.want {
				t.Errorf("CountContaining(%v) = %d, want %d", tt.itemset, got, tt.want)
			}
		})
	}
}

func TestPairwiseUnions(t *testing.T) {
	itemsets := [][]string{{"a"}, {"b"}, {"c"}}
	got := PairwiseUnions(itemsets)

	// Three singletons yield the three unordered pairs.
	want := [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	if len(got) != len(want) {
		t.Fatalf("PairwiseUnions returned %d unions, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("union %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPairwiseUnionsCanonical(t *testing.T) {
	// Overlapping itemsets union without duplicates, sorted.
	got := PairwiseUnions([][]string{{"b", "c"}, {"a", "b"}})
	want := [][]string{{"a", "b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PairwiseUnions = %v, want %v", got, want)
	}
}

func TestFraction(t *testing.T) {
	fi := FrequentItemset[string]{Items: []string{"a"}, Support: 3}
	if got := fi.Fraction(5); got != 0.6 {
		t.Errorf("Fraction(5) = %v, want 0.6", got)
	}
	if got := fi.Fraction(0); got != 0 {
		t.Errorf("Fraction(0) = %v, want 0", got)
	}
}
