// Package frequent implements frequent-itemset mining over transaction data.
//
// Two engines are provided with identical output semantics: Apriori, a
// level-wise candidate-generation search, and FPGrowth, a pattern-growth
// search over a compact prefix tree. Both take transactions as slices of
// ordered items and a minimum support fraction, and return every itemset
// whose support meets the threshold together with its absolute count.
//
// The Miner type wraps both engines in an estimator-style API with a
// Fit / accessor lifecycle, matching the rest of the library.
//
//	miner := frequent.NewMiner(
//	    frequent.WithMinSupport[string](0.6),
//	    frequent.WithAlgorithm[string](frequent.AlgorithmFPGrowth),
//	)
//	if err := miner.Fit(transactions); err != nil {
//	    log.Fatal(err)
//	}
//	itemsets, _ := miner.FrequentItemsets()
package frequent
