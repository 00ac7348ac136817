// Package gomine provides frequent-itemset mining for Go, designed for
// market-basket analysis and co-occurrence discovery in backend services.
//
// GoMine offers an mlxtend-like API that makes it easy for data scientists
// and engineers familiar with Python's ecosystem to run association mining
// in Go.
//
// # Features
//
// - Two engines: level-wise Apriori and FP-tree based FP-Growth
// - Identical results from both engines for the same input
// - Generic over any ordered item type (strings, ints, ...)
// - mlxtend-like API: TransactionEncoder plus estimator-style Miner
// - Robust Error Handling: structured errors with stack traces
//
// # Installation
//
// Install GoMine using go get:
//
//	go get github.com/YuminosukeSato/gomine
//
// # Quick Start
//
// Here's a simple example of mining frequent itemsets:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "github.com/YuminosukeSato/gomine/frequent"
//	)
//
//	func main() {
//	    transactions := [][]string{
//	        {"bread", "milk", "eggs"},
//	        {"bread", "milk"},
//	        {"milk", "eggs"},
//	    }
//
//	    itemsets, err := frequent.FPGrowth(transactions, 0.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, fi := range itemsets {
//	        fmt.Println(fi.Items, fi.Support)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - frequent: Mining engines (Apriori, FPGrowth) and the Miner estimator
//   - preprocessing: TransactionEncoder for one-hot transaction matrices
//   - core/model: Core interfaces and base types
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Structured errors and the warning system
//   - pkg/log: Structured logging helpers
//
// # Estimator API
//
// GoMine provides an estimator-style frontend over both engines:
//
//	miner := frequent.NewMiner(
//	    frequent.WithMinSupport[string](0.6),
//	    frequent.WithAlgorithm[string](frequent.AlgorithmFPGrowth),
//	)
//	if err := miner.Fit(transactions); err != nil {
//	    log.Fatal(err)
//	}
//	itemsets, _ := miner.FrequentItemsets()
//
// # Performance
//
// Apriori recounts candidates against the full transaction set on every
// level and suits small universes and high thresholds. FP-Growth compresses
// the transactions into a prefix tree once and mines projections of it,
// which scales much better on dense data and low thresholds.
package gomine
