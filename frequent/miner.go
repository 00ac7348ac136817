package frequent

import (
	"cmp"
	"fmt"
	"time"

	"github.com/YuminosukeSato/gomine/core/model"
	"github.com/YuminosukeSato/gomine/pkg/errors"
	"github.com/YuminosukeSato/gomine/pkg/log"
)

// Algorithm selects the mining strategy used by a Miner.
type Algorithm int

const (
	// AlgorithmApriori mines itemsets level-wise with candidate generation.
	AlgorithmApriori Algorithm = iota
	// AlgorithmFPGrowth mines itemsets by recursive FP-tree projection.
	AlgorithmFPGrowth
)

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmApriori:
		return "apriori"
	case AlgorithmFPGrowth:
		return "fpgrowth"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Miner is an estimator-style frontend over the mining engines.
// It follows the usual Fit / accessor lifecycle: configure with options,
// Fit on a transaction set, then read the results back.
type Miner[T cmp.Ordered] struct {
	model.BaseEstimator

	minSupport float64
	algorithm  Algorithm
	logger     log.Logger

	itemsets      []FrequentItemset[T]
	nTransactions int
}

// MinerOption configures a Miner before fitting.
type MinerOption[T cmp.Ordered] func(*Miner[T])

// WithMinSupport sets the minimum support fraction.
func WithMinSupport[T cmp.Ordered](minSupport float64) MinerOption[T] {
	return func(m *Miner[T]) {
		m.minSupport = minSupport
	}
}

// WithAlgorithm sets the mining algorithm.
func WithAlgorithm[T cmp.Ordered](algorithm Algorithm) MinerOption[T] {
	return func(m *Miner[T]) {
		m.algorithm = algorithm
	}
}

// WithLogger sets a structured logger for fit progress.
func WithLogger[T cmp.Ordered](logger log.Logger) MinerOption[T] {
	return func(m *Miner[T]) {
		m.logger = logger
	}
}

// NewMiner creates a Miner with the given options.
// The defaults are minSupport=0.5 and the Apriori algorithm.
func NewMiner[T cmp.Ordered](opts ...MinerOption[T]) *Miner[T] {
	m := &Miner[T]{
		minSupport: 0.5,
		algorithm:  AlgorithmApriori,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit mines the frequent itemsets of the given transactions and stores
// them on the miner. A previous fit is discarded.
func (m *Miner[T]) Fit(transactions [][]T) (err error) {
	defer errors.Recover(&err, "Miner.Fit")

	start := time.Now()
	if m.logger != nil {
		m.logger.Info("mining started",
			log.AlgorithmKey, m.algorithm.String(),
			log.MinSupportKey, m.minSupport,
			log.TransactionsKey, len(transactions),
		)
	}

	var itemsets []FrequentItemset[T]
	switch m.algorithm {
	case AlgorithmFPGrowth:
		itemsets, err = FPGrowth(transactions, m.minSupport)
	default:
		itemsets, err = Apriori(transactions, m.minSupport)
	}
	if err != nil {
		if m.logger != nil {
			m.logger.Error("mining failed",
				log.AlgorithmKey, m.algorithm.String(),
				"error", err,
			)
		}
		return err
	}

	m.itemsets = itemsets
	m.nTransactions = len(transactions)
	m.SetFitted()

	if m.logger != nil {
		m.logger.Info("mining finished",
			log.AlgorithmKey, m.algorithm.String(),
			log.ItemsetsKey, len(itemsets),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return nil
}

// FrequentItemsets returns the itemsets found by the last Fit.
// The returned slice is owned by the miner and must not be mutated.
func (m *Miner[T]) FrequentItemsets() ([]FrequentItemset[T], error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Miner", "FrequentItemsets")
	}
	return m.itemsets, nil
}

// SupportFractions returns the relative support of each mined itemset,
// aligned with the slice returned by FrequentItemsets.
func (m *Miner[T]) SupportFractions() ([]float64, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("Miner", "SupportFractions")
	}
	fractions := make([]float64, len(m.itemsets))
	for i, fi := range m.itemsets {
		fractions[i] = fi.Fraction(m.nTransactions)
	}
	return fractions, nil
}

// NTransactions returns the number of transactions seen by the last Fit.
func (m *Miner[T]) NTransactions() (int, error) {
	if !m.IsFitted() {
		return 0, errors.NewNotFittedError("Miner", "NTransactions")
	}
	return m.nTransactions, nil
}

// GetParams returns the miner's configuration.
func (m *Miner[T]) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"min_support": m.minSupport,
		"algorithm":   m.algorithm.String(),
	}
}

// String returns a string representation of the miner.
func (m *Miner[T]) String() string {
	return fmt.Sprintf("Miner(algorithm=%s, min_support=%g)", m.algorithm, m.minSupport)
}
