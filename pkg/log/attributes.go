// Package log defines standard attribute keys for pattern-mining operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in GoMine. Using these standard keys enables better
// log analysis, monitoring, and debugging of mining workflows.
//
// The attributes are organized into categories:
//   - Miner and Operation Context
//   - Data Shape and Characteristics
//   - Mining Parameters and Results
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "miner.name",
// "data.transactions") to enable structured log analysis and filtering.

package log

// Miner and Operation Context
// These attributes identify the miner type, instance, and operation being performed.
const (
	// MinerNameKey identifies the type of miner or transformer.
	// Examples: "Miner", "TransactionEncoder"
	MinerNameKey = "miner.name"

	// EstimatorIDKey provides a unique identifier for a specific estimator instance.
	// This is useful for tracking multiple instances of the same type.
	// Examples: "miner-001", "encoder-abc123", UUID strings
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "inverse_transform"
	OperationKey = "mining.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "frequent", "preprocessing"
	ComponentKey = "mining.component"

	// PhaseKey indicates the phase of the mining lifecycle.
	// Examples: "mining", "encoding", "validation"
	PhaseKey = "mining.phase"
)

// Data Shape and Characteristics
// These attributes describe the structure of the transaction data being processed.
const (
	// TransactionsKey indicates the number of transactions in the dataset.
	TransactionsKey = "data.transactions"

	// ItemsKey indicates the number of distinct items in the dataset.
	ItemsKey = "data.items"

	// ColumnsKey indicates the number of columns in an encoded one-hot matrix.
	ColumnsKey = "data.columns"
)

// Mining Parameters and Results
// These attributes capture mining configuration and outcomes.
const (
	// MinSupportKey records the minimum-support fraction used for mining.
	MinSupportKey = "mining.min_support"

	// AlgorithmKey records which mining algorithm was used.
	// Examples: "apriori", "fpgrowth"
	AlgorithmKey = "mining.algorithm"

	// ItemsetsKey records the number of frequent itemsets found.
	ItemsetsKey = "result.itemsets"

	// MaxItemsetSizeKey records the size of the largest frequent itemset found.
	MaxItemsetSizeKey = "result.max_itemset_size"
)

// Performance Metrics
// These attributes capture timing information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// DurationSecondsKey records the execution time in seconds for longer operations.
	DurationSecondsKey = "perf.duration_seconds"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "INVALID_INPUT"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "NotFittedError", "DimensionError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check input data shape", "Lower min_support"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit              = "fit"
	OperationTransform        = "transform"
	OperationFitTransform     = "fit_transform"
	OperationInverseTransform = "inverse_transform"

	// Standard phases
	PhaseMining     = "mining"
	PhaseEncoding   = "encoding"
	PhaseValidation = "validation"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
)
