package framework

import "errors"

var (
	// ErrInvalidConfiguration is returned at setup when the run parameters are malformed.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrDimensionMismatch is returned when two individuals with different
	// objective counts are compared.
	ErrDimensionMismatch = errors.New("objective dimension mismatch")
	// ErrEmptyPool is returned when a selection is requested from an empty pool.
	ErrEmptyPool = errors.New("empty candidate pool")
	// ErrEvaluation wraps failures of an Evaluator.
	ErrEvaluation = errors.New("evaluation failed")
	// ErrVariation wraps failures of a Variation.
	ErrVariation = errors.New("variation failed")
)
