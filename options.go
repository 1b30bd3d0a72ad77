package calc

import (
	"log"
)

// DefaultMaxDepth is the nesting limit used unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 1000

// OverflowPolicy decides what happens when a sum or a product does not fit
// in an int64.
type OverflowPolicy uint8

// Overflow policies
const (
	// OverflowError fails the evaluation with ErrOverflow.
	OverflowError OverflowPolicy = iota
	// OverflowWrap wraps around using two's complement arithmetic.
	OverflowWrap
)

var overflowPolicyNames = map[OverflowPolicy]string{
	OverflowError: "error",
	OverflowWrap:  "wrap",
}

func (op OverflowPolicy) String() string {
	if s, ok := overflowPolicyNames[op]; ok {
		return s
	}
	return "unknown"
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth limits how deeply add and mult nodes may nest. Zero or less
// means no limit.
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		e.maxDepth = depth
	}
}

// WithOverflow sets the overflow policy.
func WithOverflow(policy OverflowPolicy) Option {
	return func(e *Evaluator) {
		e.overflow = policy
	}
}

// WithLogger traces every node the evaluator reduces.
func WithLogger(logger *log.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}
