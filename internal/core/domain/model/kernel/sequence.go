package kernel

import (
	"fmt"
	"sync/atomic"

	"fulfillment/internal/pkg/errs"
)

// ErrPrefixIsRequired is returned when attempting to create a Sequence without a prefix.
var ErrPrefixIsRequired = errs.NewValueIsRequiredError("prefix")

// Sequence produces monotonically increasing, prefixed identifiers such as
// "ORD-1", "ORD-2", "RCP-1". Each Sequence owns an independent id-space;
// numbers start at 1, increment by 1 per call and are never reused.
//
// Sequence is an explicit, injectable allocator rather than a package-level
// counter, so multiple registries and tests can run independently without
// cross-contamination. It is safe for concurrent use: two concurrent Next
// calls never return the same identifier.
//
// Example usage:
//
//	orderIDs, _ := kernel.NewSequence("ORD")
//	id := orderIDs.Next() // "ORD-1"
//	id = orderIDs.Next()  // "ORD-2"
type Sequence struct {
	// prefix is prepended to every generated identifier
	prefix string
	// counter holds the last issued number
	counter atomic.Int64
}

// NewSequence creates an allocator for identifiers of the form "<prefix>-<n>".
//
// Returns ErrPrefixIsRequired if prefix is empty.
func NewSequence(prefix string) (*Sequence, error) {
	if prefix == "" {
		return nil, ErrPrefixIsRequired
	}
	return &Sequence{prefix: prefix}, nil
}

// Next atomically allocates and returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.counter.Add(1))
}

// Prefix returns the prefix shared by all identifiers of this sequence.
func (s *Sequence) Prefix() string {
	return s.prefix
}
