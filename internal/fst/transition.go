// Package fst implements the deterministic finite-state transducer that
// backs Dutch sentence-splitting and tokenization: a flat, sorted table of
// transitions interpreted one input rune at a time.
package fst

// Sentinel symbol values. All other symbol values are Unicode scalar
// values (runes) taken as uint32.
const (
	// EpsilonSymbol marks a fall-through edge that consumes no input.
	EpsilonSymbol uint32 = 1
	// UnknownSymbol matches any input rune outside the known-symbol set.
	UnknownSymbol uint32 = 2
)

// Placeholder runes that appear literally inside Output/FinalOutput.
const (
	// epsilonPlaceholder never actually appears in practice.
	epsilonPlaceholder rune = 0x0001
	// unknownPlaceholder is replaced at emission time with the input rune
	// that matched an unknown-edge, consumed FIFO from the run's queue.
	unknownPlaceholder rune = 0x0002
)

// Transition is one edge of the transducer.
//
// Edges belonging to the same source state are contiguous in the
// transitions array and sorted by Symbol in strictly ascending order; the
// run terminates at the edge with IsLastOfState set.
type Transition struct {
	Symbol        uint32
	IsLastOfState bool
	IsFinalState  bool
	Next          uint32
	Output        string
	FinalOutput   string
}
