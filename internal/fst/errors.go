package fst

import (
	"errors"
	"fmt"
)

// ErrNotInLanguage is returned by Run when the input stream is rejected by
// the transducer: this is the normal "unsupported input" signal, not a
// programmer error.
var ErrNotInLanguage = errors.New("fst: input not in transducer language")

// MalformedTransducerError indicates a runtime invariant violation that
// can only be caused by a corrupted or incorrectly compiled transducer,
// never by ordinary input. It is always distinguishable from
// ErrNotInLanguage via errors.As.
type MalformedTransducerError struct {
	// Reason describes which invariant was violated.
	Reason string
	// RuneOffset is the 0-based index, in runes, of the input character
	// being processed when the violation was detected.
	RuneOffset int
}

func (e *MalformedTransducerError) Error() string {
	return fmt.Sprintf("fst: malformed transducer at rune %d: %s", e.RuneOffset, e.Reason)
}
