package fst

import (
	"github.com/bits-and-blooms/bitset"
)

// maxBitsetSymbol bounds the dense fast path. Compiled Alpino transducers
// overwhelmingly reference symbols in the Latin-1 and Latin Extended
// ranges; a table whose maximum symbol value stays under this threshold
// gets an O(1) bitset membership test instead of a map lookup. Transducers
// with a stray high-codepoint symbol just fall back to the map, which
// behaves identically either way.
const maxBitsetSymbol = 1 << 16

// knownSymbols is the set of every Symbol value that appears in at least
// one transition, built once at load time. It is load-bearing: membership
// distinguishes "this input rune happens to coincide with a symbol some
// edge expects" from "this rune is truly unknown to the transducer".
type knownSymbols struct {
	bits *bitset.BitSet
	set  map[uint32]struct{}
}

func newKnownSymbols(transitions []Transition) *knownSymbols {
	var max uint32
	for _, t := range transitions {
		if t.Symbol > max {
			max = t.Symbol
		}
	}

	ks := &knownSymbols{}
	if max < maxBitsetSymbol {
		ks.bits = bitset.New(uint(max) + 1)
		for _, t := range transitions {
			ks.bits.Set(uint(t.Symbol))
		}
		return ks
	}

	ks.set = make(map[uint32]struct{}, len(transitions))
	for _, t := range transitions {
		ks.set[t.Symbol] = struct{}{}
	}
	return ks
}

// contains reports whether s was ever seen as an edge symbol.
func (ks *knownSymbols) contains(s uint32) bool {
	if ks.bits != nil {
		return ks.bits.Test(uint(s))
	}
	_, ok := ks.set[s]
	return ok
}

// Len returns the number of distinct known symbols, for diagnostics/logging.
func (ks *knownSymbols) Len() int {
	if ks.bits != nil {
		return int(ks.bits.Count())
	}
	return len(ks.set)
}

// Transducer is an immutable, sorted transition table. Once constructed it
// may be shared freely across goroutines: no field is ever mutated after
// New returns.
type Transducer struct {
	transitions []Transition
	known       *knownSymbols
}

// New builds a Transducer from a decoded transition list. Index 0 is a
// reserved sentinel; index 1 must be the initial state's first edge. The
// caller (internal/fstbin) is responsible for the ordering invariants
// described in the package's data model; New does not re-validate them.
func New(transitions []Transition) *Transducer {
	return &Transducer{
		transitions: transitions,
		known:       newKnownSymbols(transitions),
	}
}

// Len returns the number of transitions, including the reserved sentinel
// at index 0.
func (t *Transducer) Len() int {
	return len(t.transitions)
}

// KnownSymbolCount returns the number of distinct symbols referenced by any
// edge, for diagnostics/logging.
func (t *Transducer) KnownSymbolCount() int {
	return t.known.Len()
}
