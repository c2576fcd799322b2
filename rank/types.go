// Package rank declares the Ranker binding, its sentinel errors, and the
// ordinal constants the algebra is built on.
package rank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexorank/alphabet"
)

// Sentinel errors for rank construction and index validation.
var (
	// ErrNilAlphabet is returned when a Ranker is built over a nil codec.
	ErrNilAlphabet = errors.New("rank: alphabet is nil")

	// ErrAlphabetTooSmall is returned when the codec has fewer than two
	// symbols: with a single symbol there is no initial rank distinct
	// from the start symbol, so no valid rank exists at all.
	ErrAlphabetTooSmall = errors.New("rank: alphabet must have at least two symbols")

	// ErrEmptyIndex is returned when an empty string is passed where a
	// rank is required.
	ErrEmptyIndex = errors.New("rank: empty index")

	// ErrTrailingStart is returned when an index ends with the alphabet's
	// start symbol. Such a tail is numerically redundant; rejecting it
	// keeps every value's representation unique.
	ErrTrailingStart = errors.New("rank: index ends with the start symbol")

	// ErrEqualBounds is returned by Spread when the two bounds are
	// numerically equal, so no rank can sort strictly between them.
	ErrEqualBounds = errors.New("rank: bounds are numerically equal")

	// ErrBadCount is returned by bulk operations for a negative count.
	ErrBadCount = errors.New("rank: negative count")
)

// Ordinal anchors of the scheme. Ordinals are dense and 0-based, so the
// start symbol always sits at 0 and the initial rank symbol right above it.
const (
	// startOrdinal is the ordinal of the alphabet's start symbol.
	startOrdinal = 0

	// initialOrdinal is the ordinal of the single-symbol initial rank,
	// chosen one above start so fresh collections keep numeric room on
	// both sides ("B" for A–Z: room down to "A"-exclusive, up to "Z").
	initialOrdinal = 1
)

// Ranker binds the index algebra to one alphabet codec.
//
// A Ranker is immutable after New and safe for unsynchronized concurrent
// use: every operation only reads the codec tables and allocates its
// result.
type Ranker struct {
	// ab is the symbol ⇄ ordinal codec all operations consult.
	ab *alphabet.Alphabet

	// size caches ab.Len(), the base N of the positional system.
	size int

	// initial caches the single-symbol initial rank (ordinal 1).
	initial string
}

// New builds a Ranker over the given codec.
//
// Fails with ErrNilAlphabet for a nil codec and ErrAlphabetTooSmall for a
// single-symbol codec (the scheme needs an initial symbol above start).
// Complexity: O(1)
func New(ab *alphabet.Alphabet) (*Ranker, error) {
	if ab == nil {
		return nil, ErrNilAlphabet
	}
	if ab.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAlphabetTooSmall, ab.Len())
	}

	first, err := ab.Symbol(initialOrdinal)
	if err != nil {
		return nil, err
	}

	return &Ranker{ab: ab, size: ab.Len(), initial: string(first)}, nil
}

// defaultRanker is the shared process-wide Ranker over Latin A–Z.
var defaultRanker = mustNew(alphabet.Default())

// mustNew backs package initialization; the Latin codec always satisfies
// New's preconditions.
func mustNew(ab *alphabet.Alphabet) *Ranker {
	r, err := New(ab)
	if err != nil {
		panic(fmt.Sprintf("rank: mustNew: %v", err))
	}

	return r
}

// Default returns the shared Ranker over the Latin A–Z alphabet.
// Package-level functions (Initial, Between, …) delegate to it.
func Default() *Ranker {
	return defaultRanker
}

// Alphabet returns the codec this Ranker is bound to.
func (r *Ranker) Alphabet() *alphabet.Alphabet {
	return r.ab
}
