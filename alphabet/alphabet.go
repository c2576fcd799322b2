package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec construction and lookups.
var (
	// ErrInvalidAlphabet indicates the symbol sequence is empty or contains duplicates.
	ErrInvalidAlphabet = errors.New("alphabet: invalid symbol sequence")

	// ErrUnknownSymbol indicates a symbol outside the configured alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrOrdinalOutOfRange indicates an ordinal outside [0, Len).
	ErrOrdinalOutOfRange = errors.New("alphabet: ordinal out of range")
)

// Latin is the default symbol sequence: the uppercase Latin letters in
// their natural order.
const Latin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an immutable bidirectional symbol ⇄ ordinal codec.
//
// The ordinal of a symbol is its 0-based position in the sequence passed
// to New. Both lookup directions are built once at construction and never
// mutated, so a single Alphabet may be shared across goroutines freely.
type Alphabet struct {
	// symbols holds the sequence in ordinal order (ordinal → symbol).
	symbols []rune

	// ordinals maps each symbol back to its position (symbol → ordinal).
	ordinals map[rune]int
}

// New builds an Alphabet from an ordered symbol sequence.
//
// The sequence must be non-empty and free of duplicate symbols; otherwise
// New fails with ErrInvalidAlphabet. Symbol order in the string defines
// ordinal order: callers choose the collation, the codec never re-sorts.
//
// Complexity: O(N) time and memory, N = number of symbols.
func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: empty symbol sequence", ErrInvalidAlphabet)
	}

	a := &Alphabet{
		symbols:  runes,
		ordinals: make(map[rune]int, len(runes)),
	}
	for i, sym := range runes {
		if _, seen := a.ordinals[sym]; seen {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, sym)
		}
		a.ordinals[sym] = i
	}

	return a, nil
}

// MustNew is like New but panics on an invalid sequence.
// Intended for compile-time-known alphabets (package-level variables).
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(fmt.Sprintf("alphabet: MustNew(%q): %v", symbols, err))
	}

	return a
}

// defaultLatin is the process-wide shared A–Z codec returned by Default.
var defaultLatin = MustNew(Latin)

// Default returns the shared immutable Latin A–Z Alphabet.
// Safe for concurrent use, as every Alphabet is read-only after New.
func Default() *Alphabet {
	return defaultLatin
}

// Len returns the number of symbols N.
// Complexity: O(1)
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Ordinal returns the 0-based position of sym in the alphabet.
// Fails with ErrUnknownSymbol if sym is not part of the sequence.
// Complexity: O(1)
func (a *Alphabet) Ordinal(sym rune) (int, error) {
	ord, ok := a.ordinals[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}

	return ord, nil
}

// Symbol returns the symbol at the given ordinal.
// Fails with ErrOrdinalOutOfRange if ord is outside [0, Len).
// Complexity: O(1)
func (a *Alphabet) Symbol(ord int) (rune, error) {
	if ord < 0 || ord >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOrdinalOutOfRange, ord, len(a.symbols))
	}

	return a.symbols[ord], nil
}

// Contains reports whether sym belongs to the alphabet.
// Complexity: O(1)
func (a *Alphabet) Contains(sym rune) bool {
	_, ok := a.ordinals[sym]

	return ok
}

// Start returns the lowest symbol (ordinal 0).
// Short ranks compare as if right-padded with this symbol.
func (a *Alphabet) Start() rune {
	return a.symbols[0]
}

// End returns the highest symbol (ordinal Len-1).
func (a *Alphabet) End() rune {
	return a.symbols[len(a.symbols)-1]
}

// Midpoint returns the symbol at ordinal ⌊Len/2⌋, the digit appended
// when rank generation must extend one position deeper. For A–Z this is
// 'N' (ordinal 13).
func (a *Alphabet) Midpoint() rune {
	return a.symbols[len(a.symbols)/2]
}

// Runes returns a copy of the symbol sequence in ordinal order.
// Complexity: O(N)
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// String returns the symbol sequence as a string in ordinal order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
