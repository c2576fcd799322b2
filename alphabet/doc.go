// Package alphabet provides the symbol ⇄ ordinal codec that underpins
// lexicographic rank generation: a fixed, ordered, duplicate-free set of
// symbols with O(1) lookups in both directions.
//
// 🚀 What is an alphabet here?
//
//	An immutable bidirectional table over an ordered symbol sequence.
//	Position in the sequence is the symbol's ordinal (0-based), and the
//	sequence exposes three distinguished symbols:
//	  • Start    : ordinal 0, the implicit padding value of short ranks
//	  • End      : ordinal N-1, the upper boundary
//	  • Midpoint : ordinal ⌊N/2⌋, where fresh digits land when ranks
//	    must grow one position deeper
//
// ✨ Key features:
//   - built once from a plain string, then read-only forever
//   - paired lookup structures: ordinal→symbol slice, symbol→ordinal map
//   - rune-based: symbol sets need not be ASCII or byte-ordered
//   - strict construction: empty or duplicated sequences are rejected
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexorank/alphabet"
//
//	ab, err := alphabet.New("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
//	if err != nil { ... }
//	ab.Start()    // 'A'
//	ab.End()      // 'Z'
//	ab.Midpoint() // 'N'
//
//	// Or grab the shared Latin A–Z codec:
//	ab = alphabet.Default()
//
// Performance:
//
//   - Construction: O(N) time and memory, done once
//   - Ordinal / Symbol / boundaries: O(1), allocation-free
//
// The ordering of ranks produced by package rank is always the ordinal
// ordering defined here, never the raw byte ordering of Go strings.
package alphabet
