// Package rank implements the index algebra for string-based fractional
// ranks: validation, midpoint insertion, predecessor/successor derivation,
// and bulk generation, all over a configurable symbol alphabet.
//
// 🚀 What is a rank?
//
//	A non-empty string over an ordered alphabet, read as a base-N
//	fraction with position 0 most significant ("B" over A–Z is 1/26,
//	"BN" is 1/26 + 13/676). Two rules keep the representation canonical
//	and the ordering stable:
//	  • every symbol belongs to the alphabet
//	  • a rank never ends with the start symbol (a trailing start adds
//	    nothing numerically, so it is simply forbidden)
//	With those rules, ordinal-lexicographic string order equals numeric
//	order: short ranks compare as if right-padded with the start symbol.
//
// ✨ Key features:
//   - Between mints a rank strictly between two ranks, growing one digit
//     deeper only when the gap demands it
//   - Before / After mint ranks adjacent to a single bound
//   - Sequence seeds an empty collection, Spread fills a gap with n
//     evenly distributed ranks
//   - every operation validates its inputs and returns sentinel errors;
//     nothing is silently repaired
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexorank/rank"
//
//	first := rank.Initial()              // "B"
//	mid, err := rank.Between("B", "C")   // "BN"
//	prev, err := rank.Before("B")        // "AZ"
//	next, err := rank.After("CZ")        // "CZB"
//
//	// Custom alphabets bind through a Ranker:
//	r, err := rank.New(alphabet.MustNew("0123456789"))
//	mid, err = r.Between("3", "4")       // "35"
//
// Performance:
//
//   - All operations are single linear passes: O(len) time,
//     one string allocation for the result
//   - No locks, no I/O, no global mutable state: a Ranker is immutable
//     and safe for unsynchronized concurrent use
//
// See example_test.go for runnable scenarios and bench_test.go for the
// cost of repeated midpoint insertion.
package rank
