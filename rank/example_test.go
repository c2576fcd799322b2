package rank_test

import (
	"fmt"

	"github.com/katalvlaran/lexorank/alphabet"
	"github.com/katalvlaran/lexorank/rank"
)

// ExampleInitial seeds the very first rank of an empty list.
func ExampleInitial() {
	fmt.Println(rank.Initial())
	// Output:
	// B
}

// ExampleBetween reorders a board column: a card dragged between the
// cards ranked "B" and "C" gets a fresh rank strictly inside the pair,
// and the gap stays splittable for the next drop in the same spot.
func ExampleBetween() {
	mid, err := rank.Between("B", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mid)

	// Drop another card into the narrower gap below.
	mid, err = rank.Between("B", mid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mid)
	// Output:
	// BN
	// BG
}

// ExampleAfter appends past the last rank; a saturated rank grows one
// symbol instead of overflowing.
func ExampleAfter() {
	next, err := rank.After("C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(next)

	next, err = rank.After("CZ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(next)
	// Output:
	// D
	// CZB
}

// ExampleBefore moves a card above the current first rank.
func ExampleBefore() {
	prev, err := rank.Before("B")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(prev)
	// Output:
	// AZ
}

// ExampleSequence seeds ranks for a list imported in bulk.
func ExampleSequence() {
	ranks, err := rank.Sequence(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ranks)
	// Output:
	// [B C D E F]
}

// ExampleSpread drops three imported cards into one gap at once, keeping
// the sub-ranks balanced instead of piling them against one bound.
func ExampleSpread() {
	ranks, err := rank.Spread("B", "C", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ranks)
	// Output:
	// [BG BN BT]
}

// ExampleCompare orders ranks by alphabet ordinals with implicit
// start-symbol padding, so "BA" ties with its canonical spelling "B".
func ExampleCompare() {
	cmp, err := rank.Compare("B", "BA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cmp)

	cmp, err = rank.Compare("B", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cmp)
	// Output:
	// 0
	// -1
}

// ExampleNew binds the algebra to a custom ten-digit codec.
func ExampleNew() {
	r, err := rank.New(alphabet.MustNew("0123456789"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(r.Initial())

	mid, err := r.Between("3", "4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mid)
	// Output:
	// 1
	// 35
}
