package rank

import "fmt"

// Initial returns the canonical first rank for an empty collection: the
// single symbol one above start ("B" for A–Z). The choice leaves numeric
// room on both sides (down to the start symbol exclusive, up to the end
// symbol), so the very first item never blocks later inserts.
// Complexity: O(1)
func (r *Ranker) Initial() string {
	return r.initial
}

// Before derives a rank that sorts strictly before index: "drop a card
// at the top of the column". The result is a valid rank on the correct
// side, not necessarily the tightest value the scheme could express.
//
// Algorithm: scan digits right to left; the first digit above the
// initial ordinal is decremented in place, suffix untouched
// ("CC" → "CB", "CAC" → "CAB"). When every digit sits at or below the
// initial ordinal no in-place decrement stays valid, so the last digit
// is replaced by start+end, extending the rank one digit to open room
// below ("BB" → "BAZ", "B" → "AZ").
//
// Errors: ErrEmptyIndex, ErrTrailingStart, or a wrapped
// alphabet.ErrUnknownSymbol when index fails validation.
//
// Complexity: O(len(index))
func (r *Ranker) Before(index string) (string, error) {
	d, err := r.digits(index)
	if err != nil {
		return "", err
	}

	for i := len(d) - 1; i >= 0; i-- {
		if d[i] > initialOrdinal {
			d[i]--

			return r.render(d)
		}
	}

	// No digit above the initial ordinal: extend downward instead.
	d[len(d)-1] = startOrdinal
	d = append(d, r.size-1)

	return r.render(d)
}

// After derives a rank that sorts strictly after index: "drop a card at
// the bottom of the column".
//
// Algorithm: a last digit at the end symbol is saturated, so the initial
// rank is appended ("CZ" → "CZB"); any other last digit is incremented
// in place ("C" → "D", "BN" → "BO").
//
// Errors: ErrEmptyIndex, ErrTrailingStart, or a wrapped
// alphabet.ErrUnknownSymbol when index fails validation.
//
// Complexity: O(len(index))
func (r *Ranker) After(index string) (string, error) {
	d, err := r.digits(index)
	if err != nil {
		return "", err
	}

	last := len(d) - 1
	if d[last] == r.size-1 {
		return index + r.initial, nil
	}
	d[last]++

	return r.render(d)
}

// Sequence returns n successive ranks for bulk-seeding an empty
// collection: Initial() followed by repeated After. For A–Z and n=30:
// B, C, …, Z, ZB, ZC, …. The result is strictly increasing and every
// element is valid.
//
// n == 0 yields a nil slice; n < 0 fails with ErrBadCount.
//
// Complexity: O(total output length)
func (r *Ranker) Sequence(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]string, n)
	cur := r.initial
	out[0] = cur
	for i := 1; i < n; i++ {
		next, err := r.After(cur)
		if err != nil {
			return nil, err
		}
		cur = next
		out[i] = cur
	}

	return out, nil
}
