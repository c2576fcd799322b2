package rank

import "fmt"

// Spread mints n ranks strictly between a and b, evenly distributed:
// "paste n cards into this gap". Like Between the call is
// order-insensitive.
//
// The gap is filled by balanced bisection: the middle slot takes
// Between(lo, hi), then each half recurses into its subinterval. The
// result is sorted ascending, pairwise distinct, every element valid and
// strictly inside the bounds, and rank depth grows only with log n
// rather than n.
//
// Unlike Between, numerically equal bounds are an error here
// (ErrEqualBounds): a bulk fallback would mint n duplicate keys, which
// no ordered collection can absorb. n == 0 yields a nil slice; n < 0
// fails with ErrBadCount. No partial results: any failure returns a nil
// slice.
//
// Complexity: O(n · len) time, recursion depth ⌈log₂ n⌉.
func (r *Ranker) Spread(a, b string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}

	da, err := r.digits(a)
	if err != nil {
		return nil, err
	}
	db, err := r.digits(b)
	if err != nil {
		return nil, err
	}

	lo, hi := a, b
	switch comparePadded(da, db) {
	case 0:
		if n == 0 {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %q", ErrEqualBounds, a)
	case 1:
		lo, hi = b, a
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]string, n)
	if err := r.spreadInto(out, lo, hi, 0, n); err != nil {
		return nil, err
	}

	return out, nil
}

// spreadInto fills out[off:off+cnt] with ranks between lo and hi: the
// middle slot gets the interval's midpoint, the halves recurse into the
// subintervals on either side of it.
func (r *Ranker) spreadInto(out []string, lo, hi string, off, cnt int) error {
	if cnt == 0 {
		return nil
	}

	mid := cnt / 2
	m, err := r.Between(lo, hi)
	if err != nil {
		return err
	}
	out[off+mid] = m

	if err := r.spreadInto(out, lo, m, off, mid); err != nil {
		return err
	}

	return r.spreadInto(out, m, hi, off+mid+1, cnt-mid-1)
}
