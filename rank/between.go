package rank

// Between performs midpoint insertion.
//
// Description:
//
//	Between mints a rank that sorts strictly between a and b without
//	touching either: the operation behind "drop a card between these
//	two". The call is order-insensitive (bounds are sorted by the rank
//	ordering first), so Between("C","B") equals Between("B","C").
//
// Algorithm outline:
//  1. Validate both bounds, order them lo < hi by ordinal comparison.
//  2. Scan positions left to right. Past its end, lo reads the start
//     ordinal (the padding that preserves lo's value) and hi reads the
//     end ordinal (the padding that maximizes the usable gap, never
//     overshooting hi). Copy every position where both reads agree.
//  3. At the first divergence the reads satisfy dLo < dHi. With integer
//     room between them (dHi - dLo ≥ 2), append the floor-average digit
//     and stop: the result leaves lo's branch upward at this position,
//     so the tails of both bounds no longer matter.
//  4. With adjacent ordinals (dHi == dLo+1) there is no room at this
//     depth. Commit to lo's branch by appending dLo, then keep scanning
//     lo's tail for the first digit with headroom, taking the floor-average
//     against the exclusive base N at each step: end-symbol digits are
//     saturated and get copied, any other digit d yields (d+N)/2 > d and
//     finishes the rank one position deeper. Past lo's end this appends
//     exactly the alphabet midpoint symbol.
//
// Degenerate case:
//
//	Numerically equal bounds admit no strict midpoint. Between keeps a
//	defined fallback instead of an error: it returns the bare midpoint
//	symbol ("N" for A–Z). Reaching this case means the caller passed
//	duplicate bounds; see Spread for the strict treatment.
//
// Guarantee: for distinct bounds the result sorts strictly between them
// and is itself a valid rank; the final appended digit is never the
// start ordinal.
//
// Example:
//
//	Between("B", "C")   // "BN": adjacent, extend with the midpoint
//	Between("B", "D")   // "C": room at the first digit
//	Between("BZ", "C")  // "BZN": the saturated 'Z' is copied, then split
//
// Errors: ErrEmptyIndex, ErrTrailingStart, or a wrapped
// alphabet.ErrUnknownSymbol when a bound fails validation.
//
// Complexity: O(len(a) + len(b)) time, one pass, one result allocation.
func (r *Ranker) Between(a, b string) (string, error) {
	da, err := r.digits(a)
	if err != nil {
		return "", err
	}
	db, err := r.digits(b)
	if err != nil {
		return "", err
	}

	lo, hi := da, db
	switch comparePadded(lo, hi) {
	case 0:
		// Equal bounds: defined fallback, the bare midpoint symbol.
		return string(r.ab.Midpoint()), nil
	case 1:
		lo, hi = hi, lo
	}

	limit := len(lo)
	if len(hi) > limit {
		limit = len(hi)
	}
	out := make([]int, 0, limit+1)

	// Shared prefix: copy until the padded reads diverge. Divergence is
	// guaranteed: past both ends the reads are 0 and N-1, and N ≥ 2.
	j := 0
	var dLo, dHi int
	for {
		dLo, dHi = startOrdinal, r.size-1
		if j < len(lo) {
			dLo = lo[j]
		}
		if j < len(hi) {
			dHi = hi[j]
		}
		if dLo != dHi {
			break
		}
		out = append(out, dLo)
		j++
	}

	// Room between the diverging ordinals: split the gap and finish.
	if m := (dLo + dHi) / 2; m > dLo {
		out = append(out, m)

		return r.render(out)
	}

	// Adjacent ordinals: commit to lo's branch, then find headroom in
	// lo's tail. Saturated end-symbol digits are copied; the first digit
	// below the end splits against base N and finishes the rank.
	out = append(out, dLo)
	for k := j + 1; ; k++ {
		d := startOrdinal
		if k < len(lo) {
			d = lo[k]
		}
		mid := (d + r.size) / 2
		if mid == d {
			out = append(out, d)
			continue
		}
		out = append(out, mid)

		return r.render(out)
	}
}
