package rank

import "fmt"

// digits converts index into its ordinal sequence, enforcing every rank
// invariant on the way: non-empty, all symbols known, no trailing start.
// All algebra operations funnel their inputs through here.
func (r *Ranker) digits(index string) ([]int, error) {
	if index == "" {
		return nil, ErrEmptyIndex
	}

	out, err := r.looseDigits(index)
	if err != nil {
		return nil, err
	}
	if out[len(out)-1] == startOrdinal {
		return nil, fmt.Errorf("%w: %q", ErrTrailingStart, index)
	}

	return out, nil
}

// looseDigits converts any string over the alphabet to ordinals without
// canonical-form checks; Compare accepts non-canonical spellings, so it
// checks membership only.
func (r *Ranker) looseDigits(s string) ([]int, error) {
	runes := []rune(s)
	out := make([]int, len(runes))
	for i, sym := range runes {
		ord, err := r.ab.Ordinal(sym)
		if err != nil {
			return nil, fmt.Errorf("rank: %q, position %d: %w", s, i, err)
		}
		out[i] = ord
	}

	return out, nil
}

// render converts an ordinal sequence back into a rank string.
// An out-of-range ordinal here is a logic error inside the algebra and
// surfaces as alphabet.ErrOrdinalOutOfRange rather than panicking.
func (r *Ranker) render(seq []int) (string, error) {
	out := make([]rune, len(seq))
	for i, ord := range seq {
		sym, err := r.ab.Symbol(ord)
		if err != nil {
			return "", err
		}
		out[i] = sym
	}

	return string(out), nil
}

// comparePadded orders two ordinal sequences under the implicit-padding
// rule: positions past a sequence's end read as the start ordinal.
func comparePadded(a, b []int) int {
	limit := len(a)
	if len(b) > limit {
		limit = len(b)
	}

	for j := 0; j < limit; j++ {
		da, db := startOrdinal, startOrdinal
		if j < len(a) {
			da = a[j]
		}
		if j < len(b) {
			db = b[j]
		}
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
	}

	return 0
}
