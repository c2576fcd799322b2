package rank

// Validate checks that index is a well-formed rank over the bound alphabet.
//
// Rules, all enforced, first failure reported:
//  1. index is non-empty (ErrEmptyIndex);
//  2. every symbol belongs to the alphabet (wrapped
//     alphabet.ErrUnknownSymbol naming the offending position);
//  3. index does not end with the start symbol (ErrTrailingStart).
//
// Validate never repairs input: a malformed rank is a caller contract
// violation, not a recoverable condition. Every other operation runs the
// same checks on its inputs before touching them.
//
// Complexity: O(len(index))
func (r *Ranker) Validate(index string) error {
	_, err := r.digits(index)

	return err
}

// Compare orders two strings by the rank ordering: ordinal-lexicographic,
// with positions past a string's end reading as the start symbol (so "B"
// and "BA" compare equal: the trailing start adds nothing). Returns
// -1, 0 or +1.
//
// The ordering is defined by ordinals, never by Go's native string order:
// for alphabets whose definition order differs from byte order the two
// disagree, and every ordering decision in this package goes through
// Compare's rule. Inputs need not be canonical ranks; empty strings are
// permitted and compare below every non-empty rank.
//
// Fails with a wrapped alphabet.ErrUnknownSymbol if either string holds a
// symbol outside the alphabet.
//
// Complexity: O(max(len(a), len(b)))
func (r *Ranker) Compare(a, b string) (int, error) {
	da, err := r.looseDigits(a)
	if err != nil {
		return 0, err
	}
	db, err := r.looseDigits(b)
	if err != nil {
		return 0, err
	}

	return comparePadded(da, db), nil
}
