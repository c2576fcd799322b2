package rank

// Package-level convenience functions over the shared Latin A–Z Ranker,
// for callers who never leave the default alphabet. Each delegates to
// Default(); see the method documentation for contracts and errors.

// Initial returns Default().Initial(): the first rank for an empty
// collection, "B".
func Initial() string {
	return Default().Initial()
}

// Validate runs Default().Validate(index).
func Validate(index string) error {
	return Default().Validate(index)
}

// Compare runs Default().Compare(a, b).
func Compare(a, b string) (int, error) {
	return Default().Compare(a, b)
}

// Between runs Default().Between(a, b).
func Between(a, b string) (string, error) {
	return Default().Between(a, b)
}

// Before runs Default().Before(index).
func Before(index string) (string, error) {
	return Default().Before(index)
}

// After runs Default().After(index).
func After(index string) (string, error) {
	return Default().After(index)
}

// Sequence runs Default().Sequence(n).
func Sequence(n int) ([]string, error) {
	return Default().Sequence(n)
}

// Spread runs Default().Spread(a, b, n).
func Spread(a, b string, n int) ([]string, error) {
	return Default().Spread(a, b, n)
}
