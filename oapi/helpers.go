package oapi

// Int returns a pointer to n, for optional constraints in property tables.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for optional constraints in property tables.
func Float(f float64) *float64 { return &f }

// Items converts a typed slice into the []any accepted by the array operations.
func Items[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Match adapts a typed predicate for DeleteIf. Items of another type never match.
func Match[T any](match func(T) bool) func(any) bool {
	if match == nil {
		return nil
	}
	return func(item any) bool {
		v, ok := item.(T)
		return ok && match(v)
	}
}
