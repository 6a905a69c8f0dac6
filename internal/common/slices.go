package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Dedupe returns s with later duplicates (by key) removed, preserving first-appearance order.
// The second result lists the dropped elements.
func Dedupe[S ~[]E, E any](s S, key func(E) string) (S, S) {
	var (
		kept, dropped S
		seen          = make(map[string]struct{}, len(s))
	)

	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			dropped = append(dropped, e)
			continue
		}

		seen[k] = struct{}{}
		kept = append(kept, e)
	}

	return kept, dropped
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// InRange checks if value is within min..=max.
func InRange[T number](min, value, max T) bool {
	return min <= value && value <= max
}
