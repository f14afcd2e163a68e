package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// ValueOr dereferences p, or returns current when p is nil.
// Patch structs use nil for "leave this field alone".
func ValueOr[T any](p *T, current T) T {
	if p == nil {
		return current
	}
	return *p
}
