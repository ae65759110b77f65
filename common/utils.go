package common

// Coalesce picks the first argument that is not the zero value of T.
// It returns the zero value when every argument is zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
