package common

// Contains returns whether `v` is in `slice`.
// Can go away once the standard library grows a slices package.
func Contains[T comparable](slice []T, v T) bool {
	for i := range slice {
		if slice[i] == v {
			return true
		}
	}
	return false
}
