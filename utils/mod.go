package utils

// FindIndex returns the index of the first item in slice equal to item, or -1
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
