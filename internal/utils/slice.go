package utils

// CopySlice returns a copy of s, the caller can modify the result.
func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func EmptySliceIfNil[T any](slice []T) []T {
	if slice == nil {
		return make([]T, 0)
	}
	return slice
}

// ShrinkSliceIfWastedCapacity returns a copy of s with a capacity of cap(s)/divider if the capacity
// of s is at least minShrinkableLength and at most 1/divider of it is used, otherwise s is returned.
// The returned slice never shares its backing array with s if it has been shrunk.
func ShrinkSliceIfWastedCapacity[T any](s []T, minShrinkableLength int, divider int) []T {
	if divider <= 1 {
		panic("divider should be greater than 1")
	}

	if cap(s) < minShrinkableLength || len(s) > cap(s)/divider {
		return s
	}

	shrunk := make([]T, len(s), cap(s)/divider)
	copy(shrunk, s)
	return shrunk
}

// RemoveIndex removes the element at index i by shifting the following elements to the left,
// the vacated last position of the backing array is set to the zero value so that it does
// not retain the element.
func RemoveIndex[T any](s []T, i int) []T {
	last := len(s) - 1
	if i != last {
		copy(s[i:], s[i+1:])
	}

	var zero T
	s[last] = zero
	return s[:last]
}
