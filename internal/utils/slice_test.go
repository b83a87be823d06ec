package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopySlice(t *testing.T) {
	original := []int{1, 2, 3}
	sliceCopy := CopySlice(original)

	assert.Equal(t, original, sliceCopy)

	sliceCopy[0] = 100
	assert.Equal(t, 1, original[0])

	assert.Equal(t, []int{}, CopySlice[int](nil))
}

func TestEmptySliceIfNil(t *testing.T) {
	assert.NotNil(t, EmptySliceIfNil[int](nil))
	assert.Empty(t, EmptySliceIfNil[int](nil))

	s := []int{1}
	assert.Equal(t, s, EmptySliceIfNil(s))
}

func TestShrinkSliceIfWastedCapacity(t *testing.T) {

	t.Run("slice with a capacity lower than the minimum shrinkable length should not be shrunk", func(t *testing.T) {
		s := make([]int, 1, 10)
		assert.Equal(t, 10, cap(ShrinkSliceIfWastedCapacity(s, 20, 2)))
	})

	t.Run("slice using more than 1/divider of its capacity should not be shrunk", func(t *testing.T) {
		s := make([]int, 11, 20)
		assert.Equal(t, 20, cap(ShrinkSliceIfWastedCapacity(s, 20, 2)))
	})

	t.Run("slice using at most 1/divider of its capacity should be shrunk", func(t *testing.T) {
		s := make([]int, 10, 40)
		s[0] = 1
		s[9] = 2

		shrunk := ShrinkSliceIfWastedCapacity(s, 20, 2)
		assert.Equal(t, 20, cap(shrunk))
		assert.Len(t, shrunk, 10)
		assert.Equal(t, 1, shrunk[0])
		assert.Equal(t, 2, shrunk[9])

		shrunk[0] = 3
		assert.Equal(t, 1, s[0])
	})

	t.Run("invalid divider", func(t *testing.T) {
		assert.Panics(t, func() {
			ShrinkSliceIfWastedCapacity([]int{}, 20, 1)
		})
	})
}

func TestRemoveIndex(t *testing.T) {

	t.Run("first element", func(t *testing.T) {
		s := []int{1, 2, 3}
		result := RemoveIndex(s, 0)

		assert.Equal(t, []int{2, 3}, result)
		assert.Equal(t, 0, s[2])
	})

	t.Run("middle element", func(t *testing.T) {
		s := []int{1, 2, 3}
		assert.Equal(t, []int{1, 3}, RemoveIndex(s, 1))
	})

	t.Run("last element", func(t *testing.T) {
		s := []int{1, 2, 3}
		result := RemoveIndex(s, 2)

		assert.Equal(t, []int{1, 2}, result)
		assert.Equal(t, 0, s[2])
	})

	t.Run("the removed pointer should not be retained by the backing array", func(t *testing.T) {
		a, b := new(int), new(int)
		s := []*int{a, b}
		RemoveIndex(s, 0)

		assert.Nil(t, s[1])
	})
}

func TestMust(t *testing.T) {
	assert.Equal(t, 1, Must(1, nil))

	err := errors.New("failure")
	assert.PanicsWithError(t, err.Error(), func() {
		Must(0, err)
	})
}
