package observable

import (
	"fmt"

	"github.com/esavini/collections/internal/utils"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

const (
	// NotFound is the IndexOf result when no element matches.
	NotFound = -1

	SEQUENCE_SHRINK_DIVIDER        = 2
	MIN_SHRINKABLE_SEQUENCE_LENGTH = 10 * SEQUENCE_SHRINK_DIVIDER
)

// A Sequence is an ordered, zero-indexed collection of elements that synchronously calls the
// callbacks registered on its channels (element inserted, element removed, element changed)
// after each mutation. The zero value is an empty sequence ready to use.
//
// A Sequence is not safe for concurrent use. Callbacks run on the goroutine performing the
// mutation and see the sequence in its post-mutation state; they are not allowed to mutate it.
type Sequence[T comparable] struct {
	elements []T

	inserted callbacks[ElementCallback[T]]
	removed  callbacks[ElementCallback[T]]
	changed  callbacks[ElementChangeCallback[T]]

	lastHandle  CallbackHandle
	dispatching bool

	logger zerolog.Logger
}

// New creates an empty sequence that logs nothing, it is equivalent to NewWithConfig with a zero Config.
func New[T comparable]() *Sequence[T] {
	return NewWithConfig[T](Config{})
}

// NewWithConfig creates an empty sequence. If config.Logger is not set the sequence's logger discards
// everything.
func NewWithConfig[T comparable](config Config) *Sequence[T] {
	s := &Sequence[T]{
		logger: childLoggerForSource(config.Logger, SEQUENCE_LOG_SRC),
	}

	if config.InitialCapacity > 0 {
		s.elements = make([]T, 0, config.InitialCapacity)
	}
	return s
}

// NewFromSlice creates a sequence containing a copy of elements.
func NewFromSlice[T comparable](elements []T) *Sequence[T] {
	s := New[T]()
	s.elements = utils.CopySlice(elements)
	return s
}

// Count returns the number of elements, valid indexes are in [0, Count()).
func (s *Sequence[T]) Count() int {
	return len(s.elements)
}

// Get returns the element at index, an error wrapping ErrIndexOutOfRange is returned if index
// is not in [0, Count()).
func (s *Sequence[T]) Get(index int) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.elements[index], nil
}

// At is like Get but panics if index is out of range.
func (s *Sequence[T]) At(index int) T {
	if err := s.checkIndex(index); err != nil {
		panic(err)
	}
	return s.elements[index]
}

// Set replaces the element at index and calls the element-changed callbacks.
func (s *Sequence[T]) Set(index int, value T) error {
	s.checkNotDispatching("Set")

	if err := s.checkIndex(index); err != nil {
		return err
	}

	oldValue := s.elements[index]
	s.elements[index] = value

	s.notifyChanged(value, oldValue, index)
	return nil
}

// Add appends value and calls the element-inserted callbacks.
func (s *Sequence[T]) Add(value T) {
	s.checkNotDispatching("Add")

	s.elements = append(s.elements, value)

	s.notifyInserted(value, len(s.elements)-1)
}

// Insert inserts value at index, shifting the elements at positions >= index to the right.
// Index should be in [0, Count()): inserting at Count() is rejected, Add should be used instead.
//
// Insert calls the element-changed callbacks (not the element-inserted ones) with the element
// that previously occupied index as the old value.
func (s *Sequence[T]) Insert(index int, value T) error {
	s.checkNotDispatching("Insert")

	if err := s.checkIndex(index); err != nil {
		return err
	}

	oldValue := s.elements[index]
	s.elements = slices.Insert(s.elements, index, value)

	s.notifyChanged(value, oldValue, index)
	return nil
}

// RemoveAt removes the element at index, shifting the following elements to the left, and calls
// the element-removed callbacks.
func (s *Sequence[T]) RemoveAt(index int) error {
	s.checkNotDispatching("RemoveAt")

	if err := s.checkIndex(index); err != nil {
		return err
	}

	s.removeAndNotify(index)
	return nil
}

// Remove removes the first element equal to value. It returns false and calls no callback if
// there is no such element.
func (s *Sequence[T]) Remove(value T) bool {
	s.checkNotDispatching("Remove")

	index := slices.Index(s.elements, value)
	if index < 0 {
		return false
	}

	s.removeAndNotify(index)
	return true
}

// Clear removes the elements one by one from the last to the first, the element-removed
// callbacks are called after each removal.
func (s *Sequence[T]) Clear() {
	s.checkNotDispatching("Clear")

	for i := len(s.elements) - 1; i >= 0; i-- {
		s.removeAndNotify(i)
	}
}

// Contains reports whether an element is equal to value.
func (s *Sequence[T]) Contains(value T) bool {
	return slices.Contains(s.elements, value)
}

// IndexOf returns the index of the first element equal to value, or NotFound.
func (s *Sequence[T]) IndexOf(value T) int {
	return slices.Index(s.elements, value)
}

// CopyInto copies the elements into buffer starting at offset. An error wrapping ErrIndexOutOfRange
// is returned, and nothing is written, if offset is negative or if buffer[offset:] is too short.
func (s *Sequence[T]) CopyInto(buffer []T, offset int) error {
	if offset < 0 || offset > len(buffer) {
		return indexOutOfRangeError(offset, len(buffer))
	}

	if available := len(buffer) - offset; available < len(s.elements) {
		return fmt.Errorf("%w: %d element(s) do not fit in the %d position(s) after offset %d",
			ErrIndexOutOfRange, len(s.elements), available, offset)
	}

	copy(buffer[offset:], s.elements)
	return nil
}

// ForEach calls fn with each element in order, it stops if fn returns false.
func (s *Sequence[T]) ForEach(fn func(index int, value T) bool) {
	for i, e := range s.elements {
		if !fn(i, e) {
			return
		}
	}
}

// Values returns a copy of the elements, the caller can modify the result.
func (s *Sequence[T]) Values() []T {
	return utils.CopySlice(s.elements)
}

// Equal returns true if other is s, or if both sequences have the same number of elements and the
// same content digest (see Digest). No element-wise comparison is performed.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if other == nil {
		return false
	}
	if s == other {
		return true
	}
	if s.Count() != other.Count() {
		return false
	}

	digest, err := s.Digest()
	if err != nil {
		s.logger.Debug().Err(err).Msg("sequences considered different: failed to compute digest")
		return false
	}

	otherDigest, err := other.Digest()
	if err != nil {
		s.logger.Debug().Err(err).Msg("sequences considered different: failed to compute digest of other sequence")
		return false
	}

	return digest == otherDigest
}

// String formats the elements like a slice: [e0 e1 ...].
func (s *Sequence[T]) String() string {
	return fmt.Sprint(utils.EmptySliceIfNil(s.elements))
}

// MarshalJSON encodes the elements as a JSON array, an empty sequence is encoded as [].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.EmptySliceIfNil(s.elements))
}

// OnElementInserted registers fn as an element-inserted callback, a nil fn is ignored and
// the invalid handle 0 is returned.
func (s *Sequence[T]) OnElementInserted(fn ElementCallback[T]) CallbackHandle {
	if fn == nil {
		return 0
	}
	handle := s.nextHandle()
	s.inserted.add(fn, handle)

	s.logger.Debug().Int64("handle", int64(handle)).Msg("element-inserted callback added")
	return handle
}

// OnElementRemoved registers fn as an element-removed callback, a nil fn is ignored and
// the invalid handle 0 is returned.
func (s *Sequence[T]) OnElementRemoved(fn ElementCallback[T]) CallbackHandle {
	if fn == nil {
		return 0
	}
	handle := s.nextHandle()
	s.removed.add(fn, handle)

	s.logger.Debug().Int64("handle", int64(handle)).Msg("element-removed callback added")
	return handle
}

// OnElementChanged registers fn as an element-changed callback, a nil fn is ignored and
// the invalid handle 0 is returned.
func (s *Sequence[T]) OnElementChanged(fn ElementChangeCallback[T]) CallbackHandle {
	if fn == nil {
		return 0
	}
	handle := s.nextHandle()
	s.changed.add(fn, handle)

	s.logger.Debug().Int64("handle", int64(handle)).Msg("element-changed callback added")
	return handle
}

// RemoveCallback unregisters the callback identified by handle, whatever its channel.
// It returns false if no such callback is registered.
func (s *Sequence[T]) RemoveCallback(handle CallbackHandle) bool {
	if !handle.Valid() {
		return false
	}

	removed := s.inserted.remove(handle) || s.removed.remove(handle) || s.changed.remove(handle)
	if removed {
		s.logger.Debug().Int64("handle", int64(handle)).Msg("callback removed")
	}
	return removed
}

// RemoveAllCallbacks unregisters the callbacks of all channels.
func (s *Sequence[T]) RemoveAllCallbacks() {
	s.inserted.removeAll()
	s.removed.removeAll()
	s.changed.removeAll()

	s.logger.Debug().Msg("all callbacks removed")
}

func (s *Sequence[T]) nextHandle() CallbackHandle {
	s.lastHandle++
	return s.lastHandle
}

func (s *Sequence[T]) checkIndex(index int) error {
	if index < 0 || index >= len(s.elements) {
		return indexOutOfRangeError(index, len(s.elements))
	}
	return nil
}

func (s *Sequence[T]) checkNotDispatching(operation string) {
	if s.dispatching {
		panic(fmt.Errorf("%w: %s called from a callback", ErrReentrantMutation, operation))
	}
}

func (s *Sequence[T]) removeAndNotify(index int) {
	value := s.elements[index]
	s.elements = utils.RemoveIndex(s.elements, index)
	s.elements = utils.ShrinkSliceIfWastedCapacity(s.elements, MIN_SHRINKABLE_SEQUENCE_LENGTH, SEQUENCE_SHRINK_DIVIDER)

	s.notifyRemoved(value, index)
}

func (s *Sequence[T]) notifyInserted(value T, index int) {
	if s.inserted.len() == 0 {
		return
	}
	s.logger.Trace().Int("index", index).Msg("element inserted")

	s.dispatch(func(lastHandle CallbackHandle) {
		s.inserted.each(lastHandle, func(fn ElementCallback[T]) {
			fn(s, value, index)
		})
	})
}

func (s *Sequence[T]) notifyRemoved(value T, index int) {
	if s.removed.len() == 0 {
		return
	}
	s.logger.Trace().Int("index", index).Msg("element removed")

	s.dispatch(func(lastHandle CallbackHandle) {
		s.removed.each(lastHandle, func(fn ElementCallback[T]) {
			fn(s, value, index)
		})
	})
}

func (s *Sequence[T]) notifyChanged(newValue, oldValue T, index int) {
	if s.changed.len() == 0 {
		return
	}
	s.logger.Trace().Int("index", index).Msg("element changed")

	s.dispatch(func(lastHandle CallbackHandle) {
		s.changed.each(lastHandle, func(fn ElementChangeCallback[T]) {
			fn(s, newValue, oldValue, index)
		})
	})
}

// dispatch calls callAll with the last handle allocated so far: callbacks registered during the
// dispatch are not called.
func (s *Sequence[T]) dispatch(callAll func(lastHandle CallbackHandle)) {
	s.dispatching = true
	defer func() {
		s.dispatching = false
	}()

	callAll(s.lastHandle)
}
