package observable

import (
	"github.com/bits-and-blooms/bitset"
)

const (
	FIRST_VALID_CALLBACK_HANDLE = CallbackHandle(1)
)

// A CallbackHandle identifies a callback registered on a Sequence. Handles are unique among
// the three channels of a sequence and are never reused.
type CallbackHandle int64

func (h CallbackHandle) Valid() bool {
	return h >= FIRST_VALID_CALLBACK_HANDLE
}

// ElementCallback is called after an element has been inserted into or removed from seq,
// index is the position the element was inserted at or the position it occupied.
type ElementCallback[T comparable] func(seq *Sequence[T], value T, index int)

// ElementChangeCallback is called after the element at index has been replaced.
type ElementChangeCallback[T comparable] func(seq *Sequence[T], newValue, oldValue T, index int)

type registeredCallback[F any] struct {
	fn     F
	handle CallbackHandle
}

// callbacks holds the callbacks of a single channel in registration order. Removed callbacks
// leave a cleared bit in occupied until the slots are compacted, which never happens while the
// callbacks are being iterated over.
type callbacks[F any] struct {
	slots     []registeredCallback[F]
	occupied  bitset.BitSet
	iterating int
}

func (c *callbacks[F]) add(fn F, handle CallbackHandle) {
	c.compactIfWasted()

	index := uint(len(c.slots))
	c.slots = append(c.slots, registeredCallback[F]{
		fn:     fn,
		handle: handle,
	})
	c.occupied.Set(index)
}

func (c *callbacks[F]) remove(handle CallbackHandle) bool {
	for i, ok := c.occupied.NextSet(0); ok; i, ok = c.occupied.NextSet(i + 1) {
		if c.slots[i].handle == handle {
			c.slots[i] = registeredCallback[F]{}
			c.occupied.Clear(i)
			c.compactIfWasted()
			return true
		}
	}
	return false
}

func (c *callbacks[F]) removeAll() {
	clear(c.slots)
	c.slots = c.slots[:0]
	c.occupied.ClearAll()
}

func (c *callbacks[F]) len() int {
	return int(c.occupied.Count())
}

// compactIfWasted moves the remaining callbacks to the first slots, keeping their order, if more
// than half of the slots are free.
func (c *callbacks[F]) compactIfWasted() {
	if c.iterating > 0 || len(c.slots)-c.len() <= len(c.slots)/2 {
		return
	}

	kept := 0
	for i, ok := c.occupied.NextSet(0); ok; i, ok = c.occupied.NextSet(i + 1) {
		c.slots[kept] = c.slots[i]
		kept++
	}
	clear(c.slots[kept:])
	c.slots = c.slots[:kept]

	c.occupied.ClearAll()
	for i := 0; i < kept; i++ {
		c.occupied.Set(uint(i))
	}
}

// each calls fn with every callback whose handle is not greater than lastHandle, in registration
// order. Callbacks removed while iterating are not visited.
func (c *callbacks[F]) each(lastHandle CallbackHandle, fn func(callback F)) {
	c.iterating++
	defer func() {
		c.iterating--
	}()

	for i, ok := c.occupied.NextSet(0); ok; i, ok = c.occupied.NextSet(i + 1) {
		callback := c.slots[i]
		if callback.handle > lastHandle {
			continue
		}
		fn(callback.fn)
	}
}
