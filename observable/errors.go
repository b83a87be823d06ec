package observable

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrReentrantMutation = errors.New("sequence mutated by one of its own callbacks")
)

func indexOutOfRangeError(index, count int) error {
	return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, count)
}
