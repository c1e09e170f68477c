package store

import (
	"errors"
	"fmt"

	"github.com/arborgraph/trismem/internal/iterator"
)

// ErrConcurrentModification is returned by an Iteration's HasNext/Next
// when the store was structurally changed elsewhere since Find was
// called, unless the iteration has already entered snapshot-after-remove
// mode.
var ErrConcurrentModification = errors.New("store: concurrent modification detected during iteration")

// ErrIteratorIllegalState is returned by Iteration.Remove when called
// before the first Next, more than once for the same yielded element, or
// after iteration has ended.
var ErrIteratorIllegalState = errors.New("store: illegal iterator state")

func translateIterErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, iterator.ErrConcurrentModification):
		return fmt.Errorf("%w: store mutated during iteration", ErrConcurrentModification)
	case errors.Is(err, iterator.ErrIllegalState):
		return fmt.Errorf("%w: remove called out of sequence", ErrIteratorIllegalState)
	default:
		return err
	}
}
