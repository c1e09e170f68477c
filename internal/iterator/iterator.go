// Package iterator implements the safe iteration layer: a filtering
// iterator with idempotent hasNext, concurrent-modification detection
// against a live store-wide modification counter, and remove-during-
// iteration via a one-way switch to a materialized snapshot.
package iterator

import (
	"errors"

	"github.com/arborgraph/trismem/pkg/triple"
)

// ErrConcurrentModification is returned by Next/HasNext when the store
// changed structurally since the iterator was created, outside of
// snapshot-after-remove mode.
var ErrConcurrentModification = errors.New("iterator: concurrent modification")

// ErrIllegalState is returned by Remove when called before the first
// Next, more than once per yielded element, or after iteration ended.
var ErrIllegalState = errors.New("iterator: illegal state")

// Remover deletes a triple from the backing store. The store implements
// this; the iterator never touches index internals directly.
type Remover interface {
	Remove(t triple.Triple)
}

// Iterator walks a pre-collected candidate list (the snapshot of the
// chosen bunch or bunches, taken at creation time), applying a residual
// filter lazily as it is pulled. It is finite and non-restartable.
type Iterator struct {
	candidates []triple.Triple
	residual   func(triple.Triple) bool
	pos        int

	pending    triple.Triple
	hasPending bool
	finished   bool

	lastYielded triple.Triple
	canRemove   bool

	remover      Remover
	liveModCount func() uint64
	startMod     uint64
	snapshotMode bool
}

// New builds an Iterator over candidates, filtering with residual (nil
// means "every candidate matches"). liveModCount reads the store's live
// modification counter; startMod is the value captured when the plan was
// built.
func New(candidates []triple.Triple, residual func(triple.Triple) bool, remover Remover, liveModCount func() uint64, startMod uint64) *Iterator {
	if residual == nil {
		residual = func(triple.Triple) bool { return true }
	}
	return &Iterator{
		candidates:   candidates,
		residual:     residual,
		remover:      remover,
		liveModCount: liveModCount,
		startMod:     startMod,
	}
}

// HasNext reports whether a further element is available. It is
// idempotent: calling it repeatedly without an intervening Next does not
// advance the iterator or re-trigger the concurrent-modification check.
func (it *Iterator) HasNext() (bool, error) {
	if it.hasPending {
		return true, nil
	}
	if it.finished {
		return false, nil
	}
	if !it.snapshotMode && it.liveModCount() != it.startMod {
		it.finished = true
		return false, ErrConcurrentModification
	}
	for it.pos < len(it.candidates) {
		cand := it.candidates[it.pos]
		it.pos++
		if it.residual(cand) {
			it.pending = cand
			it.hasPending = true
			return true, nil
		}
	}
	it.finished = true
	return false, nil
}

// Next returns the next matching triple, advancing the iterator.
func (it *Iterator) Next() (triple.Triple, error) {
	ok, err := it.HasNext()
	if err != nil {
		return triple.Triple{}, err
	}
	if !ok {
		return triple.Triple{}, ErrIllegalState
	}
	it.hasPending = false
	it.lastYielded = it.pending
	it.canRemove = true
	return it.lastYielded, nil
}

// Remove deletes the element most recently returned by Next. On the
// first call across the iterator's lifetime it switches the iterator
// into snapshot-after-remove mode: remaining elements continue to come
// from the already-materialized candidate list, and further structural
// changes elsewhere in the store no longer fault this iterator.
func (it *Iterator) Remove() error {
	if !it.canRemove {
		return ErrIllegalState
	}
	it.remover.Remove(it.lastYielded)
	it.canRemove = false
	it.snapshotMode = true
	return nil
}
