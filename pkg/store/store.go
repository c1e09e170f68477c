// Package store provides the in-memory RDF triple store façade: Add,
// Remove, Contains, Count, Clear, Stream, and Find over three
// internally-maintained indices (by subject, by predicate, by object).
package store

import (
	"errors"
	"iter"

	"github.com/golang/glog"

	"github.com/arborgraph/trismem/internal/bunch"
	"github.com/arborgraph/trismem/internal/index"
	"github.com/arborgraph/trismem/internal/iterator"
	"github.com/arborgraph/trismem/internal/planner"
	"github.com/arborgraph/trismem/pkg/triple"
)

// Store holds a set of triples indexed three ways. It has no internal
// synchronization: callers must serialize mutating operations
// themselves (single-writer, cooperative).
type Store struct {
	bySubject   *index.Map
	byPredicate *index.Map
	byObject    *index.Map

	count    int
	modCount uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		bySubject:   index.New(),
		byPredicate: index.New(),
		byObject:    index.New(),
	}
}

// Add inserts t, returning whether it was newly added. A duplicate add
// is a silent no-op and returns false.
func (s *Store) Add(t triple.Triple) bool {
	b := s.bySubject.ComputeIfAbsent(t.SubjectHash())
	wasHashed := b.Hashed
	if !b.TryAdd(t) {
		duplicateAddTotal.Inc()
		glog.V(2).Infof("store: add is a duplicate no-op for %s", t)
		return false
	}
	s.notePromotion(wasHashed, b)

	pb := s.byPredicate.ComputeIfAbsent(t.PredicateHash())
	wasHashedP := pb.Hashed
	pb.AddUnchecked(t)
	s.notePromotion(wasHashedP, pb)

	ob := s.byObject.ComputeIfAbsent(t.ObjectHash())
	wasHashedO := ob.Hashed
	ob.AddUnchecked(t)
	s.notePromotion(wasHashedO, ob)

	s.count++
	s.bumpModCount()
	quadsAddedTotal.Inc()
	glog.V(2).Infof("store: added %s (count=%d)", t, s.count)
	return true
}

func (s *Store) notePromotion(wasHashed bool, b *bunch.Bunch) {
	if !wasHashed && b.Hashed {
		bunchPromotionsTotal.Inc()
		glog.V(3).Infof("store: bunch promoted from array to hashed form")
	}
}

// Remove deletes t, returning whether it was present. Removing an absent
// triple is a silent no-op and returns false.
func (s *Store) Remove(t triple.Triple) bool { return s.doRemove(t) }

func (s *Store) doRemove(t triple.Triple) bool {
	b, ok := s.bySubject.GetIfPresent(t.SubjectHash())
	if !ok || !b.TryRemove(t) {
		absentRemoveTotal.Inc()
		return false
	}
	if b.IsEmpty() {
		s.bySubject.Remove(t.SubjectHash())
	}

	if pb, ok := s.byPredicate.GetIfPresent(t.PredicateHash()); ok {
		pb.RemoveUnchecked(t)
		if pb.IsEmpty() {
			s.byPredicate.Remove(t.PredicateHash())
		}
	}
	if ob, ok := s.byObject.GetIfPresent(t.ObjectHash()); ok {
		ob.RemoveUnchecked(t)
		if ob.IsEmpty() {
			s.byObject.Remove(t.ObjectHash())
		}
	}

	s.count--
	s.bumpModCount()
	quadsRemovedTotal.Inc()
	glog.V(2).Infof("store: removed %s (count=%d)", t, s.count)
	return true
}

// Count returns the number of triples currently stored, in O(1).
func (s *Store) Count() int { return s.count }

// Clear removes every triple and resets the indices to empty.
func (s *Store) Clear() {
	s.bySubject.Clear()
	s.byPredicate.Clear()
	s.byObject.Clear()
	s.count = 0
	s.bumpModCount()
	glog.V(2).Infof("store: cleared")
}

// Contains reports whether any triple matches pat.
func (s *Store) Contains(pat triple.Pattern) bool {
	plan := planner.Classify(pat, s.bySubject, s.byPredicate, s.byObject)
	glog.V(3).Infof("store: contains classified pattern as %s", plan.Case)

	if plan.ExactTriple != nil {
		return plan.ExactBunch != nil && plan.ExactBunch.Contains(*plan.ExactTriple)
	}

	found := false
	visit := func(t triple.Triple) bool {
		if plan.Residual == nil || plan.Residual(t) {
			found = true
			return false
		}
		return true
	}
	if plan.ScanAll != nil {
		plan.ScanAll.Each(func(_ uint64, b *bunch.Bunch) bool {
			b.Each(visit)
			return !found
		})
	} else if plan.PrimaryBunch != nil {
		plan.PrimaryBunch.Each(visit)
	}
	return found
}

// Stream returns a lazy, finite, non-restartable sequence of the triples
// matching pat. Unlike Find, it offers no removal and performs no
// concurrent-modification check — it is a pull-only view for range-over-
// func consumption.
func (s *Store) Stream(pat triple.Pattern) iter.Seq[triple.Triple] {
	plan := planner.Classify(pat, s.bySubject, s.byPredicate, s.byObject)
	glog.V(3).Infof("store: stream classified pattern as %s", plan.Case)
	candidates := s.collectCandidates(plan)
	residual := plan.Residual
	return func(yield func(triple.Triple) bool) {
		for _, t := range candidates {
			if residual != nil && !residual(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Find returns an iterator over the triples matching pat, supporting
// optional in-place removal. It is finite and non-restartable; stepping
// it after the store changes elsewhere fails with
// ErrConcurrentModification, unless Remove was already called on this
// same iteration.
func (s *Store) Find(pat triple.Pattern) *Iteration {
	plan := planner.Classify(pat, s.bySubject, s.byPredicate, s.byObject)
	glog.V(3).Infof("store: find classified pattern as %s", plan.Case)
	candidates := s.collectCandidates(plan)
	inner := iterator.New(candidates, plan.Residual, removerAdapter{s}, s.liveModCount, s.modCount)
	return &Iteration{inner: inner}
}

// collectCandidates materializes the raw (pre-residual-filter) triples
// named by plan: the single matched triple for an exact SPO plan, every
// triple across an entire index for the all-wildcard case, or every
// triple in the one resolved candidate bunch otherwise.
func (s *Store) collectCandidates(plan planner.Plan) []triple.Triple {
	switch {
	case plan.ExactTriple != nil:
		if plan.ExactBunch != nil && plan.ExactBunch.Contains(*plan.ExactTriple) {
			return []triple.Triple{*plan.ExactTriple}
		}
		return nil
	case plan.ScanAll != nil:
		var out []triple.Triple
		plan.ScanAll.Each(func(_ uint64, b *bunch.Bunch) bool {
			b.Each(func(t triple.Triple) bool {
				out = append(out, t)
				return true
			})
			return true
		})
		return out
	case plan.PrimaryBunch != nil:
		var out []triple.Triple
		plan.PrimaryBunch.Each(func(t triple.Triple) bool {
			out = append(out, t)
			return true
		})
		return out
	default:
		return nil
	}
}

func (s *Store) liveModCount() uint64 { return s.modCount }

func (s *Store) bumpModCount() { s.modCount++ }

// removerAdapter lets the generic iterator package delete triples
// without depending on *Store directly.
type removerAdapter struct{ s *Store }

func (r removerAdapter) Remove(t triple.Triple) {
	r.s.doRemove(t)
}

// Iteration wraps internal/iterator.Iterator, translating its sentinel
// errors into pkg/store's own and counting concurrent-modification
// faults.
type Iteration struct {
	inner *iterator.Iterator
}

// HasNext reports whether a further matching triple is available.
func (it *Iteration) HasNext() (bool, error) {
	ok, err := it.inner.HasNext()
	if err != nil {
		concurrentModificationTotal.Inc()
	}
	return ok, translateIterErr(err)
}

// Next returns the next matching triple.
func (it *Iteration) Next() (triple.Triple, error) {
	t, err := it.inner.Next()
	if errors.Is(err, iterator.ErrConcurrentModification) {
		concurrentModificationTotal.Inc()
	}
	return t, translateIterErr(err)
}

// Remove deletes the triple most recently returned by Next from the
// store, switching this iteration into snapshot-after-remove mode.
func (it *Iteration) Remove() error {
	return translateIterErr(it.inner.Remove())
}
