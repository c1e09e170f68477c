// Package bunch implements the adaptive per-index triple container: a
// small array form that promotes, one-way, to an open-addressed hash set
// once it grows past a fixed threshold.
package bunch

import "github.com/arborgraph/trismem/pkg/triple"

// ArrayPromotionThreshold is N: the array form holds up to this many
// triples before the next insert promotes the bunch to hashed form.
const ArrayPromotionThreshold = 16

// repr is the internal representation a Bunch delegates to. Exactly two
// implementations exist: arrayRepr and hashRepr.
type repr interface {
	tryAdd(t triple.Triple) bool
	addUnchecked(t triple.Triple)
	tryRemove(t triple.Triple) bool
	removeUnchecked(t triple.Triple)
	contains(t triple.Triple) bool
	size() int
	each(visit func(triple.Triple) bool) bool
}

// Bunch is a set of triples that all share one indexing hash at a
// designated position (subject, predicate, or object — the owning index
// map knows which, the bunch itself does not need to). It starts in
// array form and promotes, one-way, to hashed form on crossing
// ArrayPromotionThreshold.
type Bunch struct {
	r      repr
	Hashed bool
}

// New returns an empty bunch in array form.
func New() *Bunch {
	return &Bunch{r: newArrayRepr()}
}

// TryAdd inserts t if no equal triple is already present, returning
// whether the insert happened. Crossing ArrayPromotionThreshold triggers
// a one-way promotion to hashed form before the insert completes.
func (b *Bunch) TryAdd(t triple.Triple) bool {
	if b.r.contains(t) {
		return false
	}
	b.promoteIfNeeded()
	b.r.addUnchecked(t)
	return true
}

// AddUnchecked inserts t assuming it is not already present. Used by
// secondary indices once the primary index has confirmed the insert.
func (b *Bunch) AddUnchecked(t triple.Triple) {
	b.promoteIfNeeded()
	b.r.addUnchecked(t)
}

func (b *Bunch) promoteIfNeeded() {
	if b.Hashed {
		return
	}
	ar, ok := b.r.(*arrayRepr)
	if !ok || len(ar.items) < ArrayPromotionThreshold {
		return
	}
	hr := newHashRepr(ar.items)
	b.r = hr
	b.Hashed = true
}

// TryRemove removes t if present, returning whether it was removed.
func (b *Bunch) TryRemove(t triple.Triple) bool { return b.r.tryRemove(t) }

// RemoveUnchecked removes t assuming it is present.
func (b *Bunch) RemoveUnchecked(t triple.Triple) { b.r.removeUnchecked(t) }

// Contains reports whether an equal triple is present.
func (b *Bunch) Contains(t triple.Triple) bool { return b.r.contains(t) }

// Size returns the number of triples held.
func (b *Bunch) Size() int { return b.r.size() }

// IsEmpty reports whether the bunch holds no triples.
func (b *Bunch) IsEmpty() bool { return b.r.size() == 0 }

// Each visits every triple in the bunch, stopping early if visit returns
// false. It returns false if a structural modification of a hashed-form
// bunch was detected mid-iteration (see hashRepr.each), true otherwise.
func (b *Bunch) Each(visit func(triple.Triple) bool) bool {
	return b.r.each(visit)
}
