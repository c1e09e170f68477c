package bunch

import "github.com/arborgraph/trismem/pkg/triple"

// arrayRepr is the array form: a small contiguous slice, linear scan for
// lookup, swap-with-last for deletion. It never grows past
// ArrayPromotionThreshold — the owning Bunch promotes before that happens.
type arrayRepr struct {
	items []triple.Triple
}

func newArrayRepr() *arrayRepr {
	return &arrayRepr{items: make([]triple.Triple, 0, ArrayPromotionThreshold)}
}

func (a *arrayRepr) indexOf(t triple.Triple) int {
	for i, existing := range a.items {
		if existing.Equals(t) {
			return i
		}
	}
	return -1
}

func (a *arrayRepr) contains(t triple.Triple) bool {
	return a.indexOf(t) >= 0
}

func (a *arrayRepr) tryAdd(t triple.Triple) bool {
	if a.contains(t) {
		return false
	}
	a.items = append(a.items, t)
	return true
}

func (a *arrayRepr) addUnchecked(t triple.Triple) {
	a.items = append(a.items, t)
}

func (a *arrayRepr) tryRemove(t triple.Triple) bool {
	i := a.indexOf(t)
	if i < 0 {
		return false
	}
	a.removeAt(i)
	return true
}

func (a *arrayRepr) removeUnchecked(t triple.Triple) {
	i := a.indexOf(t)
	if i < 0 {
		return
	}
	a.removeAt(i)
}

// removeAt deletes the element at i by swapping in the last element,
// avoiding an O(n) shift.
func (a *arrayRepr) removeAt(i int) {
	last := len(a.items) - 1
	a.items[i] = a.items[last]
	a.items = a.items[:last]
}

func (a *arrayRepr) size() int { return len(a.items) }

func (a *arrayRepr) each(visit func(triple.Triple) bool) bool {
	for _, t := range a.items {
		if !visit(t) {
			break
		}
	}
	return true
}
