package bunch

import "github.com/arborgraph/trismem/pkg/triple"

// minHashCapacity is the smallest power-of-two capacity a promoted bunch
// starts at; it comfortably holds ArrayPromotionThreshold+1 triples under
// maxLoadFactor without an immediate grow.
const minHashCapacity = 32

const (
	maxLoadFactor = 0.7
)

type slot struct {
	used  bool
	value triple.Triple
}

// hashRepr is the promoted, open-addressed form: power-of-two capacity,
// linear probing, grow-only, with backward-shift deletion so that a null
// slot always correctly terminates a probe (no tombstones).
type hashRepr struct {
	slots    []slot
	count    int
	modCount uint64
}

// newHashRepr builds a hashed bunch preloaded with existing, already
// promoted from an array form during a Bunch's one-way transition.
func newHashRepr(existing []triple.Triple) *hashRepr {
	cap := minHashCapacity
	for float64(len(existing)+1) > float64(cap)*maxLoadFactor {
		cap *= 2
	}
	h := &hashRepr{slots: make([]slot, cap)}
	for _, t := range existing {
		h.insertNoResize(t)
	}
	return h
}

func mix(h uint64, mask uint64) uint64 {
	h = h ^ (h >> 16)
	return h & mask
}

func (h *hashRepr) mask() uint64 { return uint64(len(h.slots) - 1) }

func (h *hashRepr) contains(t triple.Triple) bool {
	_, found := h.find(t)
	return found
}

// find returns the slot index holding t, or the first empty slot on the
// probe sequence if t is absent.
func (h *hashRepr) find(t triple.Triple) (int, bool) {
	mask := h.mask()
	idx := mix(t.Hash(), mask)
	for {
		s := &h.slots[idx]
		if !s.used {
			return int(idx), false
		}
		if s.value.Equals(t) {
			return int(idx), true
		}
		idx = (idx + 1) & mask
	}
}

func (h *hashRepr) tryAdd(t triple.Triple) bool {
	if h.contains(t) {
		return false
	}
	h.addUnchecked(t)
	return true
}

func (h *hashRepr) addUnchecked(t triple.Triple) {
	if float64(h.count+1) > float64(len(h.slots))*maxLoadFactor {
		h.grow()
	}
	h.insertNoResize(t)
	h.modCount++
}

// insertNoResize assumes capacity is already sufficient; used both by
// addUnchecked (after a capacity check) and by the initial load in
// newHashRepr/grow.
func (h *hashRepr) insertNoResize(t triple.Triple) {
	idx, found := h.find(t)
	if found {
		return
	}
	h.slots[idx] = slot{used: true, value: t}
	h.count++
}

// grow doubles capacity and rehashes every live entry. Capacity never
// shrinks outside of a full bunch replacement.
func (h *hashRepr) grow() {
	old := h.slots
	h.slots = make([]slot, len(old)*2)
	h.count = 0
	for _, s := range old {
		if s.used {
			h.insertNoResize(s.value)
		}
	}
}

func (h *hashRepr) tryRemove(t triple.Triple) bool {
	idx, found := h.find(t)
	if !found {
		return false
	}
	h.deleteAt(idx)
	h.modCount++
	return true
}

func (h *hashRepr) removeUnchecked(t triple.Triple) {
	idx, found := h.find(t)
	if !found {
		return
	}
	h.deleteAt(idx)
	h.modCount++
}

// deleteAt clears the slot at i and repairs the probe sequence for every
// later entry whose ideal slot now lies "behind" the gap, using
// backward-shift deletion: no tombstones are ever written, so a null
// slot keeps terminating probes correctly.
func (h *hashRepr) deleteAt(i int) {
	mask := h.mask()
	h.slots[i] = slot{}
	h.count--

	gap := uint64(i)
	j := gap
	for {
		j = (j + 1) & mask
		if !h.slots[j].used {
			break
		}
		ideal := mix(h.slots[j].value.Hash(), mask)
		if forwardDistance(ideal, gap, mask) <= forwardDistance(ideal, j, mask) {
			h.slots[gap] = h.slots[j]
			h.slots[j] = slot{}
			gap = j
		}
	}
}

// forwardDistance is the cyclic distance walking forward from `from` to
// `to`, used to decide whether shifting an entry backward into the gap
// keeps it reachable from its ideal slot.
func forwardDistance(from, to, mask uint64) uint64 {
	return (to - from) & mask
}

func (h *hashRepr) size() int { return h.count }

// each iterates a snapshot of the capacity array captured at call time;
// if a structural change (add/remove/grow) occurs mid-iteration, it
// aborts early and returns false via a modification-counter check.
func (h *hashRepr) each(visit func(triple.Triple) bool) bool {
	slots := h.slots
	startMod := h.modCount
	for _, s := range slots {
		if !s.used {
			continue
		}
		if h.modCount != startMod {
			return false
		}
		if !visit(s.value) {
			break
		}
	}
	return h.modCount == startMod
}
