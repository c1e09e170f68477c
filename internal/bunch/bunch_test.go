package bunch

import (
	"fmt"
	"testing"

	"github.com/arborgraph/trismem/pkg/rdf"
	"github.com/arborgraph/trismem/pkg/triple"
)

func mk(i int) triple.Triple {
	s := rdf.NewNamedNode("s1")
	p := rdf.NewNamedNode("p1")
	o := rdf.NewNamedNode(fmt.Sprintf("o%d", i))
	return triple.New(s, p, o)
}

func TestBunch_TryAdd_Duplicate(t *testing.T) {
	b := New()
	tr := mk(1)
	if !b.TryAdd(tr) {
		t.Fatalf("first add must succeed")
	}
	if b.TryAdd(tr) {
		t.Fatalf("duplicate add must return false")
	}
	if b.Size() != 1 {
		t.Fatalf("size = %d, want 1", b.Size())
	}
}

func TestBunch_PromotionAtThreshold(t *testing.T) {
	b := New()
	for i := 0; i < ArrayPromotionThreshold; i++ {
		if !b.TryAdd(mk(i)) {
			t.Fatalf("add %d should have succeeded", i)
		}
	}
	if b.Hashed {
		t.Fatalf("bunch must still be array form at exactly the threshold")
	}
	if !b.TryAdd(mk(ArrayPromotionThreshold)) {
		t.Fatalf("add at threshold+1 should succeed")
	}
	if !b.Hashed {
		t.Fatalf("bunch must have promoted to hashed form")
	}
	if b.Size() != ArrayPromotionThreshold+1 {
		t.Fatalf("size = %d, want %d", b.Size(), ArrayPromotionThreshold+1)
	}
	for i := 0; i <= ArrayPromotionThreshold; i++ {
		if !b.Contains(mk(i)) {
			t.Errorf("expected triple %d to survive promotion", i)
		}
	}
}

func TestBunch_PromotionIsOneWay(t *testing.T) {
	b := New()
	for i := 0; i <= ArrayPromotionThreshold; i++ {
		b.TryAdd(mk(i))
	}
	if !b.Hashed {
		t.Fatalf("expected hashed form")
	}
	for i := 0; i <= ArrayPromotionThreshold; i++ {
		b.TryRemove(mk(i))
	}
	if b.Size() != 0 {
		t.Fatalf("expected empty bunch, size = %d", b.Size())
	}
	if !b.Hashed {
		t.Errorf("promotion must be one-way: bunch must not revert to array form")
	}
}

func TestBunch_RemoveSoleTriple(t *testing.T) {
	b := New()
	tr := mk(1)
	b.TryAdd(tr)
	if !b.TryRemove(tr) {
		t.Fatalf("remove must succeed")
	}
	if !b.IsEmpty() {
		t.Fatalf("bunch must be empty after removing its sole triple")
	}
}

func TestHashSet_DeletionThenProbeForWrappedNeighbor(t *testing.T) {
	h := newHashRepr(nil)
	// force everything into one tiny table so probes actually collide and
	// wrap, exercising backward-shift deletion end to end.
	h.slots = make([]slot, 4)
	h.count = 0

	var items []triple.Triple
	for i := 0; i < 3; i++ {
		items = append(items, mk(i))
	}
	for _, it := range items {
		h.insertNoResize(it)
	}

	// remove the first inserted triple, then confirm every other inserted
	// triple (including any that had wrapped past it during insertion) is
	// still found by a fresh probe.
	if !h.tryRemove(items[0]) {
		t.Fatalf("expected removal of items[0] to succeed")
	}
	for _, it := range items[1:] {
		if !h.contains(it) {
			t.Errorf("expected %v to remain reachable after deletion", it)
		}
	}
	if h.contains(items[0]) {
		t.Errorf("removed triple must no longer be contained")
	}
}

func TestBunch_Each_StopsEarly(t *testing.T) {
	b := New()
	for i := 0; i < 5; i++ {
		b.TryAdd(mk(i))
	}
	visited := 0
	b.Each(func(triple.Triple) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Fatalf("visited = %d, want 2", visited)
	}
}
