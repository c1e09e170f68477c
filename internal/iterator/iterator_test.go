package iterator

import (
	"errors"
	"testing"

	"github.com/arborgraph/trismem/pkg/rdf"
	"github.com/arborgraph/trismem/pkg/triple"
)

type fakeStore struct {
	mod     uint64
	removed []triple.Triple
}

func (f *fakeStore) Remove(t triple.Triple) {
	f.removed = append(f.removed, t)
	f.mod++
}

func (f *fakeStore) liveMod() uint64 { return f.mod }

func mk(s string) triple.Triple {
	return triple.New(rdf.NewNamedNode(s), rdf.NewNamedNode("p"), rdf.NewNamedNode("o"))
}

func TestIterator_YieldsAllMatching(t *testing.T) {
	store := &fakeStore{}
	candidates := []triple.Triple{mk("s1"), mk("s2"), mk("s3")}
	it := New(candidates, nil, store, store.liveMod, store.mod)

	var got []triple.Triple
	for {
		ok, err := it.HasNext()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, v)
	}
	if len(got) != 3 {
		t.Fatalf("got %d elements, want 3", len(got))
	}
}

func TestIterator_HasNextIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	it := New([]triple.Triple{mk("s1")}, nil, store, store.liveMod, store.mod)
	ok1, _ := it.HasNext()
	ok2, _ := it.HasNext()
	if !ok1 || !ok2 {
		t.Fatalf("expected HasNext to repeatedly report true without consuming")
	}
	v, err := it.Next()
	if err != nil || !v.Equals(mk("s1")) {
		t.Fatalf("Next returned wrong value: %v, %v", v, err)
	}
	ok3, _ := it.HasNext()
	if ok3 {
		t.Fatalf("expected no more elements")
	}
}

func TestIterator_ConcurrentModificationFaults(t *testing.T) {
	store := &fakeStore{}
	it := New([]triple.Triple{mk("s1"), mk("s2")}, nil, store, store.liveMod, store.mod)
	if _, err := it.Next(); err != nil {
		t.Fatalf("unexpected error on first Next: %v", err)
	}
	store.mod++ // unrelated mutation elsewhere in the store
	if _, err := it.HasNext(); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestIterator_RemoveEntersSnapshotMode(t *testing.T) {
	store := &fakeStore{}
	it := New([]triple.Triple{mk("s1"), mk("s2")}, nil, store, store.liveMod, store.mod)
	v, _ := it.Next()
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(store.removed) != 1 || !store.removed[0].Equals(v) {
		t.Fatalf("expected the store to have received the removal of %v", v)
	}
	// a further external mutation must no longer fault this iterator,
	// since it already switched to snapshot-after-remove mode.
	store.mod++
	ok, err := it.HasNext()
	if err != nil {
		t.Fatalf("unexpected error after entering snapshot mode: %v", err)
	}
	if !ok {
		t.Fatalf("expected a second element to remain")
	}
}

func TestIterator_RemoveBeforeNextIsIllegalState(t *testing.T) {
	store := &fakeStore{}
	it := New([]triple.Triple{mk("s1")}, nil, store, store.liveMod, store.mod)
	if err := it.Remove(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestIterator_DoubleRemoveIsIllegalState(t *testing.T) {
	store := &fakeStore{}
	it := New([]triple.Triple{mk("s1")}, nil, store, store.liveMod, store.mod)
	it.Next()
	if err := it.Remove(); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if err := it.Remove(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected second Remove to be ErrIllegalState, got %v", err)
	}
}
