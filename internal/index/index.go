// Package index implements the bunch-valued map keyed on a term's
// indexing hash: one instance per store position (subject, predicate,
// object).
package index

import "github.com/arborgraph/trismem/internal/bunch"

// Map is a hash map from indexing hash to the bunch of triples whose
// designated position hashes to that key. Collisions are resolved inside
// the bunch, not here.
type Map struct {
	buckets map[uint64]*bunch.Bunch
}

// New returns an empty index map.
func New() *Map {
	return &Map{buckets: make(map[uint64]*bunch.Bunch)}
}

// ComputeIfAbsent returns the bunch for hash, creating and installing an
// empty one if none exists yet.
func (m *Map) ComputeIfAbsent(hash uint64) *bunch.Bunch {
	b, ok := m.buckets[hash]
	if !ok {
		b = bunch.New()
		m.buckets[hash] = b
	}
	return b
}

// Compute applies fn to the existing bunch for hash (nil if absent). If
// fn returns nil, the entry is removed; otherwise the returned bunch is
// installed.
func (m *Map) Compute(hash uint64, fn func(existing *bunch.Bunch) *bunch.Bunch) {
	existing := m.buckets[hash]
	result := fn(existing)
	if result == nil {
		delete(m.buckets, hash)
		return
	}
	m.buckets[hash] = result
}

// GetIfPresent returns the bunch for hash, if one exists.
func (m *Map) GetIfPresent(hash uint64) (*bunch.Bunch, bool) {
	b, ok := m.buckets[hash]
	return b, ok
}

// Remove deletes the entry for hash outright, regardless of whether its
// bunch is empty. Callers are expected to only do this once a bunch has
// become empty.
func (m *Map) Remove(hash uint64) {
	delete(m.buckets, hash)
}

// Size returns the number of distinct indexing-hash keys.
func (m *Map) Size() int { return len(m.buckets) }

// IsEmpty reports whether the map holds no keys.
func (m *Map) IsEmpty() bool { return len(m.buckets) == 0 }

// Each visits every (hash, bunch) pair, stopping early if visit returns
// false.
func (m *Map) Each(visit func(hash uint64, b *bunch.Bunch) bool) {
	for hash, b := range m.buckets {
		if !visit(hash, b) {
			return
		}
	}
}

// Clear drops every entry, resetting the map to empty.
func (m *Map) Clear() {
	m.buckets = make(map[uint64]*bunch.Bunch)
}
