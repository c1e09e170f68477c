// Package triple defines the immutable Triple record and the Pattern used
// to query a store. Both are thin wrappers around pkg/rdf terms; neither
// type knows about indexing, bunches, or storage.
package triple

import "github.com/arborgraph/trismem/pkg/rdf"

// Triple is an immutable (subject, predicate, object) record. Its hashes
// are computed once at construction and reused for the lifetime of the
// value, matching the indexing hashes its owning bunches key on.
type Triple struct {
	Subject   rdf.Term
	Predicate rdf.Term
	Object    rdf.Term

	subjectHash   uint64
	predicateHash uint64
	objectHash    uint64
	fullHash      uint64
}

// New constructs a Triple, precomputing its per-position indexing hashes
// and its full triple hash, folded from those three indexing hashes.
func New(s, p, o rdf.Term) Triple {
	sh := s.IndexingHash()
	ph := p.IndexingHash()
	oh := o.IndexingHash()
	return Triple{
		Subject:       s,
		Predicate:     p,
		Object:        o,
		subjectHash:   sh,
		predicateHash: ph,
		objectHash:    oh,
		fullHash:      mixHash(mixHash(sh, ph), oh),
	}
}

// SubjectHash returns the subject's cached indexing hash.
func (t Triple) SubjectHash() uint64 { return t.subjectHash }

// PredicateHash returns the predicate's cached indexing hash.
func (t Triple) PredicateHash() uint64 { return t.predicateHash }

// ObjectHash returns the object's cached indexing hash.
func (t Triple) ObjectHash() uint64 { return t.objectHash }

// Hash returns the cached whole-triple hash, used as the key into a
// bunch's hashed-form representation.
func (t Triple) Hash() uint64 { return t.fullHash }

// Equals reports whether two triples are equal by term equality in all
// three positions.
func (t Triple) Equals(other Triple) bool {
	return t.Subject.Equals(other.Subject) &&
		t.Predicate.Equals(other.Predicate) &&
		t.Object.Equals(other.Object)
}

func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String()
}

// mixHash combines two hashes and finishes with the h ^ (h >> 16) bit
// fold also used to scramble hash-set bucket indices (internal/bunch).
func mixHash(a, b uint64) uint64 {
	h := a ^ (b + 0x9e3779b97f4a7c15 + (a << 6) + (a >> 2))
	return h ^ (h >> 16)
}

// Pattern is a triple where any position may be rdf.Any (the wildcard),
// meaning "match any term at this position".
type Pattern struct {
	Subject   rdf.Term
	Predicate rdf.Term
	Object    rdf.Term
}

// NewPattern constructs a Pattern. Passing rdf.Any for a position means
// that position is unconstrained.
func NewPattern(s, p, o rdf.Term) Pattern {
	return Pattern{Subject: s, Predicate: p, Object: o}
}

// Matches reports whether t satisfies the pattern: every concrete
// position must match by term equality, with value-equality substituted
// on the object position when the pattern's object requires it.
func (pat Pattern) Matches(t Triple) bool {
	if !pat.Subject.IsWildcard() && !pat.Subject.Equals(t.Subject) {
		return false
	}
	if !pat.Predicate.IsWildcard() && !pat.Predicate.Equals(t.Predicate) {
		return false
	}
	if !pat.Object.IsWildcard() {
		if pat.Object.ValueEqMattersFor() {
			if !pat.Object.ValueEqual(t.Object) {
				return false
			}
		} else if !pat.Object.Equals(t.Object) {
			return false
		}
	}
	return true
}
