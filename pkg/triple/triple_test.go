package triple

import (
	"testing"

	"github.com/arborgraph/trismem/pkg/rdf"
)

func mk(s, p, o string) Triple {
	return New(rdf.NewNamedNode(s), rdf.NewNamedNode(p), rdf.NewNamedNode(o))
}

func TestNew_HashesAreStable(t *testing.T) {
	tr := mk("s1", "p1", "o1")
	if tr.Hash() != tr.Hash() {
		t.Fatalf("hash must be stable across calls")
	}
	if tr.SubjectHash() != rdf.NewNamedNode("s1").IndexingHash() {
		t.Errorf("SubjectHash must match the subject term's IndexingHash")
	}
}

func TestEquals(t *testing.T) {
	a := mk("s1", "p1", "o1")
	b := mk("s1", "p1", "o1")
	c := mk("s1", "p1", "o2")
	if !a.Equals(b) {
		t.Errorf("identical triples must be Equals")
	}
	if a.Equals(c) {
		t.Errorf("triples differing in object must not be Equals")
	}
}

func TestPattern_Matches_Concrete(t *testing.T) {
	tr := mk("s1", "p1", "o1")
	pat := NewPattern(rdf.NewNamedNode("s1"), rdf.NewNamedNode("p1"), rdf.NewNamedNode("o1"))
	if !pat.Matches(tr) {
		t.Errorf("fully concrete pattern matching the triple must match")
	}
	other := NewPattern(rdf.NewNamedNode("s2"), rdf.NewNamedNode("p1"), rdf.NewNamedNode("o1"))
	if other.Matches(tr) {
		t.Errorf("pattern with mismatched subject must not match")
	}
}

func TestPattern_Matches_Wildcard(t *testing.T) {
	tr := mk("s1", "p1", "o1")
	pat := NewPattern(rdf.Any, rdf.NewNamedNode("p1"), rdf.Any)
	if !pat.Matches(tr) {
		t.Errorf("?P? pattern must match triples sharing the predicate")
	}
	allWild := NewPattern(rdf.Any, rdf.Any, rdf.Any)
	if !allWild.Matches(tr) {
		t.Errorf("??? pattern must match every triple")
	}
}

func TestPattern_Matches_ObjectValueEquality(t *testing.T) {
	s := rdf.NewNamedNode("s1")
	p := rdf.NewNamedNode("p1")
	o1 := rdf.NewLiteralWithDatatype("1", rdf.XSDInteger)
	tr := New(s, p, o1)

	o1Prime := rdf.NewLiteralWithDatatype("01", rdf.XSDInteger)
	pat := NewPattern(rdf.Any, rdf.Any, o1Prime)
	if !pat.Matches(tr) {
		t.Errorf("value-equal object must match via valueEq")
	}
}
