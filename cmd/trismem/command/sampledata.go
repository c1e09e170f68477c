package command

import (
	"github.com/arborgraph/trismem/pkg/rdf"
	"github.com/arborgraph/trismem/pkg/store"
	"github.com/arborgraph/trismem/pkg/triple"
)

// loadSampleStore builds a fixed, small store used by `demo` and as a
// sanity check that the whole stack (rdf, triple, store) links and runs.
func loadSampleStore() *store.Store {
	s := store.New()
	add := func(subj, pred, obj string) {
		s.Add(triple.New(rdf.NewNamedNode(subj), rdf.NewNamedNode(pred), rdf.NewNamedNode(obj)))
	}

	add("http://example.org/alice", "http://example.org/knows", "http://example.org/bob")
	add("http://example.org/alice", "http://example.org/knows", "http://example.org/carol")
	add("http://example.org/bob", "http://example.org/knows", "http://example.org/carol")
	add("http://example.org/alice", "http://example.org/age", "http://example.org/age-not-literal")
	s.Add(triple.New(
		rdf.NewNamedNode("http://example.org/alice"),
		rdf.NewNamedNode("http://example.org/yearsOld"),
		rdf.NewLiteralWithDatatype("30", rdf.XSDInteger),
	))
	return s
}
