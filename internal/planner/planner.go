// Package planner classifies a pattern into one of eight cases and
// builds a plan naming which bunch(es) to scan and the residual
// predicate used to confirm non-indexed or hash-colliding positions.
package planner

import (
	"github.com/arborgraph/trismem/internal/bunch"
	"github.com/arborgraph/trismem/internal/index"
	"github.com/arborgraph/trismem/pkg/triple"
)

// Case names the eight pattern shapes a query can take.
type Case int

const (
	CaseSPO Case = iota
	CaseSPx
	CaseSxO
	CaseSxx
	CasexPO
	CasexPx
	CasexxO
	Casexxx
)

func (c Case) String() string {
	switch c {
	case CaseSPO:
		return "SPO"
	case CaseSPx:
		return "SP?"
	case CaseSxO:
		return "S?O"
	case CaseSxx:
		return "S??"
	case CasexPO:
		return "?PO"
	case CasexPx:
		return "?P?"
	case CasexxO:
		return "??O"
	default:
		return "???"
	}
}

// position identifies which of the three indexed slots a candidate bunch
// was served from, used only to order the residual filter's checks.
type position int

const (
	subjectPos position = iota
	predicatePos
	objectPos
)

// intersectShortcutThreshold: below this bunch size, the two-candidate
// cases (S?O, ?PO) skip comparing against the other candidate's size and
// just scan the first one directly.
const intersectShortcutThreshold = 80

// Plan is the outcome of classifying a pattern: either an exact
// membership check (SPO), a scan over every bunch of one index (???), or
// a scan over one resolved candidate bunch with a residual filter (all
// other cases, and SPO when the object needs value-equality).
type Plan struct {
	Case Case

	// ExactTriple and ExactBunch are set only for CaseSPO: containment is
	// answered directly via ExactBunch.Contains(*ExactTriple) (nil bunch
	// means "definitely absent").
	ExactTriple *triple.Triple
	ExactBunch  *bunch.Bunch

	// ScanAll is set only for Casexxx: every bunch of this whole index
	// must be scanned (Residual is always a no-op true in this case).
	ScanAll *index.Map

	// PrimaryBunch is the single resolved candidate bunch to scan for all
	// other cases, including an SPO pattern whose object term has
	// ValueEqMattersFor; nil means the pattern matches nothing.
	PrimaryBunch *bunch.Bunch

	// Residual confirms the positions the chosen bunch does not already
	// resolve by construction, in the cheapest-to-fail-first order named
	// by the pattern classifier's ordering rule. Nil means "always true".
	Residual func(triple.Triple) bool
}

// Classify inspects pat and the three live index maps and builds a Plan.
// The maps are read, never mutated.
func Classify(pat triple.Pattern, bySubject, byPredicate, byObject *index.Map) Plan {
	sBound := !pat.Subject.IsWildcard()
	pBound := !pat.Predicate.IsWildcard()
	oBound := !pat.Object.IsWildcard()

	switch {
	case sBound && pBound && oBound:
		return planSPO(pat, bySubject)
	case sBound && pBound && !oBound:
		return planSinglePosition(CaseSPx, pat, subjectPos, bySubject, pat.Subject.IndexingHash())
	case sBound && !pBound && oBound:
		return planTwoCandidate(CaseSxO, pat, subjectPos, bySubject, pat.Subject.IndexingHash(), objectPos, byObject, pat.Object.IndexingHash())
	case sBound && !pBound && !oBound:
		return planSinglePosition(CaseSxx, pat, subjectPos, bySubject, pat.Subject.IndexingHash())
	case !sBound && pBound && oBound:
		return planTwoCandidate(CasexPO, pat, predicatePos, byPredicate, pat.Predicate.IndexingHash(), objectPos, byObject, pat.Object.IndexingHash())
	case !sBound && pBound && !oBound:
		return planSinglePosition(CasexPx, pat, predicatePos, byPredicate, pat.Predicate.IndexingHash())
	case !sBound && !pBound && oBound:
		return planSinglePosition(CasexxO, pat, objectPos, byObject, pat.Object.IndexingHash())
	default:
		return planAllWildcard(bySubject, byPredicate, byObject)
	}
}

func planSPO(pat triple.Pattern, bySubject *index.Map) Plan {
	t := triple.New(pat.Subject, pat.Predicate, pat.Object)
	b, _ := bySubject.GetIfPresent(t.SubjectHash())
	if pat.Object.ValueEqMattersFor() {
		return Plan{Case: CaseSPO, PrimaryBunch: b, Residual: buildResidualFilter(pat, subjectPos)}
	}
	return Plan{Case: CaseSPO, ExactTriple: &t, ExactBunch: b}
}

func planSinglePosition(c Case, pat triple.Pattern, served position, idx *index.Map, key uint64) Plan {
	b, _ := idx.GetIfPresent(key)
	return Plan{Case: c, PrimaryBunch: b, Residual: buildResidualFilter(pat, served)}
}

func planTwoCandidate(c Case, pat triple.Pattern, posA position, idxA *index.Map, keyA uint64, posB position, idxB *index.Map, keyB uint64) Plan {
	bunchA, okA := idxA.GetIfPresent(keyA)
	bunchB, okB := idxB.GetIfPresent(keyB)

	switch {
	case !okA && !okB:
		return Plan{Case: c, PrimaryBunch: nil, Residual: buildResidualFilter(pat, posA)}
	case okA && !okB:
		return Plan{Case: c, PrimaryBunch: bunchA, Residual: buildResidualFilter(pat, posA)}
	case !okA && okB:
		return Plan{Case: c, PrimaryBunch: bunchB, Residual: buildResidualFilter(pat, posB)}
	default:
		if bunchA.Size() < intersectShortcutThreshold || bunchA.Size() <= bunchB.Size() {
			return Plan{Case: c, PrimaryBunch: bunchA, Residual: buildResidualFilter(pat, posA)}
		}
		return Plan{Case: c, PrimaryBunch: bunchB, Residual: buildResidualFilter(pat, posB)}
	}
}

func planAllWildcard(bySubject, byPredicate, byObject *index.Map) Plan {
	chosen := bySubject
	if byPredicate.Size() < chosen.Size() {
		chosen = byPredicate
	}
	if byObject.Size() < chosen.Size() {
		chosen = byObject
	}
	return Plan{Case: Casexxx, ScanAll: chosen}
}

// buildResidualFilter orders the equality checks so that positions not
// served by the chosen index are checked first (they fail fastest on a
// mismatch), then finally the served position itself is re-checked to
// resolve indexing-hash collisions. The object position, wherever it
// falls in that order, is compared with value-equality when the
// pattern's object term requires it.
func buildResidualFilter(pat triple.Pattern, served position) func(triple.Triple) bool {
	order := make([]position, 0, 3)
	for _, p := range [...]position{subjectPos, predicatePos, objectPos} {
		if p != served {
			order = append(order, p)
		}
	}
	order = append(order, served)

	return func(t triple.Triple) bool {
		for _, p := range order {
			if !matchPosition(pat, t, p) {
				return false
			}
		}
		return true
	}
}

func matchPosition(pat triple.Pattern, t triple.Triple, p position) bool {
	switch p {
	case subjectPos:
		return pat.Subject.IsWildcard() || pat.Subject.Equals(t.Subject)
	case predicatePos:
		return pat.Predicate.IsWildcard() || pat.Predicate.Equals(t.Predicate)
	default:
		if pat.Object.IsWildcard() {
			return true
		}
		if pat.Object.ValueEqMattersFor() {
			return pat.Object.ValueEqual(t.Object)
		}
		return pat.Object.Equals(t.Object)
	}
}
