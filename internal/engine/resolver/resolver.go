// Package resolver reduces a finalized classification state to a single
// toxinotype code via the rule table.
package resolver

import "github.com/seqworks/toxotype/internal/model"

// Resolve computes the toxinotype code for a finalized state. With no counted
// calls the code is CodeNoSubtypes; with more than two, CodeTooManySubtypes
// regardless of the table. Otherwise the rule list is scanned in its given
// order and the first rule matching the normalized (A, B) sub-type pair wins;
// the table's ordering is authoritative, so this is deliberately a linear
// first-match scan and not a map lookup (duplicate pairs are allowed and the
// earlier row must win). No match yields CodeUndefined.
//
// Pure and deterministic: resolving the same state against the same table
// always yields the same code.
func Resolve(state model.ClassificationState, rules []model.Rule) string {
	total := state.Total()
	switch {
	case total == 0:
		return model.CodeNoSubtypes
	case total > 2:
		return model.CodeTooManySubtypes
	}

	a, b := state.NormalizedSubtypes()
	for _, r := range rules {
		if r.SubtypeA == a && r.SubtypeB == b {
			return r.Code
		}
	}
	return model.CodeUndefined
}
