// Package accumulator folds an ordered sequence of toxin calls into the
// per-sample classification state.
package accumulator

import "github.com/seqworks/toxotype/internal/model"

// Accumulator collects toxin calls for one sample. The zero-state Accumulator
// returned by New is ready to use; not safe for concurrent use — each sample
// gets its own instance and its calls arrive in input order.
type Accumulator struct {
	sampleID string
	state    model.ClassificationState
	calls    []model.ToxinCall
	final    bool
}

// New creates an empty Accumulator for one sample.
func New(sampleID string) *Accumulator {
	return &Accumulator{sampleID: sampleID}
}

// Add folds one call into the state. Typed calls bump their toxin's count,
// set its found flag, and overwrite its sub-type — repeated same-type calls
// overwrite rather than being ignored (last write wins, reflecting processing
// order). ToxinNone calls are recorded for the report only.
func (a *Accumulator) Add(call model.ToxinCall) {
	a.calls = append(a.calls, call)
	switch call.Type {
	case model.ToxinA:
		a.state.AFound = true
		a.state.ACount++
		a.state.ASubtype = call.Subtype
	case model.ToxinB:
		a.state.BFound = true
		a.state.BCount++
		a.state.BSubtype = call.Subtype
	}
}

// Finalize synthesizes a default N/A call for each toxin that was never
// observed, so a report always carries an entry for both toxin types, and
// returns the finalized state with the full call list. Defaults are appended
// after all real calls and are never counted. Finalize is idempotent.
func (a *Accumulator) Finalize() (model.ClassificationState, []model.ToxinCall) {
	if !a.final {
		if !a.state.AFound {
			a.calls = append(a.calls, model.DefaultCall(a.sampleID, model.ToxinA))
		}
		if !a.state.BFound {
			a.calls = append(a.calls, model.DefaultCall(a.sampleID, model.ToxinB))
		}
		a.final = true
	}
	return a.state, a.calls
}
