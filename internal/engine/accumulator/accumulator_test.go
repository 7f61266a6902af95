package accumulator

import (
	"testing"

	"github.com/seqworks/toxotype/internal/model"
)

func call(t model.ToxinType, subtype string) model.ToxinCall {
	return model.ToxinCall{
		SampleID: "s1",
		Type:     t,
		Subtype:  subtype,
		Contig:   "contig_1",
		Start:    "1",
		Stop:     "100",
	}
}

func TestEmptySampleSynthesizesDefaults(t *testing.T) {
	state, calls := New("s1").Finalize()

	if state.Total() != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
	if len(calls) != 2 {
		t.Fatalf("expected 2 synthesized calls, got %d", len(calls))
	}
	if calls[0].Type != model.ToxinA || calls[1].Type != model.ToxinB {
		t.Fatalf("unexpected default order: %+v", calls)
	}
	for _, c := range calls {
		if c.Subtype != model.NotApplicable || c.Contig != model.NotApplicable {
			t.Errorf("expected N/A fields on default call, got %+v", c)
		}
	}
}

func TestLastWriteWins(t *testing.T) {
	acc := New("s1")
	acc.Add(call(model.ToxinA, "A1"))
	acc.Add(call(model.ToxinA, "A3"))

	state, _ := acc.Finalize()
	if state.ACount != 2 {
		t.Fatalf("expected ACount=2, got %d", state.ACount)
	}
	// Repeated same-type calls overwrite: the later sub-type sticks.
	if state.ASubtype != "A3" {
		t.Fatalf("expected last-seen subtype A3, got %q", state.ASubtype)
	}
}

func TestUnclassifiedReportedNotCounted(t *testing.T) {
	acc := New("s1")
	acc.Add(call(model.ToxinNone, "something_else"))
	acc.Add(call(model.ToxinB, "B1"))

	state, calls := acc.Finalize()
	if state.Total() != 1 || state.BCount != 1 {
		t.Fatalf("unexpected counts: %+v", state)
	}
	if state.BFound != true || state.AFound != false {
		t.Fatalf("unexpected flags: %+v", state)
	}
	// Unclassified call + B call + synthesized A default.
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if calls[0].Subtype != "something_else" {
		t.Fatalf("expected unclassified call kept verbatim, got %+v", calls[0])
	}
}

func TestDefaultOnlyForMissingToxin(t *testing.T) {
	acc := New("s1")
	acc.Add(call(model.ToxinA, "A2"))

	state, calls := acc.Finalize()
	if !state.AFound || state.BFound {
		t.Fatalf("unexpected flags: %+v", state)
	}
	if len(calls) != 2 {
		t.Fatalf("expected real A call plus B default, got %d", len(calls))
	}
	if calls[1].Type != model.ToxinB || calls[1].Subtype != model.NotApplicable {
		t.Fatalf("expected synthesized B default, got %+v", calls[1])
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	acc := New("s1")
	acc.Add(call(model.ToxinA, "A1"))

	_, first := acc.Finalize()
	_, second := acc.Finalize()
	if len(first) != len(second) {
		t.Fatalf("Finalize not idempotent: %d then %d calls", len(first), len(second))
	}
}
