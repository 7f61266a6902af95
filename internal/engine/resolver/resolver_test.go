package resolver

import (
	"testing"

	"github.com/seqworks/toxotype/internal/model"
)

var table = []model.Rule{
	{Code: "0", SubtypeA: "A1", SubtypeB: "B1"},
	{Code: "I", SubtypeA: "A1", SubtypeB: model.NoToxin},
	{Code: "VIII", SubtypeA: model.NoToxin, SubtypeB: "B1"},
}

func TestNoSubtypesFound(t *testing.T) {
	code := Resolve(model.ClassificationState{}, table)
	if code != model.CodeNoSubtypes {
		t.Fatalf("got %q, want %q", code, model.CodeNoSubtypes)
	}
}

func TestSingleToxinA(t *testing.T) {
	state := model.ClassificationState{AFound: true, ACount: 1, ASubtype: "A1"}
	if code := Resolve(state, table); code != "I" {
		t.Fatalf("got %q, want I", code)
	}
}

func TestSingleToxinB(t *testing.T) {
	state := model.ClassificationState{BFound: true, BCount: 1, BSubtype: "B1"}
	if code := Resolve(state, table); code != "VIII" {
		t.Fatalf("got %q, want VIII", code)
	}
}

func TestPairedToxins(t *testing.T) {
	state := model.ClassificationState{
		AFound: true, ACount: 1, ASubtype: "A1",
		BFound: true, BCount: 1, BSubtype: "B1",
	}
	if code := Resolve(state, table); code != "0" {
		t.Fatalf("got %q, want 0", code)
	}
}

func TestUndefinedPair(t *testing.T) {
	state := model.ClassificationState{
		AFound: true, ACount: 1, ASubtype: "A1",
		BFound: true, BCount: 1, BSubtype: "B9",
	}
	if code := Resolve(state, table); code != model.CodeUndefined {
		t.Fatalf("got %q, want %q", code, model.CodeUndefined)
	}
}

func TestTooManySubtypes(t *testing.T) {
	// Two A calls plus one B call: conflicting signal regardless of the table.
	state := model.ClassificationState{
		AFound: true, ACount: 2, ASubtype: "A3",
		BFound: true, BCount: 1, BSubtype: "B1",
	}
	if code := Resolve(state, table); code != model.CodeTooManySubtypes {
		t.Fatalf("got %q, want %q", code, model.CodeTooManySubtypes)
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Duplicate (A, B) pairs: the table's own ordering is authoritative.
	dup := []model.Rule{
		{Code: "XI", SubtypeA: "A7", SubtypeB: model.NoToxin},
		{Code: "XII", SubtypeA: "A7", SubtypeB: model.NoToxin},
	}
	state := model.ClassificationState{AFound: true, ACount: 1, ASubtype: "A7"}
	if code := Resolve(state, dup); code != "XI" {
		t.Fatalf("got %q, want XI", code)
	}
}

func TestResolveIdempotent(t *testing.T) {
	state := model.ClassificationState{AFound: true, ACount: 1, ASubtype: "A1"}
	first := Resolve(state, table)
	second := Resolve(state, table)
	if first != second {
		t.Fatalf("not idempotent: %q then %q", first, second)
	}
}

func TestTwoCallsSameToxinResolves(t *testing.T) {
	// Two A calls, no B: total is 2, so the table is still consulted with the
	// last-seen A sub-type.
	state := model.ClassificationState{AFound: true, ACount: 2, ASubtype: "A1"}
	if code := Resolve(state, table); code != "I" {
		t.Fatalf("got %q, want I", code)
	}
}
