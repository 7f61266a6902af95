package model

// ClassificationState is the per-sample accumulator over all toxin calls.
// It is an explicit value threaded through the fold, never shared ambient
// state. The zero value is the initial (empty) state; empty sub-type strings
// mean "unset".
type ClassificationState struct {
	AFound   bool
	BFound   bool
	ACount   int
	BCount   int
	ASubtype string // last-seen Toxin-A sub-type; later calls overwrite earlier ones
	BSubtype string // last-seen Toxin-B sub-type
}

// NormalizedSubtypes returns the (A, B) sub-type pair with unset or empty
// values mapped to the NoToxin sentinel. Both toxins share this one path so
// unset detection behaves identically for A and B.
func (s ClassificationState) NormalizedSubtypes() (a, b string) {
	a, b = s.ASubtype, s.BSubtype
	if a == "" {
		a = NoToxin
	}
	if b == "" {
		b = NoToxin
	}
	return a, b
}

// Total returns the combined number of counted toxin calls.
func (s ClassificationState) Total() int {
	return s.ACount + s.BCount
}
