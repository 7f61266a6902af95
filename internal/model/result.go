package model

// Terminal codes for samples that resolve to no rule-table row. These are
// valid classification outcomes, not errors, and are kept distinct so
// downstream consumers can tell "no signal" from "conflicting signal" from
// "signal with no known rule".
const (
	CodeNoSubtypes      = "No subtypes found"
	CodeUndefined       = "Undefined"
	CodeTooManySubtypes = "Too_many_subtypes"
)

// Result is the final output for one sample: the resolved toxinotype code and
// the full ordered call list, including synthesized default calls.
type Result struct {
	SampleID string
	Code     string
	Calls    []ToxinCall
}
