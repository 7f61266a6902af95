package toxotype

// Call is one classified alignment record.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Call struct {
	SampleID string `json:"sample_id"`
	Toxin    string `json:"toxin_type"` // "Toxin-A", "Toxin-B" or "Unclassified"
	Subtype  string `json:"subtype"`    // "N/A" on synthesized default calls
	Contig   string `json:"contig"`
	Start    string `json:"start"`
	Stop     string `json:"stop"`
}

// Result is the outcome for one sample: the resolved toxinotype code and the
// full call list in presentation order, including the synthesized default
// calls for toxins that were never observed.
type Result struct {
	SampleID string `json:"sample_id"`
	Code     string `json:"toxinotype"`
	Calls    []Call `json:"calls"`
}

// Terminal codes for samples that match no rule-table row.
const (
	CodeNoSubtypes      = "No subtypes found"
	CodeUndefined       = "Undefined"
	CodeTooManySubtypes = "Too_many_subtypes"
)
