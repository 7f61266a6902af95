package model

// NotApplicable fills the reportable fields of synthesized default calls for
// toxins that were never observed in a sample.
const NotApplicable = "N/A"

// ToxinType identifies which toxin gene a call belongs to.
type ToxinType int

const (
	// ToxinNone marks a call whose sub-type matched no classification rule.
	// Such calls are reported but contribute to neither toxin count.
	ToxinNone ToxinType = iota
	ToxinA
	ToxinB
)

// String returns the display name used in reports and for call ordering.
func (t ToxinType) String() string {
	switch t {
	case ToxinA:
		return "Toxin-A"
	case ToxinB:
		return "Toxin-B"
	default:
		return "Unclassified"
	}
}

// ToxinCall is a classified alignment record — the per-record output type.
// Start and Stop are carried as strings so synthesized defaults can hold the
// N/A sentinel. Immutable once created.
type ToxinCall struct {
	SampleID string
	Type     ToxinType
	Subtype  string
	Contig   string
	Start    string
	Stop     string
}

// DefaultCall synthesizes the placeholder call reported for a toxin type that
// was never observed in a sample.
func DefaultCall(sampleID string, t ToxinType) ToxinCall {
	return ToxinCall{
		SampleID: sampleID,
		Type:     t,
		Subtype:  NotApplicable,
		Contig:   NotApplicable,
		Start:    NotApplicable,
		Stop:     NotApplicable,
	}
}
