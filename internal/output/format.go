package output

import "github.com/seqworks/toxotype/internal/model"

// Verbosity controls how much of a report is emitted.
type Verbosity int

const (
	// Full emits the header, every toxin call, and the toxinotype line.
	Full Verbosity = iota
	// Minimal emits only the trailing toxinotype line.
	Minimal
)

// ParseVerbosity converts a config string to a Verbosity. Unknown strings
// default to Full.
func ParseVerbosity(s string) Verbosity {
	if s == "minimal" {
		return Minimal
	}
	return Full
}

// Header is the column header preceding the call rows of a full report.
var Header = []string{"sample_id", "toxin_type", "subtype", "contig", "start", "stop"}

// Format renders a report as ordered TSV rows: header, one row per toxin
// call (already in presentation order, synthesized defaults included), then
// the trailing summary row pairing "Toxinotype:" with the resolved code.
func Format(result model.Result, verbosity Verbosity) [][]string {
	var rows [][]string
	if verbosity == Full {
		rows = append(rows, Header)
		for _, c := range result.Calls {
			rows = append(rows, []string{c.SampleID, c.Type.String(), c.Subtype, c.Contig, c.Start, c.Stop})
		}
	}
	return append(rows, []string{"Toxinotype:", result.Code})
}
