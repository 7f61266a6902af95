package model

// NoToxin is the rule-table sentinel meaning "this toxin is not expected".
const NoToxin = "-"

// Rule is one row of the toxinotype rule table: a (SubtypeA, SubtypeB) pair
// mapped to a toxinotype code. Rules are read-only reference data; table order
// is authoritative and must be preserved (first match wins).
type Rule struct {
	Code     string
	SubtypeA string // expected Toxin-A sub-type, or NoToxin
	SubtypeB string // expected Toxin-B sub-type, or NoToxin
}
