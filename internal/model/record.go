package model

// AlignmentRecord is the intermediate type produced by the parser and consumed
// by the classifier: one full-length alignment of an assembly contig against a
// toxin reference sequence.
type AlignmentRecord struct {
	Matches     int    // identical positions in the alignment
	TotalLength int    // reference sequence length
	Subtype     string // reference sub-type label (e.g. "A1", "B2", "sordellii_TcsL_4")
	Contig      string // assembly contig the hit landed on
	Start       int    // alignment start on the contig
	Stop        int    // alignment stop on the contig
}
