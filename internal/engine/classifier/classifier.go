// Package classifier maps alignment record sub-types to toxin types.
package classifier

import (
	"strconv"
	"strings"

	"github.com/seqworks/toxotype/internal/model"
)

// Sub-types from the sordellii reference group start with 'S' and need a
// substring check to decide which toxin family they belong to. TcsL is the
// lethal toxin (Toxin-B family); TcsH the hemorrhagic toxin (Toxin-A family).
// The single-l "sordelii" spelling for TcsH matches the reference database.
const (
	sordelliiGroup = "sordellii_group"
	sordelliiTcsL  = "sordellii_TcsL"
	sordeliiTcsH   = "sordelii_TcsH"
)

// Classify determines the toxin type for one qualifying alignment record from
// the leading character of its sub-type, case-insensitively. Sub-types
// matching no rule yield a ToxinNone call, which is kept for reporting but
// counts toward neither toxin. Pure; call once per record, in record order,
// since order decides which sub-type is last seen per toxin.
func Classify(sampleID string, rec model.AlignmentRecord) model.ToxinCall {
	return model.ToxinCall{
		SampleID: sampleID,
		Type:     toxinType(rec.Subtype),
		Subtype:  rec.Subtype,
		Contig:   rec.Contig,
		Start:    strconv.Itoa(rec.Start),
		Stop:     strconv.Itoa(rec.Stop),
	}
}

func toxinType(subtype string) model.ToxinType {
	if subtype == "" {
		return model.ToxinNone
	}
	switch strings.ToUpper(subtype[:1]) {
	case "A":
		return model.ToxinA
	case "B":
		return model.ToxinB
	case "S":
		if strings.Contains(subtype, sordelliiGroup) || strings.Contains(subtype, sordelliiTcsL) {
			return model.ToxinB
		}
		if strings.Contains(subtype, sordeliiTcsH) {
			return model.ToxinA
		}
		return model.ToxinNone
	default:
		return model.ToxinNone
	}
}
