// Package parser turns raw tab-delimited alignment lines into structured
// records, applying the exact full-length match filter.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/seqworks/toxotype/internal/model"
)

// Positional fields of one alignment line (0-indexed).
const (
	fieldMatches     = 0
	fieldSubtype     = 9
	fieldTotalLength = 10
	fieldContig      = 13
	fieldStart       = 15
	fieldStop        = 16

	minFields = 17
)

// MalformedRecordError reports an alignment line that cannot be parsed: too
// few fields, or a non-numeric value where a number is required.
type MalformedRecordError struct {
	Line   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed alignment record: %s: %q", e.Reason, e.Line)
}

// Parse extracts an AlignmentRecord from one alignment line. The boolean is
// false when the record fails the exact-match filter (matches != totalLength);
// that is expected behavior for partial alignments, not an error. A
// *MalformedRecordError is returned for structurally invalid lines.
func Parse(line string) (model.AlignmentRecord, bool, error) {
	fields := strings.Split(strings.TrimRight(norm.NFC.String(line), "\r\n"), "\t")
	if len(fields) < minFields {
		return model.AlignmentRecord{}, false, &MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	matches, err := numField(line, fields, fieldMatches, "matches")
	if err != nil {
		return model.AlignmentRecord{}, false, err
	}
	totalLength, err := numField(line, fields, fieldTotalLength, "total length")
	if err != nil {
		return model.AlignmentRecord{}, false, err
	}
	start, err := numField(line, fields, fieldStart, "start")
	if err != nil {
		return model.AlignmentRecord{}, false, err
	}
	stop, err := numField(line, fields, fieldStop, "stop")
	if err != nil {
		return model.AlignmentRecord{}, false, err
	}

	// Only full-length alignments are trusted for classification.
	if matches != totalLength {
		return model.AlignmentRecord{}, false, nil
	}

	return model.AlignmentRecord{
		Matches:     matches,
		TotalLength: totalLength,
		Subtype:     fields[fieldSubtype],
		Contig:      fields[fieldContig],
		Start:       start,
		Stop:        stop,
	}, true, nil
}

func numField(line string, fields []string, idx int, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(fields[idx]))
	if err != nil {
		return 0, &MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("non-numeric %s field %q", name, fields[idx]),
		}
	}
	return n, nil
}
