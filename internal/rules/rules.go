// Package rules loads the toxinotype rule table: read-only reference data
// mapping (Toxin-A sub-type, Toxin-B sub-type) pairs to toxinotype codes.
package rules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seqworks/toxotype/internal/model"
)

// Positional fields of one rule line (0-indexed, tab-delimited).
const (
	fieldCode     = 0
	fieldSubtypeA = 4
	fieldSubtypeB = 5

	minFields = 6
)

// MalformedRuleError reports a rule line with too few fields.
type MalformedRuleError struct {
	Line   string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed toxinotype rule: %s: %q", e.Reason, e.Line)
}

// Load parses the rule table from r, preserving row order — the table's
// ordering decides rule precedence and is never re-sorted. Blank lines and
// lines starting with '#' are skipped.
func Load(r io.Reader) ([]model.Rule, error) {
	var rules []model.Rule

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			return nil, &MalformedRuleError{
				Line:   line,
				Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)),
			}
		}
		rules = append(rules, model.Rule{
			Code:     fields[fieldCode],
			SubtypeA: fields[fieldSubtypeA],
			SubtypeB: fields[fieldSubtypeB],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rules: read: %w", err)
	}
	return rules, nil
}

// LoadFile loads the rule table from a file path.
func LoadFile(path string) ([]model.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rules: open %s: %w", path, err)
	}
	defer f.Close()

	rules, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", path, err)
	}
	return rules, nil
}
