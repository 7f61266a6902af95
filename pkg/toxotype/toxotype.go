package toxotype

import (
	"errors"
	"fmt"

	"github.com/seqworks/toxotype/internal/engine"
	"github.com/seqworks/toxotype/internal/model"
	"github.com/seqworks/toxotype/internal/rules"
)

// Typer classifies alignment records and resolves toxinotype codes against a
// fixed rule table. Safe for concurrent use.
type Typer struct {
	engine *engine.Engine
}

// New creates a Typer. A rule table must be supplied via WithRules or
// WithRuleFile.
func New(opts ...Option) (*Typer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tbl := o.rules
	if o.rulePath != "" {
		loaded, err := rules.LoadFile(o.rulePath)
		if err != nil {
			return nil, fmt.Errorf("toxotype: %w", err)
		}
		tbl = loaded
	}
	if len(tbl) == 0 {
		return nil, errors.New("toxotype: no rule table supplied")
	}

	return &Typer{engine: engine.New(tbl)}, nil
}

// Type runs the classification pipeline for one sample over its raw
// tab-delimited alignment lines, in order, and resolves the toxinotype code.
func (t *Typer) Type(sampleID string, lines []string) (Result, error) {
	res, err := t.engine.Type(sampleID, lines)
	if err != nil {
		return Result{}, err
	}

	out := Result{SampleID: res.SampleID, Code: res.Code}
	for _, c := range res.Calls {
		out.Calls = append(out.Calls, Call{
			SampleID: c.SampleID,
			Toxin:    c.Type.String(),
			Subtype:  c.Subtype,
			Contig:   c.Contig,
			Start:    c.Start,
			Stop:     c.Stop,
		})
	}
	return out, nil
}

// Rule is one row of the toxinotype rule table. "-" for a sub-type means the
// toxin is not expected. Table order decides precedence: the first matching
// row wins.
type Rule struct {
	Code     string
	SubtypeA string
	SubtypeB string
}

func (r Rule) internal() model.Rule {
	return model.Rule{Code: r.Code, SubtypeA: r.SubtypeA, SubtypeB: r.SubtypeB}
}
