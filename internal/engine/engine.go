// Package engine orchestrates the parse → classify → accumulate → resolve
// pipeline for one sample.
package engine

import (
	"fmt"
	"sort"

	"github.com/seqworks/toxotype/internal/engine/accumulator"
	"github.com/seqworks/toxotype/internal/engine/classifier"
	"github.com/seqworks/toxotype/internal/engine/parser"
	"github.com/seqworks/toxotype/internal/engine/resolver"
	"github.com/seqworks/toxotype/internal/model"
)

// Engine types samples against a fixed rule table. Safe for concurrent use:
// all per-sample state lives in the Type call, and the rule table is read-only.
type Engine struct {
	rules []model.Rule
}

// New creates an Engine over the given rule table. The slice is retained as-is;
// its order decides rule precedence and must not be mutated afterwards.
func New(rules []model.Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's rule table.
func (e *Engine) Rules() []model.Rule {
	return e.rules
}

// Type runs the full pipeline for one sample over its raw alignment lines, in
// order: parse (exact-match filter), classify, accumulate, synthesize default
// calls, resolve the toxinotype code. Lines are consumed strictly sequentially
// because accumulation is last-write-wins. Returns the first parse error
// encountered, aborting the sample.
func (e *Engine) Type(sampleID string, lines []string) (model.Result, error) {
	acc := accumulator.New(sampleID)

	for _, line := range lines {
		rec, ok, err := parser.Parse(line)
		if err != nil {
			return model.Result{}, fmt.Errorf("engine: sample %s: %w", sampleID, err)
		}
		if !ok {
			continue
		}
		acc.Add(classifier.Classify(sampleID, rec))
	}

	state, calls := acc.Finalize()

	// Presentation order: by toxin type name. Stable, so input order is kept
	// within a type.
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].Type.String() < calls[j].Type.String()
	})

	return model.Result{
		SampleID: sampleID,
		Code:     resolver.Resolve(state, e.rules),
		Calls:    calls,
	}, nil
}
