// Package pipeline connects a record source, the typing engine, and an
// output into a per-sample processing pipeline.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/seqworks/toxotype/internal/engine"
	"github.com/seqworks/toxotype/internal/model"
	"github.com/seqworks/toxotype/internal/output"
	"github.com/seqworks/toxotype/internal/source"
)

// Sample pairs a caller-supplied sample identifier with its alignment
// record source.
type Sample struct {
	ID  string
	Src source.Source
}

// Pipeline runs samples through the engine and writes their reports.
type Pipeline struct {
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{engine: eng, output: out}
}

// Run processes one sample end to end: materialize its record lines, type
// them in order, write the report. A sample's records are always consumed
// sequentially — accumulation is last-write-wins and rule lookup is
// first-match-wins, so order is semantic.
func (p *Pipeline) Run(ctx context.Context, s Sample) (model.Result, error) {
	lines, err := s.Src.Lines()
	if err != nil {
		return model.Result{}, fmt.Errorf("pipeline: sample %s: %w", s.ID, err)
	}

	result, err := p.engine.Type(s.ID, lines)
	if err != nil {
		return model.Result{}, fmt.Errorf("pipeline: %w", err)
	}
	slog.Debug("sample typed", "sample", s.ID, "toxinotype", result.Code, "calls", len(result.Calls))

	if err := p.output.Write(ctx, result); err != nil {
		return model.Result{}, fmt.Errorf("pipeline: sample %s: output: %w", s.ID, err)
	}
	return result, nil
}

// Batch processes independent samples concurrently, at most limit at a time
// (limit <= 0 means no cap). Samples share no mutable state, so no ordering
// is imposed across them; within each sample processing stays sequential.
// The first failing sample cancels the rest and its error is returned.
func (p *Pipeline) Batch(ctx context.Context, samples []Sample, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, s := range samples {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := p.Run(ctx, s)
			return err
		})
	}
	return g.Wait()
}

// Close closes the pipeline's output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
