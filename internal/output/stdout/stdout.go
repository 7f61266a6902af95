// Package stdout writes toxinotype reports to standard output as TSV.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/seqworks/toxotype/internal/model"
	"github.com/seqworks/toxotype/internal/output"
)

// Output writes TSV reports to an io.Writer, os.Stdout by default.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	verbosity output.Verbosity
}

// New creates a stdout output.
func New(verbosity output.Verbosity) *Output {
	return &Output{w: os.Stdout, verbosity: verbosity}
}

// NewWriter creates an output over an arbitrary writer.
func NewWriter(w io.Writer, verbosity output.Verbosity) *Output {
	return &Output{w: w, verbosity: verbosity}
}

// Write renders the report and writes it, whole, under the lock — reports
// from concurrent samples never interleave.
func (o *Output) Write(_ context.Context, result model.Result) error {
	var b strings.Builder
	for _, row := range output.Format(result, o.verbosity) {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.w, b.String()); err != nil {
		return fmt.Errorf("stdout output: write: %w", err)
	}
	return nil
}

// Close is a no-op; stdout is not ours to close.
func (o *Output) Close() error {
	return nil
}
