// Package file writes toxinotype reports to a file with buffered I/O.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/seqworks/toxotype/internal/model"
	"github.com/seqworks/toxotype/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output appends TSV reports to a file.
type Output struct {
	mu        sync.Mutex
	w         *bufio.Writer
	f         *os.File
	path      string
	verbosity output.Verbosity
	bufSize   int
}

// New creates a file output writing to the given path, truncating any
// existing file.
func New(path string, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{
		path:      path,
		verbosity: verbosity,
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("file output: create %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write renders the report and appends it to the file.
func (o *Output) Write(_ context.Context, result model.Result) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, row := range output.Format(result, o.verbosity) {
		if _, err := o.w.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return fmt.Errorf("file output: write: %w", err)
		}
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	return nil
}
