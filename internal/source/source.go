// Package source supplies ordered alignment record lines to the pipeline.
// Sources materialize their lines up front; the core pipeline itself does no
// I/O and consumes lines strictly in the order a source yields them.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields the raw alignment lines for one sample, in order.
type Source interface {
	Lines() ([]string, error)
}

// Reader is a Source over any io.Reader. Blank lines are skipped; field
// positions within a line are the parser's concern.
type Reader struct {
	R io.Reader
}

// Lines reads all lines from the underlying reader.
func (r Reader) Lines() ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r.R)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	return lines, nil
}

// File is a Source over an alignment file on disk.
type File struct {
	Path string
}

// Lines reads all lines from the file.
func (f File) Lines() ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", f.Path, err)
	}
	defer fh.Close()
	return Reader{R: fh}.Lines()
}

// Static is a Source over an already-materialized line slice, for callers
// that obtained records some other way.
type Static []string

// Lines returns the slice as given.
func (s Static) Lines() ([]string, error) {
	return s, nil
}
