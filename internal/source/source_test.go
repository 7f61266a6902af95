package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderSkipsBlankLines(t *testing.T) {
	r := Reader{R: strings.NewReader("one\n\ntwo\r\n\nthree")}
	got, err := r.Lines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"one", "two", "three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.tsv")
	if err := os.WriteFile(path, []byte("a\tb\nc\td\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := File{Path: path}.Lines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "a\tb" {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := (File{Path: filepath.Join(t.TempDir(), "absent")}).Lines(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStatic(t *testing.T) {
	got, err := Static{"x", "y"}.Lines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected lines: %q", got)
	}
}
