// Package outline extracts heading outlines from Markdown and .docx files
// and compares them.
package outline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/md2docx/internal/doctree"
)

// Reader builds the outline of a document.
type Reader interface {
	Read(r io.Reader, filename string) (*doctree.Outline, error)
}

// ForFile returns the reader for a filename's extension.
func ForFile(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// ReadFile opens path and reads its outline.
func ReadFile(path string) (*doctree.Outline, error) {
	rd, err := ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return rd.Read(f, filepath.Base(path))
}

// Compare reports differences between the heading sequences of want and
// got. Titles are compared with surrounding whitespace removed. An empty
// result means the outlines match.
func Compare(want, got *doctree.Outline) []string {
	w, g := want.Headings(), got.Headings()
	var diffs []string
	for i := 0; i < max(len(w), len(g)); i++ {
		switch {
		case i >= len(g):
			diffs = append(diffs, fmt.Sprintf("heading %d: missing H%d %q", i+1, w[i].Level, w[i].Title))
		case i >= len(w):
			diffs = append(diffs, fmt.Sprintf("heading %d: unexpected H%d %q", i+1, g[i].Level, g[i].Title))
		case w[i].Level != g[i].Level || strings.TrimSpace(w[i].Title) != strings.TrimSpace(g[i].Title):
			diffs = append(diffs, fmt.Sprintf("heading %d: want H%d %q, got H%d %q",
				i+1, w[i].Level, w[i].Title, g[i].Level, g[i].Title))
		}
	}
	return diffs
}

// Fprint writes one line per heading, indented two spaces per level below 1.
func Fprint(w io.Writer, o *doctree.Outline) error {
	for _, h := range o.Headings() {
		indent := strings.Repeat("  ", max(h.Level-1, 0))
		if _, err := fmt.Fprintf(w, "%sH%d %s\n", indent, h.Level, h.Title); err != nil {
			return err
		}
	}
	return nil
}

func trimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
