package pages

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoSuchPage is returned when a page index is out of range.
var ErrNoSuchPage = errors.New("no such page")

// Source produces ordered raw text lines per page for one document. Page
// indices are 0-based. Implementations need not be safe for concurrent
// use; the pipeline reads a source from a single goroutine.
type Source interface {
	// PageCount returns the total number of pages.
	PageCount() (int, error)

	// Lines returns the raw text lines of the given page, in extraction
	// order.
	Lines(page int) ([]string, error)
}

// MemorySource is a Source backed by a fixed slice of pages. It is the
// zero-dependency way to feed the pipeline from tests or from text already
// in memory.
type MemorySource struct {
	pages [][]string
}

// NewMemorySource creates a source over fixed page content.
func NewMemorySource(pages [][]string) *MemorySource {
	return &MemorySource{pages: pages}
}

// PageCount returns the number of pages.
func (m *MemorySource) PageCount() (int, error) {
	return len(m.pages), nil
}

// Lines returns the lines of one page.
func (m *MemorySource) Lines(page int) ([]string, error) {
	if page < 0 || page >= len(m.pages) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchPage, page)
	}
	return m.pages[page], nil
}

// TextSource is a Source over a plain text document. Form feed characters
// delimit pages; a document without form feeds is a single page.
type TextSource struct {
	*MemorySource
}

// OpenText reads a plain text file as a page source.
func OpenText(path string) (*TextSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return NewTextSource(string(data)), nil
}

// NewTextSource creates a text source from content already in memory.
func NewTextSource(content string) *TextSource {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	rawPages := strings.Split(content, "\f")

	pages := make([][]string, 0, len(rawPages))
	for _, p := range rawPages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pages = append(pages, strings.Split(p, "\n"))
	}
	return &TextSource{MemorySource: NewMemorySource(pages)}
}

// splitLines breaks one page of extracted text into trimmed lines,
// preserving blank lines (they are flush signals for the merger).
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
