package pages

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries become line breaks when HTML is
// flattened to plain text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "br": true, "table": true, "ul": true,
	"ol": true, "blockquote": true, "header": true, "footer": true,
	"pre": true,
}

// skipTags are elements whose text content never reaches the reader.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true,
	"template": true,
}

// HTMLSource is a Source over an HTML document, flattened to plain text
// lines. Markup carries no trustworthy structure for this pipeline's
// purposes (tag soup rarely reflects the document hierarchy), so the tags
// are discarded and only block boundaries survive as line breaks. The
// whole document is a single page.
type HTMLSource struct {
	*MemorySource
}

// OpenHTML opens an HTML file as a page source.
func OpenHTML(path string) (*HTMLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html file: %w", err)
	}
	defer f.Close()
	return NewHTMLSource(f)
}

// NewHTMLSource parses HTML from a reader as a page source.
func NewHTMLSource(r io.Reader) (*HTMLSource, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var sb strings.Builder
	flattenHTML(doc, &sb)

	lines := splitLines(sb.String())
	return &HTMLSource{MemorySource: NewMemorySource([][]string{lines})}, nil
}

// flattenHTML walks the node tree appending text content, with newlines at
// block element boundaries.
func flattenHTML(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		if blockTags[n.Data] {
			sb.WriteByte('\n')
		}
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenHTML(c, sb)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}
