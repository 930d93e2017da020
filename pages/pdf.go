package pages

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpulib "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoTextContent is returned when neither extraction path yields any
// text for a PDF.
var ErrNoTextContent = errors.New("no text content found in PDF")

// PDFSource is a Source over a PDF file. Extraction is eager: all pages
// are read when the source is opened, so PageCount and Lines never touch
// the file again.
//
// Two extraction paths are tried in order. The primary path reads per-page
// plain text; when it fails (damaged xref tables, unsupported encodings)
// the fallback path walks raw page content streams and recovers text
// operators. Either way the result is plain text lines with no layout
// metadata.
type PDFSource struct {
	*MemorySource
}

// OpenPDF opens and extracts a PDF file as a page source.
func OpenPDF(path string) (*PDFSource, error) {
	pages, err := extractWithReader(path)
	if err != nil || countLines(pages) == 0 {
		pages, err = extractWithContentStreams(path)
		if err != nil {
			return nil, err
		}
	}
	if countLines(pages) == 0 {
		return nil, ErrNoTextContent
	}
	return &PDFSource{MemorySource: NewMemorySource(pages)}, nil
}

// extractWithReader is the primary path: per-page plain text.
func extractWithReader(path string) (result [][]string, err error) {
	// The reader panics on some malformed documents; degrade to the
	// fallback path instead of taking the process down.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([][]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, splitLines(content))
	}
	return pages, nil
}

// extractWithContentStreams is the fallback path: raw content stream text
// operators per page.
func extractWithContentStreams(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	conf := pdfcpumodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([][]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpulib.ExtractPageContent(ctx, pageNr)
		if err != nil {
			pages = append(pages, nil)
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, splitLines(textFromContentStream(data)))
	}
	return pages, nil
}

func countLines(pages [][]string) int {
	n := 0
	for _, p := range pages {
		for _, line := range p {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
	}
	return n
}

// pdfStringLiteral matches PDF string literals in parentheses.
var pdfStringLiteral = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream recovers text from PDF content stream operators:
// Tj/TJ show text, ' and T* imply line breaks, Td/TD imply positioning
// gaps.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			sb.WriteByte('\n')
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// decodePDFString handles basic PDF string escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r', 't':
				sb.WriteByte(' ')
			case '(', ')', '\\':
				sb.WriteByte(raw[i])
			default:
				sb.WriteByte(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}
