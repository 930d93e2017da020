// Package outliner recovers document structure (a title, a leveled
// outline with page numbers, and structured entities) from plain
// extracted text, when no font or layout metadata is available.
//
// The pipeline reassembles fragmented lines, synthesizes an emphasis score
// per line as a proxy for font size, classifies headings by fusing
// pattern, size, and content signals, and reduces the candidates into a
// bounded, deduplicated outline.
//
// Basic usage:
//
//	summary := outliner.Open("document.pdf").Summary()
//	fmt.Println(summary.Title)
//	for _, entry := range summary.Outline {
//	    fmt.Printf("H%d %s (page %d)\n", entry.Level, entry.Title, entry.Page)
//	}
//
// Any page source can feed the pipeline:
//
//	src := pages.NewMemorySource([][]string{{"INTRODUCTION", "Body text here."}})
//	summary := outliner.FromSource(src).Summary()
//
// A document whose source fails or is empty yields a sentinel summary
// whose title begins with an error marker; per-document failures never
// escalate into errors, so batch callers can treat every document
// uniformly.
package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/ocr"
	"github.com/tsawler/outliner/pages"
)

// Processor configures and runs the structure-recovery pipeline for one
// document. Create one with Open or FromSource, optionally chain
// configuration, then call a terminal method (Summary, Outline, Title).
//
// A Processor is single-use and not safe for concurrent use; documents are
// embarrassingly parallel, so process each with its own Processor.
type Processor struct {
	source  pages.Source
	openErr error
	options Options
}

// Open opens a document file and returns a Processor for fluent
// configuration. The input format is detected from the filename
// extension (PDF, HTML, plain text, or image). Images are read through
// the OCR page source and require building with the ocr tag.
//
// Open never fails directly: source errors surface as the sentinel error
// summary from the terminal methods, matching how per-document failures
// are reported everywhere else.
func Open(filename string) *Processor {
	p := &Processor{options: defaultOptions()}

	switch format.Detect(filename) {
	case format.PDF:
		p.source, p.openErr = pages.OpenPDF(filename)
	case format.HTML:
		p.source, p.openErr = pages.OpenHTML(filename)
	case format.Text:
		p.source, p.openErr = pages.OpenText(filename)
	case format.Image:
		p.source, p.openErr = ocr.OpenImages(filename)
	default:
		p.openErr = fmt.Errorf("unsupported input format: %s", filename)
	}
	return p
}

// FromSource creates a Processor over an already-open page source. Useful
// for in-memory content, tests, and OCR sources.
func FromSource(src pages.Source) *Processor {
	return &Processor{source: src, options: defaultOptions()}
}

// MaxPages limits processing to the first n pages. Zero (the default)
// means all pages.
func (p *Processor) MaxPages(n int) *Processor {
	p.options.maxPages = n
	return p
}

// WithoutEntities disables the auxiliary entity extractor and key phrase
// extraction; the summary will carry no important_fields or key_phrases.
func (p *Processor) WithoutEntities() *Processor {
	p.options.skipEntities = true
	return p
}

// WithOptions replaces all options at once.
func (p *Processor) WithOptions(options Options) *Processor {
	p.options = options
	return p
}

// Summary runs the pipeline and returns the document summary. The result
// is never nil: a failed or empty source yields the sentinel error
// summary.
func (p *Processor) Summary() *model.Summary {
	if p.openErr != nil || p.source == nil {
		return model.ErrorSummary()
	}
	return summarize(p.source, p.options)
}

// Outline runs the pipeline and returns just the reduced outline.
func (p *Processor) Outline() []model.OutlineEntry {
	return p.Summary().Outline
}

// Title runs the pipeline and returns just the selected document title.
func (p *Processor) Title() string {
	return p.Summary().Title
}
