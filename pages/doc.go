// Package pages defines the page-source contract the structure-recovery
// pipeline consumes, and provides concrete sources: in-memory pages for
// tests and embedding, plain text files, PDF files (with a fallback
// extraction path), and HTML documents.
//
// A source produces ordered raw text lines per page, in extraction order,
// which is not necessarily reading order. Sources carry no layout
// metadata; everything downstream works from text content alone.
package pages
