// Package entities provides the auxiliary entity extractor: independent
// regular-expression matchers over the concatenated document text,
// producing deduplicated match lists across ten categories (emails,
// phones, dates, urls, versions, copyrights, addresses, prices,
// id numbers, references), plus simple key phrase extraction.
//
// The extractor is deliberately independent of the structure-recovery
// pipeline; it sees one flat string and returns values.
package entities
