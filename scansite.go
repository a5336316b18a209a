// Package scansite builds a browsable static site from OCR'd document scans.
// It reconstructs multi-page documents from individually-scanned pages,
// canonicalizes the LLM-extracted metadata and entities attached to each
// scan, and derives the inverted indices (entity, date, document type) that
// the emitted site is browsed by.
//
// This package contains domain types, interfaces, and the pure normalization
// logic following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g., fs/,
// sqlite/, http/).
package scansite
