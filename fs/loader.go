// Package fs provides filesystem adapters: the recursive page loader, the
// mapping-file loader, and the static-site writer.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/tkowalczyk/scansite"
	"github.com/tkowalczyk/scansite/bloom"
)

// pageExt is the extension page record files are discovered by.
const pageExt = ".json"

// Bloom filter sizing for the duplicate-content pre-filter.
const (
	expectedPages     = 100000
	falsePositiveRate = 0.01
)

// Ensure Loader implements scansite.PageLoader at compile time.
var _ scansite.PageLoader = (*Loader)(nil)

// Loader reads per-page OCR result records from a directory tree.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// pageRecord mirrors the on-disk shape of one OCR result file. Metadata and
// entity values arrive loosely typed; scalars are coerced to strings.
type pageRecord struct {
	DocumentMetadata map[string]any `json:"document_metadata"`
	Entities         entityRecord   `json:"entities"`
	FullText         string         `json:"full_text"`
}

type entityRecord struct {
	People           []any `json:"people"`
	Organizations    []any `json:"organizations"`
	Locations        []any `json:"locations"`
	Dates            []any `json:"dates"`
	ReferenceNumbers []any `json:"reference_numbers"`
}

// LoadPages walks dir recursively, parsing every file with the page
// extension. Files that fail to parse are recorded in the report and
// skipped; only an unreadable root aborts the scan. Pages whose full text
// hashes identically to an earlier page are flagged as duplicates but kept.
func (l *Loader) LoadPages(ctx context.Context, dir string) ([]*scansite.Page, *scansite.LoadReport, error) {
	var pages []*scansite.Page
	report := &scansite.LoadReport{}

	seenFilter := bloom.NewFilter(expectedPages, falsePositiveRate)
	seenHashes := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), pageExt) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		page, err := loadPage(path, rel)
		if err != nil {
			report.Skipped = append(report.Skipped, rel)
			return nil
		}

		if page.FullText != "" {
			if seenFilter.Test(page.ContentHash) {
				// The filter can report false positives; confirm against
				// the exact set before flagging.
				if _, ok := seenHashes[page.ContentHash]; ok {
					report.DuplicateText = append(report.DuplicateText, rel)
				}
			}
			seenFilter.Add(page.ContentHash)
			seenHashes[page.ContentHash] = struct{}{}
		}

		pages = append(pages, page)
		report.Loaded++
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	return pages, report, nil
}

func loadPage(path, rel string) (*scansite.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var record pageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	folder := scansite.FolderRoot
	if parent := filepath.Dir(rel); parent != "." {
		folder = filepath.Base(parent)
	}

	return &scansite.Page{
		Path:        rel,
		Filename:    strings.TrimSuffix(filepath.Base(rel), pageExt),
		Folder:      folder,
		Meta:        parseMeta(record.DocumentMetadata),
		Entities:    parseEntities(record.Entities),
		FullText:    record.FullText,
		ContentHash: hashContent(record.FullText),
	}, nil
}

// parseMeta splits the known metadata fields out of the loosely-typed
// mapping; remaining scalar fields are preserved in Extra for display.
func parseMeta(raw map[string]any) scansite.PageMeta {
	meta := scansite.PageMeta{
		DocumentNumber: scalar(raw["document_number"]),
		PageNumber:     scalar(raw["page_number"]),
		DocumentType:   scalar(raw["document_type"]),
		Date:           scalar(raw["date"]),
	}

	for key, value := range raw {
		switch key {
		case "document_number", "page_number", "document_type", "date":
			continue
		}
		if s := scalar(value); s != "" {
			if meta.Extra == nil {
				meta.Extra = make(map[string]string)
			}
			meta.Extra[key] = s
		}
	}

	return meta
}

func parseEntities(record entityRecord) scansite.Entities {
	return scansite.Entities{
		People:           scalars(record.People),
		Organizations:    scalars(record.Organizations),
		Locations:        scalars(record.Locations),
		Dates:            scalars(record.Dates),
		ReferenceNumbers: scalars(record.ReferenceNumbers),
	}
}

// scalar coerces a JSON scalar to its string form. Non-scalars and nulls
// become "", the same absent state as a missing field.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	}
	return ""
}

func scalars(values []any) []string {
	var out []string
	for _, v := range values {
		if s := scalar(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
