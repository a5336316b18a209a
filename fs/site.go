package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkowalczyk/scansite"
	"golang.org/x/sync/errgroup"
)

// Ensure SiteWriter implements scansite.CorpusWriter at compile time.
var _ scansite.CorpusWriter = (*SiteWriter)(nil)

// SiteWriter emits the browsable site artifacts for a corpus with atomic
// update semantics: everything is written to a temporary directory, then
// moved into place in one rename.
//
// Layout:
//
//	documents/<key>.md   one page per document, YAML frontmatter + text
//	indexes/<bucket>.json
//	corpus.json          build manifest and statistics
type SiteWriter struct {
	dir         string
	concurrency int
}

// NewSiteWriter creates a SiteWriter targeting dir.
func NewSiteWriter(dir string) *SiteWriter {
	return &SiteWriter{dir: dir, concurrency: 8}
}

func (w *SiteWriter) tempDir() string {
	return w.dir + ".tmp"
}

// WriteCorpus writes the full site for corpus and swaps it into place.
func (w *SiteWriter) WriteCorpus(ctx context.Context, corpus *scansite.Corpus) error {
	if err := os.RemoveAll(w.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(w.tempDir(), "documents"), 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(w.tempDir(), "indexes"), 0755); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, doc := range corpus.Documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(w.tempDir(), "documents", doc.Key+".md")
			return os.WriteFile(path, []byte(FormatDocument(doc)), 0644)
		})
	}
	if err := g.Wait(); err != nil {
		w.abort()
		return err
	}

	if err := w.writeIndexes(corpus); err != nil {
		w.abort()
		return err
	}
	if err := w.writeManifest(corpus); err != nil {
		w.abort()
		return err
	}

	// Atomically replace the previous site.
	if err := os.RemoveAll(w.dir); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.dir)
}

func (w *SiteWriter) abort() {
	_ = os.RemoveAll(w.tempDir())
}

// indexEntry is the serialized bucket shape: documents by key.
type indexEntry struct {
	Name           string   `json:"name"`
	NormalizedDate string   `json:"normalizedDate,omitempty"`
	Docs           []string `json:"docs"`
	Count          int      `json:"count"`
}

func (w *SiteWriter) writeIndexes(corpus *scansite.Corpus) error {
	buckets := map[string][]indexEntry{
		"people":         serializeEntries(corpus.Indexes.People),
		"organizations":  serializeEntries(corpus.Indexes.Organizations),
		"locations":      serializeEntries(corpus.Indexes.Locations),
		"dates":          serializeDateEntries(corpus.Indexes.Dates),
		"document-types": serializeEntries(corpus.Indexes.DocumentTypes),
	}

	for name, entries := range buckets {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(w.tempDir(), "indexes", name+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func serializeEntries(entries []scansite.IndexEntry) []indexEntry {
	out := make([]indexEntry, len(entries))
	for i, e := range entries {
		out[i] = indexEntry{Name: e.Name, Docs: docKeys(e.Docs), Count: e.Count}
	}
	return out
}

func serializeDateEntries(entries []scansite.DateIndexEntry) []indexEntry {
	out := make([]indexEntry, len(entries))
	for i, e := range entries {
		out[i] = indexEntry{
			Name:           e.Name,
			NormalizedDate: e.NormalizedDate,
			Docs:           docKeys(e.Docs),
			Count:          e.Count,
		}
	}
	return out
}

func docKeys(docs []*scansite.Document) []string {
	keys := make([]string, len(docs))
	for i, doc := range docs {
		keys[i] = doc.Key
	}
	return keys
}

func (w *SiteWriter) writeManifest(corpus *scansite.Corpus) error {
	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.tempDir(), "corpus.json"), data, 0644)
}

// FormatDocument formats a document page with YAML frontmatter followed by
// the concatenated page text.
func FormatDocument(doc *scansite.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("key: ")
	b.WriteString(doc.Key)
	b.WriteString("\ndocument_number: ")
	b.WriteString(doc.DocumentNumber)
	if len(doc.RawDocumentNumbers) > 1 {
		b.WriteString("\nalso_known_as:")
		for _, raw := range doc.RawDocumentNumbers {
			b.WriteString("\n  - ")
			b.WriteString(raw)
		}
	}
	fmt.Fprintf(&b, "\npages: %d", doc.PageCount)
	b.WriteString("\ndocument_type: ")
	b.WriteString(scansite.FormatType(doc.Meta.DocumentType))
	b.WriteString("\ndate: ")
	b.WriteString(scansite.FormatDate(doc.DateKey))
	if len(doc.Folders) > 0 {
		b.WriteString("\nfolders:")
		for _, folder := range doc.Folders {
			b.WriteString("\n  - ")
			b.WriteString(folder)
		}
	}
	for _, cat := range []scansite.EntityCategory{scansite.People, scansite.Organizations, scansite.Locations} {
		values := doc.Entities.Category(cat)
		if len(values) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(string(cat))
		b.WriteString(":")
		for _, v := range values {
			b.WriteString("\n  - ")
			b.WriteString(v)
		}
	}
	b.WriteString("\n---\n\n")

	if doc.Analysis != nil && doc.Analysis.Summary != "" {
		b.WriteString("> ")
		b.WriteString(doc.Analysis.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString(doc.FullText)
	return b.String()
}
