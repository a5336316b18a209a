package scansite

import "context"

// PageBreak separates the text of consecutive pages in a document's
// concatenated full text.
const PageBreak = "\n\n--- PAGE BREAK ---\n\n"

// Document represents a reconstructed multi-page unit assembled from pages
// sharing a normalized document number. Documents are derived once per build
// and never mutated by their consumers.
type Document struct {
	// Key is the normalized document number: lowercase, non-alphanumeric
	// collapsed to hyphens. Stable identifier and URL slug.
	Key string `json:"key"`

	// DocumentNumber is the display form: the single raw variant when all
	// pages agree, otherwise the normalized key.
	DocumentNumber string `json:"documentNumber"`

	// RawDocumentNumbers lists every distinct raw variant observed across
	// the document's pages, for "also known as" display.
	RawDocumentNumbers []string `json:"rawDocumentNumbers,omitempty"`

	// Pages in ascending page-number order. Pages without a usable page
	// number sort first.
	Pages     []*Page `json:"-"`
	PageCount int     `json:"pageCount"`

	// Meta is the first page's metadata with DocumentType and Date replaced
	// by their canonical display forms.
	Meta PageMeta `json:"meta"`

	// DateKey is the normalized form of the document date, used for
	// grouping and ordering in the date index.
	DateKey string `json:"dateKey,omitempty"`

	// Entities are canonicalized and deduplicated across all pages.
	Entities Entities `json:"entities"`

	// FullText is every page's text in page order, joined by PageBreak.
	FullText string `json:"-"`

	// Folders lists the distinct source folders the pages came from.
	Folders []string `json:"folders,omitempty"`

	// Analysis is the AI-generated document analysis, when the external
	// analysis job has produced one for this key.
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Analysis holds the output of the external AI document-analysis job.
type Analysis struct {
	DocumentType string      `json:"document_type"`
	KeyTopics    []string    `json:"key_topics"`
	KeyPeople    []KeyPerson `json:"key_people"`
	Significance string      `json:"significance"`
	Summary      string      `json:"summary"`
}

// KeyPerson names a person highlighted by the analysis and their role in
// the document.
type KeyPerson struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CorpusStats holds build counters surfaced in logs and the stats command.
type CorpusStats struct {
	Pages           int                    `json:"pages"`
	Documents       int                    `json:"documents"`
	FallbackGrouped int                    `json:"fallbackGrouped"` // pages grouped by filename
	UniqueEntities  map[EntityCategory]int `json:"uniqueEntities"`
}

// Corpus is the assembled document collection plus its derived indices.
// It is computed at most once per process and shared by every consumer.
type Corpus struct {
	BuildID   string      `json:"buildId"`
	Documents []*Document `json:"documents"`
	Indexes   Indexes     `json:"indexes"`
	Stats     CorpusStats `json:"stats"`
	Report    *LoadReport `json:"report,omitempty"`
}

// Document returns the document with the given key, or nil.
func (c *Corpus) Document(key string) *Document {
	for _, doc := range c.Documents {
		if doc.Key == key {
			return doc
		}
	}
	return nil
}

// CorpusWriter persists a corpus to an output target (site directory,
// database export).
type CorpusWriter interface {
	WriteCorpus(ctx context.Context, corpus *Corpus) error
}

// MappingSource loads the externally-produced mapping files. Every method
// treats a missing file as an empty result, never an error: the pipeline
// must work, without merging, before the batch jobs have run.
type MappingSource interface {
	// EntityMappings loads the entity-dedupe mapping file.
	EntityMappings(ctx context.Context) (*EntityMappings, error)

	// TypeMappings loads the document-type-dedupe mapping file.
	TypeMappings(ctx context.Context) (map[string]string, error)

	// Analyses loads AI document analyses keyed by document key.
	Analyses(ctx context.Context) (map[string]*Analysis, error)
}
