// Package build orchestrates corpus construction: loading page records,
// applying the externally-produced dedupe mappings, assembling documents,
// and deriving the inverted indices the site is browsed by.
package build

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tkowalczyk/scansite"
)

// Builder assembles the document corpus. The result is computed at most
// once per Builder and memoized: every consumer of one build shares the
// identical corpus, and there is no invalidation because a build reads a
// single filesystem snapshot.
type Builder struct {
	Loader   scansite.PageLoader
	Mappings scansite.MappingSource
	Logger   *slog.Logger

	// Dir is the root of the per-page OCR result tree.
	Dir string

	once   sync.Once
	corpus *scansite.Corpus
	err    error
}

// Build returns the assembled corpus, computing it on first call.
func (b *Builder) Build(ctx context.Context) (*scansite.Corpus, error) {
	b.once.Do(func() {
		b.corpus, b.err = b.build(ctx)
	})
	return b.corpus, b.err
}

func (b *Builder) build(ctx context.Context) (*scansite.Corpus, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	canon := b.loadCanonicalizer(ctx, logger)

	pages, report, err := b.Loader.LoadPages(ctx, b.Dir)
	if err != nil {
		return nil, err
	}
	for _, path := range report.Skipped {
		logger.Warn("skipped unparseable page file", "path", path)
	}
	for _, path := range report.DuplicateText {
		logger.Warn("page text duplicates an earlier page", "path", path)
	}

	docs, fallback := assembleDocuments(pages, canon, logger)
	b.attachAnalyses(ctx, docs, logger)
	indexes := buildIndexes(docs, canon)

	corpus := &scansite.Corpus{
		BuildID:   uuid.New().String(),
		Documents: docs,
		Indexes:   indexes,
		Stats:     corpusStats(pages, docs, fallback),
		Report:    report,
	}

	logger.Info("corpus assembled",
		"buildID", corpus.BuildID,
		"pages", corpus.Stats.Pages,
		"documents", corpus.Stats.Documents,
		"fallbackGrouped", corpus.Stats.FallbackGrouped,
	)

	return corpus, nil
}

// loadCanonicalizer loads the dedupe mappings. Mapping failures degrade to
// identity mappings: the corpus must build before the batch jobs have run.
func (b *Builder) loadCanonicalizer(ctx context.Context, logger *slog.Logger) *scansite.Canonicalizer {
	var entities *scansite.EntityMappings
	var types map[string]string

	if b.Mappings != nil {
		var err error
		entities, err = b.Mappings.EntityMappings(ctx)
		if err != nil {
			logger.Warn("entity mappings unavailable, using identity", "err", err)
			entities = nil
		}
		types, err = b.Mappings.TypeMappings(ctx)
		if err != nil {
			logger.Warn("type mappings unavailable, using identity", "err", err)
			types = nil
		}
	}

	return scansite.NewCanonicalizer(entities, types)
}

func (b *Builder) attachAnalyses(ctx context.Context, docs []*scansite.Document, logger *slog.Logger) {
	if b.Mappings == nil {
		return
	}
	analyses, err := b.Mappings.Analyses(ctx)
	if err != nil {
		logger.Warn("analyses unavailable", "err", err)
		return
	}
	for _, doc := range docs {
		doc.Analysis = analyses[doc.Key]
	}
}

func corpusStats(pages []*scansite.Page, docs []*scansite.Document, fallback int) scansite.CorpusStats {
	unique := make(map[scansite.EntityCategory]int, len(scansite.Categories()))
	for _, cat := range scansite.Categories() {
		seen := make(map[string]struct{})
		for _, doc := range docs {
			for _, name := range doc.Entities.Category(cat) {
				seen[name] = struct{}{}
			}
		}
		unique[cat] = len(seen)
	}

	return scansite.CorpusStats{
		Pages:           len(pages),
		Documents:       len(docs),
		FallbackGrouped: fallback,
		UniqueEntities:  unique,
	}
}
