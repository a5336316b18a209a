package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkowalczyk/scansite"
)

// Ensure LoggingCorpusWriter implements scansite.CorpusWriter.
var _ scansite.CorpusWriter = (*LoggingCorpusWriter)(nil)

// LoggingCorpusWriter wraps a CorpusWriter with timing and result logging.
type LoggingCorpusWriter struct {
	next   scansite.CorpusWriter
	logger *slog.Logger
}

// NewLoggingCorpusWriter creates a new LoggingCorpusWriter.
func NewLoggingCorpusWriter(next scansite.CorpusWriter, logger *slog.Logger) *LoggingCorpusWriter {
	return &LoggingCorpusWriter{next: next, logger: logger}
}

// WriteCorpus delegates to the wrapped writer and logs the outcome.
func (w *LoggingCorpusWriter) WriteCorpus(ctx context.Context, corpus *scansite.Corpus) error {
	begin := time.Now()
	err := w.next.WriteCorpus(ctx, corpus)
	if err != nil {
		w.logger.Error("write corpus",
			"build_id", corpus.BuildID,
			"duration", time.Since(begin),
			"err", err,
		)
		return err
	}

	w.logger.Info("write corpus",
		"build_id", corpus.BuildID,
		"documents", len(corpus.Documents),
		"duration", time.Since(begin),
	)
	return nil
}
