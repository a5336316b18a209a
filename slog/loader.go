// Package slog provides logging decorators for the pipeline's services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkowalczyk/scansite"
)

// Ensure LoggingPageLoader implements scansite.PageLoader.
var _ scansite.PageLoader = (*LoggingPageLoader)(nil)

// LoggingPageLoader wraps a PageLoader with timing and result logging.
type LoggingPageLoader struct {
	next   scansite.PageLoader
	logger *slog.Logger
}

// NewLoggingPageLoader creates a new LoggingPageLoader.
func NewLoggingPageLoader(next scansite.PageLoader, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, logger: logger}
}

// LoadPages delegates to the wrapped loader and logs the outcome.
func (l *LoggingPageLoader) LoadPages(ctx context.Context, dir string) ([]*scansite.Page, *scansite.LoadReport, error) {
	begin := time.Now()
	pages, report, err := l.next.LoadPages(ctx, dir)
	if err != nil {
		l.logger.Error("load pages",
			"dir", dir,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, nil, err
	}

	l.logger.Info("load pages",
		"dir", dir,
		"loaded", report.Loaded,
		"skipped", len(report.Skipped),
		"duplicates", len(report.DuplicateText),
		"duration", time.Since(begin),
	)
	return pages, report, nil
}
