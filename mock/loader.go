// Package mock provides function-field mock implementations of scansite
// interfaces for testing.
package mock

import (
	"context"

	"github.com/tkowalczyk/scansite"
)

var _ scansite.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of scansite.PageLoader.
type PageLoader struct {
	LoadPagesFn func(ctx context.Context, dir string) ([]*scansite.Page, *scansite.LoadReport, error)
}

func (l *PageLoader) LoadPages(ctx context.Context, dir string) ([]*scansite.Page, *scansite.LoadReport, error) {
	return l.LoadPagesFn(ctx, dir)
}
