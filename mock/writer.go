package mock

import (
	"context"

	"github.com/tkowalczyk/scansite"
)

var _ scansite.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter is a mock implementation of scansite.CorpusWriter.
type CorpusWriter struct {
	WriteCorpusFn func(ctx context.Context, corpus *scansite.Corpus) error
}

func (w *CorpusWriter) WriteCorpus(ctx context.Context, corpus *scansite.Corpus) error {
	return w.WriteCorpusFn(ctx, corpus)
}
