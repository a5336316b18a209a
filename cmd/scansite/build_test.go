package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkowalczyk/scansite"
	main "github.com/tkowalczyk/scansite/cmd/scansite"
	"github.com/tkowalczyk/scansite/mock"
	"github.com/tkowalczyk/scansite/yaml"
)

func builtCorpus() *scansite.Corpus {
	return &scansite.Corpus{
		BuildID: "build-1",
		Documents: []*scansite.Document{
			{Key: "doc-1", DocumentNumber: "DOC-1", PageCount: 2},
		},
		Stats:  scansite.CorpusStats{Pages: 2, Documents: 1},
		Report: &scansite.LoadReport{Loaded: 2, Skipped: []string{"bad.json"}},
	}
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("builds and writes the site", func(t *testing.T) {
		t.Parallel()

		var written *scansite.Corpus
		writer := &mock.CorpusWriter{
			WriteCorpusFn: func(_ context.Context, corpus *scansite.Corpus) error {
				written = corpus
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: yaml.Config{OutputDir: "site"},
			Builder: corpusSourceFunc(func(ctx context.Context) (*scansite.Corpus, error) {
				return builtCorpus(), nil
			}),
			SiteWriter: writer,
		}

		err := (&main.BuildCmd{}).Run(deps)
		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, "build-1", written.BuildID)
		assert.Contains(t, stdout.String(), "Built 1 documents from 2 pages into site")
		assert.Contains(t, stdout.String(), "Skipped 1 unparseable page files")
	})

	t.Run("build error propagates", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Builder: corpusSourceFunc(func(ctx context.Context) (*scansite.Corpus, error) {
				return nil, scansite.Errorf(scansite.EINTERNAL, "scan failed")
			}),
		}

		err := (&main.BuildCmd{}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "scan failed")
	})

	t.Run("writer error propagates", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Builder: corpusSourceFunc(func(ctx context.Context) (*scansite.Corpus, error) {
				return builtCorpus(), nil
			}),
			SiteWriter: &mock.CorpusWriter{
				WriteCorpusFn: func(_ context.Context, _ *scansite.Corpus) error {
					return scansite.Errorf(scansite.EINTERNAL, "disk full")
				},
			},
		}

		err := (&main.BuildCmd{}).Run(deps)
		require.Error(t, err)
	})
}
