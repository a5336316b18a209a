package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkowalczyk/scansite"
	main "github.com/tkowalczyk/scansite/cmd/scansite"
)

// corpusSourceFunc adapts a function to the http.CorpusSource interface.
type corpusSourceFunc func(ctx context.Context) (*scansite.Corpus, error)

func (f corpusSourceFunc) Build(ctx context.Context) (*scansite.Corpus, error) {
	return f(ctx)
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"bogus"}, stdout, stderr)
		require.Error(t, err)
	})

	t.Run("build runs end to end from config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		inputDir := filepath.Join(dir, "scans")
		outputDir := filepath.Join(dir, "site")
		require.NoError(t, os.MkdirAll(inputDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, "scan_001.json"), []byte(`{
			"document_metadata": {"document_number": "DOC-1", "page_number": 1},
			"entities": {"people": ["Jane Doe"]},
			"full_text": "Page text."
		}`), 0644))

		configPath := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(
			"input_dir: "+inputDir+"\noutput_dir: "+outputDir+"\n",
		), 0644))

		m := main.NewMain()
		m.ConfigPath = configPath

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"build"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Built 1 documents from 1 pages")

		_, err = os.Stat(filepath.Join(outputDir, "documents", "doc-1.md"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(outputDir, "corpus.json"))
		assert.NoError(t, err)
	})
}
