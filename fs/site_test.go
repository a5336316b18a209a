package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkowalczyk/scansite"
	"github.com/tkowalczyk/scansite/fs"
)

func testCorpus() *scansite.Corpus {
	doc := &scansite.Document{
		Key:                "doc-12",
		DocumentNumber:     "DOC-12",
		RawDocumentNumbers: []string{"DOC-12", "doc 12"},
		PageCount:          2,
		Meta: scansite.PageMeta{
			DocumentNumber: "DOC-12",
			DocumentType:   "Deposition",
			Date:           "February 3, 2010",
		},
		DateKey: "2010-02-03",
		Entities: scansite.Entities{
			People:    []string{"Jane Doe"},
			Locations: []string{"New York City"},
		},
		FullText: "Page one.\n\n--- PAGE BREAK ---\n\nPage two.",
		Folders:  []string{"vol1"},
		Analysis: &scansite.Analysis{Summary: "A deposition."},
	}
	return &scansite.Corpus{
		BuildID:   "test-build",
		Documents: []*scansite.Document{doc},
		Indexes: scansite.Indexes{
			People: []scansite.IndexEntry{
				{Name: "Jane Doe", Docs: []*scansite.Document{doc}, Count: 1},
			},
			Dates: []scansite.DateIndexEntry{
				{Name: "Feb 3, 2010", NormalizedDate: "2010-02-03", Docs: []*scansite.Document{doc}, Count: 1},
			},
		},
		Stats: scansite.CorpusStats{Documents: 1, Pages: 2},
	}
}

func TestSiteWriter_WriteCorpus(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "site")
	err := fs.NewSiteWriter(dir).WriteCorpus(context.Background(), testCorpus())
	require.NoError(t, err)

	// Document page with frontmatter, summary, and full text.
	page, err := os.ReadFile(filepath.Join(dir, "documents", "doc-12.md"))
	require.NoError(t, err)
	text := string(page)
	assert.Contains(t, text, "key: doc-12\n")
	assert.Contains(t, text, "document_number: DOC-12\n")
	assert.Contains(t, text, "also_known_as:\n  - DOC-12\n  - doc 12\n")
	assert.Contains(t, text, "pages: 2\n")
	assert.Contains(t, text, "document_type: Deposition\n")
	assert.Contains(t, text, "date: February 3, 2010\n")
	assert.Contains(t, text, "folders:\n  - vol1\n")
	assert.Contains(t, text, "people:\n  - Jane Doe\n")
	assert.Contains(t, text, "> A deposition.")
	assert.Contains(t, text, "--- PAGE BREAK ---")

	// Index buckets, all five present.
	for _, bucket := range []string{"people", "organizations", "locations", "dates", "document-types"} {
		_, err := os.Stat(filepath.Join(dir, "indexes", bucket+".json"))
		assert.NoError(t, err, bucket)
	}

	var people []struct {
		Name  string   `json:"name"`
		Docs  []string `json:"docs"`
		Count int      `json:"count"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "indexes", "people.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &people))
	require.Len(t, people, 1)
	assert.Equal(t, "Jane Doe", people[0].Name)
	assert.Equal(t, []string{"doc-12"}, people[0].Docs)
	assert.Equal(t, 1, people[0].Count)

	var dates []struct {
		Name           string `json:"name"`
		NormalizedDate string `json:"normalizedDate"`
	}
	data, err = os.ReadFile(filepath.Join(dir, "indexes", "dates.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &dates))
	require.Len(t, dates, 1)
	assert.Equal(t, "2010-02-03", dates[0].NormalizedDate)

	// Build manifest.
	var manifest struct {
		BuildID string `json:"buildId"`
	}
	data, err = os.ReadFile(filepath.Join(dir, "corpus.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "test-build", manifest.BuildID)
}

func TestSiteWriter_ReplacesPreviousSite(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "documents"), 0755))
	stale := filepath.Join(dir, "documents", "stale.md")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	err := fs.NewSiteWriter(dir).WriteCorpus(context.Background(), testCorpus())
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "documents", "doc-12.md"))
	assert.NoError(t, err)
}

func TestSiteWriter_CancelledContextLeavesNoTempDir(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := filepath.Join(t.TempDir(), "site")
	err := fs.NewSiteWriter(dir).WriteCorpus(ctx, testCorpus())
	require.Error(t, err)

	_, err = os.Stat(dir + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFormatDocument_SingleVariantOmitsAliases(t *testing.T) {
	t.Parallel()

	doc := &scansite.Document{
		Key:                "doc-9",
		DocumentNumber:     "DOC-9",
		RawDocumentNumbers: []string{"DOC-9"},
		PageCount:          1,
		FullText:           "Only page.",
	}
	text := fs.FormatDocument(doc)
	assert.NotContains(t, text, "also_known_as")
	assert.Contains(t, text, "document_type: Unknown\n")
	assert.Contains(t, text, "date: Unknown Date\n")
	assert.Contains(t, text, "Only page.")
}
