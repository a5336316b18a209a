package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkowalczyk/scansite"
	"github.com/tkowalczyk/scansite/sqlite"
)

func exportTestCorpus() *scansite.Corpus {
	return &scansite.Corpus{
		BuildID: "build-1",
		Documents: []*scansite.Document{
			{
				Key:            "doc-12",
				DocumentNumber: "DOC-12",
				PageCount:      2,
				Meta:           scansite.PageMeta{DocumentType: "Deposition"},
				DateKey:        "2010-02-03",
				Entities: scansite.Entities{
					People:    []string{"Jane Doe", "John Roe"},
					Locations: []string{"New York City"},
				},
				Folders:  []string{"vol1", "vol2"},
				FullText: "Deposition text.",
			},
			{
				Key:            "doc-13",
				DocumentNumber: "DOC-13",
				PageCount:      1,
				Entities: scansite.Entities{
					People: []string{"Jane Doe"},
				},
				FullText: "Exhibit text.",
			},
		},
		Stats: scansite.CorpusStats{Pages: 3, Documents: 2},
	}
}

func TestCorpusService_WriteCorpus(t *testing.T) {
	t.Parallel()

	t.Run("exports documents and entities", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCorpusService(db)
		ctx := context.Background()

		require.NoError(t, svc.WriteCorpus(ctx, exportTestCorpus()))

		count, err := svc.DocumentCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		doc, err := svc.FindDocumentByKey(ctx, "doc-12")
		require.NoError(t, err)
		assert.Equal(t, "DOC-12", doc.DocumentNumber)
		assert.Equal(t, 2, doc.PageCount)
		assert.Equal(t, "Deposition", doc.DocumentType)
		assert.Equal(t, "2010-02-03", doc.DateKey)
		assert.Equal(t, []string{"vol1", "vol2"}, doc.Folders)
		assert.Equal(t, "Deposition text.", doc.FullText)
	})

	t.Run("replaces a previous export", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCorpusService(db)
		ctx := context.Background()

		require.NoError(t, svc.WriteCorpus(ctx, exportTestCorpus()))

		next := &scansite.Corpus{
			BuildID: "build-2",
			Documents: []*scansite.Document{
				{Key: "doc-99", DocumentNumber: "DOC-99", PageCount: 1},
			},
			Stats: scansite.CorpusStats{Pages: 1, Documents: 1},
		}
		require.NoError(t, svc.WriteCorpus(ctx, next))

		count, err := svc.DocumentCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = svc.FindDocumentByKey(ctx, "doc-12")
		assert.Equal(t, scansite.ENOTFOUND, scansite.ErrorCode(err))
	})
}

func TestCorpusService_FindDocumentByKey_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCorpusService(db)

	_, err := svc.FindDocumentByKey(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, scansite.ENOTFOUND, scansite.ErrorCode(err))
}

func TestCorpusService_FindDocumentKeysByEntity(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCorpusService(db)
	ctx := context.Background()

	require.NoError(t, svc.WriteCorpus(ctx, exportTestCorpus()))

	keys, err := svc.FindDocumentKeysByEntity(ctx, scansite.People, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-12", "doc-13"}, keys)

	keys, err = svc.FindDocumentKeysByEntity(ctx, scansite.Locations, "New York City")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-12"}, keys)

	// Category scoping: a person name is not a location.
	keys, err = svc.FindDocumentKeysByEntity(ctx, scansite.Locations, "Jane Doe")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
