package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tkowalczyk/scansite"
)

// Compile-time interface verification.
var _ scansite.CorpusWriter = (*CorpusService)(nil)

// CorpusService exports built corpora to SQLite and answers queries against
// the exported rows.
type CorpusService struct {
	db *DB
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB) *CorpusService {
	return &CorpusService{db: db}
}

// WriteCorpus replaces the exported corpus with the given build. The whole
// export runs in a single transaction so readers never observe a partial
// build.
func (s *CorpusService) WriteCorpus(ctx context.Context, corpus *scansite.Corpus) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"entities", "documents", "builds"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, created_at, pages, documents)
		VALUES (?, ?, ?, ?)
	`, corpus.BuildID, time.Now().UTC().Format(time.RFC3339), corpus.Stats.Pages, corpus.Stats.Documents)
	if err != nil {
		return err
	}

	for _, doc := range corpus.Documents {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO documents (key, document_number, page_count, document_type, date_key, folders, full_text)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, doc.Key, doc.DocumentNumber, doc.PageCount, doc.Meta.DocumentType,
			doc.DateKey, strings.Join(doc.Folders, ","), doc.FullText)
		if err != nil {
			return err
		}

		for _, cat := range scansite.Categories() {
			for _, name := range doc.Entities.Category(cat) {
				_, err := tx.ExecContext(ctx, `
					INSERT OR IGNORE INTO entities (document_key, category, name)
					VALUES (?, ?, ?)
				`, doc.Key, string(cat), name)
				if err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

// ExportedDocument is one row of the exported documents table.
type ExportedDocument struct {
	Key            string
	DocumentNumber string
	PageCount      int
	DocumentType   string
	DateKey        string
	Folders        []string
	FullText       string
}

// FindDocumentByKey retrieves an exported document by its key.
func (s *CorpusService) FindDocumentByKey(ctx context.Context, key string) (*ExportedDocument, error) {
	var doc ExportedDocument
	var folders string

	err := s.db.QueryRowContext(ctx, `
		SELECT key, document_number, page_count, document_type, date_key, folders, full_text
		FROM documents
		WHERE key = ?
	`, key).Scan(&doc.Key, &doc.DocumentNumber, &doc.PageCount, &doc.DocumentType,
		&doc.DateKey, &folders, &doc.FullText)

	if err == sql.ErrNoRows {
		return nil, scansite.Errorf(scansite.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if folders != "" {
		doc.Folders = strings.Split(folders, ",")
	}
	return &doc, nil
}

// FindDocumentKeysByEntity returns the keys of documents mentioning the
// given entity, ordered by key.
func (s *CorpusService) FindDocumentKeysByEntity(ctx context.Context, cat scansite.EntityCategory, name string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_key FROM entities
		WHERE category = ? AND name = ?
		ORDER BY document_key ASC
	`, string(cat), name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// DocumentCount returns the number of exported documents.
func (s *CorpusService) DocumentCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&count)
	return count, err
}
