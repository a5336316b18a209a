package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tkowalczyk/scansite"
)

// Ensure Mappings implements scansite.MappingSource at compile time.
var _ scansite.MappingSource = (*Mappings)(nil)

// Mappings loads the externally-produced mapping files. An empty path or a
// missing file yields an empty result, never an error: the pipeline runs
// with identity mappings until the batch jobs have produced output.
type Mappings struct {
	EntityPath   string
	TypePath     string
	AnalysesPath string
}

// EntityMappings loads the entity-dedupe mapping file
// ({"people": {...}, "organizations": {...}, "locations": {...}}).
func (m *Mappings) EntityMappings(ctx context.Context) (*scansite.EntityMappings, error) {
	data, ok, err := readOptional(m.EntityPath)
	if err != nil || !ok {
		return nil, err
	}

	var mappings scansite.EntityMappings
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("parse entity mappings %q: %w", m.EntityPath, err)
	}
	return &mappings, nil
}

// TypeMappings loads the document-type-dedupe mapping file; only its
// "mappings" field is consumed.
func (m *Mappings) TypeMappings(ctx context.Context) (map[string]string, error) {
	data, ok, err := readOptional(m.TypePath)
	if err != nil || !ok {
		return nil, err
	}

	var record struct {
		Mappings map[string]string `json:"mappings"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse type mappings %q: %w", m.TypePath, err)
	}
	return record.Mappings, nil
}

// Analyses loads the AI analysis file and keys each analysis by its
// document key.
func (m *Mappings) Analyses(ctx context.Context) (map[string]*scansite.Analysis, error) {
	data, ok, err := readOptional(m.AnalysesPath)
	if err != nil || !ok {
		return nil, err
	}

	var record struct {
		Analyses []struct {
			DocumentID string             `json:"document_id"`
			Analysis   *scansite.Analysis `json:"analysis"`
		} `json:"analyses"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse analyses %q: %w", m.AnalysesPath, err)
	}

	out := make(map[string]*scansite.Analysis, len(record.Analyses))
	for _, a := range record.Analyses {
		if a.DocumentID != "" && a.Analysis != nil {
			out[a.DocumentID] = a.Analysis
		}
	}
	return out, nil
}

// readOptional reads path, reporting absence (empty path or missing file)
// as ok=false rather than an error.
func readOptional(path string) ([]byte, bool, error) {
	if path == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
