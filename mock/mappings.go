package mock

import (
	"context"

	"github.com/tkowalczyk/scansite"
)

var _ scansite.MappingSource = (*MappingSource)(nil)

// MappingSource is a mock implementation of scansite.MappingSource.
// Nil function fields return empty results, mirroring the missing-file
// fallback of the real loader.
type MappingSource struct {
	EntityMappingsFn func(ctx context.Context) (*scansite.EntityMappings, error)
	TypeMappingsFn   func(ctx context.Context) (map[string]string, error)
	AnalysesFn       func(ctx context.Context) (map[string]*scansite.Analysis, error)
}

func (m *MappingSource) EntityMappings(ctx context.Context) (*scansite.EntityMappings, error) {
	if m.EntityMappingsFn == nil {
		return nil, nil
	}
	return m.EntityMappingsFn(ctx)
}

func (m *MappingSource) TypeMappings(ctx context.Context) (map[string]string, error) {
	if m.TypeMappingsFn == nil {
		return nil, nil
	}
	return m.TypeMappingsFn(ctx)
}

func (m *MappingSource) Analyses(ctx context.Context) (map[string]*scansite.Analysis, error) {
	if m.AnalysesFn == nil {
		return nil, nil
	}
	return m.AnalysesFn(ctx)
}
