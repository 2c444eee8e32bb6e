// Package lookup serves single-query file lookups by name and folder.
package lookup

import (
	"context"
	"fmt"

	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/query"
)

// Lookup defaults and caps.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// FileIndex executes one bounded query against the file store.
type FileIndex interface {
	Search(ctx context.Context, q string, pageSize int, orderBy string) ([]file.Record, error)
}

// Service answers plain name-substring lookups. Unlike the multi-pass
// search, a lookup issues exactly one query and applies no scoring.
type Service struct {
	index FileIndex
}

// New creates a lookup service.
func New(index FileIndex) *Service {
	return &Service{index: index}
}

// Find returns files whose name contains nameQuery, optionally restricted
// to one folder. Both filters are optional; trashed files are always excluded.
func (s *Service) Find(ctx context.Context, nameQuery, folderID string, pageSize int) ([]file.Record, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var name, parent query.Clause
	if nameQuery != "" {
		name = query.NameContains(nameQuery)
	}
	if folderID != "" {
		parent = query.InParents(folderID)
	}
	q := query.Serialize(query.And(query.NotTrashed(), name, parent))

	records, err := s.index.Search(ctx, q, pageSize, "modifiedTime desc")
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return records, nil
}
