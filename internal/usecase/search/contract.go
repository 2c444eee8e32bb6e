package search

import (
	"context"

	"github.com/altadigital/driveseek/internal/domain/file"
)

// FileIndex executes one bounded query against the external file store.
// Implementations paginate internally and return at most pageSize records;
// retrieval is deliberately non-exhaustive, callers compensate with
// additional, broader passes.
type FileIndex interface {
	Search(ctx context.Context, q string, pageSize int, orderBy string) ([]file.Record, error)
}

// Observer receives per-pass execution signals (metrics hook).
type Observer interface {
	PassExecuted(hits int)
	PassFailed()
}
