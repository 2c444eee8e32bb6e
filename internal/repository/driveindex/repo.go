// Package driveindex implements the bounded file index over the Drive pager.
package driveindex

import (
	"context"
	"fmt"

	"github.com/altadigital/driveseek/internal/domain/file"
)

// DefaultMaxPageFetches caps page requests per query so a misbehaving
// upstream that keeps returning continuation tokens cannot stall a pass.
const DefaultMaxPageFetches = 10

// pager is the consumer interface over a single Drive result page.
type pager interface {
	ListPage(ctx context.Context, q string, pageSize int, pageToken, orderBy string) ([]file.Record, string, error)
}

// Repo implements usecase/search.FileIndex with an internal pagination loop.
type Repo struct {
	pager          pager
	maxPageFetches int
}

// New creates a file index repository.
func New(p pager) *Repo {
	return &Repo{pager: p, maxPageFetches: DefaultMaxPageFetches}
}

// WithMaxPageFetches overrides the per-query page fetch cap.
func (r *Repo) WithMaxPageFetches(n int) *Repo {
	if n > 0 {
		r.maxPageFetches = n
	}
	return r
}

// Search accumulates result pages until the continuation token runs out,
// pageSize records are gathered, or the page-fetch cap is reached. At most
// pageSize records are returned; excess from the final page is truncated.
// Retrieval is intentionally non-exhaustive.
func (r *Repo) Search(ctx context.Context, q string, pageSize int, orderBy string) ([]file.Record, error) {
	var all []file.Record
	token := ""

	for fetch := 0; fetch < r.maxPageFetches; fetch++ {
		records, next, err := r.pager.ListPage(ctx, q, pageSize, token, orderBy)
		if err != nil {
			return nil, fmt.Errorf("list page: %w", err)
		}
		all = append(all, records...)

		token = next
		if token == "" || len(all) >= pageSize {
			break
		}
	}

	if len(all) > pageSize {
		all = all[:pageSize]
	}
	return all, nil
}
