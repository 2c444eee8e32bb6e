// Package search orchestrates the multi-pass retrieval and ranking pipeline.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/altadigital/driveseek/internal/domain"
	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/plan"
	"github.com/altadigital/driveseek/internal/domain/search/request"
	"github.com/altadigital/driveseek/internal/domain/search/result"
	"github.com/altadigital/driveseek/internal/domain/search/score"
	"github.com/altadigital/driveseek/internal/logger"
)

// DefaultPassTimeout bounds a single Drive pass, pagination included.
const DefaultPassTimeout = 20 * time.Second

// OrderBy is the sort requested from Drive for every pass.
const OrderBy = "modifiedTime desc"

// Service coordinates planning, retrieval, deduplication, scoring and ranking.
// It keeps no cross-request state; one instance serves concurrent requests.
type Service struct {
	index       FileIndex
	obs         Observer
	now         func() time.Time
	passTimeout time.Duration
}

// New creates a search service.
func New(index FileIndex) *Service {
	return &Service{
		index:       index,
		now:         time.Now,
		passTimeout: DefaultPassTimeout,
	}
}

// WithObserver attaches a pass execution observer.
func (s *Service) WithObserver(obs Observer) *Service {
	s.obs = obs
	return s
}

// WithPassTimeout overrides the per-pass timeout.
func (s *Service) WithPassTimeout(d time.Duration) *Service {
	if d > 0 {
		s.passTimeout = d
	}
	return s
}

// WithClock fixes the time source used to anchor date windows.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search runs the planned passes in order, merges and deduplicates the
// candidates, scores them, and returns the ranked top pageSize files plus
// the per-pass diagnostics.
//
// A failed pass is recorded with its error and contributes zero hits; later
// passes still run. Cancellation of ctx aborts the whole search.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Report, error) {
	log := logger.FromContext(ctx)

	passes := plan.Build(req, s.now())

	diags := make([]result.Pass, 0, len(passes))
	candidates := make([]file.Record, 0, req.PageSize())
	seen := make(map[string]struct{})

	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search canceled before pass %d: %w", p.Index(), err)
		}

		q := p.Query()
		records, err := s.runPass(ctx, q, req.PageSize())
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("search canceled during pass %d: %w", p.Index(), ctx.Err())
			}
			if s.obs != nil {
				s.obs.PassFailed()
			}
			log.Warn("search pass failed",
				zap.Int("pass", p.Index()),
				zap.String("query", q),
				zap.Error(err),
			)
			diags = append(diags, result.NewFailedPass(p.Index(), q, domain.NewPassError(p.Index(), err)))
			continue
		}

		if s.obs != nil {
			s.obs.PassExecuted(len(records))
		}
		diags = append(diags, result.NewPass(p.Index(), q, len(records)))

		// First occurrence across passes wins.
		for _, rec := range records {
			if _, ok := seen[rec.ID()]; ok {
				continue
			}
			seen[rec.ID()] = struct{}{}
			candidates = append(candidates, rec)
		}
	}

	scored := make([]result.ScoredFile, 0, len(candidates))
	for _, rec := range candidates {
		pts, reasons := score.Evaluate(&rec, req.Client(), req.FolderWhitelist())
		scored = append(scored, result.NewScoredFile(rec, pts, reasons))
	}

	rank(scored)
	if len(scored) > req.PageSize() {
		scored = scored[:req.PageSize()]
	}

	log.Debug("search complete",
		zap.Int("passes", len(diags)),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(scored)),
	)

	return result.NewReport(diags, scored), nil
}

func (s *Service) runPass(ctx context.Context, q string, pageSize int) ([]file.Record, error) {
	pctx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	records, err := s.index.Search(pctx, q, pageSize, OrderBy)
	if err != nil {
		return nil, fmt.Errorf("drive search: %w", err)
	}
	return records, nil
}
