// Package request defines the validated multi-pass search request.
package request

import (
	"fmt"

	"github.com/altadigital/driveseek/internal/domain"
)

// Request parameter limits and defaults.
const (
	DefaultWindowDays = 120
	DefaultPageSize   = 25
	MaxPageSize       = 100
	DefaultMaxPasses  = 4
	MaxPasses         = 4
)

// Request is a validated, immutable search request.
type Request struct {
	goal            string
	client          string
	types           []string
	folderWhitelist []string
	windowDays      int
	pageSize        int
	maxPasses       int
}

// New validates and normalizes search parameters.
// Zero pageSize and maxPasses take their defaults; windowDays is taken
// literally (0 disables the date window) and must not be negative.
func New(
	goal, client string,
	types, folderWhitelist []string,
	windowDays, pageSize, maxPasses int,
) (Request, error) {
	if windowDays < 0 {
		return Request{}, fmt.Errorf("%w: windowDays must be >= 0, got %d", domain.ErrValidation, windowDays)
	}
	if pageSize < 0 {
		return Request{}, fmt.Errorf("%w: pageSize must be > 0, got %d", domain.ErrValidation, pageSize)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPasses == 0 {
		maxPasses = DefaultMaxPasses
	}
	if maxPasses < 1 || maxPasses > MaxPasses {
		return Request{}, fmt.Errorf("%w: maxPasses must be between 1 and %d, got %d",
			domain.ErrValidation, MaxPasses, maxPasses)
	}

	return Request{
		goal:            goal,
		client:          client,
		types:           types,
		folderWhitelist: folderWhitelist,
		windowDays:      windowDays,
		pageSize:        pageSize,
		maxPasses:       maxPasses,
	}, nil
}

// Goal returns the free-text business goal. Advisory only, never parsed.
func (r *Request) Goal() string { return r.goal }

// Client returns the client name used for name/content matching.
func (r *Request) Client() string { return r.client }

// Types returns the requested document type tags.
func (r *Request) Types() []string { return r.types }

// FolderWhitelist returns the trusted folder ids.
func (r *Request) FolderWhitelist() []string { return r.folderWhitelist }

// WindowDays returns the date window in days. 0 means no restriction.
func (r *Request) WindowDays() int { return r.windowDays }

// PageSize returns the per-pass and final result cap.
func (r *Request) PageSize() int { return r.pageSize }

// MaxPasses returns the query budget.
func (r *Request) MaxPasses() int { return r.maxPasses }
