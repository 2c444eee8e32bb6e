// Package plan enumerates the ordered retrieval passes for a search request.
//
// Passes go from narrow to broad: whitelisted folders with report name
// patterns first, then client plus intent keywords, then a transcript
// fallback, and finally a client-only widening. Only the first maxPasses
// strategies run, and the widening pass requires a client name.
package plan

import (
	"time"

	"github.com/altadigital/driveseek/internal/domain/search/query"
	"github.com/altadigital/driveseek/internal/domain/search/request"
)

// Pass is one planned Drive query.
type Pass struct {
	index  int
	clause query.Clause
}

// Index returns the 1-based pass number.
func (p Pass) Index() int { return p.index }

// Query serializes the pass clause to the Drive query language.
func (p Pass) Query() string { return query.Serialize(p.clause) }

// Build plans the passes for req. now anchors the date window so planning
// stays deterministic under test.
func Build(req *request.Request, now time.Time) []Pass {
	parents := query.Parents(req.FolderWhitelist())
	types := query.Types(req.Types())
	client := query.Client(req.Client())
	window := query.Window(req.WindowDays(), now)

	typePattern := types
	if typePattern == nil {
		typePattern = query.DefaultTypes()
	}
	intentPattern := types
	if intentPattern == nil {
		intentPattern = query.DefaultIntent()
	}

	// Transcript fallback anchors on the whitelisted folders when given,
	// otherwise on the client clause.
	anchor := parents
	if anchor == nil {
		anchor = client
	}

	all := []query.Clause{
		query.And(query.NotTrashed(), parents, typePattern, window),
		query.And(query.NotTrashed(), client, intentPattern, window),
		query.And(query.NotTrashed(), anchor, query.Transcript(), window),
	}
	if client != nil {
		all = append(all, query.And(query.NotTrashed(), client, window))
	}

	if len(all) > req.MaxPasses() {
		all = all[:req.MaxPasses()]
	}

	passes := make([]Pass, len(all))
	for i, c := range all {
		passes[i] = Pass{index: i + 1, clause: c}
	}
	return passes
}
