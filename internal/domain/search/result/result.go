// Package result defines the search pipeline outputs: per-pass diagnostics
// and scored, ranked files.
package result

import "github.com/altadigital/driveseek/internal/domain/file"

// Pass records one executed retrieval pass.
type Pass struct {
	index int
	query string
	hits  int
	err   error
}

// NewPass records a successful pass with its raw (pre-dedup) hit count.
func NewPass(index int, query string, hits int) Pass {
	return Pass{index: index, query: query, hits: hits}
}

// NewFailedPass records a pass whose Drive call failed. Hits is zero.
func NewFailedPass(index int, query string, err error) Pass {
	return Pass{index: index, query: query, err: err}
}

// Index returns the 1-based pass number.
func (p *Pass) Index() int { return p.index }

// Query returns the exact query string issued.
func (p *Pass) Query() string { return p.query }

// Hits returns the raw hit count before deduplication.
func (p *Pass) Hits() int { return p.hits }

// Err returns the upstream error for a failed pass, nil otherwise.
func (p *Pass) Err() error { return p.err }

// ScoredFile is a candidate with its relevance score and justifications.
type ScoredFile struct {
	file    file.Record
	score   int
	reasons []string
}

// NewScoredFile attaches a score and its reasons to a file.
func NewScoredFile(f file.Record, score int, reasons []string) ScoredFile {
	return ScoredFile{file: f, score: score, reasons: reasons}
}

// File returns the underlying file record.
func (s *ScoredFile) File() *file.Record { return &s.file }

// Score returns the heuristic relevance score.
func (s *ScoredFile) Score() int { return s.score }

// Reasons returns the fired-rule justifications in evaluation order.
func (s *ScoredFile) Reasons() []string { return s.reasons }

// Report is the orchestrator output: pass diagnostics plus ranked files.
type Report struct {
	passes []Pass
	files  []ScoredFile
}

// NewReport creates a search report.
func NewReport(passes []Pass, files []ScoredFile) *Report {
	return &Report{passes: passes, files: files}
}

// Passes returns the executed passes in execution order.
func (r *Report) Passes() []Pass { return r.passes }

// Files returns the ranked, truncated scored files.
func (r *Report) Files() []ScoredFile { return r.files }
