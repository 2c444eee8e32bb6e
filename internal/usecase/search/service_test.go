package search

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/altadigital/driveseek/internal/domain"
	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/request"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// --- Mocks ---

// mockIndex answers queries in call order: response[0] for the first pass,
// response[1] for the second, and so on.
type mockIndex struct {
	responses []indexResponse
	queries   []string
}

type indexResponse struct {
	records []file.Record
	err     error
}

func (m *mockIndex) Search(_ context.Context, q string, _ int, _ string) ([]file.Record, error) {
	call := len(m.queries)
	m.queries = append(m.queries, q)
	if call >= len(m.responses) {
		return nil, nil
	}
	return m.responses[call].records, m.responses[call].err
}

type mockObserver struct {
	executed []int
	failed   int
}

func (m *mockObserver) PassExecuted(hits int) { m.executed = append(m.executed, hits) }
func (m *mockObserver) PassFailed()           { m.failed++ }

func testFile(id, name string, parents []string, modified time.Time) file.Record {
	return file.New(id, name, "application/vnd.google-apps.document",
		modified, modified.Add(-24*time.Hour), parents, nil, "")
}

func mustRequest(t *testing.T, client string, types, folders []string, pageSize, maxPasses int) request.Request {
	t.Helper()
	r, err := request.New("", client, types, folders, 0, pageSize, maxPasses)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return r
}

func newTestService(idx *mockIndex) *Service {
	return New(idx).WithClock(func() time.Time { return testNow })
}

// --- Tests ---

func TestSearch_RankedAndExplained(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{
			file.New("f1", "Weekly de Alta Performance - Acme", "application/pdf",
				recent, recent.Add(-24*time.Hour), []string{"F1"}, nil, ""),
		}},
	}}
	svc := newTestService(idx)

	req := mustRequest(t, "Acme", []string{"weekly"}, []string{"F1"}, 25, 4)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Passes()) != 4 {
		t.Fatalf("len(passes) = %d, want 4", len(report.Passes()))
	}
	if len(report.Files()) != 1 {
		t.Fatalf("len(files) = %d, want 1", len(report.Files()))
	}

	top := report.Files()[0]
	if top.Score() != 9 {
		t.Errorf("score = %d, want 9 (folder 4 + weekly 3 + client 2)", top.Score())
	}
	wantReasons := []string{
		"Está em pasta whitelisted",
		"Bate padrão de Weekly",
		"Contém cliente no nome",
	}
	if !reflect.DeepEqual(top.Reasons(), wantReasons) {
		t.Errorf("reasons = %v, want %v", top.Reasons(), wantReasons)
	}
}

func TestSearch_DeduplicatesFirstSeen(t *testing.T) {
	early := testNow.Add(-48 * time.Hour)
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{
			testFile("dup", "Weekly de Alta Performance", nil, early),
			testFile("a", "Daily Operacional", nil, early),
		}},
		{records: []file.Record{
			testFile("dup", "Weekly de Alta Performance", nil, early),
			testFile("b", "planejamento", nil, early),
		}},
	}}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 25, 2)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, f := range report.Files() {
		seen[f.File().ID()]++
	}
	if seen["dup"] != 1 {
		t.Errorf("duplicate id appears %d times", seen["dup"])
	}
	if len(report.Files()) != 3 {
		t.Errorf("len(files) = %d, want 3", len(report.Files()))
	}

	// Hit counts are raw, pre-dedup.
	if report.Passes()[0].Hits() != 2 || report.Passes()[1].Hits() != 2 {
		t.Errorf("hits = %d,%d, want 2,2",
			report.Passes()[0].Hits(), report.Passes()[1].Hits())
	}
}

func TestSearch_FailedPassDegradesNotAborts(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	upstreamErr := errors.New("deadline exceeded")
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{testFile("f1", "Weekly de Alta Performance", nil, recent)}},
		{records: []file.Record{testFile("f2", "planejamento Acme", nil, recent)}},
		{err: upstreamErr},
		{records: []file.Record{testFile("f3", "Acme contrato", nil, recent)}},
	}}
	obs := &mockObserver{}
	svc := newTestService(idx).WithObserver(obs)

	req := mustRequest(t, "Acme", nil, nil, 25, 4)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Passes()) != 4 {
		t.Fatalf("len(passes) = %d, want 4", len(report.Passes()))
	}

	failed := report.Passes()[2]
	if failed.Err() == nil {
		t.Fatal("pass 3 should carry an error")
	}
	if failed.Hits() != 0 {
		t.Errorf("failed pass hits = %d, want 0", failed.Hits())
	}
	if !errors.Is(failed.Err(), domain.ErrUpstream) {
		t.Errorf("pass error = %v, want ErrUpstream", failed.Err())
	}
	var passErr *domain.PassError
	if !errors.As(failed.Err(), &passErr) || passErr.Pass != 3 {
		t.Errorf("pass error should name pass 3: %v", failed.Err())
	}

	// Pass 4 still executed and its file made it to the output.
	ids := make(map[string]bool)
	for _, f := range report.Files() {
		ids[f.File().ID()] = true
	}
	if !ids["f3"] {
		t.Error("pass 4 results missing from output")
	}
	if obs.failed != 1 || len(obs.executed) != 3 {
		t.Errorf("observer: failed=%d executed=%v", obs.failed, obs.executed)
	}
}

func TestSearch_TruncatesToPageSize(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	var records []file.Record
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		records = append(records, testFile(id, "Daily Operacional "+id, nil, recent))
	}
	idx := &mockIndex{responses: []indexResponse{{records: records}}}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 3, 1)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Files()) != 3 {
		t.Errorf("len(files) = %d, want pageSize 3", len(report.Files()))
	}
}

func TestSearch_TieBrokenByModifiedTime(t *testing.T) {
	older := testNow.Add(-72 * time.Hour)
	newer := testNow.Add(-time.Hour)
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{
			testFile("old", "Daily Operacional", nil, older),
			testFile("new", "Daily Operacional", nil, newer),
		}},
	}}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 25, 1)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Files()[0].File().ID() != "new" {
		t.Errorf("first file = %q, want the more recently modified", report.Files()[0].File().ID())
	}
}

func TestSearch_HigherScoreWins(t *testing.T) {
	older := testNow.Add(-72 * time.Hour)
	newer := testNow.Add(-time.Hour)
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{
			// Newer but weaker match vs older but stronger match.
			testFile("weak", "notas", nil, newer),
			testFile("strong", "Weekly de Alta Performance", nil, older),
		}},
	}}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 25, 1)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Files()[0].File().ID() != "strong" {
		t.Errorf("first file = %q, want the higher scored", report.Files()[0].File().ID())
	}
}

func TestSearch_ZeroScoreFilesKept(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	idx := &mockIndex{responses: []indexResponse{
		{records: []file.Record{
			file.New("plain", "notas avulsas", "application/pdf", recent, recent, nil, nil, ""),
		}},
	}}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 25, 1)
	report, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Files()) != 1 {
		t.Fatalf("len(files) = %d, want 1", len(report.Files()))
	}
	f := report.Files()[0]
	if f.Score() != 0 {
		t.Errorf("score = %d, want 0", f.Score())
	}
	if len(f.Reasons()) != 0 {
		t.Errorf("reasons = %v, want empty", f.Reasons())
	}
}

func TestSearch_Idempotent(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	responses := []indexResponse{
		{records: []file.Record{
			testFile("f1", "Weekly de Alta Performance - Acme", []string{"F1"}, recent),
			testFile("f2", "planejamento Acme", nil, recent),
		}},
		{records: []file.Record{testFile("f3", "estratégia Acme", nil, recent)}},
	}

	run := func() ([]string, []string) {
		idx := &mockIndex{responses: responses}
		svc := newTestService(idx)
		req := mustRequest(t, "Acme", nil, []string{"F1"}, 25, 2)
		report, err := svc.Search(context.Background(), &req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var passes, files []string
		for _, p := range report.Passes() {
			passes = append(passes, p.Query())
		}
		for _, f := range report.Files() {
			files = append(files, f.File().ID())
		}
		return passes, files
	}

	passes1, files1 := run()
	passes2, files2 := run()

	if !reflect.DeepEqual(passes1, passes2) {
		t.Errorf("passes differ between runs:\n%v\n%v", passes1, passes2)
	}
	if !reflect.DeepEqual(files1, files2) {
		t.Errorf("files differ between runs:\n%v\n%v", files1, files2)
	}
}

func TestSearch_CanceledContextAborts(t *testing.T) {
	idx := &mockIndex{}
	svc := newTestService(idx)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := mustRequest(t, "Acme", nil, nil, 25, 4)
	_, err := svc.Search(ctx, &req)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(idx.queries) != 0 {
		t.Errorf("no passes should run after cancellation, got %d", len(idx.queries))
	}
}

func TestSearch_QueriesFollowThePlan(t *testing.T) {
	idx := &mockIndex{}
	svc := newTestService(idx)

	req := mustRequest(t, "", nil, nil, 25, 4)
	if _, err := svc.Search(context.Background(), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No client: three passes, all anchored on trashed = false.
	if len(idx.queries) != 3 {
		t.Fatalf("len(queries) = %d, want 3", len(idx.queries))
	}
	for i, q := range idx.queries {
		if !strings.HasPrefix(q, "trashed = false") {
			t.Errorf("query %d missing base predicate: %q", i+1, q)
		}
	}
}
