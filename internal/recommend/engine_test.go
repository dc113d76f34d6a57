// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package recommend

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmark/internal/catalog"
)

// mockSimilarity implements SimilarityScorer for testing.
type mockSimilarity struct {
	calls   atomic.Int32
	lastN   atomic.Int32
	results map[string][]SimilarityResult
}

func (m *mockSimilarity) Name() string { return "mock_similarity" }

func (m *mockSimilarity) Similar(isbn string, n int) []SimilarityResult {
	m.calls.Add(1)
	m.lastN.Store(int32(n))
	res := m.results[isbn]
	if n >= 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// mockRecommender implements Recommender for testing.
type mockRecommender struct {
	mu      sync.Mutex
	lastReq Request
	nilOut  bool
}

func (m *mockRecommender) Name() string { return "mock_recommender" }

//nolint:gocritic // hugeParam: matches Recommender
func (m *mockRecommender) Recommend(req Request) []RecommendationResult {
	m.mu.Lock()
	m.lastReq = req
	m.mu.Unlock()
	if m.nilOut || req.N <= 0 {
		return nil
	}
	out := make([]RecommendationResult, req.N)
	for i := range out {
		out[i] = RecommendationResult{ISBN: "r", Score: 0.8}
	}
	return out
}

// mockPopularity implements PopularityRanker for testing.
type mockPopularity struct {
	lastLimit atomic.Int32
}

func (m *mockPopularity) Name() string { return "mock_popularity" }

func (m *mockPopularity) Popular(limit int) []PopularBook {
	m.lastLimit.Store(int32(limit))
	if limit <= 0 {
		return []PopularBook{}
	}
	ids := []string{"a", "b", "c"}
	out := make([]PopularBook, limit)
	for i := range out {
		out[i].ISBN = ids[i%len(ids)]
	}
	return out
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Book{
		{ISBN: "a", Title: "A", Genres: []string{"x", "y"}},
		{ISBN: "b", Title: "B", Genres: []string{"y"}},
		{ISBN: "c", Title: "C"},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

func newTestEngine(t *testing.T, cfg *Config) (*Engine, *mockSimilarity, *mockRecommender, *mockPopularity) {
	t.Helper()
	e, err := NewEngine(cfg, testCatalog(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	sim := &mockSimilarity{results: map[string][]SimilarityResult{
		"a": {{ISBN: "b", Similarity: 0.5}, {ISBN: "c", Similarity: 0.1}},
	}}
	rec := &mockRecommender{}
	pop := &mockPopularity{}
	e.SetSimilarity(sim)
	e.SetRecommender(rec)
	e.SetPopularity(pop)
	return e, sim, rec, pop
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		e, err := NewEngine(nil, nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if e.Config().Limits.DefaultSimilarN != 6 {
			t.Errorf("DefaultSimilarN = %d, want 6", e.Config().Limits.DefaultSimilarN)
		}
		if e.IsReady() {
			t.Error("engine over a nil catalog should not be ready")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Similarity.GenreWeight = 0.9
		if _, err := NewEngine(cfg, nil, zerolog.Nop()); err == nil {
			t.Error("expected error for weights not summing to 1")
		}
	})

	t.Run("config is copied", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		e, err := NewEngine(cfg, nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		cfg.Limits.MaxN = 1
		if e.Config().Limits.MaxN != 100 {
			t.Error("engine config changed after caller mutation")
		}
	})
}

func TestEngine_Similar_DefaultsAndClamp(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e, sim, _, _ := newTestEngine(t, cfg)
	ctx := context.Background()

	tests := []struct {
		name  string
		n     int
		wantN int32
	}{
		{"default sentinel", DefaultN, 6},
		{"any negative uses default", -7, 6},
		{"explicit", 3, 3},
		{"clamped", 1000, 100},
	}
	for _, tt := range tests {
		e.Similar(ctx, "a", tt.n)
		if got := sim.lastN.Load(); got != tt.wantN {
			t.Errorf("%s: algorithm saw n=%d, want %d", tt.name, got, tt.wantN)
		}
	}
}

func TestEngine_ZeroCountIsEmpty(t *testing.T) {
	t.Parallel()

	e, sim, rec, pop := newTestEngine(t, nil)
	ctx := context.Background()

	if got := e.Similar(ctx, "a", 0); got == nil || len(got) != 0 {
		t.Errorf("Similar(a, 0) = %v, want empty non-nil", got)
	}
	if got := e.Recommend(ctx, Request{UserID: "u", N: 0}); got == nil || len(got) != 0 {
		t.Errorf("Recommend(N: 0) = %v, want empty non-nil", got)
	}
	if got := e.Popular(ctx, 0); got == nil || len(got) != 0 {
		t.Errorf("Popular(0) = %v, want empty non-nil", got)
	}

	if sim.calls.Load() != 0 {
		t.Errorf("similarity called %d times for n=0", sim.calls.Load())
	}
	rec.mu.Lock()
	recCalled := rec.lastReq.UserID != ""
	rec.mu.Unlock()
	if recCalled {
		t.Error("recommender called for N=0")
	}
	if pop.lastLimit.Load() != 0 {
		t.Errorf("ranker saw limit %d for 0", pop.lastLimit.Load())
	}

	stats := e.Stats()
	if stats.SimilarRequests != 1 || stats.RecommendRequests != 1 || stats.PopularRequests != 1 {
		t.Errorf("zero-count requests should still be counted: %+v", stats)
	}
}

func TestEngine_Similar_Cache(t *testing.T) {
	t.Parallel()

	e, sim, _, _ := newTestEngine(t, nil)
	ctx := context.Background()

	first := e.Similar(ctx, "a", 2)
	second := e.Similar(ctx, "a", 2)
	if sim.calls.Load() != 1 {
		t.Errorf("algorithm calls = %d, want 1 (second call cached)", sim.calls.Load())
	}
	if len(first) != 2 || len(second) != 2 || second[0].ISBN != "b" {
		t.Errorf("unexpected results: %v / %v", first, second)
	}

	// Different n is a different key.
	e.Similar(ctx, "a", 1)
	if sim.calls.Load() != 2 {
		t.Errorf("algorithm calls = %d, want 2", sim.calls.Load())
	}

	// Mutating a returned slice must not affect later hits.
	second[0] = SimilarityResult{ISBN: "tampered"}
	if third := e.Similar(ctx, "a", 2); third[0].ISBN != "b" {
		t.Errorf("cached ranking was modified through a returned slice")
	}

	stats := e.Stats()
	if stats.CacheHits != 2 || stats.CacheMisses != 2 {
		t.Errorf("cache hits/misses = %d/%d, want 2/2", stats.CacheHits, stats.CacheMisses)
	}
	if stats.SimilarRequests != 4 {
		t.Errorf("SimilarRequests = %d, want 4", stats.SimilarRequests)
	}
}

func TestEngine_Similar_UnknownIsEmptyNotNil(t *testing.T) {
	t.Parallel()

	e, _, _, _ := newTestEngine(t, nil)
	got := e.Similar(context.Background(), "missing", 6)
	if got == nil || len(got) != 0 {
		t.Errorf("Similar(missing) = %v, want empty non-nil", got)
	}
}

func TestEngine_NoAlgorithms(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(nil, testCatalog(t), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	ctx := context.Background()

	if got := e.Similar(ctx, "a", 3); got == nil || len(got) != 0 {
		t.Errorf("Similar() = %v, want empty", got)
	}
	if got := e.Recommend(ctx, Request{UserID: "u", N: DefaultN}); got == nil || len(got) != 0 {
		t.Errorf("Recommend() = %v, want empty", got)
	}
	if got := e.Popular(ctx, DefaultN); got == nil || len(got) != 0 {
		t.Errorf("Popular() = %v, want empty", got)
	}
	for role, ok := range e.Models() {
		if ok {
			t.Errorf("Models()[%s] = true before registration", role)
		}
	}
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	e, _, rec, _ := newTestEngine(t, nil)
	ctx := context.Background()

	got := e.Recommend(ctx, Request{UserID: "u1", N: DefaultN, ExcludeIDs: []string{"a"}})
	if len(got) != 10 {
		t.Errorf("len = %d, want default 10", len(got))
	}
	rec.mu.Lock()
	last := rec.lastReq
	rec.mu.Unlock()
	if last.UserID != "u1" || len(last.ExcludeIDs) != 1 {
		t.Errorf("request not forwarded: %+v", last)
	}

	if got := e.Recommend(ctx, Request{N: 500}); len(got) != 100 {
		t.Errorf("len = %d, want clamped 100", len(got))
	}

	rec.nilOut = true
	if got := e.Recommend(ctx, Request{N: 3}); got == nil {
		t.Error("Recommend must never return nil")
	}

	if e.Stats().RecommendRequests != 3 {
		t.Errorf("RecommendRequests = %d, want 3", e.Stats().RecommendRequests)
	}
}

func TestEngine_Popular(t *testing.T) {
	t.Parallel()

	e, _, _, pop := newTestEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		limit int
		want  int32
	}{
		{DefaultN, 10},
		{4, 4},
		{101, 100},
		{-2, 10},
	}
	for _, tt := range tests {
		e.Popular(ctx, tt.limit)
		if got := pop.lastLimit.Load(); got != tt.want {
			t.Errorf("Popular(%d): ranker saw %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestEngine_WarmCache(t *testing.T) {
	t.Parallel()

	e, sim, _, _ := newTestEngine(t, nil)
	ctx := context.Background()

	if got := e.WarmCache(ctx, 2); got != 2 {
		t.Fatalf("WarmCache(2) = %d, want 2", got)
	}
	if sim.lastN.Load() != 6 {
		t.Errorf("warm used n=%d, want default 6", sim.lastN.Load())
	}
	// Already cached entries are skipped.
	if got := e.WarmCache(ctx, 3); got != 1 {
		t.Errorf("WarmCache(3) = %d, want 1", got)
	}

	calls := sim.calls.Load()
	if got := e.Similar(ctx, "a", DefaultN); len(got) != 2 {
		t.Errorf("Similar(a) = %v", got)
	}
	if sim.calls.Load() != calls {
		t.Error("Similar after warm-up should be served from cache")
	}
	if e.Stats().SimilarRequests != 1 {
		t.Errorf("SimilarRequests = %d, want 1 (warm-up is not counted)", e.Stats().SimilarRequests)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if got := e.WarmCache(cancelled, 3); got != 0 {
		t.Errorf("WarmCache(cancelled) = %d, want 0", got)
	}

	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	uncached, _, _, _ := newTestEngine(t, cfg)
	if got := uncached.WarmCache(ctx, 3); got != 0 {
		t.Errorf("WarmCache without cache = %d, want 0", got)
	}
}

func TestEngine_StatsAndReadiness(t *testing.T) {
	t.Parallel()

	e, _, _, _ := newTestEngine(t, nil)
	if !e.IsReady() {
		t.Error("engine with books should be ready")
	}
	stats := e.Stats()
	if stats.CatalogBooks != 3 {
		t.Errorf("CatalogBooks = %d, want 3", stats.CatalogBooks)
	}
	if stats.GenreLabels != 2 {
		t.Errorf("GenreLabels = %d, want 2", stats.GenreLabels)
	}
	for role, ok := range e.Models() {
		if !ok {
			t.Errorf("Models()[%s] = false after registration", role)
		}
	}
}

func TestEngine_LogsComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewEngine(nil, testCatalog(t), zerolog.New(&buf)); err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"component":"recommend"`, `"books":3`, `"genres":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	e, _, _, _ := newTestEngine(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				e.Similar(ctx, "a", 1+i%2)
			case 1:
				e.Recommend(ctx, Request{N: 2})
			default:
				e.Popular(ctx, 2)
			}
		}(i)
	}
	wg.Wait()

	stats := e.Stats()
	if total := stats.SimilarRequests + stats.RecommendRequests + stats.PopularRequests; total != 20 {
		t.Errorf("total requests = %d, want 20", total)
	}
}

func TestEngine_Book(t *testing.T) {
	t.Parallel()

	e, _, _, _ := newTestEngine(t, nil)

	b, ok := e.Book("b")
	if !ok || b.Title != "B" {
		t.Errorf("Book(b) = %+v, %v", b, ok)
	}
	if _, ok := e.Book("missing"); ok {
		t.Error("Book(missing) should report false")
	}
}
