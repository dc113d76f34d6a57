// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/recommend"
)

var samplingModes = []string{recommend.SamplingPool, recommend.SamplingTree}

func largeCatalog(t *testing.T, size int) *catalog.Catalog {
	t.Helper()
	books := make([]catalog.Book, size)
	for i := range books {
		rating := float64(i%5) + 1
		books[i] = book(fmt.Sprintf("isbn-%03d", i), []string{"g"}, []string{"A"}, "vi", 2000, rating, i)
	}
	return mustCatalog(t, books...)
}

func TestRatingWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating float64
		want   int64
	}{
		{catalog.DefaultRating, 12},
		{4.5, 20},
		{5, 25},
		{5.4, 25},
		{1e4, 25},
		{1e10, 25},
		{math.Inf(1), 25},
		{1.9, 3},
		{0.5, 0},
		{-2, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ratingWeight(tt.rating); got != tt.want {
			t.Errorf("ratingWeight(%v) = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

func TestWeightedRecommender_OutOfScaleRating(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t,
		book("a", []string{"g"}, []string{"A"}, "vi", 2000, 1e10, 0),
		book("b", []string{"g"}, []string{"B"}, "vi", 2000, 4.0, 0),
	)

	for _, mode := range samplingModes {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()
			w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode, Seed: 11}, cat)

			// Pool weights are 25 and 16, so drawing 2 of 41 slots must not
			// lose the out-of-scale book on every seed.
			seenA := false
			for seed := uint64(1); seed <= 50; seed++ {
				w.seed = seed
				got := w.Recommend(recommend.Request{UserID: "u", N: 2})
				if len(got) == 0 || len(got) > 2 {
					t.Fatalf("seed %d: len = %d, want 1..2", seed, len(got))
				}
				for _, r := range got {
					if r.ISBN == "a" {
						seenA = true
					}
				}
			}
			if !seenA {
				t.Error("book rated above the scale was never recommended")
			}
		})
	}
}

func TestWeightedRecommender_Basics(t *testing.T) {
	t.Parallel()

	cat := largeCatalog(t, 40)

	for _, mode := range samplingModes {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()
			w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode}, cat)

			got := w.Recommend(recommend.Request{UserID: "u1", N: 10})
			if len(got) == 0 || len(got) > 10 {
				t.Fatalf("len = %d, want 1..10", len(got))
			}

			seen := map[string]bool{}
			for _, r := range got {
				if seen[r.ISBN] {
					t.Errorf("duplicate isbn %s", r.ISBN)
				}
				seen[r.ISBN] = true
				if r.Score < 0.7 || r.Score > 1.0 {
					t.Errorf("score %v out of [0.7, 1.0]", r.Score)
				}
				if r.Score != roundTo(r.Score, 2) {
					t.Errorf("score %v not rounded to 2 decimals", r.Score)
				}
			}
		})
	}
}

func TestWeightedRecommender_Exclusion(t *testing.T) {
	t.Parallel()

	cat := largeCatalog(t, 12)
	exclude := []string{"isbn-000", "isbn-001", "isbn-002", "isbn-003", "isbn-004", "isbn-005"}

	for _, mode := range samplingModes {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()
			w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode}, cat)
			for i := 0; i < 20; i++ {
				for _, r := range w.Recommend(recommend.Request{N: 6, ExcludeIDs: exclude}) {
					for _, ex := range exclude {
						if r.ISBN == ex {
							t.Fatalf("excluded isbn %s returned", ex)
						}
					}
				}
			}
		})
	}
}

func TestWeightedRecommender_AllExcluded(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t, book("a", nil, nil, "", 0, 4, -1))
	for _, mode := range samplingModes {
		w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode}, cat)
		got := w.Recommend(recommend.Request{N: 5, ExcludeIDs: []string{"a"}})
		if got == nil || len(got) != 0 {
			t.Errorf("%s: Recommend() = %v, want empty", mode, got)
		}
	}
}

func TestWeightedRecommender_SmallPoolTakesAllInOrder(t *testing.T) {
	t.Parallel()

	// Rating 1 gives weight 1, so the pool is [a, b, c] and n exceeds it.
	cat := mustCatalog(t,
		book("a", nil, nil, "", 0, 1, -1),
		book("b", nil, nil, "", 0, 1, -1),
		book("c", nil, nil, "", 0, 1, -1),
	)
	for _, mode := range samplingModes {
		w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode}, cat)
		got := w.Recommend(recommend.Request{N: 5})
		ids := make([]string, len(got))
		for i, r := range got {
			ids[i] = r.ISBN
		}
		if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
			t.Errorf("%s: Recommend() = %v, want [a b c]", mode, ids)
		}
	}
}

func TestWeightedRecommender_SingleBookDeduplicated(t *testing.T) {
	t.Parallel()

	// One unrated book has weight 12; with n=20 the whole pool is taken and
	// dedup collapses it to one result.
	cat := mustCatalog(t, book("only", nil, nil, "", 0, -1, -1))
	for _, mode := range samplingModes {
		w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode}, cat)
		got := w.Recommend(recommend.Request{N: 20})
		if len(got) != 1 || got[0].ISBN != "only" {
			t.Errorf("%s: Recommend() = %+v, want single result", mode, got)
		}
		if got[0].RatingAvg != nil {
			t.Errorf("%s: RatingAvg should stay nil for unrated books", mode)
		}
	}
}

func TestWeightedRecommender_NonPositiveN(t *testing.T) {
	t.Parallel()

	w := NewWeightedRecommender(recommend.SamplingConfig{}, largeCatalog(t, 5))
	for _, n := range []int{0, -1} {
		if got := w.Recommend(recommend.Request{N: n}); got == nil || len(got) != 0 {
			t.Errorf("Recommend(N=%d) = %v, want empty", n, got)
		}
	}
}

func TestWeightedRecommender_EmptyCatalog(t *testing.T) {
	t.Parallel()

	w := NewWeightedRecommender(recommend.SamplingConfig{}, catalog.Empty())
	if got := w.Recommend(recommend.Request{N: 5}); got == nil || len(got) != 0 {
		t.Errorf("Recommend() = %v, want empty", got)
	}
}

func TestWeightedRecommender_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	cat := largeCatalog(t, 60)
	for _, mode := range samplingModes {
		w := NewWeightedRecommender(recommend.SamplingConfig{Mode: mode, Seed: 7}, cat)
		first := w.Recommend(recommend.Request{N: 8})
		second := w.Recommend(recommend.Request{N: 8})
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: seeded recommender is not deterministic", mode)
		}
	}
}

func TestWeightedRecommender_DefaultMode(t *testing.T) {
	t.Parallel()

	w := NewWeightedRecommender(recommend.SamplingConfig{}, catalog.Empty())
	if w.Mode() != recommend.SamplingPool {
		t.Errorf("Mode() = %q, want %q", w.Mode(), recommend.SamplingPool)
	}
	if w.Name() != "weighted_random" {
		t.Errorf("Name() = %q", w.Name())
	}
}

func TestDraw_FavorsHeavierWeights(t *testing.T) {
	t.Parallel()

	positions := []int{0, 1}
	weights := []int64{25, 1}

	draws := map[string]func(*rand.Rand) []int{
		"pool": func(r *rand.Rand) []int { return drawPool(r, positions, weights, 1) },
		"tree": func(r *rand.Rand) []int { return drawTree(r, positions, weights, 1) },
	}

	for name, draw := range draws {
		rng := rand.New(rand.NewPCG(11, 13))
		heavy := 0
		const trials = 5000
		for i := 0; i < trials; i++ {
			if draw(rng)[0] == 0 {
				heavy++
			}
		}
		// Expected share is 25/26 (~0.96).
		if share := float64(heavy) / trials; share < 0.9 || share > 0.99 {
			t.Errorf("%s: heavy share = %.3f, want ~0.96", name, share)
		}
	}
}

func TestDraw_WithoutReplacement(t *testing.T) {
	t.Parallel()

	// Total weight 6, draw 5: no position may be drawn more often than its weight.
	positions := []int{10, 20, 30}
	weights := []int64{1, 2, 3}

	for name, draw := range map[string]func(*rand.Rand, []int, []int64, int) []int{
		"pool": drawPool,
		"tree": drawTree,
	} {
		rng := rand.New(rand.NewPCG(3, 5))
		for trial := 0; trial < 200; trial++ {
			got := draw(rng, positions, weights, 5)
			if len(got) != 5 {
				t.Fatalf("%s: drew %d, want 5", name, len(got))
			}
			counts := map[int]int64{}
			for _, p := range got {
				counts[p]++
			}
			for i, p := range positions {
				if counts[p] > weights[i] {
					t.Fatalf("%s: position %d drawn %d times, weight %d", name, p, counts[p], weights[i])
				}
			}
		}
	}
}
