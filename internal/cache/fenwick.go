// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package cache

// WeightTree is a Fenwick tree (binary indexed tree) over non-negative
// integer weights, used for weighted sampling without replacement.
//
// Drawing unit u in [0, Total()) with Find selects index i with probability
// weight(i)/Total(). Decrementing the chosen index by one after each draw
// reproduces sampling without replacement from a pool in which index i is
// replicated weight(i) times, without materializing that pool.
//
// Time Complexity:
//   - Add: O(log n)
//   - PrefixSum: O(log n)
//   - Find: O(log n)
//
// WeightTree is not safe for concurrent use. Callers build one per request.
type WeightTree struct {
	tree  []int64 // 1-indexed
	n     int
	total int64
	// step is the highest power of two <= n, the starting stride for Find.
	step int
}

// NewWeightTree builds a tree from weights in O(n). Negative weights are
// treated as zero.
func NewWeightTree(weights []int64) *WeightTree {
	n := len(weights)
	wt := &WeightTree{tree: make([]int64, n+1), n: n}
	for i, w := range weights {
		if w < 0 {
			w = 0
		}
		wt.tree[i+1] += w
		wt.total += w
		if parent := (i + 1) + ((i + 1) & -(i + 1)); parent <= n {
			wt.tree[parent] += wt.tree[i+1]
		}
	}
	wt.step = 1
	for wt.step*2 <= n {
		wt.step *= 2
	}
	return wt
}

// Add adds delta to the weight at index i (0-indexed).
// The caller must not drive a weight below zero.
func (wt *WeightTree) Add(i int, delta int64) {
	if i < 0 || i >= wt.n {
		return
	}
	wt.total += delta
	for i++; i <= wt.n; i += i & (-i) {
		wt.tree[i] += delta
	}
}

// PrefixSum returns the sum of weights from index 0 to i inclusive.
func (wt *WeightTree) PrefixSum(i int) int64 {
	if i < 0 {
		return 0
	}
	if i >= wt.n {
		i = wt.n - 1
	}
	var sum int64
	for i++; i > 0; i -= i & (-i) {
		sum += wt.tree[i]
	}
	return sum
}

// Weight returns the weight at index i.
func (wt *WeightTree) Weight(i int) int64 {
	if i < 0 || i >= wt.n {
		return 0
	}
	return wt.PrefixSum(i) - wt.PrefixSum(i-1)
}

// Find returns the smallest index i with PrefixSum(i) > u.
// u must be in [0, Total()); otherwise Find returns -1.
func (wt *WeightTree) Find(u int64) int {
	if u < 0 || u >= wt.total || wt.n == 0 {
		return -1
	}
	pos := 0
	for step := wt.step; step > 0; step >>= 1 {
		next := pos + step
		if next <= wt.n && wt.tree[next] <= u {
			pos = next
			u -= wt.tree[next]
		}
	}
	// pos is the 1-indexed position of the last prefix <= u; the answer is
	// the next slot, which in 0-indexed form is pos.
	return pos
}

// Total returns the sum of all weights.
func (wt *WeightTree) Total() int64 {
	return wt.total
}

// Size returns the number of indices.
func (wt *WeightTree) Size() int {
	return wt.n
}
