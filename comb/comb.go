// Package comb - candidate enumeration shared by the PIT/MixIT searches.
//
// Design principles:
//   - Deterministic: fixed enumeration orders; no randomness, no maps.
//   - Strict sentinels: only ErrBadCount on invalid shapes; no panics on
//     user input.
//   - Materialized results: bounded k keeps candidate pools small enough
//     that a fully built slice beats an iterator in both clarity and reuse.
package comb

import "errors"

// ErrBadCount indicates an invalid element or group count: k < 1, m < 1,
// k not divisible by m for equal partitions, or k < 0 for two-way splits.
var ErrBadCount = errors.New("comb: invalid element or group count")

// Factorial returns n! for n ≥ 0; it errors for negative n.
// Callers keep n small (≲ 20) so an int result does not overflow.
// Complexity: O(n).
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrBadCount
	}
	out := 1
	var i int
	for i = 2; i <= n; i++ {
		out *= i
	}
	return out, nil
}

// Binomial returns C(n, r), the number of r-subsets of an n-set.
// Complexity: O(min(r, n-r)).
func Binomial(n, r int) (int, error) {
	if n < 0 || r < 0 || r > n {
		return 0, ErrBadCount
	}
	if r > n-r {
		r = n - r
	}
	out := 1
	var i int
	for i = 0; i < r; i++ {
		out = out * (n - i) / (i + 1)
	}
	return out, nil
}

// EqualPartitionCount returns k! / ((k/m)!^m · m!), the number of
// partitions of a k-set into m unordered groups of equal size.
// Complexity: O(k).
func EqualPartitionCount(k, m int) (int, error) {
	if k < 1 || m < 1 || k%m != 0 {
		return 0, ErrBadCount
	}
	kf, err := Factorial(k)
	if err != nil {
		return 0, err
	}
	gf, err := Factorial(k / m)
	if err != nil {
		return 0, err
	}
	mf, err := Factorial(m)
	if err != nil {
		return 0, err
	}

	den := mf
	var g int
	for g = 0; g < m; g++ {
		den *= gf
	}

	return kf / den, nil
}

// Permutations returns all k! bijections of {0..k-1} in lexicographic
// order, starting from the identity.
//
// Contracts:
//   - k ≥ 1, otherwise ErrBadCount.
//   - Each emitted slice is an independent copy; callers may retain them.
//
// Complexity: O(k!·k) time and memory.
func Permutations(k int) ([][]int, error) {
	if k < 1 {
		return nil, ErrBadCount
	}

	// Identity seed.
	cur := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		cur[i] = i
	}

	total, err := Factorial(k)
	if err != nil {
		return nil, err
	}
	out := make([][]int, 0, total)

	for {
		// Emit a copy of the current permutation.
		p := make([]int, k)
		copy(p, cur)
		out = append(out, p)

		if !nextPermutation(cur) {
			break
		}
	}

	return out, nil
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false once p is the final (descending) permutation.
// Standard pivot/successor/reverse scheme.
// Complexity: O(k).
func nextPermutation(p []int) bool {
	n := len(p)

	// Find the rightmost ascent p[i] < p[i+1].
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Find the rightmost element greater than the pivot.
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// Reverse the suffix to restore ascending order.
	var l, r int
	for l, r = i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// combinations invokes emit for every r-subset of pool, in lexicographic
// order of positions. The slice passed to emit is reused between calls;
// emit must copy if it retains.
// Complexity: O(C(len(pool), r)·r).
func combinations(pool []int, r int, emit func([]int)) {
	n := len(pool)
	if r < 0 || r > n {
		return
	}
	if r == 0 {
		emit(nil)
		return
	}

	idx := make([]int, r)
	var i int
	for i = 0; i < r; i++ {
		idx[i] = i
	}
	buf := make([]int, r)

	for {
		for i = 0; i < r; i++ {
			buf[i] = pool[idx[i]]
		}
		emit(buf)

		// Advance the rightmost index that can still move.
		i = r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		var j int
		for j = i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// EqualPartitions returns every partition of {0..k-1} into m groups of
// size k/m. Each partition appears exactly once: the recursion anchors
// the smallest remaining index in the next group, so groups are ordered
// by their minimal member and no group arrangement is double-counted.
// Group order is significant downstream (group i is matched to target i).
//
// Contracts:
//   - k ≥ 1, m ≥ 1 and k divisible by m, otherwise ErrBadCount.
//   - Emitted groups and partitions are independent copies.
//
// Complexity: O(N·k) where N = k!/((k/m)!^m·m!).
func EqualPartitions(k, m int) ([][][]int, error) {
	if k < 1 || m < 1 || k%m != 0 {
		return nil, ErrBadCount
	}
	size := k / m

	total, err := EqualPartitionCount(k, m)
	if err != nil {
		return nil, err
	}
	out := make([][][]int, 0, total)

	pool := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		pool[i] = i
	}

	// groups accumulates the partition under construction.
	groups := make([][]int, 0, m)
	var recurse func(rest []int)
	recurse = func(rest []int) {
		if len(rest) == 0 {
			// Leaf: snapshot the finished partition.
			part := make([][]int, m)
			var g int
			for g = range groups {
				part[g] = append([]int(nil), groups[g]...)
			}
			out = append(out, part)
			return
		}

		// Anchor rest[0]; choose the remaining size-1 members from rest[1:].
		head := rest[0]
		tail := rest[1:]
		combinations(tail, size-1, func(c []int) {
			group := make([]int, 0, size)
			group = append(group, head)
			group = append(group, c...)

			// Remaining pool = tail minus c, preserving ascending order.
			next := make([]int, 0, len(tail)-len(c))
			ci := 0
			var v int
			for _, v = range tail {
				if ci < len(c) && c[ci] == v {
					ci++
					continue
				}
				next = append(next, v)
			}

			groups = append(groups, group)
			recurse(next)
			groups = groups[:len(groups)-1]
		})
	}
	recurse(pool)

	return out, nil
}

// TwoWayPartitions returns all 2^k ordered (subset, complement) splits of
// {0..k-1}, enumerated by subset size 0..k and lexicographically within a
// size. Both the (∅, all) and (all, ∅) splits are included: a silent
// mixture is a valid candidate, not an error.
//
// Contracts:
//   - k ≥ 1, otherwise ErrBadCount.
//   - Emitted groups are independent copies; empty groups are non-nil.
//
// Complexity: O(2^k·k).
func TwoWayPartitions(k int) ([][][]int, error) {
	if k < 1 {
		return nil, ErrBadCount
	}

	pool := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		pool[i] = i
	}

	out := make([][][]int, 0, 1<<uint(k))
	var size int
	for size = 0; size <= k; size++ {
		combinations(pool, size, func(c []int) {
			first := append([]int{}, c...)

			// Complement preserves ascending order.
			second := make([]int, 0, k-len(c))
			ci := 0
			var v int
			for _, v = range pool {
				if ci < len(c) && c[ci] == v {
					ci++
					continue
				}
				second = append(second, v)
			}

			out = append(out, [][]int{first, second})
		})
	}

	return out, nil
}
