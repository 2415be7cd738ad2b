// SPDX-License-Identifier: MIT
// Package matrix: the disjoint-split engine. Everything in this file
// produces sets of MutVector handles whose element sets never intersect,
// so callers may hold and mutate all of them at once.
//
// Two regimes exist:
//
//   - Fast axis (row views under row-major, column views under col-major):
//     the buffer already consists of `count` consecutive run-length chunks.
//     Each handle gets its own three-index subslice — a genuine memory
//     partition, no per-element reasoning required.
//
//   - Slow axis (the orthogonal case): one logical slice's elements are not
//     adjacent; handle k reads offsets {k + i*count : i < run}. The handles
//     interleave within the same span, yet fixing the slow coordinate k and
//     varying the other never produces an offset with a different residue
//     mod count — the offset map is a bijection, so the handles' element
//     sets partition [0, len) exactly.

package matrix

// chunkViews partitions buf into count consecutive chunks of run elements
// and returns one contiguous mutable view per chunk.
// Invariant: count*run == len(buf). Complexity: O(count).
func chunkViews[T any](buf []T, count, run int) []MutVector[T] {
	out := make([]MutVector[T], count)
	for k := 0; k < count; k++ {
		out[k] = chunkView(buf, k, run)
	}

	return out
}

// chunkView returns the k-th contiguous chunk of run elements as a mutable
// view. The three-index subslice caps the handle at its own chunk.
func chunkView[T any](buf []T, k, run int) MutVector[T] {
	lo, hi := k*run, (k+1)*run

	return MutVector[T]{Vector[T]{buf: buf[lo:hi:hi], start: 0, stride: 1, n: run}}
}

// stridedViews returns count interleaved mutable views over the shared buf,
// view k starting at offset k and stepping by count, run elements each.
// Invariant: count*run == len(buf); distinct k values touch disjoint
// residue classes mod count. Complexity: O(count).
func stridedViews[T any](buf []T, count, run int) []MutVector[T] {
	out := make([]MutVector[T], count)
	for k := 0; k < count; k++ {
		out[k] = stridedView(buf, k, count, run)
	}

	return out
}

// stridedView returns the k-th interleaved view of buf.
func stridedView[T any](buf []T, k, count, run int) MutVector[T] {
	return MutVector[T]{Vector[T]{buf: buf, start: k, stride: count, n: run}}
}

// axisView builds the mutable view for one slow- or fast-axis index,
// choosing the chunk or strided form.
func axisView[T any](buf []T, k, count, run int, fast bool) MutVector[T] {
	if fast {
		return chunkView(buf, k, run)
	}

	return stridedView(buf, k, count, run)
}

// disjointViews validates a set of requested axis indices and returns one
// mutable view per index. A repeated index would hand out two live mutable
// views over the same elements and fails with ErrAliasViolation; an index
// outside [0, count) fails with ErrOutOfRange. On error nothing is
// returned. Complexity: O(len(indices)).
func disjointViews[T any](method string, buf []T, count, run int, fast bool, indices []int) ([]MutVector[T], error) {
	seen := make(map[int]bool, len(indices))
	for _, k := range indices {
		if k < 0 || k >= count {
			return nil, axisErrorf(method, k, ErrOutOfRange)
		}
		if seen[k] {
			return nil, axisErrorf(method, k, ErrAliasViolation)
		}
		seen[k] = true
	}
	out := make([]MutVector[T], len(indices))
	for i, k := range indices {
		out[i] = axisView(buf, k, count, run, fast)
	}

	return out, nil
}
