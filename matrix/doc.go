// Package matrix provides typed, bounds-checked matrix access over a flat
// buffer of elements. It composes the layout package's offset policies into
// three concrete containers:
//
//   - Dense — heap-owned buffer, dimensions supplied at construction
//   - Fixed — copies its input, so the source slice is never manipulated
//   - Ref   — wraps a caller-owned slice and writes straight through to it
//
// All three expose the same operation set: cell access (At/Set), single row
// and column views (Row/Col/MutRow/MutCol), bulk views (RowViews/ColViews
// and their mutable forms), disjoint splits (SplitRows/SplitCols,
// MutRowsAt/MutColsAt), whole-axis fills and element-wise Apply.
//
// Views are transient handles, created per call and never stored by the
// package. A view over the layout's fast axis is contiguous (stride 1) and
// can expose a real subslice; the orthogonal view is strided and indexes
// through the shared buffer. The bulk mutable forms yield pairwise disjoint
// views: mutating every yielded view concurrently-held is safe because no
// two of them ever reach the same element — contiguous views partition the
// buffer into consecutive chunks, and strided views interleave offsets that
// the layout bijection keeps apart.
//
// Matrices are best used single-threaded; the package adds no internal
// synchronization. Callers who want to fan work out across goroutines
// should split first (each yielded view is independently transferable) and
// synchronize the join themselves.
package matrix
