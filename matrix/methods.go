package matrix

import (
	"fmt"

	"github.com/katalvlaran/flatrix/layout"
)

// mat is the engine shared by Dense, Fixed and Ref: a layout policy, a
// shape fixed at construction and a flat backing buffer of shape.Len()
// elements. The three containers differ only in how they obtain and own
// the buffer; every operation below is promoted onto all of them.
type mat[L layout.Order, T any] struct {
	ord   L            // zero-size layout policy, resolved at compile time
	shape layout.Shape // dimensions, immutable after construction
	data  []T          // flat backing storage, len == shape.Len()
}

// Rows returns the number of logical rows. Complexity: O(1).
func (m *mat[L, T]) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of logical columns. Complexity: O(1).
func (m *mat[L, T]) Cols() int {
	return m.shape.Cols
}

// Size returns the number of elements in the backing buffer. Complexity: O(1).
func (m *mat[L, T]) Size() int {
	return len(m.data)
}

// Shape returns the matrix dimensions. Complexity: O(1).
func (m *mat[L, T]) Shape() layout.Shape {
	return m.shape
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check against the shape.
// Stage 2 (Execute): read at the layout's offset.
// Complexity: O(1).
func (m *mat[L, T]) At(row, col int) (T, error) {
	if !m.shape.Contains(row, col) {
		var zero T
		return zero, cellErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[m.ord.Offset(row, col, m.shape)], nil
}

// Set assigns v at (row, col).
// Stage 1 (Validate): bounds check against the shape.
// Stage 2 (Execute): write at the layout's offset.
// Complexity: O(1).
func (m *mat[L, T]) Set(row, col int, v T) error {
	if !m.shape.Contains(row, col) {
		return cellErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[m.ord.Offset(row, col, m.shape)] = v

	return nil
}

// rowVector builds the (unvalidated) view of row i.
func (m *mat[L, T]) rowVector(i int) Vector[T] {
	return Vector[T]{
		buf:    m.data,
		start:  m.ord.Offset(i, 0, m.shape),
		stride: m.ord.ColStep(m.shape),
		n:      m.shape.Cols,
	}
}

// colVector builds the (unvalidated) view of column j.
func (m *mat[L, T]) colVector(j int) Vector[T] {
	return Vector[T]{
		buf:    m.data,
		start:  m.ord.Offset(0, j, m.shape),
		stride: m.ord.RowStep(m.shape),
		n:      m.shape.Rows,
	}
}

// Row returns a read-only view of row i, or ErrOutOfRange.
// The view is contiguous under row-major and strided under column-major.
// Complexity: O(1); no elements are copied.
func (m *mat[L, T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.shape.Rows {
		return Vector[T]{}, axisErrorf("Row", i, ErrOutOfRange)
	}

	return m.rowVector(i), nil
}

// Col returns a read-only view of column j, or ErrOutOfRange.
// Complexity: O(1); no elements are copied.
func (m *mat[L, T]) Col(j int) (Vector[T], error) {
	if j < 0 || j >= m.shape.Cols {
		return Vector[T]{}, axisErrorf("Col", j, ErrOutOfRange)
	}

	return m.colVector(j), nil
}

// MutRow returns a mutable view of row i, or ErrOutOfRange.
// The caller sequences overlapping MutRow/MutCol requests; for several
// simultaneously live mutable views use MutRowViews, SplitRows or MutRowsAt,
// which are checked for aliasing.
// Complexity: O(1).
func (m *mat[L, T]) MutRow(i int) (MutVector[T], error) {
	if i < 0 || i >= m.shape.Rows {
		return MutVector[T]{}, axisErrorf("MutRow", i, ErrOutOfRange)
	}

	return axisView(m.data, i, m.shape.Rows, m.shape.Cols, m.ord.RowContiguous()), nil
}

// MutCol returns a mutable view of column j, or ErrOutOfRange.
// Complexity: O(1).
func (m *mat[L, T]) MutCol(j int) (MutVector[T], error) {
	if j < 0 || j >= m.shape.Cols {
		return MutVector[T]{}, axisErrorf("MutCol", j, ErrOutOfRange)
	}

	return axisView(m.data, j, m.shape.Cols, m.shape.Rows, !m.ord.RowContiguous()), nil
}

// RowViews returns one read-only view per row, in row order.
// A zero-row matrix yields an empty slice, never an error.
// Complexity: O(rows) handles; no elements are copied.
func (m *mat[L, T]) RowViews() []Vector[T] {
	out := make([]Vector[T], m.shape.Rows)
	for i := range out {
		out[i] = m.rowVector(i)
	}

	return out
}

// ColViews returns one read-only view per column, in column order.
// Complexity: O(cols) handles; no elements are copied.
func (m *mat[L, T]) ColViews() []Vector[T] {
	out := make([]Vector[T], m.shape.Cols)
	for j := range out {
		out[j] = m.colVector(j)
	}

	return out
}

// MutRowViews returns one mutable view per row, pairwise disjoint: the
// views' element sets partition the buffer, so mutating all of them while
// held together is safe. A zero-row matrix yields an empty slice.
// Complexity: O(rows) handles.
func (m *mat[L, T]) MutRowViews() []MutVector[T] {
	if m.ord.RowContiguous() {
		return chunkViews(m.data, m.shape.Rows, m.shape.Cols)
	}

	return stridedViews(m.data, m.shape.Rows, m.shape.Cols)
}

// MutColViews returns one mutable view per column, pairwise disjoint.
// Complexity: O(cols) handles.
func (m *mat[L, T]) MutColViews() []MutVector[T] {
	if m.ord.RowContiguous() {
		return stridedViews(m.data, m.shape.Cols, m.shape.Rows)
	}

	return chunkViews(m.data, m.shape.Cols, m.shape.Rows)
}

// SplitRows returns a mutable view of row i together with mutable views of
// every other row, all pairwise disjoint. The remainder keeps row order
// with row i removed. Complexity: O(rows) handles.
func (m *mat[L, T]) SplitRows(i int) (MutVector[T], []MutVector[T], error) {
	if i < 0 || i >= m.shape.Rows {
		return MutVector[T]{}, nil, axisErrorf("SplitRows", i, ErrOutOfRange)
	}
	views := m.MutRowViews()
	rest := make([]MutVector[T], 0, len(views)-1)
	rest = append(rest, views[:i]...)
	rest = append(rest, views[i+1:]...)

	return views[i], rest, nil
}

// SplitCols returns a mutable view of column j together with mutable views
// of every other column, all pairwise disjoint. Complexity: O(cols) handles.
func (m *mat[L, T]) SplitCols(j int) (MutVector[T], []MutVector[T], error) {
	if j < 0 || j >= m.shape.Cols {
		return MutVector[T]{}, nil, axisErrorf("SplitCols", j, ErrOutOfRange)
	}
	views := m.MutColViews()
	rest := make([]MutVector[T], 0, len(views)-1)
	rest = append(rest, views[:j]...)
	rest = append(rest, views[j+1:]...)

	return views[j], rest, nil
}

// MutRowsAt returns mutable views of the requested rows, in request order.
// A repeated row index fails with ErrAliasViolation, an invalid one with
// ErrOutOfRange; on error no views are handed out.
// Complexity: O(len(indices)).
func (m *mat[L, T]) MutRowsAt(indices ...int) ([]MutVector[T], error) {
	return disjointViews[T]("MutRowsAt", m.data, m.shape.Rows, m.shape.Cols, m.ord.RowContiguous(), indices)
}

// MutColsAt returns mutable views of the requested columns, in request
// order, with the same alias and bounds checks as MutRowsAt.
// Complexity: O(len(indices)).
func (m *mat[L, T]) MutColsAt(indices ...int) ([]MutVector[T], error) {
	return disjointViews[T]("MutColsAt", m.data, m.shape.Cols, m.shape.Rows, !m.ord.RowContiguous(), indices)
}

// FillRow overwrites row i with data, which must hold exactly Cols
// elements. Nothing is written on error. Complexity: O(cols).
func (m *mat[L, T]) FillRow(i int, data []T) error {
	if i < 0 || i >= m.shape.Rows {
		return axisErrorf("FillRow", i, ErrOutOfRange)
	}
	if len(data) != m.shape.Cols {
		return axisErrorf("FillRow", i, ErrSizeMismatch)
	}
	step := m.ord.ColStep(m.shape)
	start := m.ord.Offset(i, 0, m.shape)
	for c := 0; c < m.shape.Cols; c++ {
		m.data[start+c*step] = data[c]
	}

	return nil
}

// FillCol overwrites column j with data, which must hold exactly Rows
// elements. Nothing is written on error. Complexity: O(rows).
func (m *mat[L, T]) FillCol(j int, data []T) error {
	if j < 0 || j >= m.shape.Cols {
		return axisErrorf("FillCol", j, ErrOutOfRange)
	}
	if len(data) != m.shape.Rows {
		return axisErrorf("FillCol", j, ErrSizeMismatch)
	}
	step := m.ord.RowStep(m.shape)
	start := m.ord.Offset(0, j, m.shape)
	for r := 0; r < m.shape.Rows; r++ {
		m.data[start+r*step] = data[r]
	}

	return nil
}

// Apply replaces every element x of the matrix with fn(x), walking the
// buffer in memory order. Complexity: O(rows*cols).
func (m *mat[L, T]) Apply(fn func(T) T) {
	for i := range m.data {
		m.data[i] = fn(m.data[i])
	}
}

// Values returns a fresh copy of the backing buffer in memory order.
// Complexity: O(rows*cols) time and memory.
func (m *mat[L, T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// logical row, regardless of layout. Complexity: O(rows*cols).
func (m *mat[L, T]) String() string {
	var s string
	var i, j int
	for i = 0; i < m.shape.Rows; i++ { // iterate over logical rows
		s += "["
		for j = 0; j < m.shape.Cols; j++ {
			s += fmt.Sprintf("%v", m.data[m.ord.Offset(i, j, m.shape)])
			if j < m.shape.Cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
