package matrix

import "github.com/katalvlaran/flatrix/layout"

// shapeOf validates requested dimensions once, at construction. Negative
// axes fail with ErrBadShape; zero axes are legal (empty matrix). Shared by
// all three container constructors.
func shapeOf(rows, cols int) (layout.Shape, error) {
	s := layout.Shape{Rows: rows, Cols: cols}
	if !s.Valid() {
		return layout.Shape{}, ErrBadShape
	}

	return s, nil
}

// Dense is a heap-owned matrix: it allocates (or takes ownership of) its
// backing buffer, and its dimensions are supplied at construction. The
// layout policy L fixes the memory interpretation for the matrix's
// lifetime.
type Dense[L layout.Order, T any] struct {
	mat[L, T]
}

// NewDense creates a rows×cols Dense matrix with a zero-valued buffer.
// Stage 1 (Validate): reject negative dimensions (ErrBadShape).
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the initialized matrix.
// Complexity: O(rows*cols) time and memory.
func NewDense[L layout.Order, T any](rows, cols int) (*Dense[L, T], error) {
	s, err := shapeOf(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense[L, T]{mat[L, T]{shape: s, data: make([]T, s.Len())}}, nil
}

// NewDenseFilled creates a rows×cols Dense matrix with every element set
// to init. Complexity: O(rows*cols).
func NewDenseFilled[L layout.Order, T any](rows, cols int, init T) (*Dense[L, T], error) {
	m, err := NewDense[L, T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = init
	}

	return m, nil
}

// DenseFromValues creates a rows×cols Dense matrix that takes ownership of
// data as its backing buffer — no copy is made, and the caller must not
// touch data afterwards. Fails with ErrSizeMismatch when len(data) differs
// from rows*cols (including the zero-size cases) and with ErrBadShape on
// negative dimensions. Complexity: O(1).
func DenseFromValues[L layout.Order, T any](rows, cols int, data []T) (*Dense[L, T], error) {
	s, err := shapeOf(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, ErrSizeMismatch
	}

	return &Dense[L, T]{mat[L, T]{shape: s, data: data}}, nil
}

// Clone returns a deep copy of the matrix; later mutation of either copy
// never affects the other. Complexity: O(rows*cols) time and memory.
func (m *Dense[L, T]) Clone() *Dense[L, T] {
	return &Dense[L, T]{mat[L, T]{shape: m.shape, data: m.Values()}}
}
