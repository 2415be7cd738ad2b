package matrix

import "github.com/katalvlaran/flatrix/layout"

// Fixed is a copy-owning matrix: construction copies the input into a
// buffer of its own, so the source slice is never manipulated through the
// matrix. Dimensions are checked once at construction and immutable
// afterwards — Go cannot express array sizes as generic parameters, so the
// compile-time dimension check of a true inline array collapses to this
// single runtime validation.
type Fixed[L layout.Order, T any] struct {
	mat[L, T]
}

// FixedFromValues creates a rows×cols Fixed matrix holding a private copy
// of data. Fails with ErrSizeMismatch when len(data) differs from
// rows*cols and with ErrBadShape on negative dimensions.
// Complexity: O(rows*cols) time and memory for the copy.
func FixedFromValues[L layout.Order, T any](rows, cols int, data []T) (*Fixed[L, T], error) {
	s, err := shapeOf(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, ErrSizeMismatch
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Fixed[L, T]{mat[L, T]{shape: s, data: buf}}, nil
}

// Clone returns a deep copy of the matrix. Complexity: O(rows*cols).
func (m *Fixed[L, T]) Clone() *Fixed[L, T] {
	return &Fixed[L, T]{mat[L, T]{shape: m.shape, data: m.Values()}}
}
