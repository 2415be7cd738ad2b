package matrix

import "github.com/katalvlaran/flatrix/layout"

// Ref is a borrowed matrix: it wraps a caller-owned slice and provides a
// typed matrix view over it for its own lifetime. No copy is made — every
// write through the matrix is immediately visible in the caller's slice,
// and the caller keeps ownership of the memory.
type Ref[L layout.Order, T any] struct {
	mat[L, T]
}

// RefFromValues creates a rows×cols Ref matrix over data. The slice length
// is only known at runtime, so the arity check happens here: fails with
// ErrSizeMismatch when len(data) differs from rows*cols and with
// ErrBadShape on negative dimensions. Complexity: O(1).
func RefFromValues[L layout.Order, T any](rows, cols int, data []T) (*Ref[L, T], error) {
	s, err := shapeOf(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, ErrSizeMismatch
	}

	return &Ref[L, T]{mat[L, T]{shape: s, data: data}}, nil
}
