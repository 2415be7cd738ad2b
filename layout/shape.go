package layout

import "fmt"

// Shape describes the logical dimensions of a matrix: Rows × Cols.
// A Shape is set once when a matrix is constructed and never mutated
// afterwards. Zero-area shapes (Rows == 0 or Cols == 0) are valid and
// describe a matrix with an empty buffer.
type Shape struct {
	Rows int // number of logical rows, ≥ 0
	Cols int // number of logical columns, ≥ 0
}

// Len returns the number of elements a buffer of this shape must hold.
// Complexity: O(1).
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Valid reports whether both axes are non-negative.
// Complexity: O(1).
func (s Shape) Valid() bool {
	return s.Rows >= 0 && s.Cols >= 0
}

// Contains reports whether (row, col) lies within the shape's bounds.
// Complexity: O(1).
func (s Shape) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// String implements fmt.Stringer, e.g. "4x3".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
