package layout

// Order is the layout policy: a pure mapping from logical coordinates to
// linear buffer offsets, plus the per-axis steps callers need to walk a row
// or a column. Implementations are stateless empty structs, so an Order
// used as a generic type parameter costs nothing at runtime — the variant
// is fixed at compile time, not branched on per call.
//
// Contract: for any s with s.Contains(row, col), Offset(row, col, s) is a
// unique value in [0, s.Len()). Out-of-range coordinates are the caller's
// responsibility; Offset never panics, it just extrapolates the affine map.
type Order interface {
	// Offset returns the linear buffer position of the element at (row, col).
	Offset(row, col int, s Shape) int

	// RowStep returns the element distance between (row, col) and (row+1, col):
	// the stride used when walking a column.
	RowStep(s Shape) int

	// ColStep returns the element distance between (row, col) and (row, col+1):
	// the stride used when walking a row.
	ColStep(s Shape) int

	// RowContiguous reports whether a logical row occupies adjacent memory.
	// When true, rows are the fast axis (ColStep == 1) and columns are
	// strided; when false, the roles swap.
	RowContiguous() bool
}

// RowMajor stores row elements contiguously: element (row, col) lives at
// row*Cols + col. A buffer [1,1,1,1,2,2,2,2,3,3,3,3,4,4,4,4] read as a 4x4
// RowMajor matrix is:
//
//	1 1 1 1
//	2 2 2 2
//	3 3 3 3
//	4 4 4 4
type RowMajor struct{}

// Offset maps (row, col) to row*Cols + col. Complexity: O(1).
func (RowMajor) Offset(row, col int, s Shape) int { return row*s.Cols + col }

// RowStep is Cols: vertically adjacent cells are one full row apart.
func (RowMajor) RowStep(s Shape) int { return s.Cols }

// ColStep is 1: a row is contiguous.
func (RowMajor) ColStep(Shape) int { return 1 }

// RowContiguous reports true: rows are the fast axis.
func (RowMajor) RowContiguous() bool { return true }

// ColMajor stores column elements contiguously: element (row, col) lives at
// col*Rows + row. The same buffer [1,1,1,1,2,2,2,2,3,3,3,3,4,4,4,4] read as
// a 4x4 ColMajor matrix is:
//
//	1 2 3 4
//	1 2 3 4
//	1 2 3 4
//	1 2 3 4
type ColMajor struct{}

// Offset maps (row, col) to col*Rows + row. Complexity: O(1).
func (ColMajor) Offset(row, col int, s Shape) int { return col*s.Rows + row }

// RowStep is 1: a column is contiguous.
func (ColMajor) RowStep(Shape) int { return 1 }

// ColStep is Rows: horizontally adjacent cells are one full column apart.
func (ColMajor) ColStep(s Shape) int { return s.Rows }

// RowContiguous reports false: columns are the fast axis.
func (ColMajor) RowContiguous() bool { return false }
