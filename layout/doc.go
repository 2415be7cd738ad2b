// Package layout defines how a logical (row, column) coordinate space maps
// onto a flat, contiguous buffer. It supports:
//
//   - Row-major or column-major memory interpretation (RowMajor, ColMajor)
//   - A Shape value describing matrix dimensions, fixed at construction
//   - Per-axis element steps, from which callers derive contiguous vs
//     strided access
//
// Every policy is a stateless, zero-size value whose Offset method is a
// bijection from [0,Rows)×[0,Cols) onto [0,Rows*Cols): each coordinate pair
// maps to exactly one linear position and vice versa. Policies are total and
// panic-free; validating coordinates against a Shape is the caller's job
// (the matrix package does it one layer up).
package layout
