package layout_test

import (
	"fmt"

	"github.com/katalvlaran/flatrix/layout"
)

// ExampleRowMajor demonstrates how the same logical coordinate lands on
// different buffer positions under the two policies.
func ExampleRowMajor() {
	s := layout.Shape{Rows: 4, Cols: 4}
	fmt.Println("row-major (1,2):", layout.RowMajor{}.Offset(1, 2, s))
	fmt.Println("col-major (1,2):", layout.ColMajor{}.Offset(1, 2, s))

	// Output:
	// row-major (1,2): 6
	// col-major (1,2): 9
}

// ExampleColMajor shows the per-axis steps a view uses to walk one row.
func ExampleColMajor() {
	s := layout.Shape{Rows: 4, Cols: 4}
	ord := layout.ColMajor{}
	fmt.Println("row contiguous:", ord.RowContiguous())
	fmt.Println("step within a row:", ord.ColStep(s))
	fmt.Println("step within a column:", ord.RowStep(s))

	// Output:
	// row contiguous: false
	// step within a row: 4
	// step within a column: 1
}
