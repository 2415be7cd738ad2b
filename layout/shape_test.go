package layout_test

import (
	"testing"

	"github.com/katalvlaran/flatrix/layout"
	"github.com/stretchr/testify/require"
)

func TestShape_Len(t *testing.T) {
	require.Equal(t, 12, layout.Shape{Rows: 4, Cols: 3}.Len())
	require.Equal(t, 0, layout.Shape{Rows: 0, Cols: 5}.Len())
	require.Equal(t, 0, layout.Shape{Rows: 5, Cols: 0}.Len())
	require.Equal(t, 1, layout.Shape{Rows: 1, Cols: 1}.Len())
}

func TestShape_Valid(t *testing.T) {
	require.True(t, layout.Shape{Rows: 0, Cols: 0}.Valid())
	require.True(t, layout.Shape{Rows: 3, Cols: 7}.Valid())
	require.False(t, layout.Shape{Rows: -1, Cols: 4}.Valid())
	require.False(t, layout.Shape{Rows: 4, Cols: -1}.Valid())
}

func TestShape_Contains(t *testing.T) {
	s := layout.Shape{Rows: 4, Cols: 3}
	require.True(t, s.Contains(0, 0))
	require.True(t, s.Contains(3, 2))
	// One past the end on either axis is outside.
	require.False(t, s.Contains(4, 0))
	require.False(t, s.Contains(0, 3))
	require.False(t, s.Contains(-1, 0))
	require.False(t, s.Contains(0, -1))
	// Zero-area shapes contain nothing.
	require.False(t, layout.Shape{Rows: 0, Cols: 3}.Contains(0, 0))
}

func TestShape_String(t *testing.T) {
	require.Equal(t, "4x3", layout.Shape{Rows: 4, Cols: 3}.String())
}
