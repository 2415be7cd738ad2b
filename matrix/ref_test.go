package matrix_test

import (
	"testing"

	"github.com/katalvlaran/flatrix/layout"
	"github.com/katalvlaran/flatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestRefFromValues_WritesThrough(t *testing.T) {
	data := seed16()
	m, err := matrix.RefFromValues[layout.ColMajor, byte](4, 4, data)
	require.NoError(t, err)

	// Column-major: (3,0) is the fourth element of the first run.
	require.NoError(t, m.Set(3, 0, 0))
	require.Equal(t, byte(0), data[3])

	v, err := m.At(3, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0), v)
}

func TestRefFromValues_SizeMismatch(t *testing.T) {
	_, err := matrix.RefFromValues[layout.RowMajor, byte](4, 4, seed16()[:12])
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

func TestRef_MutRowViews_ColMajor(t *testing.T) {
	// Each row view is strided (stride = 4); adding the column index to
	// every element bumps each run by its column number.
	data := seed16()
	m, err := matrix.RefFromValues[layout.ColMajor, byte](4, 4, data)
	require.NoError(t, err)
	for _, row := range m.MutRowViews() {
		for i := 0; i < row.Len(); i++ {
			v, err := row.At(i)
			require.NoError(t, err)
			require.NoError(t, row.Set(i, v+byte(i)))
		}
	}
	require.Equal(t, []byte{1, 1, 1, 1, 3, 3, 3, 3, 5, 5, 5, 5, 7, 7, 7, 7}, data)
}

func TestRef_MutColViews_ColMajor(t *testing.T) {
	// Column views are contiguous chunks; adding the row index shifts
	// within each run.
	data := seed16()
	m, err := matrix.RefFromValues[layout.ColMajor, byte](4, 4, data)
	require.NoError(t, err)
	for _, col := range m.MutColViews() {
		for i := 0; i < col.Len(); i++ {
			v, err := col.At(i)
			require.NoError(t, err)
			require.NoError(t, col.Set(i, v+byte(i)))
		}
	}
	require.Equal(t, []byte{1, 2, 3, 4, 2, 3, 4, 5, 3, 4, 5, 6, 4, 5, 6, 7}, data)
}

func TestRef_RowMajor_FirstColumn(t *testing.T) {
	data := seed16()
	m, err := matrix.RefFromValues[layout.RowMajor, byte](4, 4, data)
	require.NoError(t, err)
	// Row-major: column 0 reads the head of each run.
	col, err := m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, col.Values())
}

func TestRef_FillWritesThrough(t *testing.T) {
	data := seed16()
	m, err := matrix.RefFromValues[layout.RowMajor, byte](4, 4, data)
	require.NoError(t, err)
	// Row-major FillCol hits the strided positions 1, 5, 9, 13.
	require.NoError(t, m.FillCol(1, []byte{7, 7, 7, 7}))
	require.Equal(t, byte(7), data[1])
	require.Equal(t, byte(7), data[5])
	require.Equal(t, byte(7), data[9])
	require.Equal(t, byte(7), data[13])
}
