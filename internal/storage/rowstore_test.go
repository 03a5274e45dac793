package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRowStore(t *testing.T) {
	_, err := NewRowStore(0)
	require.ErrorIs(t, err, ErrZeroPageSize)

	rs, err := NewRowStore(1024)
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
	assert.Equal(t, 0, rs.RowSize())
	assert.Equal(t, 1024, rs.PageSize())
}

func TestRowStorePushBindsRowSize(t *testing.T) {
	rs, err := NewRowStore(64)
	require.NoError(t, err)

	require.NoError(t, rs.Push(make([]byte, 16)))
	assert.Equal(t, 16, rs.RowSize())

	// later rows must match the bound width
	err = rs.Push(make([]byte, 15))
	require.ErrorIs(t, err, ErrRowSizeMismatch)
	err = rs.Push(make([]byte, 17))
	require.ErrorIs(t, err, ErrRowSizeMismatch)

	require.NoError(t, rs.Push(make([]byte, 16)))
	assert.Equal(t, 2, rs.Len())
}

func TestRowStorePushErrors(t *testing.T) {
	rs, err := NewRowStore(16)
	require.NoError(t, err)

	err = rs.Push(nil)
	require.ErrorIs(t, err, ErrEmptyRow)

	err = rs.Push(make([]byte, 17))
	require.ErrorIs(t, err, ErrRowTooLarge)
	assert.Equal(t, 0, rs.Len())
}

func TestRowStoreWithRowSize(t *testing.T) {
	rs, err := NewRowStore(64, WithRowSize(16))
	require.NoError(t, err)
	assert.Equal(t, 16, rs.RowSize())

	err = rs.Push(make([]byte, 8))
	require.ErrorIs(t, err, ErrRowSizeMismatch)

	_, err = NewRowStore(64, WithRowSize(0))
	require.ErrorIs(t, err, ErrEmptyRow)

	_, err = NewRowStore(64, WithRowSize(65))
	require.ErrorIs(t, err, ErrRowTooLarge)
}

func TestRowStoreWithRowsPerPage(t *testing.T) {
	// override must come after the row size is bound
	_, err := NewRowStore(64, WithRowsPerPage(2))
	require.ErrorIs(t, err, ErrBadRowsPerPage)

	_, err = NewRowStore(64, WithRowSize(16), WithRowsPerPage(5))
	require.ErrorIs(t, err, ErrBadRowsPerPage)

	rs, err := NewRowStore(64, WithRowSize(16), WithRowsPerPage(2))
	require.NoError(t, err)

	// with 2 rows per page the third row opens a second page
	for i := 0; i < 3; i++ {
		require.NoError(t, rs.Push(make([]byte, 16)))
	}
	assert.Equal(t, 2, rs.PageCount())
}

// Addressing: pageSize=1024 with rowSize=208 (two 100-byte strings
// plus a u64 id) gives 4 rows per page.
func TestRowStoreAddressing(t *testing.T) {
	rs, err := NewRowStore(1024, WithRowSize(208))
	require.NoError(t, err)
	assert.Equal(t, 4, rs.rowsPerPage)

	pageIdx, off := rs.locate(3)
	assert.Equal(t, 0, pageIdx)
	assert.Equal(t, 624, off)

	pageIdx, off = rs.locate(4)
	assert.Equal(t, 1, pageIdx)
	assert.Equal(t, 0, off)
}

func TestRowStorePageGrowth(t *testing.T) {
	rs, err := NewRowStore(1024, WithRowSize(208))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, rs.Push(make([]byte, 208)))
		assert.Equal(t, 1, rs.PageCount())
	}
	require.NoError(t, rs.Push(make([]byte, 208)))
	assert.Equal(t, 2, rs.PageCount())
	assert.Equal(t, 5, rs.Len())
}

func TestRowStoreReadRow(t *testing.T) {
	rs, err := NewRowStore(64, WithRowSize(8))
	require.NoError(t, err)

	rows := make([][]byte, 20)
	for i := range rows {
		rows[i] = []byte(fmt.Sprintf("row-%04d", i))
		require.NoError(t, rs.Push(rows[i]))
	}

	for i := range rows {
		got, err := rs.ReadRow(i)
		require.NoError(t, err)
		assert.Equal(t, rows[i], got)
	}
}

func TestRowStoreReadRowBoundary(t *testing.T) {
	rs, err := NewRowStore(64, WithRowSize(8))
	require.NoError(t, err)
	require.NoError(t, rs.Push(make([]byte, 8)))

	// Len() and anything past it both report not found
	for _, idx := range []int{rs.Len(), rs.Len() + 1, rs.Len() + 100} {
		_, err := rs.ReadRow(idx)
		require.ErrorIs(t, err, ErrRowNotFound)
	}
	_, err = rs.ReadRow(-1)
	require.ErrorIs(t, err, ErrRowNotFound)
}

func TestRowStoreReadRowReturnsCopy(t *testing.T) {
	rs, err := NewRowStore(64, WithRowSize(4))
	require.NoError(t, err)
	require.NoError(t, rs.Push([]byte{1, 2, 3, 4}))

	got, err := rs.ReadRow(0)
	require.NoError(t, err)
	got[0] = 99

	again, err := rs.ReadRow(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, again)
}
