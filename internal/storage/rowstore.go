package storage

// RowStore is an append-only store of fixed-width rows laid out over a
// list of fixed-size pages. A logical row index maps to a physical
// (page, offset) pair; rows never span pages.
//
// The row width is either fixed at construction via WithRowSize or
// bound by the first Push. Once bound it never changes.
type RowStore struct {
	pages    []*Page
	pageSize int

	// rowSize is 0 while the store is unbound.
	rowSize     int
	rowsPerPage int
	numRows     int
}

// RowStoreOption configures a RowStore at construction time.
type RowStoreOption func(*RowStore) error

// WithRowSize binds the row width up front instead of on first Push.
func WithRowSize(n int) RowStoreOption {
	return func(rs *RowStore) error {
		if n <= 0 {
			return ErrEmptyRow
		}
		if n > rs.pageSize {
			return ErrRowTooLarge
		}
		rs.bind(n)
		return nil
	}
}

// WithRowsPerPage overrides the floor-division default. Fewer rows per
// page than the default wastes more of each page; more is rejected.
// Requires the row width to be bound first (use WithRowSize before it).
func WithRowsPerPage(n int) RowStoreOption {
	return func(rs *RowStore) error {
		if rs.rowSize == 0 || n <= 0 || n*rs.rowSize > rs.pageSize {
			return ErrBadRowsPerPage
		}
		rs.rowsPerPage = n
		return nil
	}
}

// NewRowStore builds an empty store with the given page size.
func NewRowStore(pageSize int, opts ...RowStoreOption) (*RowStore, error) {
	if pageSize <= 0 {
		return nil, ErrZeroPageSize
	}
	rs := &RowStore{pageSize: pageSize}
	for _, opt := range opts {
		if err := opt(rs); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// Len returns the number of rows pushed so far.
func (rs *RowStore) Len() int {
	return rs.numRows
}

// PageSize returns the fixed page size in bytes.
func (rs *RowStore) PageSize() int {
	return rs.pageSize
}

// RowSize returns the bound row width, or 0 while unbound.
func (rs *RowStore) RowSize() int {
	return rs.rowSize
}

// PageCount returns the number of pages allocated so far.
func (rs *RowStore) PageCount() int {
	return len(rs.pages)
}

func (rs *RowStore) bind(rowSize int) {
	rs.rowSize = rowSize
	// Floor division: the remainder bytes of every page stay unused.
	rs.rowsPerPage = rs.pageSize / rowSize
}

// locate maps a row index to its page index and byte offset. Valid only
// once the store is bound.
func (rs *RowStore) locate(rowIdx int) (pageIdx, off int) {
	pageIdx = rowIdx / rs.rowsPerPage
	off = (rowIdx % rs.rowsPerPage) * rs.rowSize
	return pageIdx, off
}

// Push appends one pre-serialized row. The first Push binds the row
// width for the lifetime of the store; later rows must match it.
func (rs *RowStore) Push(row []byte) error {
	if len(row) == 0 {
		return ErrEmptyRow
	}
	if rs.rowSize == 0 {
		if len(row) > rs.pageSize {
			return ErrRowTooLarge
		}
		rs.bind(len(row))
	} else if len(row) != rs.rowSize {
		return ErrRowSizeMismatch
	}

	pageIdx, off := rs.locate(rs.numRows)
	for pageIdx >= len(rs.pages) {
		p, err := NewPage(rs.pageSize)
		if err != nil {
			return err
		}
		rs.pages = append(rs.pages, p)
	}
	if err := rs.pages[pageIdx].Write(off, row); err != nil {
		return err
	}
	rs.numRows++
	return nil
}

// ReadRow returns a copy of the serialized row at rowIdx.
func (rs *RowStore) ReadRow(rowIdx int) ([]byte, error) {
	if rowIdx < 0 || rowIdx >= rs.numRows {
		return nil, ErrRowNotFound
	}
	pageIdx, off := rs.locate(rowIdx)
	return rs.pages[pageIdx].Read(off, rs.rowSize)
}
