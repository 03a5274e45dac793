package storage

// Page is one fixed-size block of in-memory storage. The buffer is
// zero-filled at allocation and its length never changes afterwards.
//
// A Page is owned exclusively by the RowStore that allocated it; the
// buffer is never handed out, every Read returns a copy.
type Page struct {
	buf []byte
}

// NewPage allocates a zero-filled page of exactly size bytes.
func NewPage(size int) (*Page, error) {
	if size <= 0 {
		return nil, ErrZeroPageSize
	}
	return &Page{buf: make([]byte, size)}, nil
}

// Size returns the fixed allocated length in bytes.
func (p *Page) Size() int {
	return len(p.buf)
}

// Write copies src into the page starting at off.
func (p *Page) Write(off int, src []byte) error {
	if off < 0 || off+len(src) > len(p.buf) {
		return ErrWriteExceedPageSize
	}
	copy(p.buf[off:], src)
	return nil
}

// Read returns a copy of count bytes starting at off. The copy keeps
// callers independent from later writes to the same page.
func (p *Page) Read(off, count int) ([]byte, error) {
	if count == 0 {
		return nil, ErrZeroLengthRead
	}
	if off < 0 || count < 0 || off+count > len(p.buf) {
		return nil, ErrReadExceedPageSize
	}
	out := make([]byte, count)
	copy(out, p.buf[off:off+count])
	return out, nil
}
