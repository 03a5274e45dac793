package heap

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"rowstore/internal/record"
	"rowstore/internal/storage"
)

var (
	// ErrRowNotFound reports an index at or past the current row count.
	ErrRowNotFound = storage.ErrRowNotFound
	// ErrRowCorrupted reports stored bytes the codec can no longer decode.
	// Kept distinct from ErrRowNotFound so callers can tell "no such
	// row" from "row is damaged".
	ErrRowCorrupted = errors.New("heap: row bytes are corrupt")
)

// Table = RowStore + Codec, wrapper row-level on top of the raw store:
// operates on record.Row instead of raw []byte. The row width is bound
// to the codec width at construction, so the underlying store never
// sees a mismatched row.
type Table struct {
	Name  string
	Codec record.Codec

	store *storage.RowStore

	// Decoded-row cache. Rows are append-only and never rewritten, so
	// cached entries cannot go stale.
	cache *ristretto.Cache[int, record.Row]
}

type tableConfig struct {
	cacheRows   int
	rowsPerPage int
}

type TableOption func(*tableConfig)

// WithRowCache caches up to maxRows decoded rows in front of the store.
func WithRowCache(maxRows int) TableOption {
	return func(c *tableConfig) { c.cacheRows = maxRows }
}

// WithRowsPerPage forwards the rows-per-page override to the store.
func WithRowsPerPage(n int) TableOption {
	return func(c *tableConfig) { c.rowsPerPage = n }
}

// NewTable builds an empty table whose rows are encoded by codec.
func NewTable(name string, codec record.Codec, pageSize int, opts ...TableOption) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	storeOpts := []storage.RowStoreOption{storage.WithRowSize(codec.Width())}
	if cfg.rowsPerPage > 0 {
		storeOpts = append(storeOpts, storage.WithRowsPerPage(cfg.rowsPerPage))
	}
	store, err := storage.NewRowStore(pageSize, storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("heap: build table %s: %w", name, err)
	}

	t := &Table{Name: name, Codec: codec, store: store}
	if cfg.cacheRows > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[int, record.Row]{
			NumCounters: int64(cfg.cacheRows) * 10,
			MaxCost:     int64(cfg.cacheRows),
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("heap: build row cache: %w", err)
		}
		t.cache = cache
	}
	return t, nil
}

// Len returns the number of rows inserted so far.
func (t *Table) Len() int {
	return t.store.Len()
}

// PageCount returns the number of pages backing the table.
func (t *Table) PageCount() int {
	return t.store.PageCount()
}

// Insert encodes r and appends it, returning the new row's index.
func (t *Table) Insert(r record.Row) (int, error) {
	data, err := t.Codec.Encode(r)
	if err != nil {
		return -1, err
	}
	idx := t.store.Len()
	if err := t.store.Push(data); err != nil {
		return -1, err
	}
	if t.cache != nil {
		t.cache.Set(idx, r, 1)
	}
	return idx, nil
}

// Get reads and decodes the row at idx.
func (t *Table) Get(idx int) (record.Row, error) {
	if t.cache != nil {
		if r, ok := t.cache.Get(idx); ok && idx < t.store.Len() {
			return r, nil
		}
	}
	data, err := t.store.ReadRow(idx)
	if err != nil {
		return record.Row{}, err
	}
	r, err := t.Codec.Decode(data)
	if err != nil {
		// The store handed back exactly RowSize bytes, so any decode
		// failure means the stored bytes themselves are bad.
		return record.Row{}, fmt.Errorf("%w: row %d: %v", ErrRowCorrupted, idx, err)
	}
	if t.cache != nil {
		t.cache.Set(idx, r, 1)
	}
	return r, nil
}

// Scan visits every row in insertion order.
func (t *Table) Scan(fn func(idx int, r record.Row) error) error {
	for i := 0; i < t.store.Len(); i++ {
		r, err := t.Get(i)
		if err != nil {
			return err
		}
		if err := fn(i, r); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the row cache, if any.
func (t *Table) Close() {
	if t.cache != nil {
		t.cache.Close()
		t.cache = nil
	}
}
