package storage

import "errors"

const (
	OneB  = 1 << 0  // 1
	OneKB = 1 << 10 // 1,024
	OneMB = 1 << 20 // 1,048,576

	// DefaultPageSize is 4 KiB.
	DefaultPageSize = 4 * OneKB
)

var (
	// page
	ErrZeroPageSize        = errors.New("storage: page size must be greater than zero")
	ErrWriteExceedPageSize = errors.New("storage: write would exceed page size")
	ErrReadExceedPageSize  = errors.New("storage: read would exceed page size")
	ErrZeroLengthRead      = errors.New("storage: read of zero bytes")

	// row store
	ErrEmptyRow        = errors.New("storage: row must not be empty")
	ErrRowTooLarge     = errors.New("storage: row size exceeds page size")
	ErrRowSizeMismatch = errors.New("storage: row size does not match bound row size")
	ErrRowNotFound     = errors.New("storage: row not found")
	ErrBadRowsPerPage  = errors.New("storage: rows per page does not fit page size")
)
