package record

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"rowstore/internal/alias/bx"
)

// IDSize is the encoded width of the row id (u64 little-endian).
const IDSize = 8

// ---- Errors ----
var (
	ErrNoID         = errors.New("record: row id is not set")
	ErrFieldTooLong = errors.New("record: string field exceeds max length")
	ErrZeroByte     = errors.New("record: string field contains a zero byte")
	ErrBufferLen    = errors.New("record: buffer length does not match row width")
	ErrStringRead   = errors.New("record: malformed string field")
)

// Codec converts a Row to and from a fixed-width byte layout. The max
// string length is a schema constant carried by the codec value, so it
// is identical on every encode and decode sharing a table.
type Codec interface {
	// Width is the fixed encoded size of one row in bytes.
	Width() int
	MaxStringLen() int
	Encode(r Row) ([]byte, error)
	Decode(buf []byte) (Row, error)
}

// ---- FixedCodec ----
// Layout (width = 2*L + 8, L = max string length):
//
//	[0, L)      username, zero-padded
//	[L, 2L)     email, zero-padded
//	[2L, 2L+8)  id, u64 LE
//
// The first zero byte inside a field marks the end of the string, so
// fields must be shorter than L and must not contain a zero byte.
type FixedCodec struct {
	maxStringLen int
}

func NewFixedCodec(maxStringLen int) *FixedCodec {
	return &FixedCodec{maxStringLen: maxStringLen}
}

func (c *FixedCodec) Width() int        { return 2*c.maxStringLen + IDSize }
func (c *FixedCodec) MaxStringLen() int { return c.maxStringLen }

func (c *FixedCodec) Encode(r Row) ([]byte, error) {
	if r.ID == nil {
		return nil, ErrNoID
	}
	// A field of exactly L bytes would leave no room for the zero
	// terminator and could never be decoded again.
	for _, s := range []string{r.Username, r.Email} {
		if len(s) >= c.maxStringLen {
			return nil, ErrFieldTooLong
		}
		if strings.IndexByte(s, 0) >= 0 {
			return nil, ErrZeroByte
		}
	}
	buf := make([]byte, c.Width())
	copy(buf[0:], r.Username)
	copy(buf[c.maxStringLen:], r.Email)
	bx.PutU64At(buf, 2*c.maxStringLen, *r.ID)
	return buf, nil
}

func (c *FixedCodec) Decode(buf []byte) (Row, error) {
	if len(buf) != c.Width() {
		return Row{}, ErrBufferLen
	}
	username, err := readZeroTerminated(buf[0:c.maxStringLen])
	if err != nil {
		return Row{}, err
	}
	email, err := readZeroTerminated(buf[c.maxStringLen : 2*c.maxStringLen])
	if err != nil {
		return Row{}, err
	}
	id := bx.U64At(buf, 2*c.maxStringLen)
	return Row{ID: &id, Username: username, Email: email}, nil
}

// readZeroTerminated extracts the string before the first zero byte of
// field. No zero byte means the field was written past its bounds.
func readZeroTerminated(field []byte) (string, error) {
	end := bytes.IndexByte(field, 0)
	if end < 0 {
		return "", ErrStringRead
	}
	if !utf8.Valid(field[:end]) {
		return "", ErrStringRead
	}
	return string(field[:end]), nil
}

// ---- PrefixCodec ----
// Length-prefixed variant (width = 2*(2+L) + 8): each string field is a
// u16 LE length followed by L reserved bytes. Lifts the FixedCodec
// restriction on embedded zero bytes.
type PrefixCodec struct {
	maxStringLen int
}

func NewPrefixCodec(maxStringLen int) *PrefixCodec {
	return &PrefixCodec{maxStringLen: maxStringLen}
}

func (c *PrefixCodec) fieldSize() int    { return 2 + c.maxStringLen }
func (c *PrefixCodec) Width() int        { return 2*c.fieldSize() + IDSize }
func (c *PrefixCodec) MaxStringLen() int { return c.maxStringLen }

func (c *PrefixCodec) Encode(r Row) ([]byte, error) {
	if r.ID == nil {
		return nil, ErrNoID
	}
	if len(r.Username) > c.maxStringLen || len(r.Email) > c.maxStringLen {
		return nil, ErrFieldTooLong
	}
	buf := make([]byte, c.Width())
	putField(buf[0:c.fieldSize()], r.Username)
	putField(buf[c.fieldSize():2*c.fieldSize()], r.Email)
	bx.PutU64At(buf, 2*c.fieldSize(), *r.ID)
	return buf, nil
}

func (c *PrefixCodec) Decode(buf []byte) (Row, error) {
	if len(buf) != c.Width() {
		return Row{}, ErrBufferLen
	}
	username, err := readField(buf[0:c.fieldSize()], c.maxStringLen)
	if err != nil {
		return Row{}, err
	}
	email, err := readField(buf[c.fieldSize():2*c.fieldSize()], c.maxStringLen)
	if err != nil {
		return Row{}, err
	}
	id := bx.U64At(buf, 2*c.fieldSize())
	return Row{ID: &id, Username: username, Email: email}, nil
}

func putField(field []byte, s string) {
	bx.PutU16(field, uint16(len(s)))
	copy(field[2:], s)
}

func readField(field []byte, maxLen int) (string, error) {
	n := int(bx.U16(field))
	if n > maxLen {
		return "", ErrStringRead
	}
	s := field[2 : 2+n]
	if !utf8.Valid(s) {
		return "", ErrStringRead
	}
	return string(s), nil
}
