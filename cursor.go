package macho

import (
	"encoding/binary"
	"fmt"

	"github.com/appsworld/go-macho-asm/types"
)

// Cursor is a positioned reader over an immutable byte slice, with
// runtime-selectable multi-byte endianness. It never copies the backing
// slice; Slice and SliceAt hand out borrowed views so callers can jump to
// section payloads and the string table without allocating.
type Cursor struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// NewCursor wraps buf for reading, starting at position 0 in host-native
// byte order.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, order: binary.LittleEndian}
}

// SetOrder switches the cursor's endianness for all subsequent multi-byte
// reads. Used once, immediately after decoding the magic word.
func (c *Cursor) SetOrder(o binary.ByteOrder) { c.order = o }

// Order returns the cursor's current byte order.
func (c *Cursor) Order() binary.ByteOrder { return c.order }

// Pos returns the cursor's current position.
func (c *Cursor) Pos() int { return c.pos }

// SetPos seeks the cursor to an absolute position.
func (c *Cursor) SetPos(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return fmt.Errorf("%w: seek to %d past end (len %d)", types.ErrMalformedInput, pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	return c.SetPos(c.pos + n)
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Slice returns the cursor's full backing buffer, for callers that need to
// jump to an absolute offset (section payloads, string tables) outside the
// cursor's own sequential progress.
func (c *Cursor) Slice() []byte { return c.buf }

// SliceAt returns the n bytes starting at absolute offset off, without
// moving the cursor.
func (c *Cursor) SliceAt(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(c.buf) {
		return nil, fmt.Errorf("%w: region [%d,%d) out of bounds (len %d)", types.ErrMalformedInput, off, off+n, len(c.buf))
	}
	return c.buf[off : off+n], nil
}

func (c *Cursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return fmt.Errorf("%w: need %d bytes at %d, have %d", types.ErrMalformedInput, n, c.pos, len(c.buf)-c.pos)
	}
	return nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadU16 reads a u16 in the cursor's current byte order.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := c.order.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a u32 in the cursor's current byte order.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := c.order.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadI32 reads an i32 in the cursor's current byte order.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadU64 reads a u64 in the cursor's current byte order.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := c.order.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadFixedString reads exactly n bytes and decodes the text up to the
// first NUL (or all n bytes, if none) as ASCII.
func (c *Cursor) ReadFixedString(n int) (string, error) {
	if err := c.need(n); err != nil {
		return "", err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return types.FixedString(b), nil
}

// ReadCString reads bytes up to and including the next NUL, returning the
// text before it. The NUL is consumed but not returned.
func (c *Cursor) ReadCString() (string, error) {
	start := c.pos
	for c.pos < len(c.buf) {
		if c.buf[c.pos] == 0 {
			s := string(c.buf[start:c.pos])
			c.pos++
			return s, nil
		}
		c.pos++
	}
	return "", fmt.Errorf("%w: unterminated string at %d", types.ErrMalformedInput, start)
}

// Writer is an append-only byte sink written in host-native order, the
// only order this core ever writes.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriter returns an empty Writer using host-native (little-endian x86_64)
// byte order.
func NewWriter() *Writer {
	return &Writer{order: binary.LittleEndian}
}

// Order returns the writer's byte order.
func (w *Writer) Order() binary.ByteOrder { return w.order }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return w.buf }

// Grow extends the buffer by n zero bytes and returns a slice over the new
// region, for record Put methods that write directly into place.
func (w *Writer) Grow(n int) []byte {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return w.buf[start : start+n]
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteZero appends n zero bytes, used for alignment padding.
func (w *Writer) WriteZero(n int) { w.buf = append(w.buf, make([]byte, n)...) }

// WriteFixedString appends s padded with NUL to exactly n bytes. It panics
// with an EncodingViolation-wrapped error if s is longer than n bytes or
// contains non-ASCII characters: a valid Object must never reach this
// precondition.
func (w *Writer) WriteFixedString(s string, n int) {
	if len(s) > n {
		panic(fmt.Errorf("%w: name %q longer than %d bytes", types.ErrEncodingViolation, s, n))
	}
	if !types.IsASCII(s) {
		panic(fmt.Errorf("%w: name %q is not ASCII", types.ErrEncodingViolation, s))
	}
	b := w.Grow(n)
	types.PutFixedString(b, s, n)
}
