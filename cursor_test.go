package macho

import (
	"encoding/binary"
	"testing"
)

func TestCursorReadSequence(t *testing.T) {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:], 0x01000007)
	binary.LittleEndian.PutUint16(buf[4:], 42)
	buf[6] = 7

	c := NewCursor(buf)
	v32, err := c.ReadU32()
	if err != nil || v32 != 0x01000007 {
		t.Fatalf("ReadU32() = %#x, %v", v32, err)
	}
	v16, err := c.ReadU16()
	if err != nil || v16 != 42 {
		t.Fatalf("ReadU16() = %d, %v", v16, err)
	}
	v8, err := c.ReadU8()
	if err != nil || v8 != 7 {
		t.Fatalf("ReadU8() = %d, %v", v8, err)
	}
	if c.Pos() != 7 {
		t.Errorf("Pos() = %d, want 7", c.Pos())
	}
}

func TestCursorReadPastEnd(t *testing.T) {
	c := NewCursor(make([]byte, 2))
	if _, err := c.ReadU32(); err == nil {
		t.Errorf("ReadU32() on short buffer succeeded, want error")
	}
}

func TestCursorFixedAndCString(t *testing.T) {
	buf := append([]byte("__TEXT"), make([]byte, 10)...)
	buf = append(buf, "start\x00extra"...)

	c := NewCursor(buf)
	name, err := c.ReadFixedString(16)
	if err != nil {
		t.Fatalf("ReadFixedString failed: %v", err)
	}
	if name != "__TEXT" {
		t.Errorf("ReadFixedString() = %q, want __TEXT", name)
	}

	s, err := c.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString failed: %v", err)
	}
	if s != "start" {
		t.Errorf("ReadCString() = %q, want start", s)
	}
}

func TestCursorSliceAtBounds(t *testing.T) {
	c := NewCursor(make([]byte, 8))
	if _, err := c.SliceAt(4, 4); err != nil {
		t.Errorf("SliceAt(4,4) failed: %v", err)
	}
	if _, err := c.SliceAt(4, 8); err == nil {
		t.Errorf("SliceAt(4,8) succeeded, want out-of-bounds error")
	}
}

func TestWriterGrowAndFixedString(t *testing.T) {
	w := NewWriter()
	w.WriteFixedString("__text", 16)
	if got, want := w.Len(), 16; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if w.Bytes()[6] != 0 {
		t.Errorf("expected NUL padding after name")
	}
}

func TestWriterFixedStringTooLong(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("WriteFixedString with overlong name did not panic")
		}
	}()
	w := NewWriter()
	w.WriteFixedString("this-name-is-way-too-long-for-sixteen-bytes", 16)
}
