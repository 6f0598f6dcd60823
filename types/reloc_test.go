package types

import (
	"encoding/binary"
	"testing"
)

func TestRelocationInfoBitPackingLittleEndian(t *testing.T) {
	r := &RelocationInfo{
		Address:   42,
		Symbolnum: 0x323100,
		Pcrel:     true,
		Length:    RelocLengthByte,
		Extern:    false,
		Type:      0,
	}
	b := make([]byte, RelocationInfoSize)
	r.Put(b, binary.LittleEndian)

	if got, want := binary.LittleEndian.Uint32(b[4:]), uint32(0x01323100); got != want {
		t.Errorf("packed word = %#x, want %#x", got, want)
	}

	got, err := ParseRelocationInfo(b, binary.LittleEndian)
	if err != nil {
		t.Fatalf("ParseRelocationInfo failed: %v", err)
	}
	if *got != *r {
		t.Errorf("round trip = %+v, want %+v", got, r)
	}
}

func TestRelocationInfoBitPackingBigEndian(t *testing.T) {
	r := &RelocationInfo{
		Address:   -4,
		Symbolnum: 7,
		Pcrel:     true,
		Length:    RelocLengthLong,
		Extern:    true,
		Type:      3,
	}
	b := make([]byte, RelocationInfoSize)
	r.Put(b, binary.BigEndian)

	got, err := ParseRelocationInfo(b, binary.BigEndian)
	if err != nil {
		t.Fatalf("ParseRelocationInfo failed: %v", err)
	}
	if *got != *r {
		t.Errorf("round trip = %+v, want %+v", got, r)
	}
}

func TestRelocLengthBytes(t *testing.T) {
	tests := []struct {
		l    RelocLength
		want int
	}{
		{RelocLengthByte, 1},
		{RelocLengthWord, 2},
		{RelocLengthLong, 4},
		{RelocLengthQuad, 8},
	}
	for _, tt := range tests {
		if got := tt.l.Bytes(); got != tt.want {
			t.Errorf("RelocLength(%d).Bytes() = %d, want %d", tt.l, got, tt.want)
		}
	}
}
