package types

import (
	"encoding/binary"
	"testing"
)

func TestParseNTypeNorm(t *testing.T) {
	f, err := ParseNType(uint8(Sect) | nTypeExt)
	if err != nil {
		t.Fatalf("ParseNType failed: %v", err)
	}
	if f.IsStab || f.Type != Sect || !f.Ext {
		t.Errorf("decoded = %+v, want Sect|Ext", f)
	}
	if got := f.ToByte(); got != uint8(Sect)|nTypeExt {
		t.Errorf("ToByte() = %#x, want %#x", got, uint8(Sect)|nTypeExt)
	}
}

func TestParseNTypeStab(t *testing.T) {
	f, err := ParseNType(uint8(Gsym))
	if err != nil {
		t.Fatalf("ParseNType failed: %v", err)
	}
	if !f.IsStab || f.Stab != Gsym {
		t.Errorf("decoded = %+v, want Gsym stab", f)
	}
	if got := f.ToByte(); got != uint8(Gsym) {
		t.Errorf("ToByte() = %#x, want %#x", got, uint8(Gsym))
	}
}

func TestParseNTypeUnknownStab(t *testing.T) {
	if _, err := ParseNType(0xe0); err == nil {
		t.Errorf("ParseNType(0xe0) succeeded, want ErrUnknownKind")
	}
}

func TestNlist64RoundTrip(t *testing.T) {
	n := &Nlist64{
		Strx:  1,
		Type:  NTypeField{Type: Undf, Ext: true},
		Sect:  0,
		Desc:  0,
		Value: 0,
	}
	b := make([]byte, Nlist64Size)
	n.Put(b, binary.LittleEndian)

	got, err := ParseNlist64(b, binary.LittleEndian)
	if err != nil {
		t.Fatalf("ParseNlist64 failed: %v", err)
	}
	if *got != *n {
		t.Errorf("round trip = %+v, want %+v", got, n)
	}
}
