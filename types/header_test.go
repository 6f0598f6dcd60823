package types

import (
	"encoding/binary"
	"testing"
)

func TestFileHeaderPut(t *testing.T) {
	h := FileHeader{
		Magic:        Magic64,
		CPU:          CPUTypeX8664,
		SubCPU:       CPUSubtypeX8664All,
		Type:         MH_OBJECT,
		NCommands:    2,
		SizeCommands: 176,
		Flags:        0,
		Reserved:     0,
	}
	b := make([]byte, FileHeaderSize)
	n := h.Put(b, binary.LittleEndian)
	if n != FileHeaderSize {
		t.Fatalf("Put() = %d, want %d", n, FileHeaderSize)
	}
	if got := binary.LittleEndian.Uint32(b[0:]); got != uint32(Magic64) {
		t.Errorf("magic = %#x, want %#x", got, uint32(Magic64))
	}
	if got := binary.LittleEndian.Uint32(b[4:]); got != uint32(CPUTypeX8664) {
		t.Errorf("cputype = %#x, want %#x", got, uint32(CPUTypeX8664))
	}
	if got := binary.LittleEndian.Uint32(b[16:]); got != 2 {
		t.Errorf("ncmds = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(b[20:]); got != 176 {
		t.Errorf("sizeofcmds = %d, want 176", got)
	}
}

func TestHeaderFlagFromUint32(t *testing.T) {
	f, err := HeaderFlagFromUint32(uint32(NoUndefs | TwoLevel))
	if err != nil {
		t.Fatalf("HeaderFlagFromUint32 failed: %v", err)
	}
	if !f.Has(NoUndefs) || !f.Has(TwoLevel) {
		t.Errorf("decoded flags missing expected bits: %v", f.List())
	}
	if f.Has(Pie) {
		t.Errorf("decoded flags unexpectedly has Pie")
	}

	if _, err := HeaderFlagFromUint32(0x40); err == nil {
		t.Errorf("HeaderFlagFromUint32(0x40) succeeded, want ErrUnknownKind")
	}
}

func TestHeaderFlagIdempotence(t *testing.T) {
	// P8: from_u32(to_u32(f)) = f
	want := NoUndefs | TwoLevel | SubsectionsViaSymbols
	got, err := HeaderFlagFromUint32(want.ToUint32())
	if err != nil {
		t.Fatalf("HeaderFlagFromUint32 failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestHeaderFileTypeReaderAccepts(t *testing.T) {
	if !MH_OBJECT.ReaderAccepts() {
		t.Errorf("MH_OBJECT.ReaderAccepts() = false, want true")
	}
	if HeaderFileType(0x50).ReaderAccepts() {
		t.Errorf("HeaderFileType(0x50).ReaderAccepts() = true, want false")
	}
}
