package types

import (
	"encoding/binary"
	"testing"
)

func TestSymtabCmdRoundTrip(t *testing.T) {
	c := &SymtabCmd{Symoff: 216, Nsyms: 1, Stroff: 232, Strsize: 7}
	b := make([]byte, SymtabCmdSize)
	c.Put(b, binary.LittleEndian)

	if got := binary.LittleEndian.Uint32(b[0:]); got != uint32(LC_SYMTAB) {
		t.Errorf("cmd = %#x, want LC_SYMTAB", got)
	}

	got, err := ParseSymtabCmd(b[4:], binary.LittleEndian)
	if err != nil {
		t.Fatalf("ParseSymtabCmd failed: %v", err)
	}
	if *got != *c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestDysymtabCmdRoundTrip(t *testing.T) {
	c := &DysymtabCmd{Nextdefsym: 3}
	b := make([]byte, DysymtabCmdSize)
	c.Put(b, binary.LittleEndian)

	got, err := ParseDysymtabCmd(b[4:], binary.LittleEndian)
	if err != nil {
		t.Fatalf("ParseDysymtabCmd failed: %v", err)
	}
	if *got != *c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}
