package types

import (
	"encoding/binary"
	"testing"
)

func TestMagicKnown(t *testing.T) {
	tests := []struct {
		name string
		m    Magic
		want bool
	}{
		{"64-bit native", Magic64, true},
		{"64-bit swapped", Cigam64, true},
		{"32-bit native", Magic32, true},
		{"fat", FatMagic, true},
		{"garbage", Magic(0xdeadbeef), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Known(); got != tt.want {
				t.Errorf("Known() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMagicReversedAndIs64(t *testing.T) {
	if Magic64.Reversed() {
		t.Errorf("Magic64.Reversed() = true, want false")
	}
	if !Cigam64.Reversed() {
		t.Errorf("Cigam64.Reversed() = false, want true")
	}
	if !Magic64.Is64() || !Cigam64.Is64() {
		t.Errorf("Magic64/Cigam64.Is64() = false, want true")
	}
	if Magic32.Is64() || FatMagic.Is64() {
		t.Errorf("Magic32/FatMagic.Is64() = true, want false")
	}
}

func TestMagicByteOrder(t *testing.T) {
	if got := Magic64.ByteOrder(binary.LittleEndian); got != binary.LittleEndian {
		t.Errorf("Magic64.ByteOrder(LE) = %v, want LE", got)
	}
	if got := Cigam64.ByteOrder(binary.LittleEndian); got != binary.BigEndian {
		t.Errorf("Cigam64.ByteOrder(LE) = %v, want BE", got)
	}
	if got := Cigam64.ByteOrder(binary.BigEndian); got != binary.LittleEndian {
		t.Errorf("Cigam64.ByteOrder(BE) = %v, want LE", got)
	}
}
