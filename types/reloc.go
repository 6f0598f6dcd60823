package types

import (
	"encoding/binary"
	"fmt"
)

// RelocationInfoSize is the fixed size of a relocation_info entry.
const RelocationInfoSize = 8

// RelocLength is the 2-bit length code of a relocation, interpreted as
// 2^code bytes.
type RelocLength uint8

const (
	RelocLengthByte  RelocLength = 0 // 1 byte
	RelocLengthWord  RelocLength = 1 // 2 bytes
	RelocLengthLong  RelocLength = 2 // 4 bytes
	RelocLengthQuad  RelocLength = 3 // 8 bytes
)

// Bytes returns the patched field's width in bytes.
func (l RelocLength) Bytes() int { return 1 << uint(l) }

// RelocationInfo is a relocation_info entry describing how the linker
// should patch a location within a section's payload.
type RelocationInfo struct {
	Address   int32
	Symbolnum uint32 // 24-bit symbol number, or section ordinal if !Extern
	Pcrel     bool
	Length    RelocLength
	Extern    bool
	Type      uint8 // 4-bit machine-specific type
}

// Put encodes r into b in byte order o. The packed word's bit layout
// mirrors the C struct bit-field storage order, which differs between
// little- and big-endian hosts.
func (r *RelocationInfo) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(r.Address))
	symnum := r.Symbolnum & 0xffffff
	length := uint32(r.Length) & 0x3
	typ := uint32(r.Type) & 0xf
	var pcrel, extern uint32
	if r.Pcrel {
		pcrel = 1
	}
	if r.Extern {
		extern = 1
	}
	var packed uint32
	switch o {
	case binary.LittleEndian:
		packed = symnum | pcrel<<24 | length<<25 | extern<<27 | typ<<28
	case binary.BigEndian:
		packed = symnum<<8 | pcrel<<7 | length<<5 | extern<<4 | typ
	default:
		panic("types: unsupported byte order")
	}
	o.PutUint32(b[4:], packed)
	return RelocationInfoSize
}

// ParseRelocationInfo reads a RelocationInfo from b in byte order o.
func ParseRelocationInfo(b []byte, o binary.ByteOrder) (*RelocationInfo, error) {
	if len(b) < RelocationInfoSize {
		return nil, fmt.Errorf("%w: short relocation_info entry", ErrMalformedInput)
	}
	address := int32(o.Uint32(b[0:]))
	packed := o.Uint32(b[4:])

	r := &RelocationInfo{Address: address}
	switch o {
	case binary.LittleEndian:
		r.Symbolnum = packed & 0xffffff
		r.Pcrel = (packed>>24)&0x1 != 0
		r.Length = RelocLength((packed >> 25) & 0x3)
		r.Extern = (packed>>27)&0x1 != 0
		r.Type = uint8((packed >> 28) & 0xf)
	case binary.BigEndian:
		r.Symbolnum = packed >> 8
		r.Pcrel = (packed>>7)&0x1 != 0
		r.Length = RelocLength((packed >> 5) & 0x3)
		r.Extern = (packed>>4)&0x1 != 0
		r.Type = uint8(packed & 0xf)
	default:
		return nil, fmt.Errorf("%w: unsupported byte order", ErrMalformedInput)
	}
	return r, nil
}
