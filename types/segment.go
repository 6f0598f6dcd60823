package types

import (
	"encoding/binary"
	"fmt"
)

// Sizes of the fixed-width records this core reads and writes, named as
// the planner names them.
const (
	SegmentCommand64Size = 72
	Section64Size        = 80
)

// Segment64Cmd is a 64-bit LC_SEGMENT_64 load command, without its inline
// section table (see Section64).
type Segment64Cmd struct {
	Cmdsize uint32 // SegmentCommand64Size + nsects*Section64Size
	Name    [16]byte
	Addr    uint64
	Size    uint64
	Offset  uint64
	Filesz  uint64
	Maxprot int32
	Initprot int32
	Nsects  uint32
	Flags   uint32
}

func (c *Segment64Cmd) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(LC_SEGMENT_64))
	o.PutUint32(b[4:], c.Cmdsize)
	copy(b[8:24], c.Name[:])
	o.PutUint64(b[24:], c.Addr)
	o.PutUint64(b[32:], c.Size)
	o.PutUint64(b[40:], c.Offset)
	o.PutUint64(b[48:], c.Filesz)
	o.PutUint32(b[56:], uint32(c.Maxprot))
	o.PutUint32(b[60:], uint32(c.Initprot))
	o.PutUint32(b[64:], c.Nsects)
	o.PutUint32(b[68:], c.Flags)
	return SegmentCommand64Size
}

// ParseSegment64Cmd reads a Segment64Cmd from b. The caller has already
// consumed and verified the leading cmd id.
func ParseSegment64Cmd(b []byte, o binary.ByteOrder) (*Segment64Cmd, error) {
	if len(b) < SegmentCommand64Size-4 {
		return nil, fmt.Errorf("%w: short segment_64 command", ErrMalformedInput)
	}
	c := &Segment64Cmd{}
	c.Cmdsize = o.Uint32(b[0:])
	copy(c.Name[:], b[4:20])
	c.Addr = o.Uint64(b[20:])
	c.Size = o.Uint64(b[28:])
	c.Offset = o.Uint64(b[36:])
	c.Filesz = o.Uint64(b[44:])
	c.Maxprot = int32(o.Uint32(b[52:]))
	c.Initprot = int32(o.Uint32(b[56:]))
	c.Nsects = o.Uint32(b[60:])
	c.Flags = o.Uint32(b[64:])
	return c, nil
}

// SectionType is the low 8 bits of a section's packed flags word.
type SectionType uint8

const (
	Regular          SectionType = 0x0
	Zerofill         SectionType = 0x1
	CstringLiterals  SectionType = 0x2
	FourByteLiterals SectionType = 0x3
	EightByteLiterals SectionType = 0x4
	LiteralPointers  SectionType = 0x5
	Coalesced        SectionType = 0xB
)

var sectionTypeStrings = []IntName{
	{uint32(Regular), "Regular"},
	{uint32(Zerofill), "Zerofill"},
	{uint32(CstringLiterals), "CstringLiterals"},
	{uint32(FourByteLiterals), "FourByteLiterals"},
	{uint32(EightByteLiterals), "EightByteLiterals"},
	{uint32(LiteralPointers), "LiteralPointers"},
	{uint32(Coalesced), "Coalesced"},
}

func (t SectionType) String() string { return StringName(uint32(t), sectionTypeStrings, false) }

// SectionTypeFromUint8 validates t against the known set.
func SectionTypeFromUint8(t uint8) (SectionType, error) {
	switch SectionType(t) {
	case Regular, Zerofill, CstringLiterals, FourByteLiterals, EightByteLiterals, LiteralPointers, Coalesced:
		return SectionType(t), nil
	}
	return 0, fmt.Errorf("%w: section type 0x%x", ErrUnknownKind, t)
}

// SectionAttrs is the upper 24 bits of a section's packed flags word.
type SectionAttrs uint32

const (
	PureInstructions SectionAttrs = 0x80000000
	NoToc            SectionAttrs = 0x40000000
	StripStaticSyms  SectionAttrs = 0x20000000
	LiveSupport      SectionAttrs = 0x08000000
	Debug            SectionAttrs = 0x02000000
	SomeInstructions SectionAttrs = 0x00000400
	ExtReloc         SectionAttrs = 0x00000200
	LocReloc         SectionAttrs = 0x00000100
)

var sectionAttrBits = []struct {
	bit  SectionAttrs
	name string
}{
	{PureInstructions, "PureInstructions"},
	{NoToc, "NoToc"},
	{StripStaticSyms, "StripStaticSyms"},
	{LiveSupport, "LiveSupport"},
	{Debug, "Debug"},
	{SomeInstructions, "SomeInstructions"},
	{ExtReloc, "ExtReloc"},
	{LocReloc, "LocReloc"},
}

// Has reports whether bit is set in a.
func (a SectionAttrs) Has(bit SectionAttrs) bool { return a&bit != 0 }

// ToUint32 OR-reduces a back into its wire bits.
func (a SectionAttrs) ToUint32() uint32 { return uint32(a) }

// SectionAttrsFromUint32 decodes the upper 24 bits of a packed flags word
// by scanning each set bit. Unknown bits fail with ErrUnknownKind.
func SectionAttrsFromUint32(v uint32) (SectionAttrs, error) {
	var known uint32
	for _, b := range sectionAttrBits {
		known |= uint32(b.bit)
	}
	if v&^known != 0 {
		return 0, fmt.Errorf("%w: section attrs 0x%x", ErrUnknownKind, v&^known)
	}
	return SectionAttrs(v), nil
}

func (a SectionAttrs) String() string {
	var s string
	for _, b := range sectionAttrBits {
		if a.Has(b.bit) {
			if s != "" {
				s += "|"
			}
			s += b.name
		}
	}
	return s
}

// Section64 is a 64-bit section_64 descriptor.
type Section64 struct {
	Name      [16]byte
	Seg       [16]byte
	Addr      uint64
	Size      uint64
	Offset    uint32
	Align     uint32
	Reloff    uint32
	Nreloc    uint32
	Type      SectionType
	Attrs     SectionAttrs
	Reserved1 uint32
	Reserved2 uint32
	Reserved3 uint32
}

func (s *Section64) Put(b []byte, o binary.ByteOrder) int {
	copy(b[0:16], s.Name[:])
	copy(b[16:32], s.Seg[:])
	o.PutUint64(b[32:], s.Addr)
	o.PutUint64(b[40:], s.Size)
	o.PutUint32(b[48:], s.Offset)
	o.PutUint32(b[52:], s.Align)
	o.PutUint32(b[56:], s.Reloff)
	o.PutUint32(b[60:], s.Nreloc)
	o.PutUint32(b[64:], s.Attrs.ToUint32()|uint32(s.Type))
	o.PutUint32(b[68:], s.Reserved1)
	o.PutUint32(b[72:], s.Reserved2)
	o.PutUint32(b[76:], s.Reserved3)
	return Section64Size
}

// ParseSection64 reads a Section64 from b.
func ParseSection64(b []byte, o binary.ByteOrder) (*Section64, error) {
	if len(b) < Section64Size {
		return nil, fmt.Errorf("%w: short section_64 entry", ErrMalformedInput)
	}
	s := &Section64{}
	copy(s.Name[:], b[0:16])
	copy(s.Seg[:], b[16:32])
	s.Addr = o.Uint64(b[32:])
	s.Size = o.Uint64(b[40:])
	s.Offset = o.Uint32(b[48:])
	s.Align = o.Uint32(b[52:])
	s.Reloff = o.Uint32(b[56:])
	s.Nreloc = o.Uint32(b[60:])
	flags := o.Uint32(b[64:])
	typ, err := SectionTypeFromUint8(uint8(flags & 0xff))
	if err != nil {
		return nil, err
	}
	attrs, err := SectionAttrsFromUint32(flags &^ 0xff)
	if err != nil {
		return nil, err
	}
	s.Type = typ
	s.Attrs = attrs
	s.Reserved1 = o.Uint32(b[68:])
	s.Reserved2 = o.Uint32(b[72:])
	s.Reserved3 = o.Uint32(b[76:])
	return s, nil
}
