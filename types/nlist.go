package types

import (
	"encoding/binary"
	"fmt"
)

// Nlist64Size is the fixed size of an nlist_64 symbol-table entry.
const Nlist64Size = 16

// Bit masks for the nlist n_type byte.
const (
	nTypeStab = 0xe0 // any of the top three bits set: debug symbol
	nTypePext = 0x10 // private external symbol bit
	nTypeType = 0x0e // symbol type field
	nTypeExt  = 0x01 // external symbol bit
)

// NType is the symbol-kind field of a Norm-variant nlist type byte.
type NType uint8

const (
	Undf NType = 0x0 // undefined
	Abs  NType = 0x2 // absolute
	Indr NType = 0xa // indirect
	Pbud NType = 0xc // prebound undefined
	Sect NType = 0xe // defined in a section
)

var nTypeStrings = []IntName{
	{uint32(Undf), "Undf"},
	{uint32(Abs), "Abs"},
	{uint32(Indr), "Indr"},
	{uint32(Pbud), "Pbud"},
	{uint32(Sect), "Sect"},
}

func (t NType) String() string { return StringName(uint32(t), nTypeStrings, false) }

func nTypeFromByte(b uint8) (NType, error) {
	switch NType(b) {
	case Undf, Abs, Indr, Pbud, Sect:
		return NType(b), nil
	}
	return 0, fmt.Errorf("%w: nlist type 0x%x", ErrUnknownKind, b)
}

// Stab is the legacy debug-symbol kind. This core's only supported value
// is Gsym; any other nonzero stab byte fails with ErrUnknownKind.
type Stab uint8

const Gsym Stab = 0x20

// NTypeField is the decoded form of an nlist's n_type byte: either a
// legacy Stab debug entry, or a Norm entry carrying the private-external
// flag, the symbol kind, and the external flag.
type NTypeField struct {
	IsStab bool
	Stab   Stab // valid iff IsStab

	Pext bool // valid iff !IsStab
	Type NType
	Ext  bool
}

// ParseNType decodes a raw n_type byte: if any of the top three
// bits are set, it is a Stab entry (this core accepts only Gsym); otherwise
// it decodes the private-external bit, the 3-bit type field, and the
// external bit.
func ParseNType(b uint8) (NTypeField, error) {
	if b&nTypeStab != 0 {
		if Stab(b) != Gsym {
			return NTypeField{}, fmt.Errorf("%w: stab 0x%x", ErrUnknownKind, b)
		}
		return NTypeField{IsStab: true, Stab: Gsym}, nil
	}
	typ, err := nTypeFromByte(b & nTypeType)
	if err != nil {
		return NTypeField{}, err
	}
	return NTypeField{
		Pext: b&nTypePext != 0,
		Type: typ,
		Ext:  b&nTypeExt != 0,
	}, nil
}

// ToByte re-encodes the field into its wire byte.
func (f NTypeField) ToByte() uint8 {
	if f.IsStab {
		return uint8(f.Stab)
	}
	var b uint8
	if f.Pext {
		b |= nTypePext
	}
	b |= uint8(f.Type)
	if f.Ext {
		b |= nTypeExt
	}
	return b
}

// Nlist64 is a 64-bit symbol-table entry (nlist_64).
type Nlist64 struct {
	Strx  uint32
	Type  NTypeField
	Sect  uint8 // 1-based section ordinal; 0 means none
	Desc  uint16
	Value uint64
}

func (n *Nlist64) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], n.Strx)
	b[4] = n.Type.ToByte()
	b[5] = n.Sect
	o.PutUint16(b[6:], n.Desc)
	o.PutUint64(b[8:], n.Value)
	return Nlist64Size
}

// ParseNlist64 reads an Nlist64 from b.
func ParseNlist64(b []byte, o binary.ByteOrder) (*Nlist64, error) {
	if len(b) < Nlist64Size {
		return nil, fmt.Errorf("%w: short nlist_64 entry", ErrMalformedInput)
	}
	typ, err := ParseNType(b[4])
	if err != nil {
		return nil, err
	}
	return &Nlist64{
		Strx:  o.Uint32(b[0:]),
		Type:  typ,
		Sect:  b[5],
		Desc:  o.Uint16(b[6:]),
		Value: o.Uint64(b[8:]),
	}, nil
}
