package types

import (
	"encoding/binary"
	"fmt"
)

// SymtabCmdSize is the fixed size of an LC_SYMTAB command.
const SymtabCmdSize = 24

// SymtabCmd is an LC_SYMTAB load command.
type SymtabCmd struct {
	Symoff  uint32
	Nsyms   uint32
	Stroff  uint32
	Strsize uint32
}

func (c *SymtabCmd) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(LC_SYMTAB))
	o.PutUint32(b[4:], SymtabCmdSize)
	o.PutUint32(b[8:], c.Symoff)
	o.PutUint32(b[12:], c.Nsyms)
	o.PutUint32(b[16:], c.Stroff)
	o.PutUint32(b[20:], c.Strsize)
	return SymtabCmdSize
}

// ParseSymtabCmd reads a SymtabCmd from b, which starts immediately after
// the already-consumed cmd id.
func ParseSymtabCmd(b []byte, o binary.ByteOrder) (*SymtabCmd, error) {
	if len(b) < SymtabCmdSize-4 {
		return nil, fmt.Errorf("%w: short symtab command", ErrMalformedInput)
	}
	return &SymtabCmd{
		Symoff:  o.Uint32(b[4:]),
		Nsyms:   o.Uint32(b[8:]),
		Stroff:  o.Uint32(b[12:]),
		Strsize: o.Uint32(b[16:]),
	}, nil
}

// DysymtabCmdSize is the fixed size of an LC_DYSYMTAB command.
const DysymtabCmdSize = 80

// DysymtabCmd is an LC_DYSYMTAB load command. In an MH_OBJECT produced by
// this core, only the local/external-defined/external-undefined counts are
// ever nonzero; the table-of-contents, module, reference, indirect-symbol
// and relocation tables are all zero.
type DysymtabCmd struct {
	Ilocalsym      uint32
	Nlocalsym      uint32
	Iextdefsym     uint32
	Nextdefsym     uint32
	Iundefsym      uint32
	Nundefsym      uint32
	Tocoffset      uint32
	Ntoc           uint32
	Modtaboff      uint32
	Nmodtab        uint32
	Extrefsymoff   uint32
	Nextrefsyms    uint32
	Indirectsymoff uint32
	Nindirectsyms  uint32
	Extreloff      uint32
	Nextrel        uint32
	Locreloff      uint32
	Nlocrel        uint32
}

func (c *DysymtabCmd) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(LC_DYSYMTAB))
	o.PutUint32(b[4:], DysymtabCmdSize)
	fields := []uint32{
		c.Ilocalsym, c.Nlocalsym, c.Iextdefsym, c.Nextdefsym,
		c.Iundefsym, c.Nundefsym, c.Tocoffset, c.Ntoc,
		c.Modtaboff, c.Nmodtab, c.Extrefsymoff, c.Nextrefsyms,
		c.Indirectsymoff, c.Nindirectsyms, c.Extreloff, c.Nextrel,
		c.Locreloff, c.Nlocrel,
	}
	for i, f := range fields {
		o.PutUint32(b[8+4*i:], f)
	}
	return DysymtabCmdSize
}

// ParseDysymtabCmd reads a DysymtabCmd from b, which starts immediately
// after the already-consumed cmd id.
func ParseDysymtabCmd(b []byte, o binary.ByteOrder) (*DysymtabCmd, error) {
	if len(b) < DysymtabCmdSize-4 {
		return nil, fmt.Errorf("%w: short dysymtab command", ErrMalformedInput)
	}
	read := func(i int) uint32 { return o.Uint32(b[4+4*i:]) }
	return &DysymtabCmd{
		Ilocalsym: read(0), Nlocalsym: read(1),
		Iextdefsym: read(2), Nextdefsym: read(3),
		Iundefsym: read(4), Nundefsym: read(5),
		Tocoffset: read(6), Ntoc: read(7),
		Modtaboff: read(8), Nmodtab: read(9),
		Extrefsymoff: read(10), Nextrefsyms: read(11),
		Indirectsymoff: read(12), Nindirectsyms: read(13),
		Extreloff: read(14), Nextrel: read(15),
		Locreloff: read(16), Nlocrel: read(17),
	}, nil
}
