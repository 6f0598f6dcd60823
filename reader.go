package macho

import (
	"encoding/binary"
	"fmt"

	"github.com/appsworld/go-macho-asm/types"
)

// FullMacho is the in-memory result of parsing a 64-bit Mach-O object file:
// the header, the segment and its sections (with payload bytes and
// resolved relocations), the symbol table, and the string table.
type FullMacho struct {
	Header types.FileHeader

	Segment  *types.Segment64Cmd
	Sections []*types.Section64
	// Payloads is parallel to Sections; nil for a Zerofill (bss) section.
	Payloads [][]byte
	// Relocs is parallel to Sections.
	Relocs [][]*types.RelocationInfo

	Symtab   *types.SymtabCmd
	Dysymtab *types.DysymtabCmd     // nil if no LC_DYSYMTAB was present
	Build    *types.BuildVersionCmd // nil if no LC_BUILD_VERSION was present

	Nlists      []*types.Nlist64
	StringTable *types.StringTable
}

// segPadding rounds up to the next 8-byte boundary past parsed bytes. It
// is always 0 for the fixed-size records this core reads (72 and 80 are
// both multiples of 8), but is kept explicit for records that do not end
// on an 8-byte boundary.
func segPadding(parsed int) int {
	return (8 - parsed%8) % 8
}

// Read parses b into a FullMacho, auto-detecting endianness from the magic
// word and dispatching each load command by peeking its id.
func Read(b []byte) (*FullMacho, error) {
	c := NewCursor(b)

	magicWord, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	magic := types.Magic(magicWord)
	if !magic.Known() {
		return nil, fmt.Errorf("%w: 0x%x", types.ErrBadMagic, magicWord)
	}
	if !magic.Is64() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupported, magic)
	}
	c.SetOrder(magic.ByteOrder(binary.LittleEndian))
	order := c.Order()

	cpu, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	subcpu, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	filetype, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	ncmds, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	sizeofcmds, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	reserved, err := c.ReadU32()
	if err != nil {
		return nil, err
	}

	cpuType, err := types.CPUTypeFromUint32(cpu)
	if err != nil {
		return nil, err
	}
	subCPU, err := types.CPUSubtypeFromUint32(subcpu)
	if err != nil {
		return nil, err
	}

	hdrType := types.HeaderFileType(filetype)
	if !hdrType.ReaderAccepts() {
		return nil, fmt.Errorf("%w: file type %s", types.ErrUnknownKind, hdrType)
	}
	hdrFlags, err := types.HeaderFlagFromUint32(flags)
	if err != nil {
		return nil, err
	}

	m := &FullMacho{Header: types.FileHeader{
		Magic:        magic,
		CPU:          cpuType,
		SubCPU:       subCPU,
		Type:         hdrType,
		NCommands:    ncmds,
		SizeCommands: sizeofcmds,
		Flags:        hdrFlags,
		Reserved:     reserved,
	}}

	for i := uint32(0); i < ncmds; i++ {
		if err := readCommand(c, order, m); err != nil {
			return nil, err
		}
	}

	if m.Segment != nil {
		if err := readSectionPayloads(c, m); err != nil {
			return nil, err
		}
	}
	if m.Symtab != nil {
		if err := readSymtab(c, order, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func readCommand(c *Cursor, order binary.ByteOrder, m *FullMacho) error {
	start := c.Pos()
	hdrBytes, err := c.SliceAt(start, 8)
	if err != nil {
		return err
	}
	id := types.LoadCmd(order.Uint32(hdrBytes[0:]))
	cmdsize := order.Uint32(hdrBytes[4:])

	record, err := c.SliceAt(start, int(cmdsize))
	if err != nil {
		return err
	}

	switch id {
	case types.LC_SEGMENT_64:
		seg, err := types.ParseSegment64Cmd(record[4:], order)
		if err != nil {
			return err
		}
		m.Segment = seg
		off := types.SegmentCommand64Size
		for i := uint32(0); i < seg.Nsects; i++ {
			sect, err := types.ParseSection64(record[off:], order)
			if err != nil {
				return err
			}
			m.Sections = append(m.Sections, sect)
			off += types.Section64Size
		}
		off += segPadding(off)

	case types.LC_SYMTAB:
		symtab, err := types.ParseSymtabCmd(record[4:], order)
		if err != nil {
			return err
		}
		m.Symtab = symtab

	case types.LC_DYSYMTAB:
		dysymtab, err := types.ParseDysymtabCmd(record[4:], order)
		if err != nil {
			return err
		}
		m.Dysymtab = dysymtab

	case types.LC_BUILD_VERSION:
		build, err := types.ParseBuildVersionCmd(record[4:], order)
		if err != nil {
			return err
		}
		m.Build = build

	default:
		return fmt.Errorf("%w(0x%x)", types.ErrUnsupportedCommand, uint32(id))
	}

	return c.SetPos(start + int(cmdsize))
}

func readSectionPayloads(c *Cursor, m *FullMacho) error {
	order := c.Order()
	full := c.Slice()
	m.Payloads = make([][]byte, len(m.Sections))
	m.Relocs = make([][]*types.RelocationInfo, len(m.Sections))

	for i, sect := range m.Sections {
		if sect.Type != types.Zerofill {
			payload, err := sliceAt(full, int(sect.Offset), int(sect.Size))
			if err != nil {
				return err
			}
			m.Payloads[i] = payload
		}
		if sect.Nreloc > 0 {
			relocBytes, err := sliceAt(full, int(sect.Reloff), int(sect.Nreloc)*relSize)
			if err != nil {
				return err
			}
			relocs := make([]*types.RelocationInfo, sect.Nreloc)
			for j := range relocs {
				r, err := types.ParseRelocationInfo(relocBytes[j*relSize:], order)
				if err != nil {
					return err
				}
				relocs[j] = r
			}
			m.Relocs[i] = relocs
		}
	}
	return nil
}

func readSymtab(c *Cursor, order binary.ByteOrder, m *FullMacho) error {
	full := c.Slice()
	symBytes, err := sliceAt(full, int(m.Symtab.Symoff), int(m.Symtab.Nsyms)*nlSize)
	if err != nil {
		return err
	}
	m.Nlists = make([]*types.Nlist64, m.Symtab.Nsyms)
	for i := range m.Nlists {
		nl, err := types.ParseNlist64(symBytes[i*nlSize:], order)
		if err != nil {
			return err
		}
		m.Nlists[i] = nl
	}

	strBytes, err := sliceAt(full, int(m.Symtab.Stroff), int(m.Symtab.Strsize))
	if err != nil {
		return err
	}
	m.StringTable = types.NewStringTableFromBytes(strBytes)
	return nil
}

func sliceAt(full []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(full) {
		return nil, fmt.Errorf("%w: region [%d,%d) out of bounds (len %d)", types.ErrMalformedInput, off, off+n, len(full))
	}
	return full[off : off+n], nil
}
