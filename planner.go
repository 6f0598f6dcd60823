package macho

import (
	"fmt"

	"github.com/appsworld/go-macho-asm/types"
)

// WriteMode selects which load commands Write emits: ModeMinimal matches
// the two-command
// layout (SEG64+SYMTAB) the reference assembler actually produces;
// ModeFull adds DYSYMTAB and BUILD_VERSION so linkers expecting the fuller
// four-command shape are satisfied.
type WriteMode int

const (
	ModeMinimal WriteMode = iota
	ModeFull
)

const (
	hdrSize = types.FileHeaderSize
	segSize = types.SegmentCommand64Size
	secSize = types.Section64Size
	symSize = types.SymtabCmdSize
	relSize = types.RelocationInfoSize
	nlSize  = types.Nlist64Size
)

// Plan is the layout planner's output: every offset, count, and resolved
// record the writer needs, computed once from a frozen Object. The
// writer only ever reads from a Plan; it never recomputes an offset.
type Plan struct {
	Header       types.FileHeader
	Segment      *types.Segment64Cmd
	Sections     []*types.Section64
	Symtab       *types.SymtabCmd
	Dysymtab     *types.DysymtabCmd     // nil under ModeMinimal
	BuildVersion *types.BuildVersionCmd // nil under ModeMinimal

	SectionFileSizes []uint64 // parallel to Object.Sections(), bytes actually emitted per section

	Nlists      []*types.Nlist64
	Relocs      []*types.RelocationInfo // resolved, in section order
	StringTable *types.StringTable

	SectionsStart uint64
	RelocsStart   uint64
	SymOff        uint64
	StrOff        uint64
}

// defaultTools is the tool list ModeFull's BuildVersionCmd carries when the
// caller supplies none.
func defaultTools() []types.BuildToolVersion {
	return []types.BuildToolVersion{{Tool: types.ToolLd, Version: types.NewVersion(1, 0, 0)}}
}

// ComputePlan derives a complete layout for obj. tools is only consulted
// under ModeFull; pass nil to get defaultTools.
func ComputePlan(obj *Object, mode WriteMode, tools []types.BuildToolVersion) (*Plan, error) {
	sections := obj.Sections()
	n := uint32(len(sections))

	if err := validate(obj); err != nil {
		return nil, err
	}

	p := &Plan{}

	sizeOfCmds := uint64(segSize) + uint64(n)*uint64(secSize) + uint64(symSize)
	if mode == ModeFull {
		if tools == nil {
			tools = defaultTools()
		}
		p.Dysymtab = &types.DysymtabCmd{}
		p.BuildVersion = &types.BuildVersionCmd{
			Platform: types.PlatformMacOS,
			MinOS:    types.NewVersion(10, 15, 0),
			Sdk:      types.NewVersion(10, 15, 0),
			Tools:    tools,
		}
		sizeOfCmds += uint64(types.DysymtabCmdSize) + uint64(p.BuildVersion.Cmdsize())
	}

	p.SectionsStart = uint64(hdrSize) + sizeOfCmds

	// Section file offsets and sizes.
	p.SectionFileSizes = make([]uint64, len(sections))
	var totalFileSize uint64
	for i, s := range sections {
		fsz := s.FileSize()
		p.SectionFileSizes[i] = fsz
		totalFileSize += fsz
	}
	p.RelocsStart = p.SectionsStart + types.RoundUp(totalFileSize, 8)

	// Section descriptors: addr, offset, reloff.
	p.Sections = make([]*types.Section64, len(sections))
	var vmaddr uint64
	offsetCursor := p.SectionsStart
	relocCursor := p.RelocsStart
	for i, s := range sections {
		sect := &types.Section64{
			Addr:  vmaddr,
			Size:  s.VMSize(),
			Align: 0,
			Type:  s.Type(),
			Attrs: s.DefaultAttrs(),
		}
		copy(sect.Name[:], []byte(s.Name))
		copy(sect.Seg[:], []byte(s.Seg))
		vmaddr += s.VMSize()

		if s.Kind == BssKind {
			sect.Offset = 0
		} else {
			sect.Offset = uint32(offsetCursor)
			offsetCursor += p.SectionFileSizes[i]
		}

		if len(s.Relocs) > 0 {
			sect.Reloff = uint32(relocCursor)
			sect.Nreloc = uint32(len(s.Relocs))
			relocCursor += uint64(len(s.Relocs)) * uint64(relSize)
		}
		p.Sections[i] = sect
	}

	p.SymOff = p.RelocsStart + uint64(obj.NumRelocs())*uint64(relSize)
	nsyms := uint64(obj.NumSymbols())
	p.StrOff = p.SymOff + nsyms*uint64(nlSize)

	// String table and nlist array, in section-by-section symbol order.
	stab := types.NewStringTable()
	nameIndex := map[string]uint32{} // symbol name -> index into p.Nlists
	for secIdx, s := range sections {
		ordinal := uint8(secIdx + 1) // 1-based section ordinal; Undefined overrides to 0 below
		for _, sym := range s.Symbols {
			strx := stab.Push(sym.Name)
			nl := &types.Nlist64{Strx: strx}
			switch sym.Kind {
			case Undefined:
				nl.Type = types.NTypeField{Type: types.Undf, Ext: true}
				nl.Sect = 0
				nl.Value = 0
			case Absolute:
				nl.Type = types.NTypeField{Type: types.Abs, Ext: sym.External}
				nl.Sect = ordinal
				nl.Value = sym.Value
			case InSection:
				nl.Type = types.NTypeField{Type: types.Sect, Ext: sym.External}
				nl.Sect = ordinal
				nl.Value = sym.Value
			}
			nameIndex[sym.Name] = uint32(len(p.Nlists))
			p.Nlists = append(p.Nlists, nl)
		}
	}
	p.StringTable = stab

	// Relocations, symbol references resolved to their final nlist index.
	for _, s := range sections {
		for _, r := range s.Relocs {
			idx, ok := nameIndex[r.Symbol]
			if !ok {
				return nil, fmt.Errorf("%w: relocation refers to undeclared symbol %q", types.ErrEncodingViolation, r.Symbol)
			}
			p.Relocs = append(p.Relocs, &types.RelocationInfo{
				Address:   r.Addr,
				Symbolnum: idx,
				Pcrel:     r.Pcrel,
				Length:    r.Length,
				Extern:    true,
				Type:      r.Type,
			})
		}
	}

	p.Header = types.FileHeader{
		Magic:        types.Magic64,
		CPU:          types.CPUTypeX8664,
		SubCPU:       types.CPUSubtypeX8664All,
		Type:         types.MH_OBJECT,
		NCommands:    numCommands(mode),
		SizeCommands: uint32(sizeOfCmds),
		Flags:        0,
		Reserved:     0,
	}

	p.Segment = &types.Segment64Cmd{
		Cmdsize:  uint32(segSize) + n*uint32(secSize),
		Addr:     0,
		Size:     obj.VMSize(),
		Offset:   p.SectionsStart,
		Filesz:   obj.FileSize(),
		Maxprot:  7,
		Initprot: 7,
		Nsects:   n,
		Flags:    0,
	}

	p.Symtab = &types.SymtabCmd{
		Symoff:  uint32(p.SymOff),
		Nsyms:   uint32(nsyms),
		Stroff:  uint32(p.StrOff),
		Strsize: uint32(stab.Len()),
	}

	if p.Dysymtab != nil {
		p.Dysymtab.Nlocalsym = 0
		p.Dysymtab.Ilocalsym = 0
		p.Dysymtab.Iextdefsym = 0
		p.Dysymtab.Nextdefsym = uint32(nsyms)
	}

	return p, nil
}

func numCommands(mode WriteMode) uint32 {
	if mode == ModeFull {
		return 4
	}
	return 2
}

// validate enforces the preconditions a well-formed Object must already
// satisfy before planning: ASCII, ≤16-byte section/segment names, and
// relocations that refer to a symbol actually declared in the object.
func validate(obj *Object) error {
	declared := map[string]bool{}
	for _, s := range obj.Sections() {
		if len(s.Name) > 16 || !types.IsASCII(s.Name) {
			return fmt.Errorf("%w: section name %q", types.ErrEncodingViolation, s.Name)
		}
		if len(s.Seg) > 16 || !types.IsASCII(s.Seg) {
			return fmt.Errorf("%w: segment name %q", types.ErrEncodingViolation, s.Seg)
		}
		for _, sym := range s.Symbols {
			if !types.IsASCII(sym.Name) {
				return fmt.Errorf("%w: symbol name %q", types.ErrEncodingViolation, sym.Name)
			}
			declared[sym.Name] = true
		}
	}
	for _, s := range obj.Sections() {
		for _, r := range s.Relocs {
			if !declared[r.Symbol] {
				return fmt.Errorf("%w: relocation refers to undeclared symbol %q", types.ErrEncodingViolation, r.Symbol)
			}
		}
	}
	return nil
}
