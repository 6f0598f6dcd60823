package macho

import "github.com/appsworld/go-macho-asm/types"

// SymbolKind distinguishes the three logical symbol shapes.
type SymbolKind uint8

const (
	// Undefined names a symbol resolved elsewhere at link time. Always
	// external by construction.
	Undefined SymbolKind = iota
	// Absolute names a fixed value unrelated to any section's address
	// space (e.g. an assembler constant).
	Absolute
	// InSection names a location within the owning section's payload.
	InSection
)

// Symbol is a logical symbol-table entry, before it has been assigned a
// string-table index or a resolved section ordinal.
type Symbol struct {
	Kind SymbolKind
	Name string

	// Value holds the Absolute variant's fixed value, or the InSection
	// variant's address within its owning section. Unused for Undefined.
	Value uint64

	// External is ignored for Undefined (always true).
	External bool
}

// Reloc is a logical relocation entry referring to its target symbol by
// name; the planner resolves the name to a symbol-table index.
type Reloc struct {
	Addr   int32
	Symbol string
	Pcrel  bool
	Length types.RelocLength
	Type   uint8 // machine-specific; copied unchanged into the emitted entry
}

// SectionKind distinguishes the three logical section shapes: a closed
// sum type with a kind tag, instead of dynamic dispatch through an
// interface.
type SectionKind uint8

const (
	TextKind SectionKind = iota
	DataKind
	BssKind
)

// Section is a logical section: Text and Data carry file bytes and
// optional relocations, Bss carries only a declared size and has neither
// file payload nor relocations.
type Section struct {
	Kind SectionKind
	Name string // e.g. "__text"
	Seg  string // e.g. "__TEXT"

	Bytes   []byte // Text/Data payload; nil for Bss
	BssSize uint64 // Bss's declared virtual size; unused for Text/Data

	Symbols []Symbol
	Relocs  []Reloc // always empty for Bss
}

// VMSize returns the section's contribution to SEG64.vmsize: its payload
// length for Text/Data, its declared size for Bss.
func (s *Section) VMSize() uint64 {
	if s.Kind == BssKind {
		return s.BssSize
	}
	return uint64(len(s.Bytes))
}

// FileSize returns the section's contribution to the file (Bss has none).
func (s *Section) FileSize() uint64 {
	if s.Kind == BssKind {
		return 0
	}
	return uint64(len(s.Bytes))
}

// DefaultAttrs returns the attribute bits the assembler front end assigns
// by default for a section of this kind: text gets
// SomeInstructions|PureInstructions, and both text and data gets
// LocReloc|ExtReloc when they carry relocations.
func (s *Section) DefaultAttrs() types.SectionAttrs {
	var a types.SectionAttrs
	switch s.Kind {
	case TextKind:
		a |= types.SomeInstructions | types.PureInstructions
	}
	if s.Kind != BssKind && len(s.Relocs) > 0 {
		a |= types.LocReloc | types.ExtReloc
	}
	return a
}

// Type returns the SECT64 section type for this kind: Zerofill for Bss,
// Regular otherwise.
func (s *Section) Type() types.SectionType {
	if s.Kind == BssKind {
		return types.Zerofill
	}
	return types.Regular
}

// Object is the logical, in-memory Mach-O object: an ordered, optional
// triple of sections. Writing order is text → data → bss, which fixes
// section ordinals.
type Object struct {
	text *Section
	data *Section
	bss  *Section
}

// NewObject returns an empty Object with no sections set.
func NewObject() *Object { return &Object{} }

// SetText installs the object's text section.
func (o *Object) SetText(bytes []byte, symbols []Symbol, relocs []Reloc) {
	o.text = &Section{Kind: TextKind, Name: "__text", Seg: "__TEXT", Bytes: bytes, Symbols: symbols, Relocs: relocs}
}

// SetData installs the object's data section.
func (o *Object) SetData(bytes []byte, symbols []Symbol, relocs []Reloc) {
	o.data = &Section{Kind: DataKind, Name: "__data", Seg: "__DATA", Bytes: bytes, Symbols: symbols, Relocs: relocs}
}

// SetBss installs the object's bss section. Bss has no file payload and no
// relocations by construction.
func (o *Object) SetBss(size uint64, symbols []Symbol) {
	o.bss = &Section{Kind: BssKind, Name: "__bss", Seg: "__DATA", BssSize: size, Symbols: symbols}
}

// Sections returns the present sections in writing order (text → data →
// bss), the single place this core needs to treat all three kinds
// uniformly.
func (o *Object) Sections() []*Section {
	var out []*Section
	for _, s := range []*Section{o.text, o.data, o.bss} {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// NumSections returns the count of present sections, 0..3.
func (o *Object) NumSections() int { return len(o.Sections()) }

// VMSize returns the sum of every present section's VMSize.
func (o *Object) VMSize() uint64 {
	var sum uint64
	for _, s := range o.Sections() {
		sum += s.VMSize()
	}
	return sum
}

// FileSize returns ceil8 of the sum of every present section's FileSize;
// bss contributes 0.
func (o *Object) FileSize() uint64 {
	var sum uint64
	for _, s := range o.Sections() {
		sum += s.FileSize()
	}
	return types.RoundUp(sum, 8)
}

// NumRelocs returns the total relocation count across all sections.
func (o *Object) NumRelocs() int {
	n := 0
	for _, s := range o.Sections() {
		n += len(s.Relocs)
	}
	return n
}

// NumSymbols returns the total symbol count across all sections.
func (o *Object) NumSymbols() int {
	n := 0
	for _, s := range o.Sections() {
		n += len(s.Symbols)
	}
	return n
}

// StringTableSize returns 1 + Σ(|name|+1) over every symbol: the leading
// NUL plus each name's NUL-terminated record.
func (o *Object) StringTableSize() uint64 {
	size := uint64(1)
	for _, s := range o.Sections() {
		for _, sym := range s.Symbols {
			size += uint64(len(sym.Name)) + 1
		}
	}
	return size
}
