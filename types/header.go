package types

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// FileHeaderSize is the fixed 64-bit Mach-O header size in bytes.
const FileHeaderSize = 32

// FileHeader is the 64-bit Mach-O header (mach_header_64).
type FileHeader struct {
	Magic        Magic
	CPU          CPUType
	SubCPU       CPUSubtype
	Type         HeaderFileType
	NCommands    uint32
	SizeCommands uint32
	Flags        HeaderFlag
	Reserved     uint32
}

// Put encodes h into b (which must be at least FileHeaderSize bytes) in
// byte order o, and returns the number of bytes written.
func (h *FileHeader) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(h.Magic))
	o.PutUint32(b[4:], uint32(h.CPU))
	o.PutUint32(b[8:], uint32(h.SubCPU))
	o.PutUint32(b[12:], uint32(h.Type))
	o.PutUint32(b[16:], h.NCommands)
	o.PutUint32(b[20:], h.SizeCommands)
	o.PutUint32(b[24:], uint32(h.Flags))
	o.PutUint32(b[28:], h.Reserved)
	return FileHeaderSize
}

func (h FileHeader) String() string {
	return fmt.Sprintf(
		"Magic      = %s\n"+
			"Type       = %s\n"+
			"CPU        = %s, %s\n"+
			"Commands   = %d (Size: %d)\n"+
			"Flags      = %s\n",
		h.Magic, h.Type, h.CPU, h.SubCPU, h.NCommands, h.SizeCommands, h.Flags.Flags())
}

// HeaderFileType is the Mach-O file type.
type HeaderFileType uint32

const (
	MH_OBJECT   HeaderFileType = 0x1 // relocatable object file
	MH_EXECUTE  HeaderFileType = 0x2 // demand paged executable file
	MH_FVMLIB   HeaderFileType = 0x3 // fixed VM shared library file
	MH_CORE     HeaderFileType = 0x4 // core file
	MH_PRELOAD  HeaderFileType = 0x5 // preloaded executable file
	MH_DYLIB    HeaderFileType = 0x6 // dynamically bound shared library
	MH_DYLINKER HeaderFileType = 0x7 // dynamic link editor
	MH_BUNDLE   HeaderFileType = 0x8 // dynamically bound bundle file
	MH_DSYM     HeaderFileType = 0xa // companion file with only debug sections
)

var fileTypeStrings = []IntName{
	{uint32(MH_OBJECT), "Mach Object"},
	{uint32(MH_EXECUTE), "Mach Executable"},
	{uint32(MH_FVMLIB), "Mach FvmLib"},
	{uint32(MH_CORE), "Mach Core"},
	{uint32(MH_PRELOAD), "Mach Preload"},
	{uint32(MH_DYLIB), "Mach Dylib"},
	{uint32(MH_DYLINKER), "Mach Dylinker"},
	{uint32(MH_BUNDLE), "Mach Bundle"},
	{uint32(MH_DSYM), "Mach Dsym"},
}

func (t HeaderFileType) String() string   { return StringName(uint32(t), fileTypeStrings, false) }
func (t HeaderFileType) GoString() string { return StringName(uint32(t), fileTypeStrings, true) }

// ReaderAccepts reports whether the reader is willing to parse a file of
// this type. Only MH_OBJECT is ever written by this core.
func (t HeaderFileType) ReaderAccepts() bool {
	switch t {
	case MH_OBJECT, MH_EXECUTE, MH_FVMLIB, MH_CORE, MH_PRELOAD, MH_DYLIB, MH_DYLINKER, MH_BUNDLE, MH_DSYM:
		return true
	}
	return false
}

// HeaderFlag is the header's bit-packed flags word.
type HeaderFlag uint32

const (
	NoUndefs              HeaderFlag = 0x1
	IncrLink              HeaderFlag = 0x2
	DyldLink              HeaderFlag = 0x4
	BindAtLoad            HeaderFlag = 0x8
	PreBound              HeaderFlag = 0x10
	SplitSegs             HeaderFlag = 0x20
	TwoLevel              HeaderFlag = 0x80
	ForceFlat             HeaderFlag = 0x100
	NoMultiDefs           HeaderFlag = 0x200
	NoFixPreBinding       HeaderFlag = 0x400
	PreBindable           HeaderFlag = 0x800
	AllModsBound          HeaderFlag = 0x1000
	SubsectionsViaSymbols HeaderFlag = 0x2000
	Canonical             HeaderFlag = 0x4000
	Pie                   HeaderFlag = 0x200000
	HasTlvDescriptors     HeaderFlag = 0x800000
)

var headerFlagBits = []struct {
	bit  HeaderFlag
	name string
}{
	{NoUndefs, "NoUndefs"},
	{IncrLink, "IncrLink"},
	{DyldLink, "DyldLink"},
	{BindAtLoad, "BindAtLoad"},
	{PreBound, "PreBound"},
	{SplitSegs, "SplitSegs"},
	{TwoLevel, "TwoLevel"},
	{ForceFlat, "ForceFlat"},
	{NoMultiDefs, "NoMultiDefs"},
	{NoFixPreBinding, "NoFixPreBinding"},
	{PreBindable, "PreBindable"},
	{AllModsBound, "AllModsBound"},
	{SubsectionsViaSymbols, "SubsectionsViaSymbols"},
	{Canonical, "Canonical"},
	{Pie, "Pie"},
	{HasTlvDescriptors, "HasTlvDescriptors"},
}

// HeaderFlagFromUint32 decodes a flags word by scanning each set bit. It
// fails with ErrUnknownKind if any bit outside the known set is present.
func HeaderFlagFromUint32(v uint32) (HeaderFlag, error) {
	var known uint32
	for _, b := range headerFlagBits {
		known |= uint32(b.bit)
	}
	if v&^known != 0 {
		return 0, fmt.Errorf("%w: header flags 0x%x", ErrUnknownKind, v&^known)
	}
	return HeaderFlag(v), nil
}

// ToUint32 OR-reduces the stored flags back into their wire word.
func (f HeaderFlag) ToUint32() uint32 { return uint32(f) }

// Has reports whether bit is set in f.
func (f HeaderFlag) Has(bit HeaderFlag) bool { return f&bit != 0 }

// Set adds or clears bit in f.
func (f *HeaderFlag) Set(bit HeaderFlag, on bool) {
	if on {
		*f |= bit
	} else {
		*f &^= bit
	}
}

// List returns the set flags' names in declaration order.
func (f HeaderFlag) List() []string {
	var names []string
	for _, b := range headerFlagBits {
		if f.Has(b.bit) {
			names = append(names, b.name)
		}
	}
	return names
}

// Flags joins List with ", ".
func (f HeaderFlag) Flags() string { return strings.Join(f.List(), ", ") }
