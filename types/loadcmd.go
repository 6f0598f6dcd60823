package types

// LoadCmd identifies a load command's kind. A selection of the historical
// catalogue is kept (commented with its meaning) so that String can name
// an id this core does not accept; only the four listed in Supported are
// ever produced or accepted by this core.
type LoadCmd uint32

const (
	LC_SEGMENT                  LoadCmd = 0x1  // 32-bit segment, not accepted
	LC_SYMTAB                   LoadCmd = 0x2  // symbol table
	LC_SYMSEG                   LoadCmd = 0x3  // obsolete gdb symbol table
	LC_THREAD                   LoadCmd = 0x4  // thread state, executable-only
	LC_UNIXTHREAD               LoadCmd = 0x5  // thread+stack, executable-only
	LC_DYSYMTAB                 LoadCmd = 0xb  // dynamic symbol table
	LC_LOAD_DYLIB                LoadCmd = 0xc  // load dylib, dylib-only
	LC_ID_DYLIB                 LoadCmd = 0xd  // id dylib, dylib-only
	LC_SEGMENT_64               LoadCmd = 0x19 // 64-bit segment
	LC_UUID                     LoadCmd = 0x1b // uuid, dylib/executable-only
	LC_CODE_SIGNATURE           LoadCmd = 0x1d // code signature, dylib/executable-only
	LC_VERSION_MIN_MACOSX       LoadCmd = 0x24 // superseded by LC_BUILD_VERSION
	LC_SOURCE_VERSION           LoadCmd = 0x2a // source version, dylib/executable-only
	LC_BUILD_VERSION            LoadCmd = 0x32 // minimum-OS/SDK/tool version
)

// Supported reports whether this core emits and accepts id.
func (c LoadCmd) Supported() bool {
	switch c {
	case LC_SEGMENT_64, LC_SYMTAB, LC_DYSYMTAB, LC_BUILD_VERSION:
		return true
	}
	return false
}

var loadCmdStrings = []IntName{
	{uint32(LC_SEGMENT), "LC_SEGMENT"},
	{uint32(LC_SYMTAB), "LC_SYMTAB"},
	{uint32(LC_SYMSEG), "LC_SYMSEG"},
	{uint32(LC_THREAD), "LC_THREAD"},
	{uint32(LC_UNIXTHREAD), "LC_UNIXTHREAD"},
	{uint32(LC_DYSYMTAB), "LC_DYSYMTAB"},
	{uint32(LC_LOAD_DYLIB), "LC_LOAD_DYLIB"},
	{uint32(LC_ID_DYLIB), "LC_ID_DYLIB"},
	{uint32(LC_SEGMENT_64), "LC_SEGMENT_64"},
	{uint32(LC_UUID), "LC_UUID"},
	{uint32(LC_CODE_SIGNATURE), "LC_CODE_SIGNATURE"},
	{uint32(LC_VERSION_MIN_MACOSX), "LC_VERSION_MIN_MACOSX"},
	{uint32(LC_SOURCE_VERSION), "LC_SOURCE_VERSION"},
	{uint32(LC_BUILD_VERSION), "LC_BUILD_VERSION"},
}

func (c LoadCmd) String() string   { return StringName(uint32(c), loadCmdStrings, false) }
func (c LoadCmd) GoString() string { return StringName(uint32(c), loadCmdStrings, true) }
