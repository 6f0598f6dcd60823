package types

import "fmt"

// A CPUType is a Mach-O cpu_type_t. This core only writes and accepts x86_64.
type CPUType uint32

const (
	cpuArch64 = 0x01000000 // 64-bit ABI bit

	CPUTypeX86   CPUType = 0x7
	CPUTypeX8664 CPUType = CPUTypeX86 | cpuArch64 // 0x01000007
)

var cpuTypeStrings = []IntName{
	{uint32(CPUTypeX86), "x86"},
	{uint32(CPUTypeX8664), "x86_64"},
}

func (c CPUType) String() string   { return StringName(uint32(c), cpuTypeStrings, false) }
func (c CPUType) GoString() string { return StringName(uint32(c), cpuTypeStrings, true) }

// CPUTypeFromUint32 validates v against the single cpu_type_t this core
// accepts.
func CPUTypeFromUint32(v uint32) (CPUType, error) {
	switch CPUType(v) {
	case CPUTypeX8664:
		return CPUType(v), nil
	}
	return 0, fmt.Errorf("%w: cpu type 0x%x", ErrUnknownKind, v)
}

// CPUSubtype is a Mach-O cpu_subtype_t.
type CPUSubtype uint32

const (
	CPUSubtypeX86All   CPUSubtype = 0x3
	CPUSubtypeX8664All CPUSubtype = 0x3
)

var cpuSubtypeStrings = []IntName{
	{uint32(CPUSubtypeX8664All), "x86_64 All"},
}

func (s CPUSubtype) String() string   { return StringName(uint32(s), cpuSubtypeStrings, false) }
func (s CPUSubtype) GoString() string { return StringName(uint32(s), cpuSubtypeStrings, true) }

// CPUSubtypeFromUint32 validates v against the single cpu_subtype_t this
// core accepts.
func CPUSubtypeFromUint32(v uint32) (CPUSubtype, error) {
	switch CPUSubtype(v) {
	case CPUSubtypeX8664All:
		return CPUSubtype(v), nil
	}
	return 0, fmt.Errorf("%w: cpu subtype 0x%x", ErrUnknownKind, v)
}
