package types

import (
	"errors"
	"testing"
)

func TestCPUTypeX8664(t *testing.T) {
	if CPUTypeX8664 != 0x01000007 {
		t.Errorf("CPUTypeX8664 = %#x, want 0x01000007", uint32(CPUTypeX8664))
	}
	if got, want := CPUTypeX8664.String(), "x86_64"; got != want {
		t.Errorf("CPUTypeX8664.String() = %q, want %q", got, want)
	}
	if got, want := CPUTypeX8664.GoString(), "types.x86_64"; got != want {
		t.Errorf("CPUTypeX8664.GoString() = %q, want %q", got, want)
	}
}

func TestCPUSubtypeX8664All(t *testing.T) {
	if CPUSubtypeX8664All != 0x3 {
		t.Errorf("CPUSubtypeX8664All = %#x, want 0x3", uint32(CPUSubtypeX8664All))
	}
}

func TestCPUTypeUnknownString(t *testing.T) {
	if got, want := CPUType(0x99).String(), "0x99"; got != want {
		t.Errorf("CPUType(0x99).String() = %q, want %q", got, want)
	}
}

func TestCPUTypeFromUint32(t *testing.T) {
	got, err := CPUTypeFromUint32(uint32(CPUTypeX8664))
	if err != nil {
		t.Fatalf("CPUTypeFromUint32(x86_64) failed: %v", err)
	}
	if got != CPUTypeX8664 {
		t.Errorf("CPUTypeFromUint32(x86_64) = %v, want CPUTypeX8664", got)
	}
}

func TestCPUTypeFromUint32Unknown(t *testing.T) {
	// 0x0100000c is CPU_TYPE_ARM64, outside this core's x86_64-only range.
	if _, err := CPUTypeFromUint32(0x0100000c); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("CPUTypeFromUint32(arm64) error = %v, want ErrUnknownKind", err)
	}
	if _, err := CPUTypeFromUint32(uint32(CPUTypeX86)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("CPUTypeFromUint32(x86) error = %v, want ErrUnknownKind", err)
	}
}

func TestCPUSubtypeFromUint32(t *testing.T) {
	got, err := CPUSubtypeFromUint32(uint32(CPUSubtypeX8664All))
	if err != nil {
		t.Fatalf("CPUSubtypeFromUint32(All) failed: %v", err)
	}
	if got != CPUSubtypeX8664All {
		t.Errorf("CPUSubtypeFromUint32(All) = %v, want CPUSubtypeX8664All", got)
	}
}

func TestCPUSubtypeFromUint32Unknown(t *testing.T) {
	if _, err := CPUSubtypeFromUint32(0x80000003); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("CPUSubtypeFromUint32(0x80000003) error = %v, want ErrUnknownKind", err)
	}
}
