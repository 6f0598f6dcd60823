package types

import "testing"

func TestLoadCmdSupported(t *testing.T) {
	tests := []struct {
		name string
		c    LoadCmd
		want bool
	}{
		{"segment 64", LC_SEGMENT_64, true},
		{"symtab", LC_SYMTAB, true},
		{"dysymtab", LC_DYSYMTAB, true},
		{"build version", LC_BUILD_VERSION, true},
		{"32-bit segment", LC_SEGMENT, false},
		{"load dylib", LC_LOAD_DYLIB, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Supported(); got != tt.want {
				t.Errorf("Supported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadCmdString(t *testing.T) {
	if got, want := LC_SEGMENT_64.String(), "LC_SEGMENT_64"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
