package types

// StringTable is the append-only NUL-delimited byte buffer the symbol
// table's n_strx fields index into. It always begins with a NUL byte, so
// index 0 reads as the empty string.
type StringTable struct {
	data []byte
}

// NewStringTable returns a StringTable containing only its leading NUL.
func NewStringTable() *StringTable {
	return &StringTable{data: []byte{0}}
}

// Push appends name followed by a NUL terminator and returns the byte
// offset (index) at which name's bytes begin.
func (t *StringTable) Push(name string) uint32 {
	idx := uint32(len(t.data))
	t.data = append(t.data, name...)
	t.data = append(t.data, 0)
	return idx
}

// Get reads the NUL-terminated name starting at byte offset idx. An idx at
// or past the buffer's length, or one not immediately preceded by a NUL
// boundary, still returns whatever text runs up to the next NUL or the
// buffer's end.
func (t *StringTable) Get(idx uint32) string {
	if int(idx) >= len(t.data) {
		return ""
	}
	end := int(idx)
	for end < len(t.data) && t.data[end] != 0 {
		end++
	}
	return string(t.data[idx:end])
}

// Bytes returns the table's raw byte buffer.
func (t *StringTable) Bytes() []byte { return t.data }

// Len returns the table's byte size (what SYMTAB.strsize must equal).
func (t *StringTable) Len() int { return len(t.data) }

// NewStringTableFromBytes wraps an already-materialized string-table byte
// block (as read from a file's [stroff, stroff+strsize) region).
func NewStringTableFromBytes(b []byte) *StringTable {
	return &StringTable{data: append([]byte(nil), b...)}
}
