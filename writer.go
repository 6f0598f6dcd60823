package macho

import (
	"github.com/appsworld/go-macho-asm/types"
)

// Write serializes obj in the exact on-disk order: header,
// segment command, section table, symtab command (and, under ModeFull,
// dysymtab and build-version commands), each section's payload bytes
// (the payload region as a whole padded to an 8-byte boundary),
// relocation blocks in section order, the
// nlist array, and finally the string table. It never mutates obj; it
// plans once and streams from the Plan.
func Write(obj *Object, mode WriteMode) ([]byte, error) {
	return WriteWithTools(obj, mode, nil)
}

// WriteWithTools is Write with an explicit BUILD_VERSION tool list
// (consulted only under ModeFull).
func WriteWithTools(obj *Object, mode WriteMode, tools []types.BuildToolVersion) ([]byte, error) {
	plan, err := ComputePlan(obj, mode, tools)
	if err != nil {
		return nil, err
	}
	return writePlan(obj, plan), nil
}

func writePlan(obj *Object, p *Plan) []byte {
	w := NewWriter()

	hdr := w.Grow(hdrSize)
	p.Header.Put(hdr, w.Order())

	seg := w.Grow(segSize)
	p.Segment.Put(seg, w.Order())

	for _, sect := range p.Sections {
		b := w.Grow(secSize)
		sect.Put(b, w.Order())
	}

	sym := w.Grow(symSize)
	p.Symtab.Put(sym, w.Order())

	if p.Dysymtab != nil {
		b := w.Grow(types.DysymtabCmdSize)
		p.Dysymtab.Put(b, w.Order())
	}
	if p.BuildVersion != nil {
		b := w.Grow(int(p.BuildVersion.Cmdsize()))
		p.BuildVersion.Put(b, w.Order())
	}

	var payloadLen uint64
	for i, s := range obj.Sections() {
		if s.Kind == BssKind {
			continue
		}
		w.WriteBytes(s.Bytes)
		payloadLen += p.SectionFileSizes[i]
	}
	if pad := types.RoundUp(payloadLen, 8) - payloadLen; pad > 0 {
		w.WriteZero(int(pad))
	}

	for _, r := range p.Relocs {
		b := w.Grow(relSize)
		r.Put(b, w.Order())
	}

	for _, nl := range p.Nlists {
		b := w.Grow(nlSize)
		nl.Put(b, w.Order())
	}

	w.WriteBytes(p.StringTable.Bytes())

	return w.Bytes()
}
