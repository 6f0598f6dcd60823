package types

import "errors"

// Sentinel error kinds. Callers match against these with errors.Is; every
// error this module returns wraps one of them via fmt.Errorf("...: %w", ...).
var (
	// ErrBadMagic means the first four bytes are not one of the six
	// recognized Mach-O magic words.
	ErrBadMagic = errors.New("bad magic")

	// ErrUnsupported means the magic word was recognized but does not
	// name a 64-bit Mach-O (32-bit or fat/universal).
	ErrUnsupported = errors.New("unsupported mach-o variant")

	// ErrUnsupportedCommand means a load-command id fell outside the set
	// this core understands.
	ErrUnsupportedCommand = errors.New("unsupported load command")

	// ErrUnknownKind means an enumerated value (cpu type/subtype, file
	// type, platform, tool, section type, symbol kind, relocation
	// length, or any flag bit) fell outside its accepted range.
	ErrUnknownKind = errors.New("unknown enumerated value")

	// ErrMalformedInput means a read ran past the end of its input or
	// encountered an otherwise impossible length.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEncodingViolation means a write-time precondition failed: a
	// name longer than 16 bytes, a non-ASCII name, a symbol ordinal out
	// of range, or a relocation referring to a symbol that does not
	// exist. A well-formed Object never triggers this.
	ErrEncodingViolation = errors.New("encoding violation")
)
