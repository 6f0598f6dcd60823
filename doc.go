// Package macho encodes and decodes 64-bit Mach-O relocatable object files
// (MH_OBJECT) for x86_64 targets.
//
// It is the object-file back end of an assembler toolchain: the front end
// (tokenizer, instruction encoder) produces section bytes, symbols, and
// relocations; this package lays them out and serializes them to a
// byte-exact Mach-O file a system linker can consume, and symmetrically
// parses such files back into an equivalent in-memory representation.
//
// Building and writing an object is a two-phase process: mutate an Object
// freely with SetText/SetData/SetBss, then pass it to Write, which computes
// a Plan (every offset, count, and size) before emitting a single byte.
// Reading is the reverse: Read parses a byte slice into a FullMacho.
//
// The package is single-threaded, synchronous, and does no I/O of its own;
// callers own file access, argument parsing, and logging.
package macho
