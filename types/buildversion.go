package types

import (
	"encoding/binary"
	"fmt"
)

// Platform identifies the OS a BuildVersionCmd targets.
type Platform uint32

const (
	PlatformMacOS Platform = 1
	PlatformIOS   Platform = 2
	PlatformTvOS  Platform = 3
)

var platformStrings = []IntName{
	{uint32(PlatformMacOS), "macOS"},
	{uint32(PlatformIOS), "iOS"},
	{uint32(PlatformTvOS), "tvOS"},
}

func (p Platform) String() string { return StringName(uint32(p), platformStrings, false) }

// PlatformFromUint32 validates v against the known platform set.
func PlatformFromUint32(v uint32) (Platform, error) {
	switch Platform(v) {
	case PlatformMacOS, PlatformIOS, PlatformTvOS:
		return Platform(v), nil
	}
	return 0, fmt.Errorf("%w: platform 0x%x", ErrUnknownKind, v)
}

// Tool identifies the build tool recorded in a BuildVersionCmd tool entry.
type Tool uint32

const (
	ToolClang Tool = 1
	ToolSwift Tool = 2
	ToolLd    Tool = 3
)

var toolStrings = []IntName{
	{uint32(ToolClang), "clang"},
	{uint32(ToolSwift), "swift"},
	{uint32(ToolLd), "ld"},
}

func (t Tool) String() string { return StringName(uint32(t), toolStrings, false) }

// ToolFromUint32 validates v against the known tool set.
func ToolFromUint32(v uint32) (Tool, error) {
	switch Tool(v) {
	case ToolClang, ToolSwift, ToolLd:
		return Tool(v), nil
	}
	return 0, fmt.Errorf("%w: tool 0x%x", ErrUnknownKind, v)
}

// Version is a packed major<<16 | minor<<8 | release version triple.
type Version uint32

// NewVersion packs a major.minor.release triple.
func NewVersion(major, minor, release uint8) Version {
	return Version(uint32(major)<<16 | uint32(minor)<<8 | uint32(release))
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", (v>>16)&0xffff, (v>>8)&0xff, v&0xff)
}

// BuildToolVersion is one (tool, version) pair trailing a BuildVersionCmd.
type BuildToolVersion struct {
	Tool    Tool
	Version Version
}

// BuildVersionCmdSize is the fixed size of an LC_BUILD_VERSION command
// before its trailing tool entries.
const BuildVersionCmdSize = 24

// BuildToolVersionSize is the size of one trailing tool entry.
const BuildToolVersionSize = 8

// BuildVersionCmd is an LC_BUILD_VERSION load command.
type BuildVersionCmd struct {
	Platform Platform
	MinOS    Version
	Sdk      Version
	Tools    []BuildToolVersion
}

// Cmdsize is BuildVersionCmdSize plus 8 bytes per tool entry.
func (c *BuildVersionCmd) Cmdsize() uint32 {
	return BuildVersionCmdSize + uint32(len(c.Tools))*BuildToolVersionSize
}

func (c *BuildVersionCmd) Put(b []byte, o binary.ByteOrder) int {
	o.PutUint32(b[0:], uint32(LC_BUILD_VERSION))
	o.PutUint32(b[4:], c.Cmdsize())
	o.PutUint32(b[8:], uint32(c.Platform))
	o.PutUint32(b[12:], uint32(c.MinOS))
	o.PutUint32(b[16:], uint32(c.Sdk))
	o.PutUint32(b[20:], uint32(len(c.Tools)))
	off := BuildVersionCmdSize
	for _, t := range c.Tools {
		o.PutUint32(b[off:], uint32(t.Tool))
		o.PutUint32(b[off+4:], uint32(t.Version))
		off += BuildToolVersionSize
	}
	return off
}

// ParseBuildVersionCmd reads a BuildVersionCmd from b, which starts
// immediately after the already-consumed cmd id.
func ParseBuildVersionCmd(b []byte, o binary.ByteOrder) (*BuildVersionCmd, error) {
	if len(b) < BuildVersionCmdSize-4 {
		return nil, fmt.Errorf("%w: short build_version command", ErrMalformedInput)
	}
	platform, err := PlatformFromUint32(o.Uint32(b[4:]))
	if err != nil {
		return nil, err
	}
	ntools := o.Uint32(b[16:])
	c := &BuildVersionCmd{
		Platform: platform,
		MinOS:    Version(o.Uint32(b[8:])),
		Sdk:      Version(o.Uint32(b[12:])),
	}
	off := 20
	for i := uint32(0); i < ntools; i++ {
		if len(b) < off+BuildToolVersionSize {
			return nil, fmt.Errorf("%w: truncated build tool entry", ErrMalformedInput)
		}
		tool, err := ToolFromUint32(o.Uint32(b[off:]))
		if err != nil {
			return nil, err
		}
		c.Tools = append(c.Tools, BuildToolVersion{
			Tool:    tool,
			Version: Version(o.Uint32(b[off+4:])),
		})
		off += BuildToolVersionSize
	}
	return c, nil
}
