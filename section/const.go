package section

// Fixed byte sizes of the three header regions defined by spec.md §3.
const (
	// FileHeaderSize is the size in bytes of the 28 little-endian int32 FileHeader fields.
	FileHeaderSize = 112
	// DiskSubHeaderSize is the size in bytes of the DiskSubHeader, including 4 bytes of tail padding.
	DiskSubHeaderSize = 32
	// VarHeaderSize is the fixed size in bytes of a single VarHeader entry.
	VarHeaderSize = 144

	varHeaderNameLen        = 32
	varHeaderDescriptionLen = 64
	varHeaderUnitLen        = 32
)
