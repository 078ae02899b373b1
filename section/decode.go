package section

import (
	"fmt"
	"io"
)

// Source is the random-access byte source the decoder reads from: an open
// file or any equivalent that supports seeking and reading a fixed number
// of bytes at the current position.
type Source interface {
	io.ReaderAt
}

func readAt(src Source, off int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := src.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("section: read %d bytes at offset %d: %w", n, off, err)
	}

	return buf, nil
}

// Decode reads and validates the FileHeader, the DiskSubHeader that follows
// it contiguously, and the var_header_offset-located VarHeader array, per
// spec.md §4.B. It never reads the sample region.
func Decode(src Source) (FileHeader, DiskSubHeader, Dictionary, error) {
	headerBytes, err := readAt(src, 0, FileHeaderSize+DiskSubHeaderSize)
	if err != nil {
		return FileHeader{}, DiskSubHeader{}, Dictionary{}, err
	}

	header, err := ParseFileHeader(headerBytes[:FileHeaderSize])
	if err != nil {
		return FileHeader{}, DiskSubHeader{}, Dictionary{}, err
	}

	disk, err := ParseDiskSubHeader(headerBytes[FileHeaderSize : FileHeaderSize+DiskSubHeaderSize])
	if err != nil {
		return FileHeader{}, DiskSubHeader{}, Dictionary{}, err
	}

	vars := make([]VarHeader, 0, header.NumVars)
	if header.NumVars > 0 {
		varBytes, err := readAt(src, int64(header.VarHeaderOffset), int(header.NumVars)*VarHeaderSize)
		if err != nil {
			return FileHeader{}, DiskSubHeader{}, Dictionary{}, err
		}

		for i := 0; i < int(header.NumVars); i++ {
			entry := varBytes[i*VarHeaderSize : (i+1)*VarHeaderSize]

			v, err := ParseVarHeader(entry, header.BufLen)
			if err != nil {
				return FileHeader{}, DiskSubHeader{}, Dictionary{}, fmt.Errorf("var header %d: %w", i, err)
			}

			vars = append(vars, v)
		}
	}

	return header, disk, NewDictionary(vars), nil
}
