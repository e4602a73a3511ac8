package utils

import (
	"fmt"
	"hash"
	"io"

	_ "unsafe"
)

// These functions allow defeat of the escape analysis to prevent heap allocations.
// It is the caller responsibility to ensure this is safe

func _write(writer io.Writer, buf []byte) (n int, err error) {
	return writer.Write(buf)
}

func _sum(hasher hash.Hash, buf []byte) []byte {
	return hasher.Sum(buf)
}

func _appendf(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

//go:noescape
//go:linkname WriteNoEscape github.com/zkledger/rollup/utils._write
func WriteNoEscape(writer io.Writer, buf []byte) (n int, err error)

//go:noescape
//go:linkname SumNoEscape github.com/zkledger/rollup/utils._sum
func SumNoEscape(hasher hash.Hash, buf []byte) []byte

//go:noescape
//go:linkname AppendfNoEscape github.com/zkledger/rollup/utils._appendf
func AppendfNoEscape(buf []byte, format string, v ...any) []byte
