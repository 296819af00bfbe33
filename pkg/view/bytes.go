package view

import (
	"bytes"
	"fmt"
	"io"

	"github.com/seqview/seqview/pkg/search"
)

// Bytes is the byte specialization of View: the working equivalent of a
// "string piece". The byte-only operations (ordering, hashing, substring
// search, rendering) live here as package functions taking Bytes explicitly;
// constructing a Bytes from a string or byte slice is always a named,
// visible call, never a silent conversion.
type Bytes = View[byte]

// OfBytes returns a Bytes borrowing all of b.
func OfBytes(b []byte) Bytes {
	return Bytes{s: b}
}

// OfString borrows the storage of s without copying. The window is
// read-only; strings are immutable.
func OfString(s string) Bytes {
	return Bytes{s: stringToBytes(s)}
}

// OfStringAt borrows s from off to the end. It panics when off > len(s).
func OfStringAt(s string, off int) Bytes {
	if off < 0 || off > len(s) {
		panic(fmt.Sprintf("view: string offset %d out of range [0:%d]", off, len(s)))
	}
	return Bytes{s: stringToBytes(s)[off:]}
}

// OfStringRange borrows n bytes of s starting at off. It panics when
// off+n > len(s).
func OfStringRange(s string, off, n int) Bytes {
	if off < 0 || n < 0 || off+n > len(s) {
		panic(fmt.Sprintf("view: string window [%d:%d) out of range [0:%d]", off, off+n, len(s)))
	}
	return Bytes{s: stringToBytes(s)[off : off+n]}
}

// OfCString borrows b up to, and not including, the first NUL byte. A slice
// with no terminator is borrowed whole.
func OfCString(b []byte) Bytes {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return Bytes{s: b[:i]}
	}
	return Bytes{s: b}
}

// Compare orders a and b lexicographically by content, ties broken by
// length. It returns -1, 0 or 1.
func Compare(a, b Bytes) int {
	return bytes.Compare(a.s, b.s)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b Bytes) bool {
	return bytes.Equal(a.s, b.s)
}

// Less reports whether a orders before b under Compare.
func Less(a, b Bytes) bool {
	return bytes.Compare(a.s, b.s) < 0
}

// CompareString orders a view against plain string content. The borrow is
// explicit here so callers never pay a hidden conversion.
func CompareString(a Bytes, s string) int {
	return Compare(a, OfString(s))
}

// EqualString reports whether a holds exactly the bytes of s.
func EqualString(a Bytes, s string) bool {
	return Equal(a, OfString(s))
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b Bytes) bool {
	if len(a.s) != len(b.s) {
		return false
	}
	for i := range a.s {
		if !search.CaseInsensitive(a.s[i], b.s[i]) {
			return false
		}
	}
	return true
}

// Hash returns a Bernstein running hash of the window: seed 5381, each step
// h*33 + byte. Deterministic and allocation free; not cryptographic.
func Hash(v Bytes) uint32 {
	h := uint32(5381)
	for _, c := range v.s {
		h = (h << 5) + h + uint32(c)
	}
	return h
}

// Find returns the lowest offset of needle in v, or search.NotFound.
func Find(v, needle Bytes) int {
	return search.Find(v.s, needle.s)
}

// FindAt is Find starting at pos; a hit is reported relative to the start of
// v, and pos > v.Len() reports search.NotFound.
func FindAt(v, needle Bytes, pos int) int {
	if pos < 0 || pos > len(v.s) {
		return search.NotFound
	}
	ret := search.Find(v.s[pos:], needle.s)
	if ret == search.NotFound {
		return ret
	}
	return ret + pos
}

// FindFold is Find under ASCII case folding.
func FindFold(v, needle Bytes) int {
	return search.FindFold(v.s, needle.s)
}

// FindString locates plain string content in v.
func FindString(v Bytes, s string) int {
	return search.Find(v.s, stringToBytes(s))
}

// FindStringAt is FindString starting at pos, reported like FindAt.
func FindStringAt(v Bytes, s string, pos int) int {
	return FindAt(v, OfString(s), pos)
}

// FindByte returns the lowest offset of c in v, or search.NotFound.
func FindByte(v Bytes, c byte) int {
	return search.FindByte(v.s, c)
}

// FindByteAt is FindByte starting at pos, reported like FindAt.
func FindByteAt(v Bytes, c byte, pos int) int {
	if pos < 0 || pos > len(v.s) {
		return search.NotFound
	}
	ret := search.FindByte(v.s[pos:], c)
	if ret == search.NotFound {
		return ret
	}
	return ret + pos
}

// HasPrefix reports whether v begins with p.
func HasPrefix(v, p Bytes) bool {
	return bytes.HasPrefix(v.s, p.s)
}

// HasSuffix reports whether v ends with p.
func HasSuffix(v, p Bytes) bool {
	return bytes.HasSuffix(v.s, p.s)
}

// TrimPrefix returns v narrowed past p when v begins with p, otherwise v
// unchanged. The result still borrows the same storage.
func TrimPrefix(v, p Bytes) Bytes {
	if HasPrefix(v, p) {
		return Bytes{s: v.s[p.Len():]}
	}
	return v
}

// TrimSuffix returns v narrowed before p when v ends with p, otherwise v
// unchanged.
func TrimSuffix(v, p Bytes) Bytes {
	if HasSuffix(v, p) {
		return Bytes{s: v.s[:len(v.s)-p.Len()]}
	}
	return v
}

// Str copies the window into a fresh string.
func Str(v Bytes) string {
	return string(v.s)
}

// WriteTo streams the exact window [begin, end) to w, with no delimiters or
// escaping.
func WriteTo(v Bytes, w io.Writer) (int64, error) {
	n, err := w.Write(v.s)
	return int64(n), err
}
