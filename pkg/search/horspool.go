package search

import (
	"bytes"
	"unsafe"
)

// Comparator is a stateless, total byte-equality predicate. Any comparator
// must be reflexive over the pattern alphabet; the two shipped here are
// exact equality and ASCII case folding.
type Comparator func(a, b byte) bool

// CaseSensitive is exact byte equality.
func CaseSensitive(a, b byte) bool {
	return a == b
}

// CaseInsensitive folds both operands to ASCII uppercase before comparing.
// No locale, no Unicode.
func CaseInsensitive(a, b byte) bool {
	return toUpper(a) == toUpper(b)
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// Find returns the lowest offset at which pattern occurs in text, or
// NotFound. An empty pattern matches at offset 0 of any text, including an
// empty one.
func Find(text, pattern []byte) int {
	return FindWith(text, pattern, CaseSensitive)
}

// FindFold is Find under ASCII case folding.
func FindFold(text, pattern []byte) int {
	return FindWith(text, pattern, CaseInsensitive)
}

// FindString is Find over string operands. Neither operand is copied.
func FindString(text, pattern string) int {
	return FindWith(stob(text), stob(pattern), CaseSensitive)
}

// FindFoldString is FindFold over string operands.
func FindFoldString(text, pattern string) int {
	return FindWith(stob(text), stob(pattern), CaseInsensitive)
}

// FindWith is the general form of Find: it locates pattern in text under an
// arbitrary byte comparator. Horspool-flavored; see the package notes. The
// skip distance is computed lazily at most once per call and reused for the
// rest of that call.
func FindWith(text, pattern []byte, eq Comparator) int {
	n := len(pattern)
	if len(text) < n {
		return NotFound
	}
	if n == 0 {
		return 0
	}
	k := n - 1
	last := pattern[k]
	if k == 0 {
		// one-byte pattern, the skip machinery buys nothing
		return FindByteWith(text, last, eq)
	}

	// Skip distance for the pattern's last byte. Zero means "not yet
	// computed"; a real skip is always in [1, k].
	skip := 0

	i, end := 0, len(text)-k
	for i < end {
		// reject the window on its last byte first
		for !eq(text[i+k], last) {
			i++
			if i == end {
				return NotFound
			}
		}
		// last byte matched, verify left to right
		for j := 0; ; {
			if !eq(text[i+j], pattern[j]) {
				if skip == 0 {
					skip = lastByteSkip(pattern, eq)
				}
				i += skip
				break
			}
			j++
			if j == n {
				return i
			}
		}
	}
	return NotFound
}

// lastByteSkip returns the smallest positive shift that realigns the
// pattern's last byte with its previous occurrence inside the pattern, or 1
// when the last byte occurs nowhere else.
func lastByteSkip(pattern []byte, eq Comparator) int {
	k := len(pattern) - 1
	last := pattern[k]
	for skip := 1; skip <= k; skip++ {
		if eq(pattern[k-skip], last) {
			return skip
		}
	}
	return 1
}

// FindByte returns the lowest offset of c in text, or NotFound.
func FindByte(text []byte, c byte) int {
	if i := bytes.IndexByte(text, c); i >= 0 {
		return i
	}
	return NotFound
}

// FindByteWith is FindByte under an arbitrary comparator.
func FindByteWith(text []byte, c byte, eq Comparator) int {
	for i := 0; i < len(text); i++ {
		if eq(text[i], c) {
			return i
		}
	}
	return NotFound
}

// FindFunc is FindWith generalized to any element type. Same contract, same
// lazily cached skip.
func FindFunc[T any](text, pattern []T, eq func(a, b T) bool) int {
	n := len(pattern)
	if len(text) < n {
		return NotFound
	}
	if n == 0 {
		return 0
	}
	k := n - 1
	last := pattern[k]
	if k == 0 {
		for i := 0; i < len(text); i++ {
			if eq(text[i], last) {
				return i
			}
		}
		return NotFound
	}

	skip := 0

	i, end := 0, len(text)-k
	for i < end {
		for !eq(text[i+k], last) {
			i++
			if i == end {
				return NotFound
			}
		}
		for j := 0; ; {
			if !eq(text[i+j], pattern[j]) {
				if skip == 0 {
					skip = 1
					for s := 1; s <= k; s++ {
						if eq(pattern[k-s], last) {
							skip = s
							break
						}
					}
				}
				i += skip
				break
			}
			j++
			if j == n {
				return i
			}
		}
	}
	return NotFound
}

// Horspool is the Searcher strategy over Find.
type Horspool struct{}

func NewHorspool() *Horspool {
	return new(Horspool)
}

func (h *Horspool) String() string {
	return "HORSPOOL"
}

func (h *Horspool) FindIndex(text, pattern []byte) int {
	return Find(text, pattern)
}

func (h *Horspool) FindIndexString(text, pattern string) int {
	return FindString(text, pattern)
}

// HorspoolFold is the Searcher strategy over FindFold.
type HorspoolFold struct{}

func NewHorspoolFold() *HorspoolFold {
	return new(HorspoolFold)
}

func (h *HorspoolFold) String() string {
	return "HORSPOOL-FOLD"
}

func (h *HorspoolFold) FindIndex(text, pattern []byte) int {
	return FindFold(text, pattern)
}

func (h *HorspoolFold) FindIndexString(text, pattern string) int {
	return FindFoldString(text, pattern)
}

// stob reinterprets a string as a byte slice without copying. Read-only use
// only; search never writes to its operands.
func stob(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
