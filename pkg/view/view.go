package view

import (
	"fmt"

	"github.com/seqview/seqview/pkg/search"
)

// View is a non-owning half-open window [begin, end) over a caller-owned
// slice. It borrows the backing array and never copies, grows or frees it;
// every mutating operation only narrows the window. A View stays valid
// exactly as long as the storage it borrows; it dangles if that storage is
// freed or reallocated, just like a kept subslice would.
type View[T any] struct {
	s []T
}

// Of returns a View borrowing all of s.
func Of[T any](s []T) View[T] {
	return View[T]{s: s}
}

// Between returns a View over the window s[i:j). It panics unless
// 0 <= i <= j <= len(s).
func Between[T any](s []T, i, j int) View[T] {
	if i < 0 || j < i || j > len(s) {
		panic(fmt.Sprintf("view: bad window [%d:%d) over %d elements", i, j, len(s)))
	}
	return View[T]{s: s[i:j]}
}

// Make returns a View over n elements of s starting at off. It panics
// unless the window fits within s.
func Make[T any](s []T, off, n int) View[T] {
	if off < 0 || n < 0 || off+n > len(s) {
		panic(fmt.Sprintf("view: bad window [%d:%d) over %d elements", off, off+n, len(s)))
	}
	return View[T]{s: s[off : off+n]}
}

// Len returns the number of elements in the window.
func (v View[T]) Len() int {
	return len(v.s)
}

// Empty reports whether the window holds no elements.
func (v View[T]) Empty() bool {
	return len(v.s) == 0
}

// Front returns the first element. The view must not be empty.
func (v View[T]) Front() T {
	return v.s[0]
}

// Back returns the last element. The view must not be empty.
func (v View[T]) Back() T {
	return v.s[len(v.s)-1]
}

// At returns the element at index i. It panics unless i < Len().
func (v View[T]) At(i int) T {
	if i < 0 || i >= len(v.s) {
		panic(fmt.Sprintf("view: index %d out of range [0:%d)", i, len(v.s)))
	}
	return v.s[i]
}

// Lookup is the recoverable form of At: it returns ErrOutOfRange instead of
// panicking when i is not within the window.
func (v View[T]) Lookup(i int) (T, error) {
	if i < 0 || i >= len(v.s) {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.s[i], nil
}

// Subview returns the window from off to the end. It panics when off > Len().
func (v View[T]) Subview(off int) View[T] {
	return v.SubviewN(off, len(v.s)-off)
}

// SubviewN returns a window of at most n elements starting at off. The
// length is clamped to Len()-off; a negative n means "the rest". It panics
// when off > Len().
func (v View[T]) SubviewN(off, n int) View[T] {
	if off < 0 || off > len(v.s) {
		panic(fmt.Sprintf("view: subview offset %d out of range [0:%d]", off, len(v.s)))
	}
	if rest := len(v.s) - off; n < 0 || n > rest {
		n = rest
	}
	return View[T]{s: v.s[off : off+n]}
}

// Advance shrinks the window from the front by n elements. It panics when
// n > Len().
func (v *View[T]) Advance(n int) {
	if n < 0 || n > len(v.s) {
		panic(fmt.Sprintf("view: advance %d out of range [0:%d]", n, len(v.s)))
	}
	v.s = v.s[n:]
}

// Subtract shrinks the window from the back by n elements. It panics when
// n > Len().
func (v *View[T]) Subtract(n int) {
	if n < 0 || n > len(v.s) {
		panic(fmt.Sprintf("view: subtract %d out of range [0:%d]", n, len(v.s)))
	}
	v.s = v.s[:len(v.s)-n]
}

// PopFront drops the first element. The view must not be empty.
func (v *View[T]) PopFront() {
	v.s = v.s[1:]
}

// PopBack drops the last element. The view must not be empty.
func (v *View[T]) PopBack() {
	v.s = v.s[:len(v.s)-1]
}

// Clear empties the window and drops the borrow.
func (v *View[T]) Clear() {
	v.s = nil
}

// Assign rebinds the view to borrow all of s.
func (v *View[T]) Assign(s []T) {
	v.s = s
}

// Reset rebinds the view to a window of n elements of s starting at off,
// with the same bounds check as Make.
func (v *View[T]) Reset(s []T, off, n int) {
	*v = Make(s, off, n)
}

// Swap exchanges the windows of v and o. No element is touched.
func (v *View[T]) Swap(o *View[T]) {
	v.s, o.s = o.s, v.s
}

// Raw returns the borrowed window itself, sharing storage with the view.
// Writes through the returned slice write through to the underlying storage.
func (v View[T]) Raw() []T {
	return v.s
}

// CopyTo copies the window into dst and returns the number of elements
// copied. This is the one operation that duplicates elements.
func (v View[T]) CopyTo(dst []T) int {
	return copy(dst, v.s)
}

// FindFunc returns the lowest offset at which needle occurs in v under eq,
// or search.NotFound.
func (v View[T]) FindFunc(needle View[T], eq func(a, b T) bool) int {
	return search.FindFunc(v.s, needle.s, eq)
}

// String renders the exact window. Byte views render as their raw bytes with
// no delimiters or escaping; any other element type gets the fmt default.
func (v View[T]) String() string {
	if b, ok := any(v.s).([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v.s)
}
