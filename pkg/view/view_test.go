package view_test

import (
	"testing"

	"github.com/seqview/seqview/pkg/search"
	"github.com/seqview/seqview/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	v := view.Of(s)
	assert.Equal(t, 5, v.Len())
	assert.False(t, v.Empty())
	assert.Equal(t, 1, v.Front())
	assert.Equal(t, 5, v.Back())

	var zero view.View[int]
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.Empty())
}

func TestBetween(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		i, j    int
		wantLen int
	}{
		{"whole slice", 0, 6, 6},
		{"inner window", 1, 4, 3},
		{"empty window", 3, 3, 0},
		{"empty at end", 6, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := view.Between(s, tt.i, tt.j)
			assert.Equal(t, tt.wantLen, v.Len())
			assert.Equal(t, tt.wantLen == 0, v.Empty())
			for k := 0; k < tt.wantLen; k++ {
				assert.Equal(t, s[tt.i+k], v.At(k))
			}
		})
	}

	assert.Panics(t, func() { view.Between(s, 4, 3) })
	assert.Panics(t, func() { view.Between(s, 0, 7) })
	assert.Panics(t, func() { view.Between(s, -1, 3) })
}

func TestMake(t *testing.T) {
	s := []byte("hello world")
	v := view.Make(s, 6, 5)
	assert.Equal(t, "world", v.String())

	assert.Panics(t, func() { view.Make(s, 8, 5) })
	assert.Panics(t, func() { view.Make(s, -1, 2) })
	assert.Panics(t, func() { view.Make(s, 0, -1) })
}

func TestAtAndLookup(t *testing.T) {
	v := view.Of([]int{10, 20, 30})

	assert.Equal(t, 10, v.At(0))
	assert.Equal(t, 30, v.At(2))
	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { v.At(-1) })

	got, err := v.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	_, err = v.Lookup(3)
	require.ErrorIs(t, err, view.ErrOutOfRange)
	_, err = v.Lookup(-1)
	require.ErrorIs(t, err, view.ErrOutOfRange)
}

func TestSubview(t *testing.T) {
	s := []byte("abcdefgh")
	v := view.Of(s)
	n := v.Len()

	// SubviewN(o, l) yields min(l, n-o) elements starting at o
	for o := 0; o <= n; o++ {
		for l := 0; l <= n+2; l++ {
			sub := v.SubviewN(o, l)
			wantLen := l
			if rest := n - o; wantLen > rest {
				wantLen = rest
			}
			require.Equal(t, wantLen, sub.Len(), "SubviewN(%d, %d)", o, l)
			for k := 0; k < sub.Len(); k++ {
				require.Equal(t, s[o+k], sub.At(k))
			}
		}
	}

	assert.True(t, v.Subview(n).Empty())
	assert.Equal(t, "defgh", v.Subview(3).String())
	assert.Equal(t, "de", v.SubviewN(3, 2).String())

	// negative length means "the rest"
	assert.Equal(t, "defgh", v.SubviewN(3, -1).String())

	assert.Panics(t, func() { v.Subview(n + 1) })
	assert.Panics(t, func() { v.SubviewN(n+1, 0) })
}

func TestNarrowing(t *testing.T) {
	v := view.Of([]byte("abcdefgh"))

	v.Advance(2)
	assert.Equal(t, "cdefgh", v.String())
	v.Subtract(3)
	assert.Equal(t, "cde", v.String())
	v.PopFront()
	v.PopBack()
	assert.Equal(t, "d", v.String())
	v.PopBack()
	assert.True(t, v.Empty())

	assert.Panics(t, func() {
		w := view.Of([]byte("ab"))
		w.Advance(3)
	})
	assert.Panics(t, func() {
		w := view.Of([]byte("ab"))
		w.Subtract(3)
	})
	assert.Panics(t, func() {
		var w view.View[byte]
		w.PopFront()
	})
	assert.Panics(t, func() {
		var w view.View[byte]
		w.PopBack()
	})

	// advancing by the full size empties but never grows the window
	w := view.Of([]byte("xy"))
	w.Advance(2)
	assert.True(t, w.Empty())
}

func TestClearAssignReset(t *testing.T) {
	s := []byte("abcdef")
	v := view.Of(s)

	v.Clear()
	assert.True(t, v.Empty())

	v.Assign(s)
	assert.Equal(t, 6, v.Len())

	v.Reset(s, 2, 3)
	assert.Equal(t, "cde", v.String())
	assert.Panics(t, func() { v.Reset(s, 5, 3) })
}

func TestSwap(t *testing.T) {
	a := view.OfString("left")
	b := view.OfString("right")
	a.Swap(&b)
	assert.Equal(t, "right", a.String())
	assert.Equal(t, "left", b.String())
}

func TestRawSharesStorage(t *testing.T) {
	s := []byte("abc")
	v := view.Of(s)

	// the view is a borrow: changes to the storage are visible through it
	s[0] = 'x'
	assert.Equal(t, byte('x'), v.Front())
	assert.Same(t, &s[0], &v.Raw()[0])
}

func TestCopyTo(t *testing.T) {
	v := view.OfString("hello")
	dst := make([]byte, 5)
	n := v.CopyTo(dst)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(dst))

	short := make([]byte, 2)
	assert.Equal(t, 2, v.CopyTo(short))
	assert.Equal(t, "he", string(short))
}

func TestFindFunc(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	v := view.Of([]int{3, 1, 4, 1, 5, 9, 2, 6})

	assert.Equal(t, 2, v.FindFunc(view.Of([]int{4, 1, 5}), eq))
	assert.Equal(t, search.NotFound, v.FindFunc(view.Of([]int{4, 4}), eq))
	assert.Equal(t, 0, v.FindFunc(view.View[int]{}, eq))
}
