package viewmap

import (
	"bytes"

	"github.com/seqview/seqview/pkg/view"
)

const (
	DefaultLoadFactor = 0.90 // load factor must exceed 50%
	DefaultMapSize    = 16
)

// entry is the key value pair held in each bucket. The key bytes are owned
// by the map; they are copied in on insert so a caller's view may dangle
// later without corrupting the table.
type entry[V any] struct {
	key []byte
	val V
}

// bucket is a single slot in the table
type bucket[V any] struct {
	dib     uint8
	hashkey uint64
	entry[V]
}

// matches checks this bucket against the given hashkey and key content
func (b *bucket[V]) matches(hashkey uint64, key view.Bytes) bool {
	return b.hashkey == hashkey && bytes.Equal(b.key, key.Raw())
}

// Map is a robin-hood open-addressing table keyed by byte content. Keys are
// presented as views over any storage; two views with equal content name the
// same slot, which is exactly the guarantee a view.Hasher carries.
type Map[V any] struct {
	hash    view.Hasher
	mask    uint64
	expand  uint
	shrink  uint
	keys    uint
	size    uint
	buckets []bucket[V]
}

// alignBucketCount aligns buckets to ensure all sizes are powers of two
func alignBucketCount(size uint) uint64 {
	count := uint(DefaultMapSize)
	for count < size {
		count *= 2
	}
	return uint64(count)
}

// New returns a Map sized for at least size entries, keyed with
// view.BernsteinHash.
func New[V any](size uint) *Map[V] {
	return NewWithHasher[V](size, view.BernsteinHash)
}

// NewWithHasher is New with an explicit content hasher, view.XXHash being
// the usual alternative.
func NewWithHasher[V any](size uint, hash view.Hasher) *Map[V] {
	if hash == nil {
		hash = view.BernsteinHash
	}
	bukCnt := alignBucketCount(size)
	return &Map[V]{
		hash:    hash,
		mask:    bukCnt - 1, // power of two, so mask instead of modulo
		expand:  uint(float64(bukCnt) * DefaultLoadFactor),
		shrink:  uint(float64(bukCnt) * (1 - DefaultLoadFactor)),
		size:    size,
		buckets: make([]bucket[V], bukCnt),
	}
}

// resize rebuilds the table at newSize, reinserting every live bucket with
// its stored hashkey.
func (m *Map[V]) resize(newSize uint) {
	nm := NewWithHasher[V](newSize, m.hash)
	for i := 0; i < len(m.buckets); i++ {
		if m.buckets[i].dib > 0 {
			nm.insertInternal(m.buckets[i].hashkey, m.buckets[i].key, m.buckets[i].val)
		}
	}
	tsize := m.size
	*m = *nm
	m.size = tsize
}

// Get returns the value stored under key content, or false.
func (m *Map[V]) Get(key view.Bytes) (V, bool) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, false
	}
	hashkey := m.hash(key)
	i := hashkey & m.mask
	for {
		if m.buckets[i].dib == 0 {
			return zero, false
		}
		if m.buckets[i].matches(hashkey, key) {
			return m.buckets[i].val, true
		}
		i = (i + 1) & m.mask
	}
}

// Set stores value under key content, copying the key bytes, and returns the
// previous value when the key was already present.
func (m *Map[V]) Set(key view.Bytes, value V) (V, bool) {
	if len(m.buckets) == 0 {
		*m = *NewWithHasher[V](DefaultMapSize, m.hash)
	}
	if m.keys >= m.expand {
		m.resize(uint(len(m.buckets)) * 2)
	}
	hashkey := m.hash(key)
	own := make([]byte, key.Len())
	key.CopyTo(own)
	return m.insertInternal(hashkey, own, value)
}

// insertInternal does the robin-hood probe: claim the first free slot, or
// swap with any resident entry that sits closer to its initial bucket.
func (m *Map[V]) insertInternal(hashkey uint64, key []byte, value V) (V, bool) {
	var zero V
	newb := bucket[V]{
		dib:     1,
		hashkey: hashkey,
		entry:   entry[V]{key: key, val: value},
	}
	i := newb.hashkey & m.mask
	for {
		if m.buckets[i].dib == 0 {
			m.buckets[i] = newb
			m.keys++
			return zero, false
		}
		if m.buckets[i].hashkey == newb.hashkey && bytes.Equal(m.buckets[i].key, newb.key) {
			oldval := m.buckets[i].val
			m.buckets[i].val = newb.val
			return oldval, true
		}
		if m.buckets[i].dib < newb.dib {
			newb, m.buckets[i] = m.buckets[i], newb
		}
		i = (i + 1) & m.mask
		newb.dib++
	}
}

// Del removes the entry under key content and returns the deleted value, or
// false.
func (m *Map[V]) Del(key view.Bytes) (V, bool) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, false
	}
	hashkey := m.hash(key)
	i := hashkey & m.mask
	for {
		if m.buckets[i].dib == 0 {
			return zero, false
		}
		if m.buckets[i].matches(hashkey, key) {
			oldval := m.buckets[i].val
			m.deleteInternal(i)
			return oldval, true
		}
		i = (i + 1) & m.mask
	}
}

// deleteInternal clears slot i and backward-shifts the run behind it.
func (m *Map[V]) deleteInternal(i uint64) {
	m.buckets[i].dib = 0
	for {
		pi := i
		i = (i + 1) & m.mask
		if m.buckets[i].dib <= 1 {
			m.buckets[pi] = bucket[V]{}
			break
		}
		m.buckets[pi] = m.buckets[i]
		m.buckets[pi].dib--
	}
	m.keys--
	if m.keys <= m.shrink && uint(len(m.buckets)) > m.size {
		m.resize(m.keys)
	}
}

// Iterator is the ranging callback; returning false stops the walk.
type Iterator[V any] func(key view.Bytes, value V) bool

// Range walks every live entry. The key view borrows the map's own storage
// and is only valid during the callback. Not safe to Set or Del while
// ranging.
func (m *Map[V]) Range(it Iterator[V]) {
	for i := 0; i < len(m.buckets); i++ {
		if m.buckets[i].dib < 1 {
			continue
		}
		if !it(view.OfBytes(m.buckets[i].key), m.buckets[i].val) {
			return
		}
	}
}

// PercentFull returns the current load factor of the table.
func (m *Map[V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// Len returns the number of entries currently in the table.
func (m *Map[V]) Len() int {
	return int(m.keys)
}
