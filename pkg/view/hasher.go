package view

import "github.com/cespare/xxhash/v2"

// Hasher maps view content to a table slot. Equal content must hash equally
// no matter which storage the view borrows, so a Hasher may only read the
// window, never its position.
type Hasher func(v Bytes) uint64

// BernsteinHash keys a table with the view's own Hash.
func BernsteinHash(v Bytes) uint64 {
	return uint64(Hash(v))
}

// XXHash keys a table with xxHash64 over the window. Prefer it over
// BernsteinHash when keys are long or adversarial.
func XXHash(v Bytes) uint64 {
	return xxhash.Sum64(v.s)
}
