package view

import "unsafe"

// stringToBytes converts a string to []byte without allocating. The returned
// slice shares storage with the string and must never be written to.
func stringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
