package seqview

import "github.com/seqview/seqview/pkg/view"

// Searcher is the substring-search contract for this module; the shipped
// strategies live in pkg/search.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// Hasher is the content-hashing contract used to key tables by view content.
type Hasher = view.Hasher
