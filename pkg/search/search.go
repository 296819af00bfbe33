package search

// NotFound is the sentinel offset reported when a pattern does not occur.
const NotFound = -1

// Searcher is a single-pattern substring-search strategy.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// Horspool:
// Compares the last byte of the pattern first, which rejects most candidate
// windows in a single comparison, and on a partial mismatch shifts by a skip
// distance derived from the pattern's last byte. The skip is computed lazily,
// at most once per search, so there is no preprocessing pass and no
// allocation. Average case is well under text*pattern comparisons; the worst
// case for adversarial repeating patterns stays O(len(text)*len(pattern)),
// the accepted trade against full Boyer-Moore.

// Brute force:
// Checks every candidate position left to right. Quadratic, but branch-light
// and exactly the reference semantics, which is why the differential tests
// and the demo keep it around.
