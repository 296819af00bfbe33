package search

// BruteForce is the reference Searcher: a plain per-position scan with no
// skip machinery. The differential tests check Horspool against it.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return new(BruteForce)
}

func (b *BruteForce) String() string {
	return "BRUTE-FORCE"
}

func (b *BruteForce) FindIndex(text, pattern []byte) int {
	return bruteFind(text, pattern, CaseSensitive)
}

func (b *BruteForce) FindIndexString(text, pattern string) int {
	return bruteFind(stob(text), stob(pattern), CaseSensitive)
}

// bruteFind checks every candidate window left to right. Same contract as
// FindWith.
func bruteFind(text, pattern []byte, eq Comparator) int {
	if len(text) < len(pattern) {
		return NotFound
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && eq(text[i+j], pattern[j]) {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return NotFound
}
