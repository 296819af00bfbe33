package search_test

import (
	"fmt"

	"github.com/seqview/seqview/pkg/search"
)

func ExampleFind() {
	haystack := []byte("abcxabcdabxabcd")
	needle := []byte("abcd")

	pos := search.Find(haystack, needle)
	if pos != search.NotFound {
		fmt.Printf("found at offset %d\n", pos)
	}
	// Output: found at offset 4
}

func ExampleFindFold() {
	header := []byte("Content-Length: 1234\r\n")

	pos := search.FindFold(header, []byte("content-length:"))
	fmt.Println(pos)
	// Output: 0
}

func ExampleFindWith() {
	// a comparator that treats '_' and '-' as the same byte
	eq := func(a, b byte) bool {
		if a == '_' {
			a = '-'
		}
		if b == '_' {
			b = '-'
		}
		return a == b
	}

	pos := search.FindWith([]byte("snake_case here"), []byte("snake-case"), eq)
	fmt.Println(pos)
	// Output: 0
}
