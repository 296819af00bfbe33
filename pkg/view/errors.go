package view

import "fmt"

var (
	ErrOutOfRange = fmt.Errorf("view: index out of range")
)
