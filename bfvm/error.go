package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrMismatchedBracket = errors.New("mismatched bracket")
	ErrSizeExceeded      = errors.New("tape size exceeded")
)

func mismatchedBracket(msg string, pc int) error {
	return fmt.Errorf("%w: %s (instruction %d)", ErrMismatchedBracket, msg, pc)
}

func sizeExceeded(direction string, maxSize int) error {
	return fmt.Errorf("%w: move %s would allocate more than %d cells", ErrSizeExceeded, direction, maxSize)
}
