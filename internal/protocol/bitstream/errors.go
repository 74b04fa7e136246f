package bitstream

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalCharacter = errors.New("bitstream: illegal character")
	ErrInvalidWidth     = errors.New("bitstream: invalid bit width")
	ErrExhausted        = errors.New("bitstream: exhausted")
)

// IllegalCharacterError reports the first non hex digit in the input.
type IllegalCharacterError struct {
	Char  rune
	Index int
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("bitstream: illegal character %q at index %d", e.Char, e.Index)
}

func (e *IllegalCharacterError) Is(target error) bool {
	return target == ErrIllegalCharacter
}
