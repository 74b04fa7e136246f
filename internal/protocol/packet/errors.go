package packet

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPacket = errors.New("packet: malformed packet")
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")
	ErrTooDeep         = errors.New("packet: nesting too deep")
	ErrUnknownType     = errors.New("packet: unknown type")
)

// LengthMismatchError reports a bit-length group whose children did not
// end exactly on the declared boundary.
type LengthMismatchError struct {
	Pos  int
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("packet: group at bit %d declares %d bits, children used %d", e.Pos, e.Want, e.Got)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrMalformedPacket
}

// ArityError reports an operator with the wrong number of operands.
type ArityError struct {
	Type     Type
	Children int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("packet: %s with %d children", e.Type, e.Children)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrMalformedPacket
}
