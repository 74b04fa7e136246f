package packet

import "fmt"

// Type is the 3-bit packet type code.
type Type uint8

const (
	TypeSum Type = iota
	TypeProduct
	TypeMinimum
	TypeMaximum
	TypeLiteral
	TypeGreaterThan
	TypeLessThan
	TypeEqualTo
)

var typeNames = [...]string{
	TypeSum:         "sum",
	TypeProduct:     "product",
	TypeMinimum:     "minimum",
	TypeMaximum:     "maximum",
	TypeLiteral:     "literal",
	TypeGreaterThan: "greater_than",
	TypeLessThan:    "less_than",
	TypeEqualTo:     "equal_to",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Kind selects which content fields of a Packet are meaningful.
type Kind uint8

const (
	KindLiteral   Kind = iota // Value
	KindBitLength             // Children bounded by a total bit count
	KindCount                 // Children bounded by a packet count
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindBitLength:
		return "bit_length"
	case KindCount:
		return "count"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Header is the fixed 6-bit packet prefix.
type Header struct {
	Version uint8
	Type    Type
}

// Packet is one decoded node. A packet owns its children.
type Packet struct {
	Header
	Kind     Kind
	Value    uint64
	Children []*Packet
	// Bits is the number of stream bits this packet occupied, header included.
	Bits int
}

func (p *Packet) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.Kind == KindLiteral {
		return fmt.Sprintf("v%d literal=%d bits=%d", p.Version, p.Value, p.Bits)
	}
	return fmt.Sprintf("v%d %s %s children=%d bits=%d", p.Version, p.Type, p.Kind, len(p.Children), p.Bits)
}
