package packet

import (
	"fmt"
	"slices"
)

// Evaluate folds the tree into a single value. Sum and product wrap on
// overflow.
func Evaluate(p *Packet) (uint64, error) {
	if p == nil {
		return 0, fmt.Errorf("packet: evaluate nil packet: %w", ErrMalformedPacket)
	}
	if p.Type == TypeLiteral || p.Kind == KindLiteral {
		if p.Type != TypeLiteral || p.Kind != KindLiteral {
			return 0, fmt.Errorf("packet: %s carries %s content: %w", p.Type, p.Kind, ErrMalformedPacket)
		}
		return p.Value, nil
	}

	values := make([]uint64, len(p.Children))
	for i, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return apply(p.Type, values)
}

func apply(t Type, values []uint64) (uint64, error) {
	switch t {
	case TypeSum:
		var total uint64
		for _, v := range values {
			total += v
		}
		return total, nil
	case TypeProduct:
		total := uint64(1)
		for _, v := range values {
			total *= v
		}
		return total, nil
	case TypeMinimum:
		if len(values) == 0 {
			return 0, &ArityError{Type: t}
		}
		return slices.Min(values), nil
	case TypeMaximum:
		if len(values) == 0 {
			return 0, &ArityError{Type: t}
		}
		return slices.Max(values), nil
	case TypeGreaterThan, TypeLessThan, TypeEqualTo:
		if len(values) != 2 {
			return 0, &ArityError{Type: t, Children: len(values)}
		}
		return compare(t, values[0], values[1]), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
}

func compare(t Type, a, b uint64) uint64 {
	var ok bool
	switch t {
	case TypeGreaterThan:
		ok = a > b
	case TypeLessThan:
		ok = a < b
	default:
		ok = a == b
	}
	if ok {
		return 1
	}
	return 0
}
