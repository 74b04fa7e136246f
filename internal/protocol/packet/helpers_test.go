package packet

import (
	"strings"
	"testing"
)

// hexFromBits packs a string of '0'/'1' (spaces ignored) into uppercase
// hex, zero padding the tail to a whole nibble.
func hexFromBits(t *testing.T, bits string) string {
	t.Helper()
	bits = strings.ReplaceAll(bits, " ", "")
	if rem := len(bits) % 4; rem != 0 {
		bits += strings.Repeat("0", 4-rem)
	}
	const digits = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(bits); i += 4 {
		var nib byte
		for _, c := range bits[i : i+4] {
			switch c {
			case '0':
				nib <<= 1
			case '1':
				nib = nib<<1 | 1
			default:
				t.Fatalf("bad bit %q", c)
			}
		}
		b.WriteByte(digits[nib])
	}
	return b.String()
}

func literal(version uint8, value uint64, bits int) *Packet {
	return &Packet{Header: Header{Version: version, Type: TypeLiteral}, Kind: KindLiteral, Value: value, Bits: bits}
}

func operator(t Type, kind Kind, children ...*Packet) *Packet {
	return &Packet{Header: Header{Type: t}, Kind: kind, Children: children}
}
