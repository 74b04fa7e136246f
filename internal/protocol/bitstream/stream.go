package bitstream

// MaxWidth is the widest single read supported by ReadBits.
const MaxWidth = 16

// Stream is a read-only bit cursor over a byte buffer.
// Reads either succeed and advance, or fail and leave the cursor untouched.
type Stream struct {
	buf     []byte
	byteOff int
	bitOff  uint8 // 0 ≤ bitOff < 8
}

// FromHex packs uppercase hex digits two per byte, high nibble first.
// An odd digit count leaves the low nibble of the last byte zero.
func FromHex(s string) (*Stream, error) {
	buf := make([]byte, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		nib, ok := nibble(s[i])
		if !ok {
			return nil, &IllegalCharacterError{Char: rune(s[i]), Index: i}
		}
		if i%2 == 0 {
			buf[i/2] = nib << 4
		} else {
			buf[i/2] |= nib
		}
	}
	return &Stream{buf: buf}, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Len is the total number of bits in the stream.
func (s *Stream) Len() int {
	return len(s.buf) * 8
}

// Pos is the number of bits consumed so far.
func (s *Stream) Pos() int {
	return s.byteOff*8 + int(s.bitOff)
}

// Remaining is the number of unread bits.
func (s *Stream) Remaining() int {
	return s.Len() - s.Pos()
}

// ReadBits returns the next n bits, most significant first.
func (s *Stream) ReadBits(n int) (uint16, error) {
	if n <= 0 || n > MaxWidth {
		return 0, ErrInvalidWidth
	}
	if n > s.Remaining() {
		return 0, ErrExhausted
	}

	// Up to 7 bits of offset plus 16 requested bits fit in three bytes.
	var window uint32
	for i := 0; i < 3; i++ {
		window <<= 8
		if idx := s.byteOff + i; idx < len(s.buf) {
			window |= uint32(s.buf[idx])
		}
	}
	shift := 24 - int(s.bitOff) - n
	v := uint16((window >> shift) & (1<<n - 1))

	pos := s.Pos() + n
	s.byteOff = pos / 8
	s.bitOff = uint8(pos % 8)
	return v, nil
}

// ReadBool reads a single bit.
func (s *Stream) ReadBool() (bool, error) {
	v, err := s.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
