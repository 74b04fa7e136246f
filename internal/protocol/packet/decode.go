package packet

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol/bitstream"
	"github.com/rs/zerolog/log"
)

const (
	headerBits      = 3 + 3
	literalGroup    = 5
	lengthTypeBits  = 1
	bitLengthBits   = 15
	countBits       = 11
	DefaultMaxDepth = 512
)

// Options tunes decoding.
type Options struct {
	// MaxDepth bounds packet nesting; zero means DefaultMaxDepth.
	MaxDepth int
	// AllowOverrun accepts bit-length groups whose children run past the
	// declared length instead of ending exactly on it.
	AllowOverrun bool
}

// DefaultOptions enforces exact group lengths and DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Decoder builds packet trees from bit streams.
type Decoder struct {
	opts Options
}

// NewDecoder returns a decoder using opts.
func NewDecoder(opts Options) *Decoder {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Decoder{opts: opts}
}

// Parse decodes one packet from s with default options.
func Parse(s *bitstream.Stream) (*Packet, error) {
	return NewDecoder(DefaultOptions()).Decode(s)
}

// ParseHex decodes one packet from uppercase hex with default options.
func ParseHex(hex string) (*Packet, error) {
	return NewDecoder(DefaultOptions()).DecodeHex(hex)
}

// DecodeHex builds a stream from uppercase hex and decodes one packet.
func (d *Decoder) DecodeHex(hex string) (*Packet, error) {
	s, err := bitstream.FromHex(hex)
	if err != nil {
		return nil, err
	}
	return d.Decode(s)
}

// Decode reads exactly one root packet from s. Trailing bits are left unread.
func (d *Decoder) Decode(s *bitstream.Stream) (*Packet, error) {
	return d.decode(s, 0)
}

func (d *Decoder) decode(s *bitstream.Stream, depth int) (*Packet, error) {
	start := s.Pos()
	if depth >= d.opts.MaxDepth {
		return nil, fmt.Errorf("packet: at bit %d depth %d: %w", start, depth, ErrTooDeep)
	}

	version, err := readField(s, 3, "version")
	if err != nil {
		return nil, err
	}
	code, err := readField(s, 3, "type")
	if err != nil {
		return nil, err
	}

	p := &Packet{Header: Header{Version: uint8(version), Type: Type(code)}}
	if p.Type == TypeLiteral {
		err = d.decodeLiteral(s, p)
	} else {
		err = d.decodeGroup(s, p, depth)
	}
	if err != nil {
		return nil, err
	}

	log.Trace().Int("pos", start).Int("depth", depth).Stringer("packet", p).Msg("packet decoded")
	return p, nil
}

func (d *Decoder) decodeLiteral(s *bitstream.Stream, p *Packet) error {
	p.Kind = KindLiteral
	p.Bits = headerBits
	for {
		pos := s.Pos()
		group, err := readField(s, literalGroup, "literal group")
		if err != nil {
			return err
		}
		p.Bits += literalGroup
		if p.Value>>60 != 0 {
			return fmt.Errorf("packet: literal group at bit %d: %w", pos, ErrLiteralOverflow)
		}
		p.Value = p.Value<<4 | uint64(group&0xf)
		if group&0x10 == 0 {
			return nil
		}
	}
}

func (d *Decoder) decodeGroup(s *bitstream.Stream, p *Packet, depth int) error {
	start := s.Pos()
	byCount, err := s.ReadBool()
	if err != nil {
		return fmt.Errorf("packet: read length type at bit %d: %w", start, err)
	}

	if byCount {
		count, err := readField(s, countBits, "sub-packet count")
		if err != nil {
			return err
		}
		p.Kind = KindCount
		p.Bits = headerBits + lengthTypeBits + countBits
		p.Children = make([]*Packet, 0, count)
		for i := 0; i < int(count); i++ {
			child, err := d.decode(s, depth+1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
			p.Bits += child.Bits
		}
		return nil
	}

	target, err := readField(s, bitLengthBits, "sub-packet length")
	if err != nil {
		return err
	}
	p.Kind = KindBitLength
	p.Bits = headerBits + lengthTypeBits + bitLengthBits
	used := 0
	for used < int(target) {
		child, err := d.decode(s, depth+1)
		if err != nil {
			return err
		}
		p.Children = append(p.Children, child)
		used += child.Bits
	}
	if used != int(target) && !d.opts.AllowOverrun {
		return &LengthMismatchError{Pos: start, Want: int(target), Got: used}
	}
	p.Bits += used
	return nil
}

func readField(s *bitstream.Stream, n int, field string) (uint16, error) {
	pos := s.Pos()
	v, err := s.ReadBits(n)
	if err != nil {
		return 0, fmt.Errorf("packet: read %s at bit %d: %w", field, pos, err)
	}
	return v, nil
}
