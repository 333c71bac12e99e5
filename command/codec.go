package command

import (
	"github.com/voxelfab/nanofab/ncd"
)

// Encode produces the bit-exact byte encoding of c. Panics are never used;
// Encode assumes c was built through the New* constructors (or decoded by
// Decode) and therefore already carries legal arguments; validation is the
// constructors' job, not the codec's.
func Encode(c Command) []byte {
	switch c.Kind {
	case Halt:
		return []byte{0b11111111}
	case Wait:
		return []byte{0b11111110}
	case Flip:
		return []byte{0b11111101}
	case SMove:
		axis, mag := c.llcd.Encode()
		return []byte{axis<<4 | 0b0100, mag}
	case LMove:
		a1, m1 := c.s1.Encode()
		a2, m2 := c.s2.Encode()
		return []byte{a2<<6 | a1<<4 | 0b1100, m2<<4 | m1}
	case Fission:
		return []byte{c.n.Encode()<<3 | 0b101, uint8(c.m)}
	case Fill:
		return []byte{c.n.Encode()<<3 | 0b011}
	case Void:
		return []byte{c.n.Encode()<<3 | 0b010}
	case FusionP:
		return []byte{c.n.Encode()<<3 | 0b111}
	case FusionS:
		return []byte{c.n.Encode()<<3 | 0b110}
	case GFill:
		bx, by, bz := c.f.Encode()
		return []byte{c.n.Encode()<<3 | 0b001, bx, by, bz}
	case GVoid:
		bx, by, bz := c.f.Encode()
		return []byte{c.n.Encode()<<3 | 0b000, bx, by, bz}
	default:
		return nil
	}
}

// Decode reads one command from the front of b, returning the command and
// the number of bytes consumed. Returns ErrMalformedCommand if b is empty,
// the opcode bits match no variant, or the command's byte length exceeds
// len(b).
func Decode(b []byte) (Command, int, error) {
	if len(b) == 0 {
		return Command{}, 0, ErrMalformedCommand
	}
	op := b[0]

	switch op {
	case 0b11111111:
		return NewHalt(), 1, nil
	case 0b11111110:
		return NewWait(), 1, nil
	case 0b11111101:
		return NewFlip(), 1, nil
	}

	if op&0b1111 == 0b0100 {
		if len(b) < 2 {
			return Command{}, 0, ErrMalformedCommand
		}
		d, err := ncd.DecodeLLCD(op>>4, b[1])
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewSMove(d), 2, nil
	}

	if op&0b1111 == 0b1100 {
		if len(b) < 2 {
			return Command{}, 0, ErrMalformedCommand
		}
		d1, err := ncd.DecodeSLCD((op>>4)&0b11, b[1]&0b1111)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		d2, err := ncd.DecodeSLCD((op>>6)&0b11, b[1]>>4)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewLMove(d1, d2), 2, nil
	}

	switch op & 0b111 {
	case 0b101: // Fission
		if len(b) < 2 {
			return Command{}, 0, ErrMalformedCommand
		}
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewFission(n, int(b[1])), 2, nil
	case 0b011: // Fill
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewFill(n), 1, nil
	case 0b010: // Void
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewVoid(n), 1, nil
	case 0b111: // FusionP
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewFusionP(n), 1, nil
	case 0b110: // FusionS
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewFusionS(n), 1, nil
	case 0b001: // GFill
		if len(b) < 4 {
			return Command{}, 0, ErrMalformedCommand
		}
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		f, err := ncd.DecodeFCD(b[1], b[2], b[3])
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewGFill(n, f), 4, nil
	case 0b000: // GVoid
		if len(b) < 4 {
			return Command{}, 0, ErrMalformedCommand
		}
		n, err := ncd.DecodeNCD(op >> 3)
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		f, err := ncd.DecodeFCD(b[1], b[2], b[3])
		if err != nil {
			return Command{}, 0, ErrMalformedCommand
		}
		return NewGVoid(n, f), 4, nil
	default:
		return Command{}, 0, ErrMalformedCommand
	}
}

// EncodeTrace concatenates the encoding of every command in trace, in order.
func EncodeTrace(trace []Command) []byte {
	out := make([]byte, 0, len(trace))
	for _, c := range trace {
		out = append(out, Encode(c)...)
	}
	return out
}

// DecodeTrace decodes a full byte stream into a sequence of commands.
// Returns ErrMalformedCommand if any prefix fails to decode, including a
// final command truncated by end-of-stream.
func DecodeTrace(b []byte) ([]Command, error) {
	var trace []Command
	for len(b) > 0 {
		c, n, err := Decode(b)
		if err != nil {
			return nil, err
		}
		trace = append(trace, c)
		b = b[n:]
	}
	return trace, nil
}
