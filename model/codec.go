package model

import (
	"errors"

	"github.com/voxelfab/nanofab/ncd"
)

// ErrTruncatedModel indicates the byte stream ended before R was readable.
var ErrTruncatedModel = errors.New("model: truncated model file")

// ReadModel decodes a packed model file: byte 0 is R, the remaining bytes
// are a little-endian bitstream over R^3 entries in x-major, then y, then z
// order. Bytes past the final cell are ignored.
func ReadModel(b []byte) (*Matrix, error) {
	if len(b) < 1 {
		return nil, ErrTruncatedModel
	}
	r := int(b[0])
	m, err := NewMatrix(r)
	if err != nil {
		return nil, err
	}

	body := b[1:]
	total := r * r * r
	for idx := 0; idx < total; idx++ {
		byteIdx := idx / 8
		bitIdx := uint(idx % 8)
		if byteIdx >= len(body) {
			break
		}
		if body[byteIdx]&(1<<bitIdx) == 0 {
			continue
		}
		x := idx / (r * r)
		y := (idx / r) % r
		z := idx % r
		if err := m.Set(ncd.Position{X: x, Y: y, Z: z}, Full); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WriteModel encodes m into the packed model file format. Any trailing bit
// past the final cell within the last byte is written as zero.
func WriteModel(m *Matrix) []byte {
	r := m.r
	total := r * r * r
	numBytes := (total + 7) / 8
	out := make([]byte, 1+numBytes)
	out[0] = byte(r)

	for x := 0; x < r; x++ {
		for y := 0; y < r; y++ {
			for z := 0; z < r; z++ {
				if !m.cells[x*r*r+y*r+z] {
					continue
				}
				idx := x*r*r + y*r + z
				byteIdx := idx / 8
				bitIdx := uint(idx % 8)
				out[1+byteIdx] |= 1 << bitIdx
			}
		}
	}
	return out
}
