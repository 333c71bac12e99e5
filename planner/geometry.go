package planner

import (
	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
)

// BoundingBox returns the smallest axis-aligned Region containing every
// Full cell of m, and false if m is entirely Void.
func BoundingBox(m *model.Matrix) (ncd.Region, bool) { return m.BoundingBox() }

// maxLLCD is the largest magnitude a single SMove may cover.
const maxLLCD = 15

// StraightAxisMoves decomposes a signed displacement of delta along one
// axis (0=x, 1=y, 2=z) into a chain of SMove commands, each of magnitude at
// most maxLLCD, covering the full displacement: ⌊|L|/15⌋ length-15 commands
// plus one remainder command when |L| is not a multiple of 15, ⌈|L|/15⌉
// commands in all. Returns nil for delta == 0.
func StraightAxisMoves(axis int, delta int) []command.Command {
	if delta == 0 {
		return nil
	}
	sign := 1
	remaining := delta
	if delta < 0 {
		sign = -1
		remaining = -delta
	}

	var cmds []command.Command
	for remaining > 0 {
		step := remaining
		if step > maxLLCD {
			step = maxLLCD
		}
		remaining -= step
		d := step * sign
		var l ncd.LLCD
		var err error
		switch axis {
		case 0:
			l, err = ncd.NewLLCD(d, 0, 0)
		case 1:
			l, err = ncd.NewLLCD(0, d, 0)
		default:
			l, err = ncd.NewLLCD(0, 0, d)
		}
		if err != nil {
			// Every chunk is clamped to maxLLCD, so this is unreachable for
			// a well-formed axis argument.
			panic(err)
		}
		cmds = append(cmds, command.NewSMove(l))
	}
	return cmds
}
