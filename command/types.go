package command

import (
	"errors"

	"github.com/voxelfab/nanofab/ncd"
)

// ErrMalformedCommand is returned when a byte stream does not decode to any
// known command variant, or runs out of bytes mid-command.
var ErrMalformedCommand = errors.New("command: malformed command")

// Kind tags which variant a Command holds. The simulator and the codec both
// dispatch on Kind rather than on a Go interface type-switch, mirroring a
// closed tagged-union shape.
type Kind uint8

// The twelve command kinds, in wire opcode order.
const (
	Halt Kind = iota
	Wait
	Flip
	SMove
	LMove
	Fission
	Fill
	Void
	FusionP
	FusionS
	GFill
	GVoid
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Halt:
		return "Halt"
	case Wait:
		return "Wait"
	case Flip:
		return "Flip"
	case SMove:
		return "SMove"
	case LMove:
		return "LMove"
	case Fission:
		return "Fission"
	case Fill:
		return "Fill"
	case Void:
		return "Void"
	case FusionP:
		return "FusionP"
	case FusionS:
		return "FusionS"
	case GFill:
		return "GFill"
	case GVoid:
		return "GVoid"
	default:
		return "Unknown"
	}
}

// Command is one per-agent instruction for a single time step. Only the
// fields relevant to Kind are populated; callers read arguments through the
// typed accessors (LLCDArg, SLCDArgs, NCDArg, FCDArg, FissionM) rather than
// the raw fields, so a future field reshuffle stays source-compatible.
type Command struct {
	Kind Kind

	llcd ncd.LLCD
	s1   ncd.SLCD
	s2   ncd.SLCD
	n    ncd.NCD
	f    ncd.FCD
	m    int // Fission seed-split index
}

// NewHalt builds a Halt command.
func NewHalt() Command { return Command{Kind: Halt} }

// NewWait builds a Wait command.
func NewWait() Command { return Command{Kind: Wait} }

// NewFlip builds a Flip command.
func NewFlip() Command { return Command{Kind: Flip} }

// NewSMove builds an SMove command over the given LLCD.
func NewSMove(d ncd.LLCD) Command { return Command{Kind: SMove, llcd: d} }

// NewLMove builds an LMove command over two SLCD legs.
func NewLMove(d1, d2 ncd.SLCD) Command { return Command{Kind: LMove, s1: d1, s2: d2} }

// NewFission builds a Fission command: spawn a child at pos+n carrying
// seeds[1..=m], keeping seeds[m+1:] for self.
func NewFission(n ncd.NCD, m int) Command { return Command{Kind: Fission, n: n, m: m} }

// NewFill builds a Fill command targeting pos+n.
func NewFill(n ncd.NCD) Command { return Command{Kind: Fill, n: n} }

// NewVoid builds a Void command targeting pos+n.
func NewVoid(n ncd.NCD) Command { return Command{Kind: Void, n: n} }

// NewFusionP builds a FusionP (primary) command toward pos+n.
func NewFusionP(n ncd.NCD) Command { return Command{Kind: FusionP, n: n} }

// NewFusionS builds a FusionS (secondary) command toward pos+n.
func NewFusionS(n ncd.NCD) Command { return Command{Kind: FusionS, n: n} }

// NewGFill builds a GFill command over the region [pos+n, pos+n+f].
func NewGFill(n ncd.NCD, f ncd.FCD) Command { return Command{Kind: GFill, n: n, f: f} }

// NewGVoid builds a GVoid command over the region [pos+n, pos+n+f].
func NewGVoid(n ncd.NCD, f ncd.FCD) Command { return Command{Kind: GVoid, n: n, f: f} }

// LLCDArg returns the SMove displacement.
func (c Command) LLCDArg() ncd.LLCD { return c.llcd }

// SLCDArgs returns the two LMove legs.
func (c Command) SLCDArgs() (ncd.SLCD, ncd.SLCD) { return c.s1, c.s2 }

// NCDArg returns the near coordinate difference for Fission/Fill/Void/
// FusionP/FusionS/GFill/GVoid.
func (c Command) NCDArg() ncd.NCD { return c.n }

// FCDArg returns the far coordinate difference for GFill/GVoid.
func (c Command) FCDArg() ncd.FCD { return c.f }

// FissionM returns the seed-split index for Fission.
func (c Command) FissionM() int { return c.m }
