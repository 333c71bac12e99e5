package planner

import "github.com/voxelfab/nanofab/command"

// Trace is an append-only accumulator of commands in step order, shared by
// every planner so the driver and nbtio have one structure to consume
// instead of raw byte slices.
type Trace struct {
	cmds []command.Command
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace { return &Trace{} }

// Append adds commands to the end of the trace, in order.
func (t *Trace) Append(cmds ...command.Command) {
	t.cmds = append(t.cmds, cmds...)
}

// Commands returns a copy of the accumulated commands.
func (t *Trace) Commands() []command.Command {
	out := make([]command.Command, len(t.cmds))
	copy(out, t.cmds)
	return out
}

// Len returns the number of accumulated commands.
func (t *Trace) Len() int { return len(t.cmds) }

// Bytes encodes the accumulated commands via the command package's codec.
func (t *Trace) Bytes() []byte { return command.EncodeTrace(t.cmds) }
