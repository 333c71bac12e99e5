package planner

import (
	"errors"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/simulator"
)

// WouldFloat speculatively tries cmds against a clone of s and reports
// whether the batch would be rejected specifically for stranding a filled
// voxel under Low harmonics: a planner that sees this coming emits a Flip
// one step earlier instead of walking into the rejection. Any other
// rejection is returned as err so the caller can distinguish "needs
// harmonics" from "this batch is simply illegal".
func WouldFloat(s *simulator.State, cmds []command.Command) (bool, error) {
	clone := s.Clone()
	err := clone.AdvanceStep(cmds)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, simulator.ErrFloatingVoxel) {
		return true, nil
	}
	return false, err
}

// FlipAlone returns a single-agent command batch consisting of one Flip,
// used to toggle harmonics on a live fleet of size one.
func FlipAlone() []command.Command {
	return []command.Command{command.NewFlip()}
}

// GuardedStep applies cmds to s, honouring the harmonics control: if
// WouldFloat reports cmds would only be rejected for stranding a voxel,
// harmonics is raised to High with a leading Flip first, then cmds is
// applied for real, then Reground tries to drop harmonics straight back to
// Low the moment every Full cell is supported again.
func GuardedStep(s *simulator.State, trace *Trace, cmds []command.Command) error {
	float, err := WouldFloat(s, cmds)
	if err != nil {
		return err
	}
	if float {
		if err := applyFlip(s, trace); err != nil {
			return err
		}
	}

	if err := s.AdvanceStep(cmds); err != nil {
		return err
	}
	trace.Append(cmds...)

	return Reground(s, trace)
}

// Reground drops harmonics from High back to Low if, and only if, doing so
// wouldn't immediately raise ErrFloatingVoxel. If it isn't yet safe the
// fleet stays High and a later GuardedStep (or another Reground call, e.g.
// a planner's finish routine before Halt) retries.
func Reground(s *simulator.State, trace *Trace) error {
	if s.HarmonicsState() == simulator.Low {
		return nil
	}
	wouldFloat, err := WouldFloat(s, flipVector(s))
	if err != nil {
		return err
	}
	if wouldFloat {
		return nil
	}
	return applyFlip(s, trace)
}

// flipVector builds the command batch that flips harmonics for s's current
// fleet: a Flip for the lowest-bid agent, Wait for the rest.
func flipVector(s *simulator.State) []command.Command {
	if len(s.Bots()) == 1 {
		return FlipAlone()
	}
	cmds := waitVector(len(s.Bots()))
	cmds[0] = command.NewFlip()
	return cmds
}

func applyFlip(s *simulator.State, trace *Trace) error {
	flip := flipVector(s)
	if err := s.AdvanceStep(flip); err != nil {
		return err
	}
	trace.Append(flip...)
	return nil
}

func waitVector(n int) []command.Command {
	cmds := make([]command.Command, n)
	for i := range cmds {
		cmds[i] = command.NewWait()
	}
	return cmds
}
