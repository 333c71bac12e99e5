package simulator

import "github.com/voxelfab/nanofab/command"

// Replay consumes cmds in order against s, grouping them into AdvanceStep
// calls by the live-agent count before each step. The wire trace format
// (and the flat command lists planners hand back) record one command per
// currently-live agent, sorted by Bid, with no explicit step boundary
// markers; a step's boundary is always implied by how many agents are
// live when that step starts. Reassemblers use this to continue a
// simulation across two independently-planned command lists without
// re-deriving step boundaries themselves.
func Replay(s *State, cmds []command.Command) error {
	i := 0
	for i < len(cmds) {
		n := len(s.bots)
		if n == 0 || i+n > len(cmds) {
			return ErrCommandCountMismatch
		}
		if err := s.AdvanceStep(cmds[i : i+n]); err != nil {
			return err
		}
		i += n
	}
	return nil
}
