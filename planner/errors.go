package planner

import "errors"

// ErrProtocolExhaustion is returned by a planner that cannot make further
// progress toward its goal: its deadlock counter expires, its candidate
// frontier runs dry, or there is no free layer above the model to travel
// in. It is the one
// planner-level error the driver tolerates: callers may retry with a
// different planner or surface failure. This is the only error a planner
// itself recovers from, by returning an empty trace rather than a
// partially-built one.
var ErrProtocolExhaustion = errors.New("planner: no progress toward goal, deadlock counter expired")

// DeadlockLimit bounds the number of consecutive non-progressing planning
// steps before a planner gives up and returns ErrProtocolExhaustion.
const DeadlockLimit = 1000
