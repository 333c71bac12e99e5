// Package driver is the sub-command dispatcher: it holds the closed set of
// named options (assembler_name, disassembler_name,
// dry_run_max_resolution), resolves them against the planner factories in
// planner/reassemble and planner/gvoid, and runs the requested assemble,
// disassemble, or reassemble operation end to end.
package driver

import (
	"errors"
	"fmt"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
	"github.com/voxelfab/nanofab/ncd"
	"github.com/voxelfab/nanofab/planner"
	"github.com/voxelfab/nanofab/planner/gvoid"
	"github.com/voxelfab/nanofab/planner/reassemble"
	"github.com/voxelfab/nanofab/simulator"
)

// Sentinel errors for Options construction and dispatch.
var (
	// ErrUnknownAssembler is returned when assembler_name names no known
	// assembler.
	ErrUnknownAssembler = errors.New("driver: unknown assembler name")

	// ErrUnknownDisassembler is returned when disassembler_name names no
	// known disassembler.
	ErrUnknownDisassembler = errors.New("driver: unknown disassembler name")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("driver: invalid option supplied")
)

// disassemblers is the closed set of known disassembler factories. There is
// only one today; it is still named and registered like the assemblers so
// adding a second never touches call sites, only this map.
var disassemblers = map[string]func(*model.Matrix) (*planner.Trace, error){
	"gvoid": gvoid.Disassemble,
}

// Option configures Options via functional arguments, mirroring the
// teacher's err-deferred validation style: an invalid Option records its
// error internally and it surfaces the first time Options is built.
type Option func(*Options)

// Options holds the closed configuration set spec.md §6 names.
type Options struct {
	// AssemblerName selects the assemble/reassemble strategy; must be a key
	// of reassemble.Assemblers. Default: "bfsassembler".
	AssemblerName string

	// DisassemblerName selects the disassemble/reassemble strategy; must be
	// a key of disassemblers. Default: "gvoid".
	DisassemblerName string

	// DryRunMaxResolution bounds the matrix side length at which
	// BruteForce reassembly (which speculatively simulates every
	// assembler/disassembler pair) is attempted; above it Reassemble falls
	// back to the single configured pipeline, since speculative cloning at
	// that resolution is too expensive to repeat per candidate. Default: 64.
	DryRunMaxResolution int

	err error
}

// DefaultAssemblerName and DefaultDisassemblerName name New's defaults.
const (
	DefaultAssemblerName       = "bfsassembler"
	DefaultDisassemblerName    = "gvoid"
	DefaultDryRunMaxResolution = 64
)

// DefaultOptions returns the closed option set at its documented defaults.
func DefaultOptions() Options {
	return Options{
		AssemblerName:       DefaultAssemblerName,
		DisassemblerName:    DefaultDisassemblerName,
		DryRunMaxResolution: DefaultDryRunMaxResolution,
	}
}

// WithAssemblerName selects a named assembler.
func WithAssemblerName(name string) Option {
	return func(o *Options) {
		if _, ok := reassemble.Assemblers[name]; !ok {
			o.err = fmt.Errorf("%w: %q", ErrUnknownAssembler, name)
			return
		}
		o.AssemblerName = name
	}
}

// WithDisassemblerName selects a named disassembler.
func WithDisassemblerName(name string) Option {
	return func(o *Options) {
		if _, ok := disassemblers[name]; !ok {
			o.err = fmt.Errorf("%w: %q", ErrUnknownDisassembler, name)
			return
		}
		o.DisassemblerName = name
	}
}

// WithDryRunMaxResolution sets the brute-force resolution ceiling.
//
//	r > 0: use r as the ceiling
//	r == 0: explicitly disables brute-force reassembly entirely
//	r < 0: invalid option -> ErrOptionViolation
func WithDryRunMaxResolution(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: DryRunMaxResolution cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.DryRunMaxResolution = r
	}
}

// New builds Options from DefaultOptions plus opts, surfacing the first
// invalid option as an error rather than panicking or silently ignoring it.
func New(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// Assemble runs opts.AssemblerName against target.
func Assemble(opts Options, target *model.Matrix) (*planner.Trace, error) {
	assemble, ok := reassemble.Assemblers[opts.AssemblerName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssembler, opts.AssemblerName)
	}
	return assemble(target)
}

// Disassemble runs opts.DisassemblerName against source.
func Disassemble(opts Options, source *model.Matrix) (*planner.Trace, error) {
	disassemble, ok := disassemblers[opts.DisassemblerName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisassembler, opts.DisassemblerName)
	}
	return disassemble(source)
}

// Reassemble turns source into target. When bruteForce is requested and
// target's resolution is within opts.DryRunMaxResolution, every known
// assembler is tried against opts.DisassemblerName's output and the
// cheapest by final energy wins; otherwise (brute force not requested, or
// the resolution ceiling is exceeded) only opts.AssemblerName is tried.
func Reassemble(opts Options, source, target *model.Matrix, bruteForce bool) (*planner.Trace, error) {
	if bruteForce && opts.DryRunMaxResolution > 0 && target.R() <= opts.DryRunMaxResolution {
		return reassemble.BruteForce(source, target)
	}
	return reassemble.Plan(source, target, opts.AssemblerName)
}

// ExitCode maps a typed error from any package in this module to a stable,
// non-zero process exit code so the process can report its error kind on
// exit. 0 is reserved for success and is never returned here; an
// unrecognised error maps to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, simulator.ErrOutOfMatrix):
		return 10
	case errors.Is(err, simulator.ErrCollision):
		return 11
	case errors.Is(err, simulator.ErrInterference):
		return 12
	case errors.Is(err, simulator.ErrInvalidHalt):
		return 13
	case errors.Is(err, simulator.ErrInvalidFission):
		return 14
	case errors.Is(err, simulator.ErrUnpairedFusion):
		return 15
	case errors.Is(err, simulator.ErrGroupQuorum):
		return 16
	case errors.Is(err, simulator.ErrFloatingVoxel):
		return 17
	case errors.Is(err, simulator.ErrCommandCountMismatch):
		return 18
	case errors.Is(err, command.ErrMalformedCommand):
		return 19
	case errors.Is(err, planner.ErrProtocolExhaustion):
		return 20
	case errors.Is(err, model.ErrInvalidR), errors.Is(err, model.ErrIndexOutOfBounds), errors.Is(err, model.ErrTruncatedModel):
		return 21
	case errors.Is(err, ncd.ErrOutOfRange), errors.Is(err, ncd.ErrNotAxisAligned), errors.Is(err, ncd.ErrNotNear):
		return 22
	case errors.Is(err, ErrUnknownAssembler), errors.Is(err, ErrUnknownDisassembler), errors.Is(err, ErrOptionViolation):
		return 23
	default:
		return 1
	}
}
