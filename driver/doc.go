// Package driver sits between cmd/nanofab and the planner packages: see
// Options, New, Assemble, Disassemble, Reassemble, and ExitCode.
//
// What
//
//   - Options is the closed `{assembler_name, disassembler_name,
//     dry_run_max_resolution}` configuration set, built with functional
//     Option arguments over DefaultOptions.
//   - Assemble, Disassemble, and Reassemble dispatch to the named planner
//     factories and run them to completion.
//   - ExitCode maps any sentinel error from command, model, ncd, simulator,
//     or planner to a stable non-zero process exit code.
//
// Why
//
//   - cmd/nanofab should only parse flags and call one of these three
//     functions; every validation and factory-selection rule belongs here
//     so it is tested without a process boundary.
//
// Usage
//
//	opts, err := driver.New(driver.WithAssemblerName("voidpath"))
//	trace, err := driver.Assemble(opts, target)
//
// Errors
//
//	ErrUnknownAssembler, ErrUnknownDisassembler, ErrOptionViolation from
//	Option validation; planner and simulator sentinels propagate from the
//	underlying run.
package driver
