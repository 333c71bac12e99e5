// Command nanofab is the CLI entry point: it parses a
// sub-command and file arguments, hands everything else to driver, and
// writes the resulting trace through nbtio. All validation and planner
// selection lives in driver; this file only does flag parsing and file I/O.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/driver"
	"github.com/voxelfab/nanofab/nbtio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: nanofab <assemble|disassemble|reassemble> ...")
		return 1
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "assemble":
		return runAssemble(rest)
	case "disassemble":
		return runDisassemble(rest)
	case "reassemble":
		return runReassemble(rest)
	default:
		fmt.Fprintf(os.Stderr, "nanofab: unknown sub-command %q\n", sub)
		return 1
	}
}

func runAssemble(args []string) int {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	assemblerName := fs.String("assembler-name", driver.DefaultAssemblerName, "assembler to use")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: nanofab assemble <target.mdl> <out.nbt>")
		return 1
	}
	targetPath, outPath := fs.Arg(0), fs.Arg(1)

	targetBytes, err := os.ReadFile(targetPath)
	if err != nil {
		return fail(err)
	}
	target, err := nbtio.ReadModelFile(targetBytes)
	if err != nil {
		return fail(err)
	}

	opts, err := driver.New(driver.WithAssemblerName(*assemblerName))
	if err != nil {
		return fail(err)
	}
	trace, err := driver.Assemble(opts, target)
	if err != nil {
		return fail(err)
	}
	return writeTrace(outPath, trace.Commands())
}

func runDisassemble(args []string) int {
	fs := flag.NewFlagSet("disassemble", flag.ContinueOnError)
	disassemblerName := fs.String("disassembler-name", driver.DefaultDisassemblerName, "disassembler to use")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: nanofab disassemble <source.mdl> <out.nbt>")
		return 1
	}
	sourcePath, outPath := fs.Arg(0), fs.Arg(1)

	sourceBytes, err := os.ReadFile(sourcePath)
	if err != nil {
		return fail(err)
	}
	source, err := nbtio.ReadModelFile(sourceBytes)
	if err != nil {
		return fail(err)
	}

	opts, err := driver.New(driver.WithDisassemblerName(*disassemblerName))
	if err != nil {
		return fail(err)
	}
	trace, err := driver.Disassemble(opts, source)
	if err != nil {
		return fail(err)
	}
	return writeTrace(outPath, trace.Commands())
}

func runReassemble(args []string) int {
	fs := flag.NewFlagSet("reassemble", flag.ContinueOnError)
	assemblerName := fs.String("assembler-name", driver.DefaultAssemblerName, "assembler to use")
	disassemblerName := fs.String("disassembler-name", driver.DefaultDisassemblerName, "disassembler to use")
	dryRunMaxResolution := fs.Int("dry-run-max-resolution", driver.DefaultDryRunMaxResolution, "resolution ceiling for brute-force reassembly")
	bruteForce := fs.Bool("brute-force", false, "try every assembler/disassembler pair and keep the cheapest")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: nanofab reassemble <source.mdl> <target.mdl> <out.nbt>")
		return 1
	}
	sourcePath, targetPath, outPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	sourceBytes, err := os.ReadFile(sourcePath)
	if err != nil {
		return fail(err)
	}
	source, err := nbtio.ReadModelFile(sourceBytes)
	if err != nil {
		return fail(err)
	}
	targetBytes, err := os.ReadFile(targetPath)
	if err != nil {
		return fail(err)
	}
	target, err := nbtio.ReadModelFile(targetBytes)
	if err != nil {
		return fail(err)
	}

	opts, err := driver.New(
		driver.WithAssemblerName(*assemblerName),
		driver.WithDisassemblerName(*disassemblerName),
		driver.WithDryRunMaxResolution(*dryRunMaxResolution),
	)
	if err != nil {
		return fail(err)
	}
	trace, err := driver.Reassemble(opts, source, target, *bruteForce)
	if err != nil {
		return fail(err)
	}
	return writeTrace(outPath, trace.Commands())
}

func writeTrace(outPath string, cmds []command.Command) int {
	if err := os.WriteFile(outPath, nbtio.WriteTraceFile(cmds), 0o644); err != nil {
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "nanofab: %v\n", err)
	return driver.ExitCode(err)
}
