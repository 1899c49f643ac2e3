package main

import (
	"flag"
	"fmt"
	"syscall"

	"github.com/fatih/color"

	"github.com/handegar/aicac/asm"
	"github.com/handegar/aicac/compiler"
	"github.com/handegar/aicac/debugger"
	"github.com/handegar/aicac/disasm"
	"github.com/handegar/aicac/reader"
	"github.com/handegar/aicac/settings"
	"github.com/handegar/aicac/writer"
)

func parseCommandLineParameters() {
	flag.StringVar(&settings.BinFilename, "bin", settings.BinFilename, "Also write the assembled binary image to this file")
	flag.BoolVar(&settings.PrintCode, "print-code", settings.PrintCode, "Print program code")
	flag.BoolVar(&settings.Inspect, "inspect", settings.Inspect, "Open the interactive step-table inspector")
	flag.BoolVar(&settings.UseCPP, "cpp", settings.UseCPP, "Run the input through the C preprocessor first")
	flag.BoolVar(&settings.SkipOptimizer, "no-opt", settings.SkipOptimizer, "Skip the optimizer passes")
	flag.BoolVar(&settings.Quiet, "quiet", settings.Quiet, "Suppress progress messages")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Println("Usage: aicac [options] <input.src> <output.asm>")
		flag.PrintDefaults()
		syscall.Exit(-1)
	}
	settings.InFilename = flag.Arg(0)
	settings.OutFilename = flag.Arg(1)
}

func fatal(format string, args ...interface{}) {
	color.Red(format, args...)
	syscall.Exit(-1)
}

func info(format string, args ...interface{}) {
	if !settings.Quiet {
		fmt.Printf(format, args...)
	}
}

func main() {
	parseCommandLineParameters()
	info("* AICA DSP compiler v%s\n", settings.Version)

	lines, err := reader.ReadSource(settings.InFilename)
	if err != nil {
		fatal("Reading source failed: %s", err)
	}

	prog, err := compiler.Compile(lines)
	if err != nil {
		fatal("Compilation failed: %s", err)
	}
	if prog.Unhandled > 0 {
		color.Yellow("%d unhandled instruction(s) skipped", prog.Unhandled)
	}
	info("* Compiled %d steps\n", prog.NumSteps())

	if !settings.SkipOptimizer {
		compiler.Optimize(prog)
		info("* Optimized down to %d steps\n", prog.NumSteps())
	}

	emitted := disasm.EmitProgram(prog)
	if err := writer.WriteText(settings.OutFilename, emitted); err != nil {
		fatal("Writing output failed: %s", err)
	}
	info("* Wrote '%s'\n", settings.OutFilename)

	if settings.BinFilename != "" {
		img, err := asm.Assemble(emitted)
		if err != nil {
			fatal("Assembling failed: %s", err)
		}
		if err := writer.WriteImage(settings.BinFilename, img); err != nil {
			fatal("Writing binary image failed: %s", err)
		}
		info("* Wrote '%s'\n", settings.BinFilename)
	}

	if settings.PrintCode {
		disasm.PrintCodeListing(prog)
	}

	if settings.Inspect {
		if err := debugger.Inspect(prog); err != nil {
			fatal("Inspector failed: %s", err)
		}
	}
}
