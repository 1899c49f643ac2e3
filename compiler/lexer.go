package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/handegar/aicac/settings"
)

var (
	reBlank   = regexp.MustCompile(`^\s*$`)
	reComment = regexp.MustCompile(`^\s*(#|//)`)
	reMadrs   = regexp.MustCompile(`(?i)^\s*MADRS\[` + numPattern + `\]\s*=\s*` + numPattern + `\s*$`)
)

// Compile classifies every line of the (already preprocessed) source
// and lowers the statements into microcode. Lines matching no rule
// are reported and skipped; semantic violations abort the run.
func Compile(lines []string) (*Program, error) {
	prog := &Program{}
	low := newLowerer(prog)

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")

		if reBlank.MatchString(line) || reComment.MatchString(line) {
			continue
		}

		if reMadrs.MatchString(line) {
			prog.Madrs = append(prog.Madrs, strings.TrimSpace(line))
			continue
		}

		matched, err := low.lowerStatement(line)
		if err != nil {
			return nil, err
		}
		if !matched {
			fmt.Printf("Unhandled instruction: %s\n", line)
			prog.Unhandled++
		}
	}

	if len(prog.Steps) > settings.MaxNumberOfSteps {
		return nil, fmt.Errorf("Program too large: %d steps (max %d)",
			len(prog.Steps), settings.MaxNumberOfSteps)
	}

	return prog, nil
}

// Optimize runs the three peephole phases in their mandatory order:
// load pipelining first (it creates the dummy-acc residue), then NOP
// trickling, then NOP dropping.
func Optimize(prog *Program) {
	OptLoads(prog)
	TrickleDown(prog)
	DropNops(prog)
}
