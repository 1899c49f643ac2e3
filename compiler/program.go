package compiler

import (
	"github.com/handegar/aicac/base"
)

// Program is the result of lowering one source file: the microcode
// step words, a same-length coefficient vector (0 where a step has no
// COEF entry, otherwise the source value shifted up by 3) and the
// MADRS table definitions carried through verbatim.
type Program struct {
	Steps []base.Step
	Coefs []int64
	Madrs []string

	// Number of lines that matched no statement rule and were skipped
	Unhandled int
}

func (p *Program) appendStep(s base.Step) {
	p.Steps = append(p.Steps, s)
	p.Coefs = append(p.Coefs, 0)
}

// NumSteps returns the current length of the step list.
func (p *Program) NumSteps() int {
	return len(p.Steps)
}
