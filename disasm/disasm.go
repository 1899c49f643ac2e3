package disasm

import (
	"fmt"
	"strings"

	"github.com/handegar/aicac/base"
	"github.com/handegar/aicac/compiler"
)

// FieldsString renders the non-zero fields of a step in canonical
// order. Single-bit fields print as bare names, wider fields as
// NAME:value.
func FieldsString(s base.Step) string {
	var b strings.Builder
	for _, f := range base.FieldOrder {
		v := f.Get(s)
		if v == 0 {
			continue
		}
		if f.Width == 1 {
			fmt.Fprintf(&b, " %s", f.Name)
		} else {
			fmt.Fprintf(&b, " %s:%d", f.Name, v)
		}
	}
	return b.String()
}

// EmitProgram renders the compiled program as assembler lines: the
// MADRS definitions first, then one MPRO line per step and a COEF
// line for each step with a non-zero coefficient.
func EmitProgram(prog *compiler.Program) []string {
	var lines []string
	lines = append(lines, prog.Madrs...)
	for i, s := range prog.Steps {
		lines = append(lines, fmt.Sprintf("MPRO[%d] =%s", i, FieldsString(s)))
		if prog.Coefs[i] != 0 {
			lines = append(lines, fmt.Sprintf("COEF[%d] = %d", i, prog.Coefs[i]))
		}
	}
	return lines
}

// PrintCodeListing writes a numbered listing of the program to
// stdout, marking memory-access steps and NOPs.
func PrintCodeListing(prog *compiler.Program) {
	for _, m := range prog.Madrs {
		fmt.Println(m)
	}
	for i, s := range prog.Steps {
		note := ""
		if s.Has(base.MRD) || s.Has(base.MWT) {
			note = "  (mem)"
		}
		if s == base.DummyAcc && prog.Coefs[i] == 0 {
			note = "  (nop)"
		}
		fmt.Printf("%3d:%s%s\n", i, FieldsString(s), note)
		if prog.Coefs[i] != 0 {
			fmt.Printf("     COEF = %d\n", prog.Coefs[i])
		}
	}
	fmt.Printf("* %d steps\n", prog.NumSteps())
}
