package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/handegar/aicac/base"
	"github.com/handegar/aicac/utils"
)

// Decimal or 0x-hex literal, optionally negative
const numPattern = `-?(?:0[xX][0-9a-fA-F]+|[0-9]+)`

var (
	reInput    = regexp.MustCompile(`(?i)^\s*INPUT\s+(MEMS|MIXER|CDDA):(` + numPattern + `)\s*$`)
	reOutYreg  = regexp.MustCompile(`(?i)^\s*OUTPUT\s+YREG\s*$`)
	reOutAdrsS = regexp.MustCompile(`(?i)^\s*OUTPUT\s+ADRS/S\s*$`)
	reOutAdrs  = regexp.MustCompile(`(?i)^\s*OUTPUT\s+ADRS\s*$`)
	reOutMixer = regexp.MustCompile(`(?i)^\s*OUTPUT\s+MIXER:(` + numPattern + `)\s*$`)
	reSmode    = regexp.MustCompile(`(?i)^\s*SMODE\s+(SAT2|TRIM2|SAT|TRIM)\s*$`)
	reStTemp   = regexp.MustCompile(`(?i)^\s*ST\s+\[\s*TEMP:(` + numPattern + `)\s*\]\s*$`)

	// The '+' accepts optional leading whitespace for both ST and LD
	reStMem = regexp.MustCompile(`(?i)^\s*ST(F)?\s+(\[)?\s*MADRS:(` + numPattern + `)(\s*\+)?(/S)?\s*(\])?\s*$`)
	reLdMem = regexp.MustCompile(`(?i)^\s*LD(F)?\s+(\[)?\s*MADRS:(` + numPattern + `)(\s*\+)?(/S)?\s*(\])?\s*,\s*MEMS:(` + numPattern + `)\s*$`)

	reMac      = regexp.MustCompile(`(?i)^\s*MAC\s+([^,]+?)\s*,\s*([^,]+?)(?:\s*,\s*([^,]+?))?\s*$`)
	reMacInput = regexp.MustCompile(`(?i)^INPUT$`)
	reMacTemp  = regexp.MustCompile(`(?i)^\[\s*TEMP:(` + numPattern + `)\s*\]$`)
	reMacYSel  = regexp.MustCompile(`(?i)^(SHIFTED|YREG):(LO|HI)$`)
	reMacImm   = regexp.MustCompile(`(?i)^#(` + numPattern + `)$`)
	reMacAcc   = regexp.MustCompile(`(?i)^(-)?\s*ACC$`)
	reMacBTemp = regexp.MustCompile(`(?i)^(-)?\s*\[\s*TEMP:(` + numPattern + `)\s*\]$`)
)

// The lowerer carries the two modes latched across statements: the
// current input selector (imode) and the current shift mode (smode).
type lowerer struct {
	prog  *Program
	imode uint64
	smode uint64
}

func newLowerer(prog *Program) *lowerer {
	return &lowerer{prog: prog, smode: base.ShiftSat}
}

func invalid(line string) error {
	return fmt.Errorf("Invalid instruction: %s", strings.TrimSpace(line))
}

// parseIndex accepts a non-negative literal below 'limit'.
func parseIndex(s string, limit int64) (uint64, bool) {
	v, err := utils.ParseInt(s)
	if err != nil || v < 0 || v >= limit {
		return 0, false
	}
	return uint64(v), true
}

// lowerStatement matches one statement line and appends its step(s).
// Returns false when no rule matched (the caller reports the line and
// carries on); a non-nil error is a fatal semantic violation.
func (l *lowerer) lowerStatement(line string) (bool, error) {
	if m := reInput.FindStringSubmatch(line); m != nil {
		return true, l.lowerInput(line, m)
	}
	if reOutYreg.MatchString(line) {
		l.prog.appendStep(base.DummyAcc |
			base.IRA.Prep(l.imode) | base.YRL.Prep(1))
		return true, nil
	}
	if reOutAdrsS.MatchString(line) {
		l.prog.appendStep(base.DummyAcc | base.IRA.Prep(l.imode) |
			base.ADRL.Prep(1) | base.SHIFT.Prep(base.ShiftTrim))
		return true, nil
	}
	if reOutAdrs.MatchString(line) {
		// ADRL plus the shifted:lo extraction collide in a single
		// step, so the trim case is split in two.
		if l.smode == base.ShiftTrim {
			l.prog.appendStep(base.DummyAcc |
				base.SHIFT.Prep(l.smode) | base.ADRL.Prep(1))
			l.prog.appendStep(base.DummyAcc |
				base.IRA.Prep(l.imode) | base.ADRL.Prep(1))
		} else {
			l.prog.appendStep(base.DummyAcc | base.IRA.Prep(l.imode) |
				base.SHIFT.Prep(l.smode) | base.ADRL.Prep(1))
		}
		return true, nil
	}
	if m := reOutMixer.FindStringSubmatch(line); m != nil {
		ch, ok := parseIndex(m[1], base.MixerSize)
		if !ok {
			return true, invalid(line)
		}
		l.prog.appendStep(base.DummyAcc | base.EWT.Prep(1) |
			base.EWA.Prep(ch) | base.SHIFT.Prep(l.smode))
		return true, nil
	}
	if m := reSmode.FindStringSubmatch(line); m != nil {
		l.smode = base.ShiftModes[strings.ToLower(m[1])]
		return true, nil
	}
	if m := reStTemp.FindStringSubmatch(line); m != nil {
		n, ok := parseIndex(m[1], base.TEMPSize)
		if !ok {
			return true, invalid(line)
		}
		l.prog.appendStep(base.DummyAcc | base.SHIFT.Prep(l.smode) |
			base.TWT.Prep(1) | base.TWA.Prep(n))
		return true, nil
	}
	if m := reStMem.FindStringSubmatch(line); m != nil {
		return true, l.lowerStoreMem(line, m)
	}
	if m := reLdMem.FindStringSubmatch(line); m != nil {
		return true, l.lowerLoadMem(line, m)
	}
	if m := reMac.FindStringSubmatch(line); m != nil {
		return true, l.lowerMac(line, m)
	}

	return false, nil
}

func (l *lowerer) lowerInput(line string, m []string) error {
	src := strings.ToLower(m[1])
	idx, ok := parseIndex(m[2], int64(base.InputCounts[src]))
	if !ok {
		return invalid(line)
	}
	l.imode = idx + base.InputOffsets[src]
	return nil
}

// parseMemFlags decodes the shared address form of ST/LD: brackets
// (sample-relative, TABLE cleared), '+' (NXADR), '/s' (ADREB) and the
// F suffix (float format, NOFL cleared).
func parseMemFlags(line string, floatFmt bool, open string, plus string,
	adrs string, close string, masaStr string) (base.Step, error) {

	if (open == "") != (close == "") {
		return 0, invalid(line)
	}
	n, ok := parseIndex(masaStr, base.MADRSSize)
	if !ok {
		return 0, invalid(line)
	}

	word := base.MASA.Prep(n)
	if open == "" {
		word |= base.TABLE.Prep(1)
	}
	if plus != "" {
		word |= base.NXADR.Prep(1)
	}
	if adrs != "" {
		word |= base.ADREB.Prep(1)
	}
	if !floatFmt {
		word |= base.NOFL.Prep(1)
	}
	return word, nil
}

// alignToOdd pads with one dummy-acc so that the next appended step
// lands on an odd index. Memory accesses must keep the DSP's
// two-cycle pipeline alignment.
func (l *lowerer) alignToOdd() {
	if len(l.prog.Steps)%2 == 0 {
		l.prog.appendStep(base.DummyAcc)
	}
}

func (l *lowerer) lowerStoreMem(line string, m []string) error {
	flags, err := parseMemFlags(line, m[1] != "", m[2], m[4], m[5], m[6], m[3])
	if err != nil {
		return err
	}

	l.alignToOdd()
	l.prog.appendStep(base.DummyAcc | base.SHIFT.Prep(l.smode) |
		base.MWT.Prep(1) | flags)
	return nil
}

func (l *lowerer) lowerLoadMem(line string, m []string) error {
	flags, err := parseMemFlags(line, m[1] != "", m[2], m[4], m[5], m[6], m[3])
	if err != nil {
		return err
	}
	k, ok := parseIndex(m[7], base.MEMSSize)
	if !ok {
		return invalid(line)
	}

	// The read has a three-cycle latency: setup at an odd index, one
	// wait step, then the value is written into MEMS.
	l.alignToOdd()
	l.prog.appendStep(base.DummyAcc | base.MRD.Prep(1) | flags)
	l.prog.appendStep(base.DummyAcc)
	l.prog.appendStep(base.DummyAcc | base.IWT.Prep(1) | base.IWA.Prep(k))
	return nil
}

func (l *lowerer) lowerMac(line string, m []string) error {
	xArg, yArg, bArg := m[1], m[2], m[3]

	var word base.Step
	traSet := false
	var tra uint64

	// X operand: the INPUTS register selected by the latched imode,
	// or a temp-RAM cell.
	switch {
	case reMacInput.MatchString(xArg):
		word |= base.XSEL.Prep(1) | base.IRA.Prep(l.imode)
	default:
		xm := reMacTemp.FindStringSubmatch(xArg)
		if xm == nil {
			return invalid(line)
		}
		t, ok := parseIndex(xm[1], base.TEMPSize)
		if !ok {
			return invalid(line)
		}
		word |= base.TRA.Prep(t)
		traSet = true
		tra = t
	}

	// Y operand
	var coef int64
	haveCoef := false
	if ym := reMacYSel.FindStringSubmatch(yArg); ym != nil {
		lo := strings.EqualFold(ym[2], "lo")
		if strings.EqualFold(ym[1], "yreg") {
			if lo {
				word |= base.YSEL.Prep(3)
			} else {
				word |= base.YSEL.Prep(2)
			}
		} else {
			// shifted:* needs the fractional part latched one step
			// ahead; YSEL=0 then picks it up.
			frcl := base.DummyAcc | base.FRCL.Prep(1)
			if lo {
				frcl |= base.SHIFT.Prep(base.ShiftTrim)
			}
			l.prog.appendStep(frcl)
		}
	} else if ym := reMacImm.FindStringSubmatch(yArg); ym != nil {
		imm, err := utils.ParseInt(ym[1])
		if err != nil || imm < -4096 || imm > 4095 {
			return invalid(line)
		}
		word |= base.YSEL.Prep(1)
		// COEF holds a 13-bit value in the top bits of a 16-bit word
		coef = imm << 3
		haveCoef = true
	} else {
		return invalid(line)
	}

	// B operand: absent means B=0
	if bArg == "" {
		word |= base.ZERO.Prep(1)
	} else if bm := reMacAcc.FindStringSubmatch(bArg); bm != nil {
		word |= base.BSEL.Prep(1)
		if bm[1] != "" {
			word |= base.NEGB.Prep(1)
		}
	} else if bm := reMacBTemp.FindStringSubmatch(bArg); bm != nil {
		t, ok := parseIndex(bm[2], base.TEMPSize)
		if !ok {
			return invalid(line)
		}
		if traSet && t != tra {
			return invalid(line)
		}
		word |= base.TRA.Prep(t)
		if bm[1] != "" {
			word |= base.NEGB.Prep(1)
		}
	} else {
		return invalid(line)
	}

	l.prog.appendStep(word)
	if haveCoef {
		l.prog.Coefs[len(l.prog.Coefs)-1] = coef
	}
	return nil
}
