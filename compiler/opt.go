package compiler

import (
	"github.com/handegar/aicac/base"
)

// Fields travelling with a memory read when it is hoisted
var readMask = base.MRD.Mask() | base.TABLE.Mask() | base.ADREB.Mask() |
	base.NXADR.Mask() | base.MASA.Mask() | base.NOFL.Mask()

var writebackMask = base.IWT.Mask() | base.IWA.Mask()

// readsInput reports whether the step consumes the INPUTS register
// selected by slot k. ADRL, YRL and XSEL all sample the register the
// current IRA points at.
func readsInput(s base.Step, k uint64) bool {
	if !s.Has(base.ADRL) && !s.Has(base.YRL) && !s.Has(base.XSEL) {
		return false
	}
	return base.IRA.Get(s) == k
}

// OptLoads hoists memory reads upward. A read occupies three steps
// (MRD setup, wait, IWT write-back); the setup may move to any earlier
// odd, non-MWT index from 3 upward as long as no intervening step writes INPUTS or
// reads the slot being loaded. The vacated steps keep their dummy-acc
// residue for the later compaction phases.
func OptLoads(prog *Program) {
	for i := 3; i < len(prog.Steps); i++ {
		s := prog.Steps[i]
		if !s.Has(base.MRD) || s.Has(base.IWT) {
			continue
		}
		if i+2 >= len(prog.Steps) {
			continue
		}
		k := base.IWA.Get(prog.Steps[i+2])

		c := i
		for j := i - 1; j >= 2; j-- {
			if prog.Steps[j].Has(base.IWT) {
				break
			}
			if readsInput(prog.Steps[j], k) {
				break
			}
			c = j
		}

		// Setup must land on an odd index, past any write that holds
		// the memory bus.
		c |= 1
		for c < i && prog.Steps[c].Has(base.MWT) {
			c += 2
		}
		if c >= i {
			continue
		}

		prog.Steps[c] |= prog.Steps[i] & readMask
		prog.Steps[i] &^= readMask
		prog.Steps[c+2] |= prog.Steps[i+2] & writebackMask
		prog.Steps[i+2] &^= writebackMask
	}
}

// movable steps carry no memory access and no MEMS write-back (MWT,
// MRD, IWT), so their position relative to a plain dummy-acc does not
// matter.
func movable(s base.Step) bool {
	if s == base.DummyAcc {
		return false
	}
	return s&(base.MWT.Mask()|base.MRD.Mask()|base.IWT.Mask()) == 0
}

// TrickleDown bubbles dummy-acc steps toward the end of the program by
// swapping them with movable successors, until a full sweep changes
// nothing.
func TrickleDown(prog *Program) {
	for {
		changed := false
		for i := len(prog.Steps) - 1; i >= 1; i-- {
			if prog.Steps[i-1] != base.DummyAcc || prog.Coefs[i-1] != 0 {
				continue
			}
			if !movable(prog.Steps[i]) {
				continue
			}
			prog.Steps[i-1], prog.Steps[i] = prog.Steps[i], prog.Steps[i-1]
			prog.Coefs[i-1], prog.Coefs[i] = prog.Coefs[i], prog.Coefs[i-1]
			changed = true
		}
		if !changed {
			return
		}
	}
}

// DropNops removes adjacent dummy-acc pairs. Dropping two at a time
// preserves the even/odd parity of every remaining step, which the
// memory alignment depends on.
func DropNops(prog *Program) {
	for i := len(prog.Steps) - 1; i >= 0; i-- {
		if i+1 >= len(prog.Steps) {
			continue
		}
		if prog.Steps[i] != base.DummyAcc || prog.Coefs[i] != 0 {
			continue
		}
		if prog.Steps[i+1] != base.DummyAcc || prog.Coefs[i+1] != 0 {
			continue
		}
		prog.Steps = append(prog.Steps[:i], prog.Steps[i+2:]...)
		prog.Coefs = append(prog.Coefs[:i], prog.Coefs[i+2:]...)
	}
}
