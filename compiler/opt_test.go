package compiler

import (
	"testing"

	"github.com/handegar/aicac/base"
)

func makeProg(steps ...base.Step) *Program {
	prog := &Program{}
	for _, s := range steps {
		prog.appendStep(s)
	}
	return prog
}

func Test_OptLoads(t *testing.T) {
	t.Run("HoistsFreeRead", func(t *testing.T) {
		prog := compileOk(t,
			"output yreg",
			"mac input, #1",
			"mac input, #2",
			"mac input, #3",
			"ldf madrs:7, mems:3")

		// Lowered: four statements, alignment dummy at 4, read setup
		// at 5, wait at 6, write-back at 7.
		if prog.NumSteps() != 8 {
			t.Fatalf("Expected 8 lowered steps, got %d", prog.NumSteps())
		}

		OptLoads(prog)

		if !prog.Steps[3].Has(base.MRD) {
			t.Errorf("Read setup not hoisted to step 3: 0x%016x",
				uint64(prog.Steps[3]))
		}
		if base.MASA.Get(prog.Steps[3]) != 7 {
			t.Errorf("MASA did not travel with the read")
		}
		if !prog.Steps[5].Has(base.IWT) || base.IWA.Get(prog.Steps[5]) != 3 {
			t.Errorf("Write-back not hoisted to step 5: 0x%016x",
				uint64(prog.Steps[5]))
		}
		for _, i := range []int{4, 6, 7} {
			stepTest(t, prog.Steps[i], base.DummyAcc)
		}
	})

	t.Run("SlotConsumerBlocks", func(t *testing.T) {
		prog := compileOk(t,
			"input mems:3",
			"output yreg",
			"mac input, #1",
			"mac input, #2",
			"mac input, #3",
			"ld madrs:0, mems:3")

		OptLoads(prog)

		// The MAC steps consume INPUTS slot 3, so the read of the
		// same slot cannot pass them.
		if !prog.Steps[5].Has(base.MRD) {
			t.Errorf("Read moved past a consumer of its slot")
		}
	})

	t.Run("EarlierWritebackBlocks", func(t *testing.T) {
		prog := compileOk(t,
			"ld madrs:0, mems:0",
			"ld madrs:1, mems:1")

		OptLoads(prog)

		if !prog.Steps[5].Has(base.MRD) {
			t.Errorf("Second read moved past the first write-back")
		}
	})
}

func Test_TrickleDown(t *testing.T) {
	tempStore := base.DummyAcc | base.TWT.Prep(1) | base.TWA.Prep(1)
	mixOut := base.DummyAcc | base.EWT.Prep(1)

	prog := makeProg(base.DummyAcc, tempStore, base.DummyAcc, mixOut)
	TrickleDown(prog)

	expected := []base.Step{tempStore, mixOut, base.DummyAcc, base.DummyAcc}
	for i, e := range expected {
		stepTest(t, prog.Steps[i], e)
	}
}

func Test_TrickleDown_MemorySteps(t *testing.T) {
	read := base.DummyAcc | base.MRD.Prep(1) | base.MASA.Prep(1)

	// Memory traffic must keep its index parity, so the read may not
	// swap with the leading dummy.
	prog := makeProg(base.DummyAcc, read)
	TrickleDown(prog)

	stepTest(t, prog.Steps[0], base.DummyAcc)
	stepTest(t, prog.Steps[1], read)
}

func Test_TrickleDown_CoefPins(t *testing.T) {
	mac := base.XSEL.Prep(1) | base.YSEL.Prep(1) | base.ZERO.Prep(1)

	prog := makeProg(base.DummyAcc, mac)
	prog.Coefs[1] = 800
	TrickleDown(prog)

	stepTest(t, prog.Steps[0], mac)
	if prog.Coefs[0] != 800 || prog.Coefs[1] != 0 {
		t.Errorf("COEF entry did not travel with its step: %v", prog.Coefs)
	}
}

func Test_TrickleDown_Idempotent(t *testing.T) {
	tempStore := base.DummyAcc | base.TWT.Prep(1) | base.TWA.Prep(1)
	mixOut := base.DummyAcc | base.EWT.Prep(1)

	prog := makeProg(base.DummyAcc, tempStore, base.DummyAcc, mixOut)
	TrickleDown(prog)

	settled := append([]base.Step(nil), prog.Steps...)
	TrickleDown(prog)

	for i, s := range settled {
		stepTest(t, prog.Steps[i], s)
	}
}

func Test_DropNops(t *testing.T) {
	tempStore := base.DummyAcc | base.TWT.Prep(1) | base.TWA.Prep(1)

	t.Run("DropsPairs", func(t *testing.T) {
		prog := makeProg(tempStore, base.DummyAcc, base.DummyAcc, tempStore)
		DropNops(prog)
		if prog.NumSteps() != 2 {
			t.Fatalf("Expected 2 steps, got %d", prog.NumSteps())
		}
		stepTest(t, prog.Steps[0], tempStore)
		stepTest(t, prog.Steps[1], tempStore)
	})

	t.Run("KeepsSingles", func(t *testing.T) {
		prog := makeProg(tempStore, base.DummyAcc, tempStore)
		DropNops(prog)
		if prog.NumSteps() != 3 {
			t.Errorf("A lone dummy keeps the parity, got %d steps",
				prog.NumSteps())
		}
	})

	t.Run("KeepsCoefCarriers", func(t *testing.T) {
		prog := makeProg(tempStore, base.DummyAcc, base.DummyAcc)
		prog.Coefs[1] = 8
		DropNops(prog)
		if prog.NumSteps() != 3 {
			t.Errorf("A dummy with a COEF entry is not a NOP, got %d steps",
				prog.NumSteps())
		}
	})
}

func Test_Optimize_Pipeline(t *testing.T) {
	prog := compileOk(t,
		"output yreg",
		"mac input, #1",
		"mac input, #2",
		"mac input, #3",
		"ldf madrs:7, mems:3")

	Optimize(prog)

	if prog.NumSteps() != 6 {
		t.Fatalf("Expected 6 steps after optimization, got %d",
			prog.NumSteps())
	}
	if !prog.Steps[3].Has(base.MRD) || !prog.Steps[5].Has(base.IWT) {
		t.Errorf("Pipelined read lost its placement")
	}
}
