package base

import (
	"testing"
)

func Test_FieldMasks(t *testing.T) {
	t.Run("NoOverlap", func(t *testing.T) {
		var seen Step
		for _, f := range FieldOrder {
			if seen&f.Mask() != 0 {
				t.Errorf("%s overlaps an earlier field (mask 0x%016x)",
					f.Name, uint64(f.Mask()))
			}
			seen |= f.Mask()
		}
	})

	t.Run("NoReservedBits", func(t *testing.T) {
		for _, f := range FieldOrder {
			if f.Mask()&ReservedMask != 0 {
				t.Errorf("%s touches reserved bits (mask 0x%016x)",
					f.Name, uint64(f.Mask()))
			}
		}
	})

	t.Run("FullCoverage", func(t *testing.T) {
		var seen Step
		for _, f := range FieldOrder {
			seen |= f.Mask()
		}
		if seen|ReservedMask != ^Step(0) {
			t.Errorf("Fields plus reserved bits do not cover the word: 0x%016x",
				uint64(seen|ReservedMask))
		}
	})
}

func Test_FieldAccess(t *testing.T) {
	for _, f := range FieldOrder {
		max := uint64(1)<<f.Width - 1
		for _, v := range []uint64{0, 1, max} {
			if got := f.Get(f.Prep(v)); got != v {
				t.Errorf("%s: Prep/Get of %d gave %d", f.Name, v, got)
			}
		}
	}
}

func Test_DummyAcc(t *testing.T) {
	expected := Step(1<<45 | 1<<16)
	if DummyAcc != expected {
		t.Errorf("DummyAcc != 0x%016x. Got 0x%016x",
			uint64(expected), uint64(DummyAcc))
	}
	if YSEL.Get(DummyAcc) != 1 || BSEL.Get(DummyAcc) != 1 {
		t.Errorf("DummyAcc must select COEF and the accumulator")
	}
}

func Test_FieldByName(t *testing.T) {
	for _, f := range FieldOrder {
		if FieldByName[f.Name] != f {
			t.Errorf("FieldByName misses %s", f.Name)
		}
	}
}

func Test_InputBanks(t *testing.T) {
	if InputOffsets["mems"] != 0 || InputOffsets["mixer"] != 32 ||
		InputOffsets["cdda"] != 48 {
		t.Errorf("Wrong INPUTS bank offsets: %v", InputOffsets)
	}
	for bank, count := range InputCounts {
		last := InputOffsets[bank] + count - 1
		if last >= 64 {
			t.Errorf("Bank %s exceeds IRA range: last index %d", bank, last)
		}
	}
}
