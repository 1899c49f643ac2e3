package disasm

// FieldDoc describes one microcode field for the inspector's info
// pane.
type FieldDoc struct {
	Short string
	Long  string
}

var FieldDocs = map[string]FieldDoc{
	"TRA": {"Temp read address",
		"Selects the TEMP cell feeding the X or B input of the multiply-accumulate. Relative to the ring-buffer base counter."},
	"TWT": {"Temp write",
		"Writes the shifted accumulator into TEMP at the address in TWA."},
	"TWA": {"Temp write address",
		"TEMP cell written when TWT is set. Relative to the ring-buffer base counter."},
	"XSEL": {"X select",
		"0 selects TEMP[TRA] as the X operand, 1 selects the INPUTS register at IRA."},
	"YSEL": {"Y select",
		"Y operand source: 0 latched fraction (FRCL), 1 COEF entry, 2 YREG high half, 3 YREG low half."},
	"IRA": {"Input read address",
		"INPUTS register sampled by XSEL, YRL and ADRL. 0-31 MEMS, 32-47 mixer, 48-49 CDDA."},
	"IWT": {"Input write",
		"Writes the pending memory-read data into the INPUTS register at IWA. Lands two steps after the MRD."},
	"IWA": {"Input write address",
		"MEMS register written when IWT is set."},
	"TABLE": {"Absolute addressing",
		"Uses the MADRS entry as an absolute ring-buffer address instead of adding the sample counter."},
	"MWT": {"Memory write",
		"Writes the shifted accumulator to ring-buffer memory. Must sit on an odd step index."},
	"MRD": {"Memory read",
		"Starts a ring-buffer read. Must sit on an odd step index; data arrives two steps later via IWT."},
	"EWT": {"Effect write",
		"Writes the shifted accumulator to the effect output register at EWA."},
	"EWA": {"Effect write address",
		"Effect output channel written when EWT is set."},
	"ADRL": {"Address latch",
		"Latches the address register from the INPUTS register at IRA, or from the shifted accumulator when SHIFT is 3."},
	"FRCL": {"Fraction latch",
		"Latches the fractional interpolation value from the shifted accumulator. Consumed by YSEL 0 on the next step."},
	"SHIFT": {"Shift mode",
		"Accumulator output conditioning: 0 saturate, 1 saturate with doubling, 2 trim with doubling, 3 trim."},
	"YRL": {"Y register load",
		"Loads YREG from the INPUTS register at IRA."},
	"NEGB": {"Negate B",
		"Negates the B addend before the accumulate."},
	"ZERO": {"Zero B",
		"Forces the B addend to zero. Overrides BSEL."},
	"BSEL": {"B select",
		"0 selects TEMP[TRA] as the B addend, 1 selects the accumulator."},
	"NOFL": {"No float",
		"Treats ring-buffer data as plain 16-bit integers instead of the packed float format."},
	"MASA": {"Memory address select",
		"MADRS table entry supplying the base address for MRD and MWT."},
	"ADREB": {"Address register enable",
		"Adds the latched address register to the memory address."},
	"NXADR": {"Next address",
		"Adds one extra sample to the memory address."},
}
