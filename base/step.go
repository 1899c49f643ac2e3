package base

// A Step is one 64-bit word of AICA DSP microcode. The DSP executes
// the whole program once per sample; every word drives all hardware
// lanes at once (address generation, MAC, temp-RAM, memory, input
// selection, shift/saturate).
type Step uint64

// Field describes one bit-field of a Step: position of the LSB and
// width in bits. The mask/shift pair is fixed by the hardware, so it
// is carried in the type instead of being computed GENMASK-style at
// runtime.
type Field struct {
	Name  string
	Shift uint
	Width uint
}

func (f Field) Mask() Step {
	return Step(((uint64(1) << f.Width) - 1) << f.Shift)
}

// Get extracts the field value from a step word.
func (f Field) Get(s Step) uint64 {
	return (uint64(s) >> f.Shift) & ((uint64(1) << f.Width) - 1)
}

// Prep places a value into the field's bit position. Values wider
// than the field are truncated to the field width.
func (f Field) Prep(v uint64) Step {
	return Step(v<<f.Shift) & f.Mask()
}

// Has reports whether any bit of the field is set.
func (s Step) Has(f Field) bool {
	return s&f.Mask() != 0
}

var (
	TRA   = Field{"TRA", 57, 7}   // Temp-RAM read address
	TWT   = Field{"TWT", 56, 1}   // Temp-RAM write enable
	TWA   = Field{"TWA", 49, 7}   // Temp-RAM write address
	XSEL  = Field{"XSEL", 47, 1}  // X-operand = INPUTS (else temp)
	YSEL  = Field{"YSEL", 45, 2}  // Y-operand select
	IRA   = Field{"IRA", 39, 6}   // Input selector register index
	IWT   = Field{"IWT", 38, 1}   // MEMS write enable
	IWA   = Field{"IWA", 33, 5}   // MEMS write address
	TABLE = Field{"TABLE", 31, 1} // 0 = offset relative to sample counter
	MWT   = Field{"MWT", 30, 1}   // Memory write
	MRD   = Field{"MRD", 29, 1}   // Memory read
	EWT   = Field{"EWT", 28, 1}   // Output-mixer write
	EWA   = Field{"EWA", 24, 4}   // Output-mixer channel
	ADRL  = Field{"ADRL", 23, 1}  // Load ADRS register
	FRCL  = Field{"FRCL", 22, 1}  // Latch fractional part
	SHIFT = Field{"SHIFT", 20, 2} // Shift/saturate mode
	YRL   = Field{"YRL", 19, 1}   // Latch YREG
	NEGB  = Field{"NEGB", 18, 1}  // Negate B
	ZERO  = Field{"ZERO", 17, 1}  // B = 0
	BSEL  = Field{"BSEL", 16, 1}  // B = accumulator (else temp)
	NOFL  = Field{"NOFL", 15, 1}  // Integer (not float) memory format
	MASA  = Field{"MASA", 9, 6}   // Memory-address-RAM index
	ADREB = Field{"ADREB", 8, 1}  // Add ADRS to memory offset
	NXADR = Field{"NXADR", 7, 1}  // Post-increment memory offset
)

// FieldOrder is the canonical emission order for MPRO field lists.
var FieldOrder = []Field{
	TRA, TWT, TWA, XSEL, YSEL, IRA, IWT, IWA, TABLE, MWT, MRD,
	EWT, EWA, ADRL, FRCL, SHIFT, YRL, NEGB, ZERO, BSEL, NOFL,
	MASA, ADREB, NXADR,
}

// FieldByName maps mnemonics (as emitted) back to their fields.
var FieldByName = map[string]Field{}

func init() {
	for _, f := range FieldOrder {
		FieldByName[f.Name] = f
	}
}

// DummyAcc is the canonical no-op step: acc = x*0 + acc. YSEL=1
// selects the coefficient (which is zero for a step without an
// associated COEF entry) and BSEL routes the accumulator into B.
var DummyAcc = YSEL.Prep(1) | BSEL.Prep(1)

// ReservedMask covers bits 48, 32 and 6-0, which must always be zero.
const ReservedMask = Step(1<<48 | 1<<32 | 0x7F)

// Shift/saturate modes as encoded in the SHIFT field.
const (
	ShiftSat   = 0
	ShiftSat2  = 1
	ShiftTrim2 = 2
	ShiftTrim  = 3 // Also doubles as the shifted:lo extraction mode
)

var ShiftModes = map[string]uint64{
	"sat":   ShiftSat,
	"sat2":  ShiftSat2,
	"trim2": ShiftTrim2,
	"trim":  ShiftTrim,
}

// Sizes of the DSP's RAM banks.
const (
	MPROSize  = 128 // Microcode steps
	COEFSize  = 128 // Coefficient RAM (signed 16-bit)
	MADRSSize = 64  // Memory-address RAM (unsigned 16-bit)
	TEMPSize  = 128 // Temp RAM (unsigned 32-bit)
	MEMSSize  = 32  // Sample input registers
	MixerSize = 16  // Output-mixer channels
)

// The INPUTS register file is a concatenation of the MEMS, mixer and
// CD-DA banks. The offsets give each bank's base index within IRA's
// 0-63 range.
var InputOffsets = map[string]uint64{
	"mems":  0,
	"mixer": 32,
	"cdda":  48,
}

var InputCounts = map[string]uint64{
	"mems":  MEMSSize,
	"mixer": MixerSize,
	"cdda":  2,
}
