package settings

var Version = "0.1"

var InFilename = ""
var OutFilename = ""

// Optional binary image output ("" = text only)
var BinFilename = ""

// Do a code printout after compilation
var PrintCode = false

// Open the interactive step-table inspector after compilation
var Inspect = false

// Run the input through the external C preprocessor first
var UseCPP = false

// Skip the load-pipelining and NOP-compaction passes
var SkipOptimizer = false

// Suppress the informal progress lines
var Quiet = false

// Max number of microcode steps the AICA DSP can hold
var MaxNumberOfSteps = 128
