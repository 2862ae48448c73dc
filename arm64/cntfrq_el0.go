package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of CNTFRQ_EL0.
var (
	// Clock frequency of the system counter, in Hz. Writable only at the
	// highest implemented exception level; firmware programs it at boot.
	CNTFRQ_EL0_ClockFreq = reg.Field{Name: "ClockFreq", Offset: 0, Width: 32}
)

// CNTFRQ_EL0 - Counter-timer Frequency Register.
//
// Holds the clock frequency of the system counter.
var CNTFRQ_EL0 = &reg.Register{
	Name:   "CNTFRQ_EL0",
	Width:  64,
	Access: reg.ReadWrite,
	Fields: []reg.Field{
		CNTFRQ_EL0_ClockFreq,
	},
}
