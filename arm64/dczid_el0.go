package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of DCZID_EL0.
var (
	// Data zero prohibited. Whether the use of DC ZVA instructions is
	// permitted or prohibited.
	DCZID_EL0_DZP = reg.Field{Name: "DZP", Offset: 4, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Allowed", Value: 0},
			{Name: "Prohibited", Value: 1},
		}}

	// Log2 of the block size in words written to memory by the DC ZVA
	// instruction.
	DCZID_EL0_BS = reg.Field{Name: "BS", Offset: 0, Width: 4}
)

// DCZID_EL0 - Data Cache Zero ID Register.
//
// Indicates the block size that is written with byte values of 0 by the
// DC ZVA instruction.
var DCZID_EL0 = &reg.Register{
	Name:   "DCZID_EL0",
	Width:  64,
	Access: reg.ReadOnly,
	Fields: []reg.Field{
		DCZID_EL0_DZP,
		DCZID_EL0_BS,
	},
}
