package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of MIDR_EL1.
var (
	// The JEP106 identification code of the implementer. Codes not listed
	// here decode as reserved.
	MIDR_EL1_Implementer = reg.Field{Name: "Implementer", Offset: 24, Width: 8,
		Values: []reg.EnumValue{
			{Name: "Arm", Value: 0x41},
			{Name: "Broadcom", Value: 0x42},
			{Name: "Cavium", Value: 0x43},
			{Name: "DEC", Value: 0x44},
			{Name: "Fujitsu", Value: 0x46},
			{Name: "Infineon", Value: 0x49},
			{Name: "Motorola", Value: 0x4D},
			{Name: "NVIDIA", Value: 0x4E},
			{Name: "AMCC", Value: 0x50},
			{Name: "Qualcomm", Value: 0x51},
			{Name: "Marvell", Value: 0x56},
			{Name: "Apple", Value: 0x61},
			{Name: "Intel", Value: 0x69},
			{Name: "Ampere", Value: 0xC0},
		}}

	// An implementation defined variant number, typically the major
	// revision of the product.
	MIDR_EL1_Variant = reg.Field{Name: "Variant", Offset: 20, Width: 4}

	// The permitted architecture encodings. 0xF means the architecture is
	// described by the ID registers.
	MIDR_EL1_Architecture = reg.Field{Name: "Architecture", Offset: 16, Width: 4,
		Values: []reg.EnumValue{
			{Name: "ARMv4", Value: 0x1},
			{Name: "ARMv4T", Value: 0x2},
			{Name: "ARMv5", Value: 0x3},
			{Name: "ARMv5T", Value: 0x4},
			{Name: "ARMv5TE", Value: 0x5},
			{Name: "ARMv5TEJ", Value: 0x6},
			{Name: "ARMv6", Value: 0x7},
			{Name: "IDRegisters", Value: 0xF},
		}}

	// An implementation defined primary part number for the device.
	MIDR_EL1_PartNum = reg.Field{Name: "PartNum", Offset: 4, Width: 12}

	// An implementation defined revision number, typically the minor
	// revision of the product.
	MIDR_EL1_Revision = reg.Field{Name: "Revision", Offset: 0, Width: 4}
)

// MIDR_EL1 - Main ID Register.
//
// Provides identification information for the PE, including an implementer
// code for the device and a device ID number.
var MIDR_EL1 = &reg.Register{
	Name:   "MIDR_EL1",
	Width:  64,
	Access: reg.ReadOnly,
	Fields: []reg.Field{
		MIDR_EL1_Implementer,
		MIDR_EL1_Variant,
		MIDR_EL1_Architecture,
		MIDR_EL1_PartNum,
		MIDR_EL1_Revision,
	},
}
