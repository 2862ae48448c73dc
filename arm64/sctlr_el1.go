package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of SCTLR_EL1.
var (
	// Endianness of data accesses at EL1, and stage 1 translation table
	// walks in the EL1&0 translation regime.
	SCTLR_EL1_EE = reg.Field{Name: "EE", Offset: 25, Width: 1,
		Values: []reg.EnumValue{
			{Name: "LittleEndian", Value: 0},
			{Name: "BigEndian", Value: 1},
		}}

	// Endianness of data accesses at EL0.
	SCTLR_EL1_E0E = reg.Field{Name: "E0E", Offset: 24, Width: 1,
		Values: []reg.EnumValue{
			{Name: "LittleEndian", Value: 0},
			{Name: "BigEndian", Value: 1},
		}}

	// Write permission implies XN (Execute-never). Forces all memory
	// regions that are writable in the EL1&0 translation regime to be
	// treated as XN.
	SCTLR_EL1_WXN = reg.Field{Name: "WXN", Offset: 19, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Disable", Value: 0},
			{Name: "Enable", Value: 1},
		}}

	// Instruction access cacheability control, for accesses at EL1 and EL0.
	SCTLR_EL1_I = reg.Field{Name: "I", Offset: 12, Width: 1,
		Values: []reg.EnumValue{
			{Name: "NonCacheable", Value: 0},
			{Name: "Cacheable", Value: 1},
		}}

	// SP alignment check for memory accesses at EL0.
	SCTLR_EL1_SA0 = reg.Field{Name: "SA0", Offset: 4, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Disable", Value: 0},
			{Name: "Enable", Value: 1},
		}}

	// SP alignment check for memory accesses at EL1.
	SCTLR_EL1_SA = reg.Field{Name: "SA", Offset: 3, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Disable", Value: 0},
			{Name: "Enable", Value: 1},
		}}

	// Data access cacheability control, for accesses at EL1 and EL0.
	SCTLR_EL1_C = reg.Field{Name: "C", Offset: 2, Width: 1,
		Values: []reg.EnumValue{
			{Name: "NonCacheable", Value: 0},
			{Name: "Cacheable", Value: 1},
		}}

	// Alignment check for memory accesses at EL1 and EL0.
	SCTLR_EL1_A = reg.Field{Name: "A", Offset: 1, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Disable", Value: 0},
			{Name: "Enable", Value: 1},
		}}

	// MMU enable for EL1 and EL0 stage 1 address translation.
	SCTLR_EL1_M = reg.Field{Name: "M", Offset: 0, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Disable", Value: 0},
			{Name: "Enable", Value: 1},
		}}
)

// SCTLR_EL1 - System Control Register - EL1.
//
// Provides top level control of the system, including its memory system,
// at EL1 and EL0. Only the commonly toggled fields are described here; the
// remaining bits pass through Read and Modify untouched.
var SCTLR_EL1 = &reg.Register{
	Name:   "SCTLR_EL1",
	Width:  64,
	Access: reg.ReadWrite,
	Fields: []reg.Field{
		SCTLR_EL1_EE,
		SCTLR_EL1_E0E,
		SCTLR_EL1_WXN,
		SCTLR_EL1_I,
		SCTLR_EL1_SA0,
		SCTLR_EL1_SA,
		SCTLR_EL1_C,
		SCTLR_EL1_A,
		SCTLR_EL1_M,
	},
}
