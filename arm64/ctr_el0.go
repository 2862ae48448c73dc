// Package arm64 is a catalog of AArch64 system register descriptors. Each
// register is declared once as static data and shared read-only; binding a
// descriptor to a physical backend is the caller's business.
package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of CTR_EL0.
var (
	// Tag minimum line. Log2 of the number of words covered by Allocation
	// Tags in the smallest cache line of all caches that can contain
	// Allocation Tags.
	CTR_EL0_TminLine = reg.Field{Name: "TminLine", Offset: 32, Width: 6}

	// Instruction cache invalidation requirements for data to instruction
	// coherence.
	CTR_EL0_DIC = reg.Field{Name: "DIC", Offset: 29, Width: 1}

	// Data cache clean requirements for instruction to data coherence.
	CTR_EL0_IDC = reg.Field{Name: "IDC", Offset: 28, Width: 1}

	// Cache writeback granule. Log2 of the number of words of the maximum
	// size of memory that can be overwritten as a result of the eviction of
	// a cache entry that has had a memory location in it modified.
	CTR_EL0_CWG = reg.Field{Name: "CWG", Offset: 24, Width: 4}

	// Exclusives reservation granule. Log2 of the number of words of the
	// maximum size of the reservation granule that has been implemented for
	// the Load-Exclusive and Store-Exclusive instructions.
	CTR_EL0_ERG = reg.Field{Name: "ERG", Offset: 20, Width: 4}

	// Log2 of the number of words in the smallest cache line of all the
	// data caches and unified caches that are controlled by the PE.
	CTR_EL0_DminLine = reg.Field{Name: "DminLine", Offset: 16, Width: 4}

	// Level 1 instruction cache policy. The indexing and tagging policy
	// that is used for the L1 instruction cache. The 0b00 encoding is
	// reserved in ARMv8 (it named VPIPT before its retirement).
	CTR_EL0_L1Ip = reg.Field{Name: "L1Ip", Offset: 14, Width: 2,
		Values: []reg.EnumValue{
			{Name: "Reserved", Value: 0b00},
			{Name: "AIVIVT", Value: 0b01},
			{Name: "VIPT", Value: 0b10},
			{Name: "PIPT", Value: 0b11},
		}}

	// Log2 of the number of words in the smallest cache line of all the
	// instruction caches that are controlled by the PE.
	CTR_EL0_IminLine = reg.Field{Name: "IminLine", Offset: 0, Width: 4}
)

// CTR_EL0 - Cache Type Register.
//
// Provides information about the architecture of the caches.
var CTR_EL0 = &reg.Register{
	Name:   "CTR_EL0",
	Width:  64,
	Access: reg.ReadWrite,
	Fields: []reg.Field{
		CTR_EL0_TminLine,
		CTR_EL0_DIC,
		CTR_EL0_IDC,
		CTR_EL0_CWG,
		CTR_EL0_ERG,
		CTR_EL0_DminLine,
		CTR_EL0_L1Ip,
		CTR_EL0_IminLine,
	},
}
