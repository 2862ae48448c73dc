package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of MPIDR_EL1.
var (
	// Affinity level 3, the most significant affinity level field.
	MPIDR_EL1_Aff3 = reg.Field{Name: "Aff3", Offset: 32, Width: 8}

	// Indicates a uniprocessor system, as distinct from PE 0 in a
	// multiprocessor system.
	MPIDR_EL1_U = reg.Field{Name: "U", Offset: 30, Width: 1,
		Values: []reg.EnumValue{
			{Name: "Multiprocessor", Value: 0},
			{Name: "Uniprocessor", Value: 1},
		}}

	// Indicates whether the lowest level of affinity consists of logical
	// PEs that are implemented using a multithreading type approach.
	MPIDR_EL1_MT = reg.Field{Name: "MT", Offset: 24, Width: 1,
		Values: []reg.EnumValue{
			{Name: "SingleThread", Value: 0},
			{Name: "MultiThread", Value: 1},
		}}

	// Affinity level 2.
	MPIDR_EL1_Aff2 = reg.Field{Name: "Aff2", Offset: 16, Width: 8}

	// Affinity level 1.
	MPIDR_EL1_Aff1 = reg.Field{Name: "Aff1", Offset: 8, Width: 8}

	// Affinity level 0, the least significant affinity level field.
	MPIDR_EL1_Aff0 = reg.Field{Name: "Aff0", Offset: 0, Width: 8}
)

// MPIDR_EL1 - Multiprocessor Affinity Register.
//
// In a multiprocessor system, provides an additional PE identification
// mechanism for scheduling purposes.
var MPIDR_EL1 = &reg.Register{
	Name:   "MPIDR_EL1",
	Width:  64,
	Access: reg.ReadOnly,
	Fields: []reg.Field{
		MPIDR_EL1_Aff3,
		MPIDR_EL1_U,
		MPIDR_EL1_MT,
		MPIDR_EL1_Aff2,
		MPIDR_EL1_Aff1,
		MPIDR_EL1_Aff0,
	},
}
