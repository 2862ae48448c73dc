package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// Fields of CurrentEL.
var (
	// Current exception level.
	CurrentEL_EL = reg.Field{Name: "EL", Offset: 2, Width: 2,
		Values: []reg.EnumValue{
			{Name: "EL0", Value: 0},
			{Name: "EL1", Value: 1},
			{Name: "EL2", Value: 2},
			{Name: "EL3", Value: 3},
		}}
)

// CurrentEL - Current Exception Level.
//
// Holds the exception level the PE is executing at.
var CurrentEL = &reg.Register{
	Name:   "CurrentEL",
	Width:  64,
	Access: reg.ReadOnly,
	Fields: []reg.Field{
		CurrentEL_EL,
	},
}
