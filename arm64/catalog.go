package arm64

import "github.com/Carbrevo/aarch64-cpu/reg"

// catalog lists every register this package describes, in name order.
var catalog = []*reg.Register{
	CNTFRQ_EL0,
	CTR_EL0,
	CurrentEL,
	DCZID_EL0,
	MIDR_EL1,
	MPIDR_EL1,
	SCTLR_EL1,
}

// Registers returns all descriptors in the catalog.
func Registers() []*reg.Register {
	regs := make([]*reg.Register, len(catalog))
	copy(regs, catalog)

	return regs
}

// Lookup finds a register descriptor by name.
func Lookup(name string) (*reg.Register, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}

	return nil, false
}

// Names returns the catalog register names in stable order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, r := range catalog {
		names = append(names, r.Name)
	}

	return names
}
