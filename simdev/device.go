// Package simdev provides an in-memory register file that stands in for
// real hardware behind the reg.Backend interface. It is what the tests,
// the access recorder, and the monitoring server run against.
package simdev

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Carbrevo/aarch64-cpu/reg"
)

// A Device is a simulated register file. It honors each register's access
// class the way hardware does: writes to read-only registers are dropped,
// reads of write-only registers return zero.
type Device struct {
	sync.Mutex

	registers map[string]*entry
}

type entry struct {
	descriptor *reg.Register
	value      uint64
}

// New creates an empty Device.
func New() *Device {
	return &Device{
		registers: make(map[string]*entry),
	}
}

// AddRegister installs a register with its reset value. Installing the same
// register twice is a programmer error.
func (d *Device) AddRegister(r *reg.Register, reset uint64) {
	d.Lock()
	defer d.Unlock()

	if _, exists := d.registers[r.Name]; exists {
		panic(fmt.Sprintf("register %s is already installed", r.Name))
	}

	d.registers[r.Name] = &entry{
		descriptor: r,
		value:      reset & uint64(r.Mask()),
	}
}

// Read64 implements reg.Backend.
func (d *Device) Read64(register string) uint64 {
	d.Lock()
	defer d.Unlock()

	e := d.entry(register)
	if !e.descriptor.Access.CanRead() {
		return 0
	}

	return e.value
}

// Write64 implements reg.Backend.
func (d *Device) Write64(register string, value uint64) {
	d.Lock()
	defer d.Unlock()

	e := d.entry(register)
	if !e.descriptor.Access.CanWrite() {
		return
	}

	e.value = value & uint64(e.descriptor.Mask())
}

// Peek returns a register's stored value regardless of its access class.
func (d *Device) Peek(register string) uint64 {
	d.Lock()
	defer d.Unlock()

	return d.entry(register).value
}

// Poke stores a register value regardless of its access class. It is how a
// test or a demo plants the state the hardware would present.
func (d *Device) Poke(register string, value uint64) {
	d.Lock()
	defer d.Unlock()

	e := d.entry(register)
	e.value = value & uint64(e.descriptor.Mask())
}

// Registers returns the installed descriptors in name order.
func (d *Device) Registers() []*reg.Register {
	d.Lock()
	defer d.Unlock()

	regs := make([]*reg.Register, 0, len(d.registers))
	for _, e := range d.registers {
		regs = append(regs, e.descriptor)
	}

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Name < regs[j].Name
	})

	return regs
}

// Descriptor returns the descriptor of an installed register.
func (d *Device) Descriptor(register string) (*reg.Register, bool) {
	d.Lock()
	defer d.Unlock()

	e, found := d.registers[register]
	if !found {
		return nil, false
	}

	return e.descriptor, true
}

func (d *Device) entry(register string) *entry {
	e, found := d.registers[register]
	if !found {
		panic(fmt.Sprintf("register %s is not installed", register))
	}

	return e
}

var _ reg.Backend = (*Device)(nil)
