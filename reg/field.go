// Package reg describes the bit layout of fixed-width hardware registers
// and provides typed access to their fields. A register's layout is declared
// once as static data; reading, decoding, and read-modify-write all go
// through that declaration instead of hand-written shifting and masking.
package reg

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a value supplied to Insert or Modify does
// not fit in the target field's width. Values are rejected, never silently
// truncated.
var ErrOutOfRange = errors.New("value out of field range")

// A Value is the raw content of a hardware register. Values are plain
// integers passed by value; operations always produce a new Value.
type Value uint64

// An EnumValue names one encoding that the hardware defines for a field.
type EnumValue struct {
	Name  string
	Value uint64
}

// A Field describes one contiguous bit range within a register.
type Field struct {
	Name   string
	Offset uint
	Width  uint

	// Values is the closed set of encodings the hardware defines for the
	// field. A field without Values decodes to a plain integer. Encodings
	// not listed here decode as reserved.
	Values []EnumValue
}

// Mask returns the bit mask covering the field within the register.
func (f Field) Mask() Value {
	bits := uint64(1)<<f.Width - 1
	return Value(bits << f.Offset)
}

// Extract isolates the field's bits from raw and shifts them down to bit 0.
func (f Field) Extract(raw Value) uint64 {
	return (uint64(raw) >> f.Offset) & (uint64(1)<<f.Width - 1)
}

// Insert returns raw with the field's bit range replaced by value. Bits
// outside the field are carried over untouched. A value that does not fit
// in Width bits fails with ErrOutOfRange.
func (f Field) Insert(raw Value, value uint64) (Value, error) {
	if f.Width < 64 && value >= uint64(1)<<f.Width {
		return 0, fmt.Errorf("field %s: %#x does not fit in %d bits: %w",
			f.Name, value, f.Width, ErrOutOfRange)
	}

	cleared := uint64(raw) &^ uint64(f.Mask())

	return Value(cleared | value<<f.Offset), nil
}

// MustInsert is Insert for values known to fit, such as declared enum
// encodings. It panics on ErrOutOfRange.
func (f Field) MustInsert(raw Value, value uint64) Value {
	v, err := f.Insert(raw, value)
	if err != nil {
		panic(err)
	}

	return v
}

// Decode extracts the field from raw and matches the result against the
// field's declared encodings, if any.
func (f Field) Decode(raw Value) FieldValue {
	fv := FieldValue{Field: f.Name, Raw: f.Extract(raw)}

	if len(f.Values) == 0 {
		return fv
	}

	for _, ev := range f.Values {
		if ev.Value == fv.Raw {
			fv.Name = ev.Name
			return fv
		}
	}

	fv.Reserved = true

	return fv
}

// ValueOf looks up the encoding of a named value of the field.
func (f Field) ValueOf(name string) (uint64, bool) {
	for _, ev := range f.Values {
		if ev.Name == name {
			return ev.Value, true
		}
	}

	return 0, false
}

// A FieldValue is the decoded content of one field of a register.
type FieldValue struct {
	// Field is the name of the field the value was extracted from.
	Field string

	// Raw is the field content shifted down to bit 0.
	Raw uint64

	// Name is the symbolic name of the encoding, when the field declares
	// one for Raw.
	Name string

	// Reserved reports that the field declares named encodings but Raw
	// matches none of them. Hardware routinely leaves encodings reserved
	// for future use, so this is a decode outcome, not an error.
	Reserved bool
}

// Is reports whether the value decoded to the named encoding.
func (v FieldValue) Is(name string) bool {
	return !v.Reserved && v.Name != "" && v.Name == name
}

func (v FieldValue) String() string {
	switch {
	case v.Name != "":
		return fmt.Sprintf("%s=%s", v.Field, v.Name)
	case v.Reserved:
		return fmt.Sprintf("%s=reserved(%#x)", v.Field, v.Raw)
	default:
		return fmt.Sprintf("%s=%#x", v.Field, v.Raw)
	}
}
