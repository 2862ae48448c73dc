package reg

import "fmt"

// Access tells which directions a register supports.
type Access int

// Enumeration of register access classes.
const (
	ReadOnly Access = iota
	WriteOnly
	ReadWrite
)

// CanRead reports whether the access class permits reads.
func (a Access) CanRead() bool {
	return a == ReadOnly || a == ReadWrite
}

// CanWrite reports whether the access class permits writes.
func (a Access) CanWrite() bool {
	return a == WriteOnly || a == ReadWrite
}

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	case ReadWrite:
		return "RW"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// A Register describes the layout of one hardware register: its identity,
// width, access class, and fields. Descriptors are built once as static
// data and shared read-only by every caller.
type Register struct {
	Name   string
	Width  uint
	Access Access
	Fields []Field
}

// Mask returns the mask covering the register's full width.
func (r *Register) Mask() Value {
	bits := uint64(1)<<r.Width - 1
	return Value(bits)
}

// FieldByName finds a field of the register by name.
func (r *Register) FieldByName(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// DecodeAll decodes every field of the register from raw, in declaration
// order.
func (r *Register) DecodeAll(raw Value) []FieldValue {
	values := make([]FieldValue, 0, len(r.Fields))
	for _, f := range r.Fields {
		values = append(values, f.Decode(raw))
	}

	return values
}

// Validate checks the table-authoring invariants of the descriptor: field
// ranges must lie within the register width and must not overlap, declared
// encodings must fit their field, and field names must be unique. Accessor
// operations do not call Validate; catalog tests do.
func (r *Register) Validate() error {
	if r.Width == 0 || r.Width > 64 {
		return fmt.Errorf("register %s: width %d is not in [1, 64]",
			r.Name, r.Width)
	}

	names := make(map[string]bool)
	var covered Value

	for _, f := range r.Fields {
		if err := r.validateField(f); err != nil {
			return err
		}

		if names[f.Name] {
			return fmt.Errorf("register %s: duplicate field %s",
				r.Name, f.Name)
		}
		names[f.Name] = true

		if covered&f.Mask() != 0 {
			return fmt.Errorf("register %s: field %s overlaps another field",
				r.Name, f.Name)
		}
		covered |= f.Mask()
	}

	return nil
}

func (r *Register) validateField(f Field) error {
	if f.Width == 0 {
		return fmt.Errorf("register %s: field %s has zero width",
			r.Name, f.Name)
	}

	if f.Offset+f.Width > r.Width {
		return fmt.Errorf(
			"register %s: field %s spans [%d, %d), register is %d bits wide",
			r.Name, f.Name, f.Offset, f.Offset+f.Width, r.Width)
	}

	for _, ev := range f.Values {
		if f.Width < 64 && ev.Value >= uint64(1)<<f.Width {
			return fmt.Errorf(
				"register %s: field %s: encoding %s=%#x does not fit in %d bits",
				r.Name, f.Name, ev.Name, ev.Value, f.Width)
		}
	}

	return nil
}
