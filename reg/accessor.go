package reg

import "fmt"

// A Backend performs the physical access to registers. Implementations are
// platform specific: a privileged instruction sequence, a memory-mapped
// window, or a simulated device. Backends cannot fail; a register that does
// not exist at the current privilege level is a configuration error the
// platform detects when it constructs the backend, not here.
type Backend interface {
	Read64(register string) uint64
	Write64(register string, value uint64)
}

// Reader is the read capability of a register.
type Reader interface {
	Hookable

	// Read returns the current raw value. Every call re-reads the
	// hardware; register contents can change between calls.
	Read() Value

	// ReadField reads the register once and decodes one field.
	ReadField(f Field) FieldValue

	// MatchesAll reads the register once and reports whether every listed
	// field decodes to the expected encoding. A reserved or unmatched
	// encoding yields false, never an error.
	MatchesAll(expectations ...FieldExpectation) bool
}

// Writer is the write capability of a register.
type Writer interface {
	Hookable

	// Write stores the exact bit pattern given, masked to the register
	// width. Writes are never reordered or coalesced.
	Write(v Value)
}

// ReadWriter combines both capabilities and adds read-modify-write.
type ReadWriter interface {
	Reader
	Writer

	// Modify reads the current raw value, applies the assignments in the
	// given order, and writes the result back. Later assignments win on
	// overlapping bit ranges. An ErrOutOfRange assignment fails the whole
	// call before anything is written. Modify is not atomic with respect
	// to other execution contexts touching the same register; callers
	// needing that must serialize externally.
	Modify(assignments ...FieldAssignment) (Value, error)
}

// A FieldAssignment pairs a field with the value to store into it.
type FieldAssignment struct {
	Field Field
	Value uint64
}

// Assign builds a FieldAssignment from a raw field value.
func Assign(f Field, value uint64) FieldAssignment {
	return FieldAssignment{Field: f, Value: value}
}

// AssignName builds a FieldAssignment from one of the field's named
// encodings. Using a name the field does not declare is a programmer
// error.
func AssignName(f Field, name string) FieldAssignment {
	v, ok := f.ValueOf(name)
	if !ok {
		panic(fmt.Sprintf("field %s has no encoding named %s", f.Name, name))
	}

	return FieldAssignment{Field: f, Value: v}
}

// A FieldExpectation pairs a field with the encoding it must decode to.
type FieldExpectation struct {
	Field Field
	Name  string
}

// ExpectField builds a FieldExpectation.
func ExpectField(f Field, name string) FieldExpectation {
	return FieldExpectation{Field: f, Name: name}
}

// NewReader binds the read capability of a register to a backend. It fails
// when the register's access class does not permit reads.
func NewReader(r *Register, b Backend) (Reader, error) {
	if !r.Access.CanRead() {
		return nil, fmt.Errorf("register %s (%s) is not readable",
			r.Name, r.Access)
	}

	return newAccessor(r, b), nil
}

// NewWriter binds the write capability of a register to a backend. It fails
// when the register's access class does not permit writes.
func NewWriter(r *Register, b Backend) (Writer, error) {
	if !r.Access.CanWrite() {
		return nil, fmt.Errorf("register %s (%s) is not writeable",
			r.Name, r.Access)
	}

	return newAccessor(r, b), nil
}

// NewReadWriter binds both capabilities of a register to a backend. It
// fails unless the register's access class permits both directions.
func NewReadWriter(r *Register, b Backend) (ReadWriter, error) {
	if !r.Access.CanRead() || !r.Access.CanWrite() {
		return nil, fmt.Errorf("register %s (%s) is not read-write",
			r.Name, r.Access)
	}

	return newAccessor(r, b), nil
}

// accessor is the one engine behind Reader, Writer, and ReadWriter. The
// constructors decide which capability a caller gets.
type accessor struct {
	HookableBase

	register *Register
	backend  Backend
}

func newAccessor(r *Register, b Backend) *accessor {
	if b == nil {
		panic("accessor needs a backend")
	}

	return &accessor{register: r, backend: b}
}

func (a *accessor) Read() Value {
	v := Value(a.backend.Read64(a.register.Name)) & a.register.Mask()

	if a.NumHooks() > 0 {
		a.InvokeHook(HookCtx{
			Domain:   a,
			Pos:      HookPosRead,
			Register: a.register.Name,
			Value:    v,
		})
	}

	return v
}

func (a *accessor) ReadField(f Field) FieldValue {
	return f.Decode(a.Read())
}

func (a *accessor) MatchesAll(expectations ...FieldExpectation) bool {
	v := a.Read()

	for _, e := range expectations {
		fv := e.Field.Decode(v)
		if !fv.Is(e.Name) {
			return false
		}
	}

	return true
}

func (a *accessor) Write(v Value) {
	v &= a.register.Mask()

	a.backend.Write64(a.register.Name, uint64(v))

	if a.NumHooks() > 0 {
		a.InvokeHook(HookCtx{
			Domain:   a,
			Pos:      HookPosWrite,
			Register: a.register.Name,
			Value:    v,
		})
	}
}

func (a *accessor) Modify(assignments ...FieldAssignment) (Value, error) {
	v := a.Read()

	for _, fa := range assignments {
		nv, err := fa.Field.Insert(v, fa.Value)
		if err != nil {
			return 0, err
		}

		v = nv
	}

	a.Write(v)

	return v, nil
}
