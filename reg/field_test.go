package reg

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field", func() {
	It("should mask the declared bit range", func() {
		f := Field{Name: "F", Offset: 14, Width: 2}

		Expect(f.Mask()).To(Equal(Value(0x0000C000)))
	})

	It("should mask a full-width field", func() {
		f := Field{Name: "All", Offset: 0, Width: 64}

		Expect(f.Mask()).To(Equal(Value(0xFFFFFFFFFFFFFFFF)))
	})

	It("should round-trip every value that fits", func() {
		fields := []Field{
			{Name: "A", Offset: 0, Width: 4},
			{Name: "B", Offset: 14, Width: 2},
			{Name: "C", Offset: 32, Width: 6},
			{Name: "D", Offset: 62, Width: 2},
		}
		raws := []Value{0, 0xFFFFFFFFFFFFFFFF, 0x00008000, 0x123456789ABCDEF0}

		for _, f := range fields {
			max := uint64(1) << f.Width
			for v := uint64(0); v < max; v++ {
				for _, raw := range raws {
					nv, err := f.Insert(raw, v)

					Expect(err).To(BeNil())
					Expect(f.Extract(nv)).To(Equal(v))
				}
			}
		}
	})

	It("should not alter bits outside the field", func() {
		f := Field{Name: "F", Offset: 14, Width: 2}
		raws := []Value{0, 0xFFFFFFFFFFFFFFFF, 0x00008000, 0x123456789ABCDEF0}

		for _, raw := range raws {
			for v := uint64(0); v < 4; v++ {
				nv, err := f.Insert(raw, v)

				Expect(err).To(BeNil())
				Expect(nv &^ f.Mask()).To(Equal(raw &^ f.Mask()))
			}
		}
	})

	It("should insert idempotently", func() {
		f := Field{Name: "F", Offset: 20, Width: 4}

		once, err := f.Insert(0x123456789ABCDEF0, 0xA)
		Expect(err).To(BeNil())

		twice, err := f.Insert(once, 0xA)
		Expect(err).To(BeNil())

		Expect(twice).To(Equal(once))
	})

	It("should reject a value one past the field maximum", func() {
		f := Field{Name: "F", Offset: 14, Width: 2}

		_, err := f.Insert(0, 1<<2)

		Expect(err).To(MatchError(ErrOutOfRange))
	})

	It("should reject values that do not fit, never truncate", func() {
		f := Field{Name: "F", Offset: 0, Width: 4}

		_, err := f.Insert(0, 0x1F)

		Expect(err).To(MatchError(ErrOutOfRange))
	})

	It("should accept any value in a full-width field", func() {
		f := Field{Name: "All", Offset: 0, Width: 64}

		nv, err := f.Insert(0, 0xFFFFFFFFFFFFFFFF)

		Expect(err).To(BeNil())
		Expect(nv).To(Equal(Value(0xFFFFFFFFFFFFFFFF)))
	})

	It("should panic in MustInsert when the value does not fit", func() {
		f := Field{Name: "F", Offset: 0, Width: 1}

		Expect(func() { f.MustInsert(0, 2) }).To(Panic())
	})

	It("should decode a plain field to its raw integer", func() {
		f := Field{Name: "F", Offset: 16, Width: 4}

		fv := f.Decode(0x00050000)

		Expect(fv.Raw).To(Equal(uint64(5)))
		Expect(fv.Name).To(Equal(""))
		Expect(fv.Reserved).To(BeFalse())
	})

	It("should decode declared encodings to their names", func() {
		f := Field{
			Name: "F", Offset: 2, Width: 2,
			Values: []EnumValue{{"A", 0}, {"B", 1}},
		}

		Expect(f.Decode(0x0).Is("A")).To(BeTrue())
		Expect(f.Decode(0x4).Is("B")).To(BeTrue())
	})

	It("should surface undeclared encodings as reserved", func() {
		f := Field{
			Name: "F", Offset: 0, Width: 2,
			Values: []EnumValue{{"A", 0}, {"B", 1}},
		}

		for _, raw := range []Value{0b10, 0b11} {
			fv := f.Decode(raw)

			Expect(fv.Reserved).To(BeTrue())
			Expect(fv.Name).To(Equal(""))
			Expect(fv.Is("A")).To(BeFalse())
			Expect(fv.Is("B")).To(BeFalse())
		}
	})

	It("should look up encodings by name", func() {
		f := Field{
			Name: "F", Offset: 0, Width: 2,
			Values: []EnumValue{{"A", 0}, {"B", 1}},
		}

		v, ok := f.ValueOf("B")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(uint64(1)))

		_, ok = f.ValueOf("C")
		Expect(ok).To(BeFalse())
	})

	It("should print decoded values", func() {
		plain := Field{Name: "Plain", Offset: 0, Width: 4}
		named := Field{
			Name: "Named", Offset: 0, Width: 1,
			Values: []EnumValue{{"On", 1}},
		}

		Expect(plain.Decode(0xA).String()).To(Equal("Plain=0xa"))
		Expect(named.Decode(1).String()).To(Equal("Named=On"))
		Expect(named.Decode(0).String()).To(Equal("Named=reserved(0x0)"))
	})
})
