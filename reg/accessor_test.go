package reg

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type countingHook struct {
	reads, writes int
	lastValue     Value
}

func (h *countingHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosRead:
		h.reads++
	case HookPosWrite:
		h.writes++
	}

	h.lastValue = ctx.Value
}

var _ = Describe("Accessor", func() {
	var (
		mockCtrl *gomock.Controller
		backend  *MockBackend
		cfg      *Register
		mode     Field
		count    Field
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		backend = NewMockBackend(mockCtrl)

		cfg = &Register{
			Name:   "CFG",
			Width:  32,
			Access: ReadWrite,
			Fields: []Field{
				{Name: "Mode", Offset: 14, Width: 2, Values: []EnumValue{
					{"Reserved", 0},
					{"AIVIVT", 1},
					{"VIPT", 2},
					{"PIPT", 3},
				}},
				{Name: "Count", Offset: 0, Width: 4},
			},
		}
		mode = cfg.Fields[0]
		count = cfg.Fields[1]
	})

	It("should refuse the read capability of a write-only register", func() {
		wo := &Register{Name: "WO", Width: 32, Access: WriteOnly}

		_, err := NewReader(wo, backend)
		Expect(err).To(HaveOccurred())

		_, err = NewReadWriter(wo, backend)
		Expect(err).To(HaveOccurred())
	})

	It("should refuse the write capability of a read-only register", func() {
		ro := &Register{Name: "RO", Width: 32, Access: ReadOnly}

		_, err := NewWriter(ro, backend)
		Expect(err).To(HaveOccurred())

		_, err = NewReadWriter(ro, backend)
		Expect(err).To(HaveOccurred())
	})

	It("should grant single-direction capabilities", func() {
		ro := &Register{Name: "RO", Width: 32, Access: ReadOnly}
		wo := &Register{Name: "WO", Width: 32, Access: WriteOnly}

		_, err := NewReader(ro, backend)
		Expect(err).To(BeNil())

		_, err = NewWriter(wo, backend)
		Expect(err).To(BeNil())
	})

	It("should re-read the hardware on every Read", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000)).Times(2)

		r, _ := NewReader(cfg, backend)

		Expect(r.Read()).To(Equal(Value(0x8000)))
		Expect(r.Read()).To(Equal(Value(0x8000)))
	})

	It("should mask reads to the register width", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0xFFFFFFFF00008000))

		r, _ := NewReader(cfg, backend)

		Expect(r.Read()).To(Equal(Value(0x8000)))
	})

	It("should write the exact bit pattern", func() {
		backend.EXPECT().Write64("CFG", uint64(0xC000))

		w, _ := NewWriter(cfg, backend)

		w.Write(0xC000)
	})

	It("should read and decode one field", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))

		r, _ := NewReader(cfg, backend)

		Expect(r.ReadField(mode).Is("VIPT")).To(BeTrue())
	})

	It("should modify by read-modify-write", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))
		backend.EXPECT().Write64("CFG", uint64(0xC000))

		rw, _ := NewReadWriter(cfg, backend)

		v, err := rw.Modify(AssignName(mode, "PIPT"))

		Expect(err).To(BeNil())
		Expect(v).To(Equal(Value(0xC000)))
	})

	It("should keep untouched bits across Modify", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x0001800A))
		backend.EXPECT().Write64("CFG", uint64(0x0001C00A))

		rw, _ := NewReadWriter(cfg, backend)

		_, err := rw.Modify(AssignName(mode, "PIPT"))

		Expect(err).To(BeNil())
	})

	It("should apply overlapping assignments in order, later wins", func() {
		low := Field{Name: "Low", Offset: 0, Width: 4}
		high := Field{Name: "High", Offset: 2, Width: 4}

		backend.EXPECT().Read64("CFG").Return(uint64(0)).Times(2)
		backend.EXPECT().Write64("CFG", uint64(0x3C))
		backend.EXPECT().Write64("CFG", uint64(0x2F))

		rw, _ := NewReadWriter(cfg, backend)

		v, err := rw.Modify(Assign(low, 0xF), Assign(high, 0xF))
		Expect(err).To(BeNil())
		Expect(v).To(Equal(Value(0x3C)))

		v, err = rw.Modify(Assign(high, 0xF), Assign(low, 0xF))
		Expect(err).To(BeNil())
		Expect(v).To(Equal(Value(0x2F)))
	})

	It("should fail Modify before writing when a value does not fit", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))

		rw, _ := NewReadWriter(cfg, backend)

		_, err := rw.Modify(Assign(count, 1<<4))

		Expect(err).To(MatchError(ErrOutOfRange))
	})

	It("should report MatchesAll over a single read", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))

		r, _ := NewReader(cfg, backend)

		Expect(r.MatchesAll(ExpectField(mode, "VIPT"))).To(BeTrue())
	})

	It("should not match a different encoding", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))

		r, _ := NewReader(cfg, backend)

		Expect(r.MatchesAll(ExpectField(mode, "PIPT"))).To(BeFalse())
	})

	It("should return false, not fail, on reserved encodings", func() {
		enum := Field{Name: "E", Offset: 0, Width: 2,
			Values: []EnumValue{{"A", 0}, {"B", 1}}}
		cfg.Fields = append(cfg.Fields, enum)

		backend.EXPECT().Read64("CFG").Return(uint64(0b10))

		r, _ := NewReader(cfg, backend)

		Expect(r.MatchesAll(ExpectField(enum, "A"))).To(BeFalse())
	})

	It("should panic when assigning an unknown encoding name", func() {
		Expect(func() { AssignName(mode, "Nope") }).To(Panic())
	})

	It("should panic without a backend", func() {
		Expect(func() { _, _ = NewReader(cfg, nil) }).To(Panic())
	})

	It("should invoke hooks on reads and writes", func() {
		backend.EXPECT().Read64("CFG").Return(uint64(0x8000))
		backend.EXPECT().Write64("CFG", uint64(0xC000))

		rw, _ := NewReadWriter(cfg, backend)

		hook := &countingHook{}
		rw.AcceptHook(hook)

		_, err := rw.Modify(AssignName(mode, "PIPT"))

		Expect(err).To(BeNil())
		Expect(hook.reads).To(Equal(1))
		Expect(hook.writes).To(Equal(1))
		Expect(hook.lastValue).To(Equal(Value(0xC000)))
	})
})
