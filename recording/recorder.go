// Package recording captures physical register accesses as trace entries.
// A Recorder attaches to register accessors as a hook, so the access path
// stays oblivious to tracing.
package recording

import (
	"github.com/rs/xid"

	"github.com/Carbrevo/aarch64-cpu/reg"
)

// An AccessTrace records one physical register access.
type AccessTrace struct {
	ID       string
	Seq      int
	Register string
	Kind     string
	Value    uint64
}

// Access kinds.
const (
	KindRead  = "read"
	KindWrite = "write"
)

// A TraceWriter stores access traces.
type TraceWriter interface {
	Write(t AccessTrace)
	Flush()
}

// A Recorder forwards every physical register access to a TraceWriter.
type Recorder struct {
	writer TraceWriter
	seq    int
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w TraceWriter) *Recorder {
	return &Recorder{writer: w}
}

// Attach registers the recorder with the given accessors.
func (r *Recorder) Attach(domains ...reg.Hookable) {
	for _, d := range domains {
		d.AcceptHook(r)
	}
}

// Func implements reg.Hook.
func (r *Recorder) Func(ctx reg.HookCtx) {
	var kind string

	switch ctx.Pos {
	case reg.HookPosRead:
		kind = KindRead
	case reg.HookPosWrite:
		kind = KindWrite
	default:
		return
	}

	r.seq++
	r.writer.Write(AccessTrace{
		ID:       xid.New().String(),
		Seq:      r.seq,
		Register: ctx.Register,
		Kind:     kind,
		Value:    uint64(ctx.Value),
	})
}
