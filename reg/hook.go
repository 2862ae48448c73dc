package reg

// HookPos marks a position in a register access where hooks are invoked.
type HookPos struct {
	Name string
}

// HookPosRead triggers after a physical register read.
var HookPosRead = &HookPos{Name: "Read"}

// HookPosWrite triggers after a physical register write.
var HookPosWrite = &HookPos{Name: "Write"}

// HookCtx holds the information about the access that triggered a hook.
type HookCtx struct {
	Domain   Hookable
	Pos      *HookPos
	Register string
	Value    Value
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)
}

// A Hook is a short piece of program that a hookable object invokes on
// every physical register access. Tracers and recorders attach as hooks so
// that the access path does not know about them.
type Hook interface {
	// Func determines what to do when the hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides the utility functions for types that implement
// the Hookable interface.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// InvokeHook triggers the registered hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
