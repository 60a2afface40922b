package core

import (
	"reflect"
)

// Event names a container lifecycle occurrence.
type Event string

// Container lifecycle events
const (
	ValueBound  Event = "value:bound"
	ValueCloned Event = "value:cloned"
	ValueMoved  Event = "value:moved"
	ValueReset  Event = "value:reset"
	CastMissed  Event = "cast:missed"
)

// Hooks holds observation callbacks for a container.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously by the operation that triggers them,
// so they should be fast.
type Hooks struct {
	OnBind     func(reflect.Type)            // A value was stored (New, Set)
	OnClone    func(reflect.Type)            // A value was deep-copied (Clone, CopyFrom)
	OnMove     func(reflect.Type)            // A value changed owner (Move, MoveFrom)
	OnReset    func(reflect.Type)            // A held value was released (Reset, or replaced by Set, CopyFrom, MoveFrom)
	OnCastMiss func(want, have reflect.Type) // Cast on a non-empty container did not match
}

// hookInvoker holds the hook sets of a container for FIFO invocation.
// It is never mutated after construction; adding hooks builds a new invoker,
// so containers that inherited the old one are unaffected.
type hookInvoker struct {
	hookSets    []*Hooks
	hasBind     bool
	hasClone    bool
	hasMove     bool
	hasReset    bool
	hasCastMiss bool
}

// with returns a new invoker that runs h after the hooks already in i.
// A nil receiver is an invoker without hooks.
func (i *hookInvoker) with(h Hooks) *hookInvoker {
	next := &hookInvoker{}
	if i != nil {
		next.hookSets = make([]*Hooks, len(i.hookSets), len(i.hookSets)+1)
		copy(next.hookSets, i.hookSets)
	}
	next.hookSets = append(next.hookSets, &h)

	// Check which hook types exist
	for _, hooks := range next.hookSets {
		if hooks.OnBind != nil {
			next.hasBind = true
		}
		if hooks.OnClone != nil {
			next.hasClone = true
		}
		if hooks.OnMove != nil {
			next.hasMove = true
		}
		if hooks.OnReset != nil {
			next.hasReset = true
		}
		if hooks.OnCastMiss != nil {
			next.hasCastMiss = true
		}
	}
	return next
}

// invokeBind calls all OnBind hooks in FIFO order.
func (i *hookInvoker) invokeBind(t reflect.Type) {
	if i == nil || !i.hasBind {
		return
	}
	for _, hooks := range i.hookSets {
		if hooks.OnBind != nil {
			hooks.OnBind(t)
		}
	}
}

// invokeClone calls all OnClone hooks in FIFO order.
func (i *hookInvoker) invokeClone(t reflect.Type) {
	if i == nil || !i.hasClone {
		return
	}
	for _, hooks := range i.hookSets {
		if hooks.OnClone != nil {
			hooks.OnClone(t)
		}
	}
}

// invokeMove calls all OnMove hooks in FIFO order.
func (i *hookInvoker) invokeMove(t reflect.Type) {
	if i == nil || !i.hasMove {
		return
	}
	for _, hooks := range i.hookSets {
		if hooks.OnMove != nil {
			hooks.OnMove(t)
		}
	}
}

// invokeReset calls all OnReset hooks in FIFO order.
func (i *hookInvoker) invokeReset(t reflect.Type) {
	if i == nil || !i.hasReset {
		return
	}
	for _, hooks := range i.hookSets {
		if hooks.OnReset != nil {
			hooks.OnReset(t)
		}
	}
}

// invokeCastMiss calls all OnCastMiss hooks in FIFO order.
func (i *hookInvoker) invokeCastMiss(want, have reflect.Type) {
	if i == nil || !i.hasCastMiss {
		return
	}
	for _, hooks := range i.hookSets {
		if hooks.OnCastMiss != nil {
			hooks.OnCastMiss(want, have)
		}
	}
}

// SafeHooks wraps Hooks to recover from panics in hook functions.
// Use this when hooks are user-provided and a panicking observer must not
// interrupt the container operation that triggered it.
type SafeHooks struct {
	Hooks
	panicHandler func(Event, any) // Called when a hook panics
}

// NewSafeHooks creates SafeHooks from regular Hooks.
// If panicHandler is nil, panics are silently recovered.
func NewSafeHooks(hooks Hooks, panicHandler func(Event, any)) SafeHooks {
	if panicHandler == nil {
		panicHandler = func(Event, any) {} // Silent recovery
	}

	safe := SafeHooks{
		panicHandler: panicHandler,
	}
	guard := func(ev Event) {
		if r := recover(); r != nil {
			safe.panicHandler(ev, r)
		}
	}

	if hooks.OnBind != nil {
		original := hooks.OnBind
		safe.OnBind = func(t reflect.Type) {
			defer guard(ValueBound)
			original(t)
		}
	}

	if hooks.OnClone != nil {
		original := hooks.OnClone
		safe.OnClone = func(t reflect.Type) {
			defer guard(ValueCloned)
			original(t)
		}
	}

	if hooks.OnMove != nil {
		original := hooks.OnMove
		safe.OnMove = func(t reflect.Type) {
			defer guard(ValueMoved)
			original(t)
		}
	}

	if hooks.OnReset != nil {
		original := hooks.OnReset
		safe.OnReset = func(t reflect.Type) {
			defer guard(ValueReset)
			original(t)
		}
	}

	if hooks.OnCastMiss != nil {
		original := hooks.OnCastMiss
		safe.OnCastMiss = func(want, have reflect.Type) {
			defer guard(CastMissed)
			original(want, have)
		}
	}

	return safe
}
