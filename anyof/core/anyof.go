// Package core implements AnyOf, an owning container for exactly one value
// of any concrete type that implements a fixed interface Base.
//
// Unlike a plain interface value, a container owns its contents: copies are
// deep (Clone, CopyFrom), transfers empty the source (Move, MoveFrom), and
// the concrete type can be recovered with an exact-type Cast.
//
// A container is a value owned by one goroutine at a time. It has no
// internal locking; concurrent reads are as safe as the stored value's own
// read methods, and concurrent mutation needs external synchronization.
package core

import (
	"fmt"
	"reflect"
)

// noCopy makes go vet's copylocks check report by-value copies of AnyOf.
// A by-value copy would alias the holder; use Clone or Move instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AnyOf holds zero or one value whose concrete type implements Base.
// The zero value is an empty container ready to use.
type AnyOf[Base any] struct {
	_     noCopy
	h     holder[Base]
	hooks *hookInvoker
}

// New returns a container holding v. It panics with a *TypeError if Base is
// not an interface type, D does not implement Base, or D is a pointer, map,
// slice or channel type without a Clone method; use TryNew when D is not
// known to qualify.
//
// When *D implements Base, Base-typed access goes through a pointer to the
// owned value, so pointer-receiver methods work and mutations stick.
func New[Base, D any](v D, opts ...Option) *AnyOf[Base] {
	c, err := TryNew[Base](v, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// TryNew is like New but returns a *TypeError instead of panicking.
func TryNew[Base, D any](v D, opts ...Option) (*AnyOf[Base], error) {
	h, err := newHolder[Base](v)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	c := &AnyOf[Base]{h: h, hooks: o.hooks}
	c.hooks.invokeBind(h.typ())
	return c, nil
}

// Set replaces the contents of c with v, keeping c's hooks. It panics with
// a *TypeError if D does not implement Base, leaving c unchanged.
func Set[Base, D any](c *AnyOf[Base], v D) {
	h, err := newHolder[Base](v)
	if err != nil {
		panic(err)
	}
	c.release()
	c.h = h
	c.hooks.invokeBind(h.typ())
}

// Observe attaches hooks to c, after any hooks it already has. Containers
// previously cloned or moved from c keep the hooks they had.
func (c *AnyOf[Base]) Observe(hooks Hooks) {
	c.hooks = c.hooks.with(hooks)
}

// Clone returns a new container owning an independent copy of c's value.
// The copy has the same concrete type and inherits c's hooks. Cloning an
// empty (or nil) container returns an empty container.
func (c *AnyOf[Base]) Clone() *AnyOf[Base] {
	if c == nil {
		return &AnyOf[Base]{}
	}
	out := &AnyOf[Base]{hooks: c.hooks}
	if c.h != nil {
		out.h = c.h.clone()
		c.hooks.invokeClone(out.h.typ())
	}
	return out
}

// TryClone is like Clone but recovers a panic raised by the value's Clone
// method and returns it as an ErrPanic.
func (c *AnyOf[Base]) TryClone() (out *AnyOf[Base], err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, NewPanicError(r)
		}
	}()
	return c.Clone(), nil
}

// CopyFrom replaces c's contents with an independent copy of src's value,
// or empties c if src is empty or nil. The copy is made before the old
// value is released, so a panicking Clone method leaves c in its prior
// state. c.CopyFrom(c) is a no-op. c keeps its own hooks.
func (c *AnyOf[Base]) CopyFrom(src *AnyOf[Base]) {
	if src == c {
		return
	}
	if src == nil || src.h == nil {
		c.release()
		return
	}
	h := src.h.clone()
	c.release()
	c.h = h
	c.hooks.invokeClone(h.typ())
}

// Move returns a new container that takes over c's value without copying
// it. c is empty afterwards. The new container inherits c's hooks.
func (c *AnyOf[Base]) Move() *AnyOf[Base] {
	if c == nil {
		return &AnyOf[Base]{}
	}
	out := &AnyOf[Base]{h: c.h, hooks: c.hooks}
	c.h = nil
	if out.h != nil {
		c.hooks.invokeMove(out.h.typ())
	}
	return out
}

// MoveFrom releases c's value and takes over src's value without copying
// it; src is empty afterwards. Moving from an empty or nil source empties c.
// c.MoveFrom(c) is a no-op. c keeps its own hooks.
func (c *AnyOf[Base]) MoveFrom(src *AnyOf[Base]) {
	if src == c {
		return
	}
	if src == nil {
		c.release()
		return
	}
	h := src.h
	src.h = nil
	c.release()
	c.h = h
	if h != nil {
		c.hooks.invokeMove(h.typ())
	}
}

// Reset releases c's value. c is empty afterwards. Reset is idempotent.
func (c *AnyOf[Base]) Reset() {
	c.release()
}

// release drops the held value, if any, and fires OnReset for it. Every
// path that discards a value goes through here.
func (c *AnyOf[Base]) release() {
	if c.h == nil {
		return
	}
	t := c.h.typ()
	c.h = nil
	c.hooks.invokeReset(t)
}

// HasValue reports whether c holds a value. A nil container holds none.
func (c *AnyOf[Base]) HasValue() bool {
	return c != nil && c.h != nil
}

// Type returns the concrete type of the held value, or NoType if c is empty.
func (c *AnyOf[Base]) Type() reflect.Type {
	if !c.HasValue() {
		return NoType
	}
	return c.h.typ()
}

// Get returns the held value as Base. It panics with ErrEmpty if c is
// empty; use GetOk or HasValue to check first.
func (c *AnyOf[Base]) Get() Base {
	if !c.HasValue() {
		panic(ErrEmpty)
	}
	return c.h.get()
}

// GetOk returns the held value as Base and true, or the zero Base and false
// if c is empty.
func (c *AnyOf[Base]) GetOk() (Base, bool) {
	if !c.HasValue() {
		var zero Base
		return zero, false
	}
	return c.h.get(), true
}

// String describes the container and the concrete type it holds.
func (c *AnyOf[Base]) String() string {
	base := reflect.TypeFor[Base]()
	if !c.HasValue() {
		return fmt.Sprintf("AnyOf[%s](empty)", base)
	}
	return fmt.Sprintf("AnyOf[%s](%s)", base, c.h.typ())
}
