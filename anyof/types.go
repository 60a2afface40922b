// Package anyof provides AnyOf, a container that owns exactly one value of
// any concrete type implementing a fixed interface Base.
//
// It behaves like a plain interface value with ownership: the interface
// methods are available without a cast, copies are deep, moves leave the
// source empty, and the original concrete type can be recovered with an
// exact-type Cast.
//
//	g := anyof.New[Greeter](HelloGreeter{Val: 5})
//	g.Get().ShowMsg()               // "hello 5"
//	g2 := g.Clone()                 // independent copy
//	anyof.Cast[HelloGreeter](g2)    // *HelloGreeter, or nil on mismatch
//	g3 := g.Move()                  // g is now empty
//
// This package is the primary user-facing API. The anyof/core subpackage
// holds the implementation.
package anyof

import (
	"reflect"

	"github.com/samee/any-of/anyof/core"
)

// Type aliases for the core abstractions.
type (
	// AnyOf holds zero or one value whose concrete type implements Base.
	AnyOf[Base any] = core.AnyOf[Base]

	// Cloner lets a concrete type provide its own deep copy.
	Cloner[T any] = core.Cloner[T]

	// Hooks holds lifecycle observation callbacks.
	Hooks = core.Hooks

	// SafeHooks is a Hooks set that recovers panicking callbacks.
	SafeHooks = core.SafeHooks

	// Option configures a container at construction.
	Option = core.Option

	// Event names a container lifecycle occurrence.
	Event = core.Event

	// TypeError reports a type that cannot be stored behind Base.
	TypeError = core.TypeError

	// CastError reports a failed MustCast.
	CastError = core.CastError

	// ErrPanic wraps a panic recovered from a Clone method.
	ErrPanic = core.ErrPanic
)

// Lifecycle events.
const (
	ValueBound  = core.ValueBound
	ValueCloned = core.ValueCloned
	ValueMoved  = core.ValueMoved
	ValueReset  = core.ValueReset
	CastMissed  = core.CastMissed
)

// ErrEmpty is the panic value of Get on an empty container. A *CastError
// from MustCast on an empty container matches it under errors.Is.
var ErrEmpty = core.ErrEmpty

// NoType is the type identity of an empty container.
var NoType = core.NoType

// Constructors - wrappers around core functions.

// New returns a container holding v. It panics with a *TypeError if D cannot
// be stored behind Base.
func New[Base, D any](v D, opts ...Option) *AnyOf[Base] {
	return core.New[Base](v, opts...)
}

// TryNew is like New but returns a *TypeError instead of panicking.
func TryNew[Base, D any](v D, opts ...Option) (*AnyOf[Base], error) {
	return core.TryNew[Base](v, opts...)
}

// Set replaces the contents of c with v.
func Set[Base, D any](c *AnyOf[Base], v D) {
	core.Set(c, v)
}

// WithHooks attaches hooks to a container at construction.
func WithHooks(hooks Hooks) Option {
	return core.WithHooks(hooks)
}

// Checked downcasts.

// Cast returns a pointer to the value in c if it is exactly a D, or nil.
func Cast[D, Base any](c *AnyOf[Base]) *D {
	return core.Cast[D](c)
}

// CastValue returns a copy of the value in c if it is exactly a D.
func CastValue[D, Base any](c *AnyOf[Base]) (D, bool) {
	return core.CastValue[D](c)
}

// MustCast is like Cast but panics with a *CastError on mismatch.
func MustCast[D, Base any](c *AnyOf[Base]) *D {
	return core.MustCast[D](c)
}

// Holds reports whether c holds exactly a D.
func Holds[D, Base any](c *AnyOf[Base]) bool {
	return core.Holds[D](c)
}

// TypeOf returns the type identity of D.
func TypeOf[D any]() reflect.Type {
	return core.TypeOf[D]()
}

// NewSafeHooks wraps hooks so that a panicking callback is recovered and
// reported to panicHandler.
func NewSafeHooks(hooks Hooks, panicHandler func(Event, any)) SafeHooks {
	return core.NewSafeHooks(hooks, panicHandler)
}
