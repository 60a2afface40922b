package core

import (
	"reflect"
)

// Cloner allows concrete types to provide deep copy logic.
//
// Containers copy a stored value by plain assignment unless the value (or a
// pointer to it) implements Cloner. Pointer, map, slice and channel types
// must implement Cloner to be stored at all. Types holding slices, maps or pointers
// should implement it so that a cloned container shares no mutable state
// with its source:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// none is the type identity reported by empty containers.
type none struct{}

// NoType is the type identity of an empty container.
var NoType = reflect.TypeFor[none]()

// TypeOf returns the type identity of D, for comparison with AnyOf.Type.
func TypeOf[D any]() reflect.Type {
	return reflect.TypeFor[D]()
}

// holder owns exactly one value. The container only knows Base; the holder
// knows the concrete type and how to copy it.
type holder[Base any] interface {
	get() Base
	clone() holder[Base]
	typ() reflect.Type
}

// holderFor is the only holder implementation. The concrete type it wraps is
// fixed when it is created; only the wrapped value's state may change.
type holderFor[Base, D any] struct {
	value D
	// byRef is set when *D implements Base, so Base-typed access reaches the
	// owned value instead of a copy.
	byRef bool
}

// newHolder wraps v after checking that D qualifies for AnyOf[Base].
func newHolder[Base, D any](v D) (*holderFor[Base, D], error) {
	byRef, err := qualify[Base, D]()
	if err != nil {
		return nil, err
	}
	return &holderFor[Base, D]{value: v, byRef: byRef}, nil
}

// qualify reports whether D can be held behind Base, and whether Base-typed
// access must go through *D. A D whose value is a reference (pointer, map,
// slice, channel) is accepted only if it implements Cloner[D], otherwise a
// clone would share the referenced state with its source.
func qualify[Base, D any]() (byRef bool, err error) {
	base := reflect.TypeFor[Base]()
	concrete := reflect.TypeFor[D]()
	if base.Kind() != reflect.Interface || concrete.Kind() == reflect.Interface {
		return false, &TypeError{Base: base, Concrete: concrete}
	}
	switch {
	case reflect.PointerTo(concrete).Implements(base):
		byRef = true
	case concrete.Implements(base):
	default:
		return false, &TypeError{Base: base, Concrete: concrete}
	}
	if sharesState(concrete) && !clones[D]() {
		return false, &TypeError{Base: base, Concrete: concrete}
	}
	return byRef, nil
}

// sharesState reports whether plain assignment of a t copies a reference
// rather than the data behind it.
func sharesState(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan:
		return true
	}
	return false
}

// clones reports whether D or *D implements Cloner[D].
func clones[D any]() bool {
	cloner := reflect.TypeFor[Cloner[D]]()
	concrete := reflect.TypeFor[D]()
	return concrete.Implements(cloner) || reflect.PointerTo(concrete).Implements(cloner)
}

func (h *holderFor[Base, D]) get() Base {
	if h.byRef {
		return any(&h.value).(Base)
	}
	return any(h.value).(Base)
}

func (h *holderFor[Base, D]) clone() holder[Base] {
	return &holderFor[Base, D]{value: copyValue(&h.value), byRef: h.byRef}
}

func (h *holderFor[Base, D]) typ() reflect.Type {
	return reflect.TypeFor[D]()
}

// copyValue returns an independent copy of *v, using Cloner when available.
func copyValue[D any](v *D) D {
	if c, ok := any(*v).(Cloner[D]); ok {
		return c.Clone()
	}
	if c, ok := any(v).(Cloner[D]); ok {
		return c.Clone()
	}
	return *v
}
