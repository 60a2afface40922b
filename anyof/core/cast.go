package core

// Cast returns a pointer to the value in c if c holds exactly a D, and nil
// otherwise, including when c is nil or empty. A type that merely embeds D,
// or that D embeds, does not match. The pointer refers to the owned value:
// writes through it change c, and it is invalidated by Set, CopyFrom,
// MoveFrom and Reset.
func Cast[D, Base any](c *AnyOf[Base]) *D {
	if !c.HasValue() {
		return nil
	}
	h, ok := c.h.(*holderFor[Base, D])
	if !ok {
		c.hooks.invokeCastMiss(TypeOf[D](), c.h.typ())
		return nil
	}
	return &h.value
}

// CastValue returns a copy of the value in c and true if c holds exactly a
// D, or the zero D and false otherwise. It is the read-only form of Cast:
// nothing done with the result can change c.
func CastValue[D, Base any](c *AnyOf[Base]) (D, bool) {
	p := Cast[D](c)
	if p == nil {
		var zero D
		return zero, false
	}
	return copyValue(p), true
}

// MustCast is like Cast but panics with a *CastError on mismatch.
func MustCast[D, Base any](c *AnyOf[Base]) *D {
	if p := Cast[D](c); p != nil {
		return p
	}
	panic(&CastError{Want: TypeOf[D](), Have: c.Type()})
}

// Holds reports whether c holds exactly a D. Unlike Cast it never fires
// OnCastMiss hooks.
func Holds[D, Base any](c *AnyOf[Base]) bool {
	if !c.HasValue() {
		return false
	}
	_, ok := c.h.(*holderFor[Base, D])
	return ok
}
