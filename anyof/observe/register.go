// Package observe provides ready-made Hooks for AnyOf containers: atomic
// counters, OpenTelemetry metrics and logrus logging.
//
// Usage pattern:
//
//	counter := observe.NewCounter()
//	g := anyof.New[Greeter](v, anyof.WithHooks(counter.Hooks()))
//	g.Clone()
//	counter.Clones() // 1
package observe

import (
	"reflect"
	"sync/atomic"

	"github.com/samee/any-of/anyof/core"
)

// Counter provides thread-safe counting of container lifecycle events.
// One Counter may be shared by the hooks of many containers.
type Counter struct {
	binds      atomic.Int64
	clones     atomic.Int64
	moves      atomic.Int64
	resets     atomic.Int64
	castMisses atomic.Int64
}

// NewCounter returns a zeroed Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Binds returns the number of values stored by New or Set.
func (c *Counter) Binds() int64 { return c.binds.Load() }

// Clones returns the number of values deep-copied.
func (c *Counter) Clones() int64 { return c.clones.Load() }

// Moves returns the number of values transferred between containers.
func (c *Counter) Moves() int64 { return c.moves.Load() }

// Resets returns the number of values released by Reset.
func (c *Counter) Resets() int64 { return c.resets.Load() }

// CastMisses returns the number of casts that did not match.
func (c *Counter) CastMisses() int64 { return c.castMisses.Load() }

// Total returns the number of all counted events.
func (c *Counter) Total() int64 {
	return c.Binds() + c.Clones() + c.Moves() + c.Resets() + c.CastMisses()
}

// Hooks returns hooks that feed this counter.
func (c *Counter) Hooks() core.Hooks {
	return core.Hooks{
		OnBind:     func(reflect.Type) { c.binds.Add(1) },
		OnClone:    func(reflect.Type) { c.clones.Add(1) },
		OnMove:     func(reflect.Type) { c.moves.Add(1) },
		OnReset:    func(reflect.Type) { c.resets.Add(1) },
		OnCastMiss: func(_, _ reflect.Type) { c.castMisses.Add(1) },
	}
}

// OnBind returns hooks that only observe stored values.
func OnBind(callback func(reflect.Type)) core.Hooks {
	return core.Hooks{OnBind: callback}
}

// OnClone returns hooks that only observe deep copies.
func OnClone(callback func(reflect.Type)) core.Hooks {
	return core.Hooks{OnClone: callback}
}

// OnMove returns hooks that only observe transfers.
func OnMove(callback func(reflect.Type)) core.Hooks {
	return core.Hooks{OnMove: callback}
}

// OnReset returns hooks that only observe resets.
func OnReset(callback func(reflect.Type)) core.Hooks {
	return core.Hooks{OnReset: callback}
}

// OnCastMiss returns hooks that only observe failed casts.
func OnCastMiss(callback func(want, have reflect.Type)) core.Hooks {
	return core.Hooks{OnCastMiss: callback}
}
