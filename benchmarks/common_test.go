// Package benchmarks measures AnyOf container operations and compares ways
// of cloning a fleet of containers with popular Go collection libraries.
package benchmarks

import (
	"strconv"

	"github.com/samee/any-of/anyof"
	"github.com/samee/any-of/internal/greeter"
)

// Fleet sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

type container = anyof.AnyOf[greeter.Greeter]

// generateFleet fills n containers, cycling through the concrete greeter
// types so casts and clones see a mix.
func generateFleet(n int) []*container {
	fleet := make([]*container, n)
	for i := range fleet {
		switch i % 3 {
		case 0:
			fleet[i] = anyof.New[greeter.Greeter](greeter.HelloGreeter{Val: i})
		case 1:
			fleet[i] = anyof.New[greeter.Greeter](greeter.LoudGreeter{HelloGreeter: greeter.HelloGreeter{Val: i}})
		default:
			fleet[i] = anyof.New[greeter.Greeter](greeter.ListGreeter{Names: []string{"n" + strconv.Itoa(i), "m"}})
		}
	}
	return fleet
}

// cloneOf is the transformation shared by the fleet benchmarks.
func cloneOf(c *container) *container {
	return c.Clone()
}

// holdsLoud is the predicate shared by the fleet filter benchmarks.
func holdsLoud(c *container) bool {
	return anyof.Holds[greeter.LoudGreeter](c)
}
