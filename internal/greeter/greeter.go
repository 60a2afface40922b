// Package greeter provides a small Greeter interface and a few concrete
// implementations used by the examples, the demo command and the tests.
package greeter

import (
	"strconv"
	"strings"
)

// Greeter is the base capability set stored in the containers.
type Greeter interface {
	ShowMsg() string
}

// HelloGreeter greets with a numeric payload.
type HelloGreeter struct {
	Val int
}

// ShowMsg returns "hello <Val>".
func (g HelloGreeter) ShowMsg() string { return "hello " + strconv.Itoa(g.Val) }

// SetX replaces the payload.
func (g *HelloGreeter) SetX(x int) { g.Val = x }

// LoudGreeter embeds HelloGreeter, so it satisfies Greeter through promotion
// but is a distinct concrete type.
type LoudGreeter struct {
	HelloGreeter
}

// ShowMsg returns the HelloGreeter message in upper case.
func (g LoudGreeter) ShowMsg() string { return strings.ToUpper(g.HelloGreeter.ShowMsg()) }

// ListGreeter greets a list of names. It owns a slice, so it implements
// Clone to give copies their own backing array.
type ListGreeter struct {
	Names []string
}

// ShowMsg returns "hello a, b, c".
func (g ListGreeter) ShowMsg() string { return "hello " + strings.Join(g.Names, ", ") }

// Add appends a name.
func (g *ListGreeter) Add(name string) { g.Names = append(g.Names, name) }

// Clone returns a deep copy.
func (g ListGreeter) Clone() ListGreeter {
	names := make([]string, len(g.Names))
	copy(names, g.Names)
	return ListGreeter{Names: names}
}

// FuncGreeter adapts a function to Greeter. It is a non-struct concrete type.
type FuncGreeter func() string

// ShowMsg calls the function.
func (f FuncGreeter) ShowMsg() string { return f() }
