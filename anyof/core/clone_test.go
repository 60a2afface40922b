package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/samee/any-of/anyof/core"
	"github.com/samee/any-of/internal/greeter"
)

var errExploded = errors.New("exploded")

// exploding panics when copied.
type exploding struct{}

func (exploding) ShowMsg() string { return "boom" }

func (exploding) Clone() exploding { panic(errExploded) }

func TestTryClone_RecoversPanic(t *testing.T) {
	src := core.New[greeter.Greeter](exploding{})

	out, err := src.TryClone()
	if out != nil {
		t.Errorf("TryClone returned a container alongside an error")
	}
	var perr core.ErrPanic
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ErrPanic", err)
	}
	if !errors.Is(err, errExploded) {
		t.Errorf("err does not wrap the panic value: %v", err)
	}
	if !strings.Contains(perr.Stack, "core_test.exploding.Clone") {
		t.Errorf("stack is missing the panicking Clone method:\n%s", perr.Stack)
	}
	if strings.Contains(perr.Stack, "github.com/samee/any-of/anyof/core.") {
		t.Errorf("stack should not contain internal frames:\n%s", perr.Stack)
	}
	if !src.HasValue() {
		t.Error("source lost its value")
	}
}

func TestTryClone_Succeeds(t *testing.T) {
	src := core.New[greeter.Greeter](greeter.HelloGreeter{Val: 5})

	out, err := src.TryClone()
	if err != nil {
		t.Fatalf("TryClone: %v", err)
	}
	if got := out.Get().ShowMsg(); got != "hello 5" {
		t.Errorf("ShowMsg() = %q, want %q", got, "hello 5")
	}
}

func TestCopyFrom_PanickingCloneLeavesDestination(t *testing.T) {
	src := core.New[greeter.Greeter](exploding{})
	dst := core.New[greeter.Greeter](greeter.HelloGreeter{Val: 1})

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("CopyFrom did not propagate the Clone panic")
			}
		}()
		dst.CopyFrom(src)
	}()

	if got := dst.Get().ShowMsg(); got != "hello 1" {
		t.Errorf("destination changed to %q by a failed copy", got)
	}
}
