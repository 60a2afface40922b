package core

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrEmpty is the panic value of Get on an empty container. MustCast on an
// empty container panics with a *CastError that matches ErrEmpty under
// errors.Is.
// Base has no canonical empty value, so empty access never returns a zero Base.
var ErrEmpty = errors.New("anyof: access to empty container")

// TypeError reports a type that cannot be stored in an AnyOf[Base]: Base is
// not an interface type, the stored type is itself an interface (its dynamic
// type would be hidden from Type and Cast), neither the type nor a pointer
// to it implements Base, or the type is a reference (pointer, map, slice,
// channel) without a Clone method, so copies would share state.
type TypeError struct {
	Base     reflect.Type
	Concrete reflect.Type
}

func (e *TypeError) Error() string {
	if e.Base.Kind() != reflect.Interface {
		return fmt.Sprintf("anyof: base %s is not an interface type", e.Base)
	}
	if e.Concrete.Kind() == reflect.Interface {
		return fmt.Sprintf("anyof: %s is an interface type, store a concrete value", e.Concrete)
	}
	if sharesState(e.Concrete) && (e.Concrete.Implements(e.Base) || reflect.PointerTo(e.Concrete).Implements(e.Base)) {
		return fmt.Sprintf("anyof: %s would share state between copies, store the value or implement Clone() %s",
			e.Concrete, e.Concrete)
	}
	return fmt.Sprintf("anyof: %s does not implement %s", e.Concrete, e.Base)
}

// CastError reports a failed MustCast. Have is NoType when the container
// was empty.
type CastError struct {
	Want reflect.Type
	Have reflect.Type
}

func (e *CastError) Error() string {
	if e.Have == NoType {
		return fmt.Sprintf("anyof: cannot cast empty container to %s", e.Want)
	}
	return fmt.Sprintf("anyof: container holds %s, not %s", e.Have, e.Want)
}

// Is reports an empty-container cast as ErrEmpty.
func (e *CastError) Is(target error) bool {
	return target == ErrEmpty && e.Have == NoType
}

// ErrPanic wraps a value recovered from a panicking Clone method.
// It includes a cleaned-up stack trace that excludes internal anyof frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error.
func (e ErrPanic) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// NewPanicError creates an ErrPanic from a recovered value with a cleaned stack trace.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

// captureStack returns the current stack trace as a string.
func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return sb.String()
}

// internalFramePrefix marks the frames cleanStack drops.
const internalFramePrefix = "github.com/samee/any-of/anyof/core."

// cleanStack removes internal anyof/core frames and runtime panic plumbing
// from a stack trace, keeping the user's Clone method and its callers.
func cleanStack(stack string) string {
	lines := strings.Split(stack, "\n")
	var result []string
	var skipNext bool

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !strings.HasPrefix(line, "\t") {
			if strings.HasPrefix(line, internalFramePrefix) || strings.HasPrefix(line, "runtime.") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
