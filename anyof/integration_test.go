package anyof_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/samee/any-of/anyof"
	"github.com/samee/any-of/internal/greeter"
)

// showGreeting copies g without knowing its concrete type.
func showGreeting(g *anyof.AnyOf[greeter.Greeter]) string {
	g2 := g.Clone()
	return g2.Get().ShowMsg()
}

// Integration: the full bind, copy, mutate, move sequence through the facade.
func TestIntegrationGreeterLifecycle(t *testing.T) {
	var g anyof.AnyOf[greeter.Greeter]
	anyof.Set(&g, greeter.HelloGreeter{Val: 5})

	if g.Type() != anyof.TypeOf[greeter.HelloGreeter]() {
		t.Fatalf("Type() = %v, want greeter.HelloGreeter", g.Type())
	}
	if anyof.Cast[greeter.HelloGreeter](&g) == nil {
		t.Fatal("Cast failed")
	}
	if _, ok := anyof.CastValue[greeter.HelloGreeter](&g); !ok {
		t.Fatal("read-only cast failed")
	}
	if got := showGreeting(&g); got != "hello 5" {
		t.Fatalf("showGreeting = %q, want %q", got, "hello 5")
	}

	g2 := g.Clone()
	anyof.Cast[greeter.HelloGreeter](g2).SetX(6)
	if got := g.Get().ShowMsg(); got != "hello 5" {
		t.Errorf("original = %q, want %q", got, "hello 5")
	}
	if got := g2.Get().ShowMsg(); got != "hello 6" {
		t.Errorf("copy = %q, want %q", got, "hello 6")
	}

	g2.MoveFrom(&g)
	if g.HasValue() {
		t.Error("source not empty after MoveFrom")
	}
	if got := g2.Get().ShowMsg(); got != "hello 5" {
		t.Errorf("moved = %q, want %q", got, "hello 5")
	}
}

// Integration: clones handed to separate goroutines share no mutable state.
func TestIntegrationClonesAcrossGoroutines(t *testing.T) {
	orig := anyof.New[greeter.Greeter](greeter.ListGreeter{Names: []string{"root"}})

	const workers = 8
	clones := make([]*anyof.AnyOf[greeter.Greeter], workers)
	for i := range clones {
		clones[i] = orig.Clone()
	}

	var wg sync.WaitGroup
	for i, c := range clones {
		wg.Add(1)
		go func(i int, c *anyof.AnyOf[greeter.Greeter]) {
			defer wg.Done()
			lg := anyof.Cast[greeter.ListGreeter](c)
			for j := 0; j <= i; j++ {
				lg.Add("w")
			}
		}(i, c)
	}
	wg.Wait()

	if got := orig.Get().ShowMsg(); got != "hello root" {
		t.Errorf("original = %q, want %q", got, "hello root")
	}
	for i, c := range clones {
		if n := len(anyof.Cast[greeter.ListGreeter](c).Names); n != i+2 {
			t.Errorf("clone %d has %d names, want %d", i, n, i+2)
		}
	}
}

func FuzzCloneIndependence(f *testing.F) {
	f.Add("ann,bob", "cy")
	f.Add("", "x")
	f.Add("a,a,a", "")

	f.Fuzz(func(t *testing.T, names, extra string) {
		var list []string
		if names != "" {
			list = strings.Split(names, ",")
		}
		orig := anyof.New[greeter.Greeter](greeter.ListGreeter{Names: list})
		want := orig.Get().ShowMsg()

		cp := orig.Clone()
		lg := anyof.Cast[greeter.ListGreeter](cp)
		lg.Add(extra)
		if len(lg.Names) > 0 {
			lg.Names[0] = extra + "!"
		}

		if got := orig.Get().ShowMsg(); got != want {
			t.Fatalf("original changed from %q to %q", want, got)
		}
	})
}
