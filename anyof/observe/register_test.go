package observe

import (
	"reflect"
	"sync"
	"testing"

	"github.com/samee/any-of/anyof/core"
	"github.com/samee/any-of/internal/greeter"
)

func TestCounter(t *testing.T) {
	counter := NewCounter()
	g := core.New[greeter.Greeter](greeter.HelloGreeter{Val: 1}, core.WithHooks(counter.Hooks()))

	g2 := g.Clone()
	g3 := g2.Move()
	_ = core.Cast[greeter.ListGreeter](g3)
	g3.Reset()
	g.CopyFrom(g)
	g.CopyFrom(g2)

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"binds", counter.Binds(), 1},
		{"clones", counter.Clones(), 1},
		{"moves", counter.Moves(), 1},
		{"resets", counter.Resets(), 2},
		{"cast misses", counter.CastMisses(), 1},
		{"total", counter.Total(), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestCounter_SharedAcrossGoroutines(t *testing.T) {
	counter := NewCounter()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := core.New[greeter.Greeter](greeter.HelloGreeter{Val: i}, core.WithHooks(counter.Hooks()))
			g.Clone()
		}(i)
	}
	wg.Wait()

	if counter.Binds() != workers || counter.Clones() != workers {
		t.Errorf("binds=%d clones=%d, want %d each", counter.Binds(), counter.Clones(), workers)
	}
}

func TestSingleEventHooks(t *testing.T) {
	var seen []string
	note := func(name string) func(reflect.Type) {
		return func(reflect.Type) { seen = append(seen, name) }
	}

	g := core.New[greeter.Greeter](greeter.HelloGreeter{Val: 1},
		core.WithHooks(OnBind(note("bind"))),
		core.WithHooks(OnClone(note("clone"))),
		core.WithHooks(OnMove(note("move"))),
		core.WithHooks(OnReset(note("reset"))),
		core.WithHooks(OnCastMiss(func(_, _ reflect.Type) { seen = append(seen, "miss") })),
	)
	g.Clone()
	_ = core.Cast[greeter.LoudGreeter](g)
	g.Move().Reset()

	want := []string{"bind", "clone", "miss", "move", "reset"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("events = %v, want %v", seen, want)
	}
}
