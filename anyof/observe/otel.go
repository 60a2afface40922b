package observe

import (
	"context"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samee/any-of/anyof/core"
)

// TypeKey is the attribute carrying the concrete type of the value involved
// in an event. Cast misses carry the held type under it and the requested
// type under WantTypeKey.
const (
	TypeKey     = attribute.Key("anyof.type")
	WantTypeKey = attribute.Key("anyof.want_type")
)

// Metrics records container lifecycle events as OpenTelemetry counters.
type Metrics struct {
	binds      metric.Int64Counter
	clones     metric.Int64Counter
	moves      metric.Int64Counter
	resets     metric.Int64Counter
	castMisses metric.Int64Counter
}

// NewMetrics creates the counters on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	counters := []struct {
		dst         *metric.Int64Counter
		name        string
		description string
	}{
		{&m.binds, "anyof.binds", "values stored in containers"},
		{&m.clones, "anyof.clones", "values deep-copied between containers"},
		{&m.moves, "anyof.moves", "values transferred between containers"},
		{&m.resets, "anyof.resets", "values released by reset"},
		{&m.castMisses, "anyof.cast_misses", "casts that did not match the held type"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return nil, fmt.Errorf("create %s counter: %w", c.name, err)
		}
	}
	return &m, nil
}

// Hooks returns hooks that record into these metrics. Hooks carry no
// context, so measurements are recorded against context.Background.
func (m *Metrics) Hooks() core.Hooks {
	add := func(counter metric.Int64Counter) func(reflect.Type) {
		return func(t reflect.Type) {
			counter.Add(context.Background(), 1, metric.WithAttributes(TypeKey.String(t.String())))
		}
	}
	return core.Hooks{
		OnBind:  add(m.binds),
		OnClone: add(m.clones),
		OnMove:  add(m.moves),
		OnReset: add(m.resets),
		OnCastMiss: func(want, have reflect.Type) {
			m.castMisses.Add(context.Background(), 1, metric.WithAttributes(
				TypeKey.String(have.String()),
				WantTypeKey.String(want.String()),
			))
		},
	}
}
