package observe

import (
	"reflect"

	log "github.com/sirupsen/logrus"

	"github.com/samee/any-of/anyof/core"
)

// Logger returns hooks that log every lifecycle event at debug level, and
// cast misses at info level, with "event" and "type" fields.
func Logger(logger log.FieldLogger) core.Hooks {
	debug := func(ev core.Event) func(reflect.Type) {
		return func(t reflect.Type) {
			logger.WithFields(log.Fields{
				"event": string(ev),
				"type":  t.String(),
			}).Debug("container event")
		}
	}
	return core.Hooks{
		OnBind:  debug(core.ValueBound),
		OnClone: debug(core.ValueCloned),
		OnMove:  debug(core.ValueMoved),
		OnReset: debug(core.ValueReset),
		OnCastMiss: func(want, have reflect.Type) {
			logger.WithFields(log.Fields{
				"event": string(core.CastMissed),
				"type":  have.String(),
				"want":  want.String(),
			}).Infof("cast to %s missed", want)
		},
	}
}
