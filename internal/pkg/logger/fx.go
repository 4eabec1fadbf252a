package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

// Fx reports container failures as errors with the offending constructor attached.
// Everything else is debug level, so one-shot command output stays free of container noise.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Supplied:
		l.event(e.Err).
			Str("fx.type", e.TypeName).
			Str("fx.module", e.ModuleName).
			Msg("supplied")
	case *fxevent.Provided:
		l.event(e.Err).
			Str("fx.constructor", e.ConstructorName).
			Str("fx.module", e.ModuleName).
			Strs("fx.types", e.OutputTypeNames).
			Msg("provided")
	case *fxevent.Invoked:
		l.event(e.Err).
			Str("fx.function", e.FunctionName).
			Str("fx.module", e.ModuleName).
			Msg("invoked")
	case *fxevent.Started:
		l.event(e.Err).Msg("started")
	case *fxevent.Stopped:
		l.event(e.Err).Msg("stopped")
	case *fxevent.LoggerInitialized:
		l.event(e.Err).
			Str("fx.constructor", e.ConstructorName).
			Msg("logger initialized")
	}
}

func (l *fxLogger) event(err error) *zerolog.Event {
	if err != nil {
		return l.l.Error().Err(err)
	}
	return l.l.Debug()
}
