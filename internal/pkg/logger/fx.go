package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

// Fx routes fx lifecycle events through the global zerolog logger.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStart hook failed")
		} else {
			f.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("callee", e.FunctionName).Str("caller", e.CallerName).Msg("OnStop hook failed")
		} else {
			f.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStop hook executed")
		}
	case *fxevent.Provided:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		for _, t := range e.OutputTypeNames {
			f.l.Trace().Str("type", t).Str("constructor", e.ConstructorName).Str("module", e.ModuleName).Msg("provided")
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("module", e.ModuleName).Str("stack", e.Trace).Msg("invoke failed")
		} else {
			f.l.Trace().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
		}
	case *fxevent.Started:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("start failed")
		} else {
			f.l.Info().Msg("started")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("stop failed")
		}
	case *fxevent.RollingBack:
		f.l.Error().Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("custom logger initialization failed")
		}
	}
}
