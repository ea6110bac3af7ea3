package middleware

import (
	"log/slog"
	"time"

	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

type loggedState struct {
	fsm.State
	id     fsm.StateID
	logger *slog.Logger
}

func (s loggedState) Run(ctx *fsm.FSMContext) error {
	started := time.Now()
	s.logger.Debug("enter state", "state", s.id, "name", s.Name())

	err := s.State.Run(ctx)
	if err != nil {
		s.logger.Error(err.Error(), "state", s.id)
		return err
	}

	s.logger.Debug("exit state",
		"state", s.id,
		"next", ctx.NextState(),
		"elapsed", time.Since(started),
	)
	return nil
}

// WithLogging decorates a state factory so every built state logs its entry,
// exit and failure. Errors are returned unchanged.
func WithLogging(logger *slog.Logger, next fsm.Factory) fsm.Factory {
	return func(id fsm.StateID) fsm.State {
		return loggedState{
			State:  next(id),
			id:     id,
			logger: logger,
		}
	}
}

// LogRegistry applies WithLogging to every state of r.
func LogRegistry(r *fsm.MapRegistry, logger *slog.Logger) *fsm.MapRegistry {
	return r.Wrap(func(_ fsm.StateID, f fsm.Factory) fsm.Factory {
		return WithLogging(logger, f)
	})
}
