package fsm

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// WithLogger sets the logger used for dispatch records. States get it, tagged
// with the run id, through the context unless the caller already set one.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxSteps caps the number of state invocations per dispatch. Zero or a
// negative value leaves the loop unbounded.
func WithMaxSteps(n int) Option {
	return func(d *Dispatcher) {
		d.maxSteps = n
	}
}

func WithObserver(o StepObserver) Option {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs states from the registry until the context's next state is
// Halt. Every invocation gets a freshly built state. Errors returned by a
// state are passed through unchanged.
func (d *Dispatcher) Dispatch(ctx *FSMContext, registry Registry) error {
	logger := d.logger.With("run", uuid.NewString(), "context", ctx.Name())
	if _, ok := ctx.Meta[metaLogger]; !ok {
		ctx.SetLogger(logger)
	}

	step := 0
	for id := ctx.NextState(); id != Halt; id = ctx.NextState() {
		factory, ok := registry.Lookup(id)
		if !ok {
			logger.Error("unknown state", "state", id, "step", step)
			return &UnknownStateError{ID: id}
		}

		if d.maxSteps > 0 && step >= d.maxSteps {
			logger.Error("step limit exceeded", "state", id, "limit", d.maxSteps)
			return fmt.Errorf("%w: %d steps, next state '%s'", ErrStepLimitExceeded, d.maxSteps, id)
		}

		if d.observer != nil {
			d.observer(step, id)
		}

		s := factory(id)
		logger.Debug("running state", "state", id, "name", s.Name(), "step", step)
		if err := s.Run(ctx); err != nil {
			return err
		}
		step++
	}

	logger.Debug("dispatch halted", "steps", step)
	return nil
}
