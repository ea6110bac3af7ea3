package fsm

import "log/slog"

// Halt is the next-state value that stops a dispatch.
const Halt StateID = ""

type (
	StateID string

	// State is a unit of work. Run reads and writes the context and
	// selects the next state through SetNextState before returning.
	State interface {
		Name() string
		Run(ctx *FSMContext) error
	}

	// Factory builds a fresh State for one invocation.
	Factory func(id StateID) State

	// Registry resolves state identifiers to factories.
	Registry interface {
		Lookup(id StateID) (Factory, bool)
	}

	// StepObserver is called before each state invocation.
	StepObserver func(step int, id StateID)

	Option func(*Dispatcher)

	Dispatcher struct {
		logger   *slog.Logger
		maxSteps int
		observer StepObserver
	}
)

func (id StateID) String() string {
	if id == Halt {
		return "<halt>"
	}
	return string(id)
}
