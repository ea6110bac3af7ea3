package fsm

// BaseState carries a state's name. Concrete states embed it and override
// Run; the default Run logs the context and halts.
type BaseState struct {
	name string
}

func NewBaseState(name string) BaseState {
	return BaseState{name: name}
}

func (s BaseState) Name() string {
	return s.name
}

func (s BaseState) Run(ctx *FSMContext) error {
	ctx.Logger().Debug("exploring context",
		"state", s.name,
		"context", ctx.Name(),
		"items", ctx.Len(),
		"dump", ctx.Dump(),
	)
	ctx.SetNextState(Halt)
	return nil
}
