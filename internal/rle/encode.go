package rle

import (
	"fmt"
	"io"

	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

// NewFileContext seeds a context that encodes the file at in into out.
// The output file is truncated when the run starts.
func NewFileContext(in, out string) *fsm.FSMContext {
	ctx := fsm.NewFSMContext("RLE FSM")
	ctx.Set(KeyInputPath, in)
	ctx.Set(KeyOutputPath, out)
	ctx.SetNextState(Init)
	return ctx
}

func NewStreamContext(r io.Reader, w io.Writer) *fsm.FSMContext {
	ctx := fsm.NewFSMContext("RLE FSM")
	ctx.Set(KeyInput, r)
	ctx.Set(KeyOutput, w)
	ctx.SetNextState(Init)
	return ctx
}

// Encode dispatches ctx over registry and returns the report left by
// Finalize. When the run fails, files the states opened are closed and the
// records already written stay in the output.
func Encode(d *fsm.Dispatcher, registry fsm.Registry, ctx *fsm.FSMContext) (Report, error) {
	if err := d.Dispatch(ctx, registry); err != nil {
		if cerr := release(ctx); cerr != nil {
			ctx.Logger().Warn("could not release encoder handles", "error", cerr)
		}
		return Report{}, err
	}
	report, ok := fsm.Value[Report](ctx, KeyReport)
	if !ok {
		return Report{}, fmt.Errorf("rle: run halted without a report")
	}
	return report, nil
}
