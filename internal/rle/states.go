package rle

import (
	"bufio"
	"io"
	"os"

	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

type initState struct {
	fsm.BaseState
}

func NewInit(id fsm.StateID) fsm.State {
	return initState{fsm.NewBaseState(string(id) + " - initialize context")}
}

// Run resets the run counters and prepares a fresh output file when the
// output is given as a path.
func (s initState) Run(ctx *fsm.FSMContext) error {
	if !ctx.Exists(KeyInput) && !ctx.Exists(KeyInputPath) {
		return ErrNoInput
	}

	if !ctx.Exists(KeyOutput) {
		path, ok := fsm.Value[string](ctx, KeyOutputPath)
		if !ok {
			return ErrNoOutput
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	ctx.Set(keyRun, 0)
	ctx.Set(keyControl, nil)
	// counters always start from zero, seeded values are discarded
	ctx.Set(KeyInputSize, int64(0))
	ctx.Set(KeyOutputSize, int64(0))

	ctx.SetNextState(ReadByte)
	return nil
}

type readByteState struct {
	fsm.BaseState
}

func NewReadByte(id fsm.StateID) fsm.State {
	return readByteState{fsm.NewBaseState(string(id) + " - read byte")}
}

func (s readByteState) Run(ctx *fsm.FSMContext) error {
	if ctx.Exists(keyEOF) {
		ctx.SetNextState(Finalize)
		return nil
	}

	r, err := openReader(ctx)
	if err != nil {
		return err
	}

	b, err := r.ReadByte()
	if err == io.EOF {
		ctx.Logger().Debug("end of input", "state", s.Name())
		if err := closeReader(ctx); err != nil {
			return err
		}
		ctx.Set(keyEOF, true)

		// the last run is still pending
		if run, _ := fsm.Value[int](ctx, keyRun); run > 0 && ctx.Exists(keyControl) {
			control, _ := fsm.Value[byte](ctx, keyControl)
			stageRecord(ctx, run, control)
			ctx.Set(keyRun, 0)
		}
		ctx.SetNextState(FlushRun)
		return nil
	}
	if err != nil {
		return err
	}

	size, _ := fsm.Value[int64](ctx, KeyInputSize)
	ctx.Set(KeyInputSize, size+1)
	ctx.Set(keyByte, b)

	ctx.SetNextState(CountRun)
	return nil
}

func openReader(ctx *fsm.FSMContext) (io.ByteReader, error) {
	if r, ok := fsm.Value[io.ByteReader](ctx, keyReader); ok {
		return r, nil
	}

	var src io.Reader
	if in, ok := fsm.Value[io.Reader](ctx, KeyInput); ok {
		src = in
	} else {
		path, ok := fsm.Value[string](ctx, KeyInputPath)
		if !ok {
			return nil, ErrNoInput
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		ctx.Set(keyReaderFile, f)
		src = f
	}

	r, ok := src.(io.ByteReader)
	if !ok {
		r = bufio.NewReader(src)
	}
	ctx.Set(keyReader, r)
	return r, nil
}

func closeReader(ctx *fsm.FSMContext) error {
	ctx.Delete(keyReader)
	f, ok := fsm.Value[*os.File](ctx, keyReaderFile)
	if !ok {
		return nil
	}
	ctx.Delete(keyReaderFile)
	return f.Close()
}

type countRunState struct {
	fsm.BaseState
}

func NewCountRun(id fsm.StateID) fsm.State {
	return countRunState{fsm.NewBaseState(string(id) + " - count byte")}
}

func (s countRunState) Run(ctx *fsm.FSMContext) error {
	b, _ := fsm.Value[byte](ctx, keyByte)
	run, _ := fsm.Value[int](ctx, keyRun)

	if !ctx.Exists(keyControl) {
		ctx.Set(keyControl, b)
		ctx.Set(keyRun, 1)
		ctx.SetNextState(ReadByte)
		return nil
	}

	control, _ := fsm.Value[byte](ctx, keyControl)
	switch {
	case b == control && run < MaxRun:
		ctx.Set(keyRun, run+1)
		ctx.SetNextState(ReadByte)
	case b == control:
		// run is full; emit it and start a new run of the same byte
		stageRecord(ctx, run, control)
		ctx.Set(keyRun, 1)
		ctx.SetNextState(FlushRun)
	default:
		stageRecord(ctx, run, control)
		ctx.Set(keyControl, b)
		ctx.Set(keyRun, 1)
		ctx.SetNextState(FlushRun)
	}
	return nil
}

func stageRecord(ctx *fsm.FSMContext, run int, value byte) {
	ctx.Set(keyRecord, []byte{byte(run), value})
}

type flushRunState struct {
	fsm.BaseState
}

func NewFlushRun(id fsm.StateID) fsm.State {
	return flushRunState{fsm.NewBaseState(string(id) + " - write run")}
}

func (s flushRunState) Run(ctx *fsm.FSMContext) error {
	if record, ok := fsm.Value[[]byte](ctx, keyRecord); ok {
		w, err := openWriter(ctx)
		if err != nil {
			return err
		}
		n, err := w.Write(record)
		if err != nil {
			return err
		}
		size, _ := fsm.Value[int64](ctx, KeyOutputSize)
		ctx.Set(KeyOutputSize, size+int64(n))
		ctx.Delete(keyRecord)
	}

	if ctx.Exists(keyEOF) {
		if err := closeWriter(ctx); err != nil {
			return err
		}
	}

	ctx.SetNextState(ReadByte)
	return nil
}

// openWriter returns the output sink. Records are written straight through
// so everything counted in the output size is already in the sink.
func openWriter(ctx *fsm.FSMContext) (io.Writer, error) {
	if w, ok := fsm.Value[io.Writer](ctx, keyWriter); ok {
		return w, nil
	}

	var dst io.Writer
	if out, ok := fsm.Value[io.Writer](ctx, KeyOutput); ok {
		dst = out
	} else {
		path, ok := fsm.Value[string](ctx, KeyOutputPath)
		if !ok {
			return nil, ErrNoOutput
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, err
		}
		ctx.Set(keyWriterFile, f)
		dst = f
	}

	ctx.Set(keyWriter, dst)
	return dst, nil
}

func closeWriter(ctx *fsm.FSMContext) error {
	ctx.Delete(keyWriter)
	f, ok := fsm.Value[*os.File](ctx, keyWriterFile)
	if !ok {
		return nil
	}
	ctx.Delete(keyWriterFile)
	return f.Close()
}

// release closes the handles the encoder states opened. It is used when a
// run aborts before the states get to close them themselves.
func release(ctx *fsm.FSMContext) error {
	werr := closeWriter(ctx)
	if rerr := closeReader(ctx); werr == nil {
		return rerr
	}
	return werr
}

type finalizeState struct {
	fsm.BaseState
}

func NewFinalize(id fsm.StateID) fsm.State {
	return finalizeState{fsm.NewBaseState(string(id) + " - EOF / terminate")}
}

func (s finalizeState) Run(ctx *fsm.FSMContext) error {
	in, _ := fsm.Value[int64](ctx, KeyInputSize)
	out, _ := fsm.Value[int64](ctx, KeyOutputSize)

	report := NewReport(in, out)
	ctx.Set(KeyReport, report)
	ctx.Logger().Debug("encoding finished",
		"input_size", report.InputSize,
		"output_size", report.OutputSize,
		"reduction", report.Reduction,
	)

	if err := FormatReport(ctx.Output(), report); err != nil {
		return err
	}

	ctx.SetNextState(fsm.Halt)
	return nil
}
