package rle

import "github.com/luckyComet55/fsm-rle/pkg/fsm"

// NewRegistry returns the encoder states keyed by their identifiers.
func NewRegistry() *fsm.MapRegistry {
	return fsm.NewRegistry().
		Register(Init, NewInit).
		Register(ReadByte, NewReadByte).
		Register(CountRun, NewCountRun).
		Register(FlushRun, NewFlushRun).
		Register(Finalize, NewFinalize)
}
