package rle

import "github.com/luckyComet55/fsm-rle/pkg/fsm"

const (
	Init     fsm.StateID = "Init"
	ReadByte fsm.StateID = "ReadByte"
	CountRun fsm.StateID = "CountRun"
	FlushRun fsm.StateID = "FlushRun"
	Finalize fsm.StateID = "Finalize"
)

// MaxRun is the longest run a single record can hold. Longer runs are split
// into consecutive records.
const MaxRun = 255

const (
	shared    fsm.Namespace = "rle"
	readByteN fsm.Namespace = "rle.readbyte"
	flushRunN fsm.Namespace = "rle.flushrun"
)

// Keys callers seed or read.
var (
	KeyInputPath  = shared.Key("infile")
	KeyOutputPath = shared.Key("outfile")
	KeyInput      = shared.Key("input")
	KeyOutput     = shared.Key("output")
	KeyInputSize  = shared.Key("infileSize")
	KeyOutputSize = shared.Key("outfileSize")
	KeyReport     = shared.Key("report")
)

// Keys passed between the encoder states.
var (
	keyRun     = shared.Key("run")
	keyControl = shared.Key("controlByte")
	keyByte    = shared.Key("byte")
	keyRecord  = shared.Key("record")
	keyEOF     = shared.Key("eof")
)

// Handles owned by a single state.
var (
	keyReader     = readByteN.Key("stream")
	keyReaderFile = readByteN.Key("file")
	keyWriter     = flushRunN.Key("stream")
	keyWriterFile = flushRunN.Key("file")
)
