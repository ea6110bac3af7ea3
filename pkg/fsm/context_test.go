package fsm_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

func TestFSMContext_SetGet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "int", key: "run", value: 6},
		{name: "bytes", key: "rle", value: []byte{0x06, 0x41}},
		{name: "bool", key: "eof", value: true},
		{name: "string", key: "infile", value: "data.bin"},
		{name: "buffer", key: "stream", value: &bytes.Buffer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := fsm.NewFSMContext("test")
			ctx.Set(tt.key, tt.value)

			assert.Equal(t, tt.value, ctx.Get(tt.key))
			assert.True(t, ctx.Exists(tt.key))

			v, p := ctx.Lookup(tt.key)
			assert.Equal(t, fsm.Present, p)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestFSMContext_NilIsNotExisting(t *testing.T) {
	ctx := fsm.NewFSMContext("test")
	ctx.Set("controlByte", nil)

	assert.False(t, ctx.Exists("controlByte"))
	assert.Nil(t, ctx.Get("controlByte"))
	assert.Equal(t, 1, ctx.Len())

	_, p := ctx.Lookup("controlByte")
	assert.Equal(t, fsm.Null, p)

	_, p = ctx.Lookup("never-set")
	assert.Equal(t, fsm.Missing, p)
	assert.False(t, ctx.Exists("never-set"))
	assert.Nil(t, ctx.Get("never-set"))
}

func TestFSMContext_DeleteAndClear(t *testing.T) {
	ctx := fsm.NewFSMContext("test")
	ctx.Set("a", 1)
	ctx.Set("b", 2)
	ctx.SetNextState("Next")

	ctx.Delete("a")
	ctx.Delete("missing")
	assert.False(t, ctx.Exists("a"))
	assert.True(t, ctx.Exists("b"))

	ctx.Clear()
	assert.Equal(t, 0, ctx.Len())
	assert.Equal(t, fsm.StateID("Next"), ctx.NextState())
}

func TestFSMContext_NextState(t *testing.T) {
	ctx := fsm.NewFSMContext("test")
	assert.Equal(t, fsm.Halt, ctx.NextState(), "new context starts halted")

	ctx.SetNextState("ReadByte")
	assert.Equal(t, fsm.StateID("ReadByte"), ctx.NextState())

	ctx.SetNextState("")
	assert.Equal(t, fsm.Halt, ctx.NextState())

	ctx.SetNextState("ReadByte")
	ctx.SetNextState(fsm.Halt)
	assert.Equal(t, fsm.Halt, ctx.NextState())
}

func TestFSMContext_Dump(t *testing.T) {
	ctx := fsm.NewFSMContext("test")
	assert.Empty(t, ctx.Dump())

	ctx.Set("Nonce", 6722301)
	ctx.Set("Author", "Karim")
	ctx.Set("rle", []byte{0x06, 0x41})
	ctx.Set("control", byte(0xDE))
	ctx.Set("gone", nil)

	first := ctx.Dump()
	assert.Equal(t, first, ctx.Dump(), "dump must be deterministic")
	assert.Contains(t, first, "Author: Karim")
	assert.Contains(t, first, "Nonce: 6722301")
	assert.Contains(t, first, "gone: null")
	assert.Contains(t, first, "0641")
	assert.Contains(t, first, "0xDE")
	assert.Len(t, strings.Split(first, "\n"), 5)
}

func TestFSMContext_MetaIsNotData(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	ctx := fsm.NewFSMContext("test")
	ctx.SetLogger(logger)
	ctx.SetOutput(&out)

	assert.Same(t, logger, ctx.Logger())
	assert.Equal(t, 0, ctx.Len())
	assert.Empty(t, ctx.Dump())

	ctx.Clear()
	assert.Same(t, logger, ctx.Logger())
}

func TestValue(t *testing.T) {
	ctx := fsm.NewFSMContext("test")
	ctx.Set("run", 3)

	run, ok := fsm.Value[int](ctx, "run")
	require.True(t, ok)
	assert.Equal(t, 3, run)

	_, ok = fsm.Value[string](ctx, "run")
	assert.False(t, ok)

	_, ok = fsm.Value[int](ctx, "missing")
	assert.False(t, ok)
}

func TestNamespace(t *testing.T) {
	ns := fsm.Namespace("rle.readbyte")
	assert.Equal(t, "rle.readbyte.file", ns.Key("file"))
}
