package fsm

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Presence is the result of a three-valued store lookup.
type Presence int

const (
	Missing Presence = iota
	Null
	Present
)

const (
	metaLogger = "logger"
	metaOutput = "output"
)

// FSMContext is the shared store passed through a single FSM run. Data holds
// the values states exchange; Meta holds runtime services (logger, output
// writer) that are neither dumped nor cleared.
type FSMContext struct {
	name string
	next StateID

	Data map[string]any
	Meta map[string]any
}

func NewFSMContext(name string) *FSMContext {
	return &FSMContext{
		name: name,
		next: Halt,
		Data: make(map[string]any),
		Meta: make(map[string]any),
	}
}

func (ctx *FSMContext) Name() string {
	return ctx.name
}

func (ctx *FSMContext) Set(key string, value any) {
	ctx.Data[key] = value
}

// Get returns the stored value, or nil when the key is absent.
func (ctx *FSMContext) Get(key string) any {
	return ctx.Data[key]
}

func (ctx *FSMContext) Lookup(key string) (any, Presence) {
	value, ok := ctx.Data[key]
	switch {
	case !ok:
		return nil, Missing
	case value == nil:
		return nil, Null
	default:
		return value, Present
	}
}

// Exists reports whether key is stored with a non-nil value. A key that was
// explicitly set to nil does not exist.
func (ctx *FSMContext) Exists(key string) bool {
	_, p := ctx.Lookup(key)
	return p == Present
}

func (ctx *FSMContext) Delete(key string) {
	delete(ctx.Data, key)
}

// Clear empties the store. The next state is kept.
func (ctx *FSMContext) Clear() {
	ctx.Data = make(map[string]any)
}

func (ctx *FSMContext) Len() int {
	return len(ctx.Data)
}

// SetNextState selects the state to run next. An empty id halts.
func (ctx *FSMContext) SetNextState(id StateID) {
	ctx.next = id
}

func (ctx *FSMContext) NextState() StateID {
	return ctx.next
}

func (ctx *FSMContext) SetLogger(logger *slog.Logger) {
	ctx.Meta[metaLogger] = logger
}

func (ctx *FSMContext) Logger() *slog.Logger {
	if l, ok := ctx.Meta[metaLogger].(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// SetOutput sets the writer states print progress and reports to.
func (ctx *FSMContext) SetOutput(w io.Writer) {
	ctx.Meta[metaOutput] = w
}

func (ctx *FSMContext) Output() io.Writer {
	if w, ok := ctx.Meta[metaOutput].(io.Writer); ok && w != nil {
		return w
	}
	return os.Stdout
}

// Dump renders every stored pair as YAML with sorted keys. It is meant for
// diagnostics and is not parsed back.
func (ctx *FSMContext) Dump() string {
	if len(ctx.Data) == 0 {
		return ""
	}

	view := make(map[string]any, len(ctx.Data))
	for k, v := range ctx.Data {
		view[k] = dumpValue(v)
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Sprintf("%v", ctx.Data)
	}
	return strings.TrimRight(string(out), "\n")
}

func dumpValue(v any) any {
	switch t := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint16, uint32, uint64,
		float32, float64:
		return t
	case uint8:
		return fmt.Sprintf("0x%02X", t)
	case []byte:
		return hex.EncodeToString(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%T", t)
	}
}

// Value returns the value stored under key when it is present and of type T.
func Value[T any](ctx *FSMContext, key string) (T, bool) {
	v, ok := ctx.Data[key].(T)
	return v, ok
}

// Namespace prefixes keys owned by one state so unrelated states sharing a
// context do not collide.
type Namespace string

func (n Namespace) Key(name string) string {
	return string(n) + "." + name
}
