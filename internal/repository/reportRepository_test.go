package repository_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckyComet55/fsm-rle/internal/repository"
	"github.com/luckyComet55/fsm-rle/internal/rle"
)

var result = repository.EncodeResult{
	InputPath:  "image.raw",
	OutputPath: "image.raw.rle",
	Report:     rle.NewReport(7, 4),
}

func TestLogReportRepository_Publish(t *testing.T) {
	var logs bytes.Buffer
	repo := repository.NewLogReportRepository(slog.New(slog.NewTextHandler(&logs, nil)))

	require.NoError(t, repo.Publish(context.Background(), result))
	assert.Contains(t, logs.String(), "encoding report")
	assert.Contains(t, logs.String(), "input_size=7")
	assert.Contains(t, logs.String(), "output_size=4")
	assert.Contains(t, logs.String(), "reduction=42.86%")
}

type telegramStub struct {
	mu     sync.Mutex
	paths  []string
	bodies []string
	fail   bool
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	s.bodies = append(s.bodies, string(body))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if s.fail {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
}

func newStubBot(t *testing.T, stub *telegramStub) *bot.Bot {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	b, err := bot.New("123:token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)
	return b
}

func TestTelegramReportRepository_Publish(t *testing.T) {
	stub := &telegramStub{}
	repo := repository.NewTelegramReportRepository(newStubBot(t, stub), 42, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, repo.Publish(context.Background(), result))

	require.Len(t, stub.paths, 1)
	assert.True(t, strings.HasSuffix(stub.paths[0], "/sendMessage"))
	assert.Contains(t, stub.bodies[0], "image.raw.rle")
	assert.Contains(t, stub.bodies[0], "reduction: 42.86%")
}

func TestTelegramReportRepository_PublishError(t *testing.T) {
	var logs bytes.Buffer
	stub := &telegramStub{fail: true}
	repo := repository.NewTelegramReportRepository(newStubBot(t, stub), 42, slog.New(slog.NewTextHandler(&logs, nil)))

	err := repo.Publish(context.Background(), result)
	require.Error(t, err)
	assert.Contains(t, logs.String(), "method=Publish")
}
