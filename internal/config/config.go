package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	Env          string `env:"ENV, default=dev"`
	OutputSuffix string `env:"RLE_OUTPUT_SUFFIX, default=.rle"`
	MaxSteps     int    `env:"FSM_MAX_STEPS, default=0"`
	BotApiKey    string `env:"BOT_TOKEN"`
	ReportChatID int64  `env:"REPORT_CHAT_ID"`
}

// Load reads an optional .env file and processes the environment into an
// AppConfig.
func Load(ctx context.Context, files ...string) (AppConfig, error) {
	if err := dotenv.Load(files...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return Process(ctx, envconf.OsLookuper())
}

func Process(ctx context.Context, lookuper envconf.Lookuper) (AppConfig, error) {
	var c AppConfig
	if err := envconf.ProcessWith(ctx, &envconf.Config{
		Target:   &c,
		Lookuper: lookuper,
	}); err != nil {
		return AppConfig{}, err
	}
	if err := c.Validate(); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}

func (c AppConfig) Validate() error {
	if c.Env != "dev" && c.Env != "prod" {
		return fmt.Errorf("incorrect env type: %s. possible values: dev, prod", c.Env)
	}
	if c.OutputSuffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}

// NotifyEnabled reports whether encoding reports go to Telegram.
func (c AppConfig) NotifyEnabled() bool {
	return c.BotApiKey != "" && c.ReportChatID != 0
}

func ConfigureLogger(c AppConfig) *slog.Logger {
	var logger *slog.Logger
	switch c.Env {
	case "prod":
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return logger
}
