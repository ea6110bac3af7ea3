package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/luckyComet55/fsm-rle/internal/rle"
)

// EncodeResult is what gets published after a successful encoding run.
type EncodeResult struct {
	InputPath  string
	OutputPath string
	Report     rle.Report
}

type ReportRepository interface {
	Publish(ctx context.Context, result EncodeResult) error
}

type logReportRepository struct {
	logger *slog.Logger
}

func NewLogReportRepository(logger *slog.Logger) ReportRepository {
	return &logReportRepository{
		logger: logger,
	}
}

func (repo *logReportRepository) Publish(ctx context.Context, result EncodeResult) error {
	repo.logger.InfoContext(ctx, "encoding report",
		"input", result.InputPath,
		"output", result.OutputPath,
		"input_size", result.Report.InputSize,
		"output_size", result.Report.OutputSize,
		"reduction", fmt.Sprintf("%.2f%%", result.Report.Reduction),
	)
	return nil
}

type telegramReportRepository struct {
	logger *slog.Logger
	bot    *bot.Bot
	chatID int64
}

func NewTelegramReportRepository(b *bot.Bot, chatID int64, logger *slog.Logger) ReportRepository {
	return &telegramReportRepository{
		logger: logger,
		bot:    b,
		chatID: chatID,
	}
}

func (repo *telegramReportRepository) Publish(ctx context.Context, result EncodeResult) error {
	messageTemplate := "Encoded `%s`\noutput: `%s`\ninitial size: %d bytes\noutfile size: %d bytes\nreduction: %.2f%%"
	_, err := repo.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: repo.chatID,
		Text: fmt.Sprintf(messageTemplate,
			result.InputPath,
			result.OutputPath,
			result.Report.InputSize,
			result.Report.OutputSize,
			result.Report.Reduction,
		),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		repo.logger.Error(err.Error(), "method", "Publish", "chat", repo.chatID)
		return err
	}
	return nil
}
