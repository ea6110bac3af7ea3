package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"

	"github.com/luckyComet55/fsm-rle/internal/config"
	"github.com/luckyComet55/fsm-rle/internal/handler"
	"github.com/luckyComet55/fsm-rle/internal/middleware"
	"github.com/luckyComet55/fsm-rle/internal/repository"
	"github.com/luckyComet55/fsm-rle/internal/rle"
	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

func main() {
	if len(os.Args) < 2 {
		showSyntax()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := config.ConfigureLogger(c)

	var reports repository.ReportRepository
	if c.NotifyEnabled() {
		b, err := bot.New(c.BotApiKey, bot.WithSkipGetMe())
		if err != nil {
			panic(err)
		}
		reports = repository.NewTelegramReportRepository(b, c.ReportChatID, logger.With("component", "telegramReports"))
	} else {
		reports = repository.NewLogReportRepository(logger.With("component", "logReports"))
	}

	dispatcher := fsm.NewDispatcher(
		fsm.WithLogger(logger.With("component", "dispatcher")),
		fsm.WithMaxSteps(c.MaxSteps),
	)
	registry := middleware.LogRegistry(rle.NewRegistry(), logger.With("component", "states"))

	encodeHandler := handler.NewEncodeHandler(dispatcher, registry, reports, c.OutputSuffix, os.Stdout, logger.With("component", "encodeHandler"))

	fmt.Println("Working... please wait.")
	if _, err := encodeHandler.HandleEncode(ctx, os.Args[1]); err != nil {
		if errors.Is(err, handler.ErrInvalidInput) {
			fmt.Printf("Invalid input file: %s\n", os.Args[1])
		}
		logger.Error(err.Error())
		os.Exit(1)
	}
	fmt.Println("Finished.")
}

func showSyntax() {
	fmt.Println("Run Length Encoder Finite State Machine")
	fmt.Println("Syntax: fsmrle <input file>")
	fmt.Println("Will output to <input file>.rle (see RLE_OUTPUT_SUFFIX) and overwrite any existing output.")
}
