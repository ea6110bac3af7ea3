package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/luckyComet55/fsm-rle/internal/repository"
	"github.com/luckyComet55/fsm-rle/internal/rle"
	"github.com/luckyComet55/fsm-rle/pkg/fsm"
)

var ErrInvalidInput = errors.New("invalid input file")

type EncodeHandler struct {
	logger     *slog.Logger
	dispatcher *fsm.Dispatcher
	registry   fsm.Registry
	reports    repository.ReportRepository
	suffix     string
	out        io.Writer
}

func NewEncodeHandler(
	dispatcher *fsm.Dispatcher,
	registry fsm.Registry,
	reports repository.ReportRepository,
	suffix string,
	out io.Writer,
	logger *slog.Logger,
) *EncodeHandler {
	return &EncodeHandler{
		logger:     logger,
		dispatcher: dispatcher,
		registry:   registry,
		reports:    reports,
		suffix:     suffix,
		out:        out,
	}
}

// HandleEncode encodes infile into infile+suffix, overwriting any previous
// output, and publishes the resulting report. A failed run leaves whatever
// was already written in place.
func (eh *EncodeHandler) HandleEncode(ctx context.Context, infile string) (repository.EncodeResult, error) {
	info, err := os.Stat(infile)
	if err != nil {
		return repository.EncodeResult{}, fmt.Errorf("%w: %s: %w", ErrInvalidInput, infile, err)
	}
	if !info.Mode().IsRegular() {
		return repository.EncodeResult{}, fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, infile)
	}

	outfile := infile + eh.suffix
	eh.logger.Debug(fmt.Sprintf("encoding %s into %s", infile, outfile), "size", info.Size())

	fsmCtx := rle.NewFileContext(infile, outfile)
	fsmCtx.SetLogger(eh.logger)
	fsmCtx.SetOutput(eh.out)

	report, err := rle.Encode(eh.dispatcher, eh.registry, fsmCtx)
	if err != nil {
		eh.logger.Error(err.Error(), "input", infile, "state", fsmCtx.NextState())
		return repository.EncodeResult{}, err
	}

	result := repository.EncodeResult{
		InputPath:  infile,
		OutputPath: outfile,
		Report:     report,
	}

	if err := eh.reports.Publish(ctx, result); err != nil {
		eh.logger.Warn("could not publish report", "error", err)
	}
	return result, nil
}
