package rle

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Report struct {
	InputSize  int64
	OutputSize int64
	// Reduction is the size saving in percent. It is negative when the
	// encoded output is larger than the input and zero for empty input.
	Reduction float64
}

func NewReport(in, out int64) Report {
	r := Report{InputSize: in, OutputSize: out}
	if in > 0 {
		r.Reduction = 100.0 - float64(out)/float64(in)*100.0
	}
	return r
}

func (r Report) String() string {
	return fmt.Sprintf("%d -> %d bytes (%.2f%%)", r.InputSize, r.OutputSize, r.Reduction)
}

var printer = message.NewPrinter(language.English)

func FormatReport(w io.Writer, r Report) error {
	_, err := printer.Fprintf(w,
		"Initial size: %d bytes.\nOutfile size: %d bytes.\nReduction: %.2f%%\n",
		r.InputSize, r.OutputSize, r.Reduction,
	)
	return err
}
