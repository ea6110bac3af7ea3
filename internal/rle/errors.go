package rle

import "errors"

var (
	ErrNoInput         = errors.New("rle: no input stream or input path in context")
	ErrNoOutput        = errors.New("rle: no output stream or output path in context")
	ErrTruncatedRecord = errors.New("rle: truncated record")
)
