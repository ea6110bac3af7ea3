package rle

import (
	"bufio"
	"io"
)

// Decode expands [count][value] records from r into w and returns the number
// of bytes handed to w. A trailing single byte yields ErrTruncatedRecord once
// the complete records before it are flushed.
func Decode(r io.Reader, w io.Writer) (int64, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var (
		record  [2]byte
		written int64
	)
	for {
		_, err := io.ReadFull(br, record[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			if err := bw.Flush(); err != nil {
				return written, err
			}
			return written, ErrTruncatedRecord
		}
		if err != nil {
			return written, err
		}

		for i := 0; i < int(record[0]); i++ {
			if err := bw.WriteByte(record[1]); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, bw.Flush()
}
