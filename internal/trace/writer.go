// Package trace emits the per-step loop record as text, one line per step:
//
//	t r e u y
//
// Fields are space separated; u is printed as the shortest decimal that
// round-trips, the rest as integers.
package trace

import (
	"bufio"
	"io"
	"strconv"

	"github.com/san-kum/queueloop/internal/sim"
)

// Writer is a sim.Observer that formats every sample it sees. Write errors
// are sticky: after the first failure further steps are dropped and the
// error is reported by Flush.
type Writer struct {
	w   *bufio.Writer
	buf []byte
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) OnStep(s sim.Sample) {
	if w.err != nil {
		return
	}
	w.buf = AppendLine(w.buf[:0], s)
	_, w.err = w.w.Write(w.buf)
}

// Flush writes any buffered lines and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// WriteAll formats samples in order and flushes.
func WriteAll(out io.Writer, samples []sim.Sample) error {
	w := NewWriter(out)
	for _, s := range samples {
		w.OnStep(s)
	}
	return w.Flush()
}

// AppendLine appends the text form of s, including the trailing newline.
func AppendLine(dst []byte, s sim.Sample) []byte {
	dst = strconv.AppendInt(dst, int64(s.T), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(s.R), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(s.E), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendFloat(dst, s.U, 'f', -1, 64)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(s.Y), 10)
	return append(dst, '\n')
}
