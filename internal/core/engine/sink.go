package engine

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives generated usernames from the pipeline. Implementations are
// only touched from the pipeline's controlling goroutine.
type Sink interface {
	Accept(usernames []string) error
	Flush() error
}

// DefaultBufferLines is the flush threshold used when no explicit buffer
// size is configured.
const DefaultBufferLines = 1000

// BufferedSink accumulates usernames and writes them newline-joined in a
// single write once the buffer reaches its threshold. Use it for file
// destinations where per-line writes would dominate runtime.
type BufferedSink struct {
	w     io.Writer
	buf   []string
	limit int
}

// NewBufferedSink wraps w with a line buffer. A non-positive limit selects
// DefaultBufferLines.
func NewBufferedSink(w io.Writer, limit int) *BufferedSink {
	if limit <= 0 {
		limit = DefaultBufferLines
	}
	return &BufferedSink{w: w, limit: limit}
}

func (s *BufferedSink) Accept(usernames []string) error {
	s.buf = append(s.buf, usernames...)
	if len(s.buf) >= s.limit {
		return s.write()
	}
	return nil
}

// Flush writes any buffered remainder. Safe to call multiple times.
func (s *BufferedSink) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	return s.write()
}

func (s *BufferedSink) write() error {
	_, err := io.WriteString(s.w, strings.Join(s.buf, "\n")+"\n")
	s.buf = s.buf[:0]
	return err
}

// LineSink writes each username immediately, one per line. Used when the
// destination is stdout so output is never held back in a buffer.
type LineSink struct {
	w io.Writer
}

func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

func (s *LineSink) Accept(usernames []string) error {
	for _, u := range usernames {
		if _, err := fmt.Fprintln(s.w, u); err != nil {
			return err
		}
	}
	return nil
}

func (s *LineSink) Flush() error {
	return nil
}
