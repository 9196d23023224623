package feed

import (
	"fmt"
	"io"

	"github.com/nibblekit/nibble"
)

type config struct {
	chunk int
}

// Option configures a [Source].
type Option func(*config)

func defaultConfig() config {
	return config{chunk: 4096}
}

// WithChunkSize sets how many bytes a refill reads from the transport at a
// time. The default is 4096. WithChunkSize panics if n is not positive.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("feed: chunk size must be positive")
		}
		c.chunk = n
	}
}

// Source maintains a growing window of unconsumed input read from a
// transport. It is not safe for concurrent use; the recognizers it drives
// are, but the window itself is single-consumer.
type Source struct {
	r     io.Reader
	buf   nibble.Bytes
	eof   bool
	chunk int
}

// NewSource wraps r in a [Source].
func NewSource(r io.Reader, opts ...Option) *Source {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Source{r: r, chunk: cfg.chunk}
}

// Rest returns the current unconsumed window. The window only covers what
// has been read from the transport so far.
func (s *Source) Rest() nibble.Bytes { return s.buf }

// Len returns the number of buffered, unconsumed bytes.
func (s *Source) Len() int { return len(s.buf) }

// EOF reports whether the transport has been exhausted.
func (s *Source) EOF() bool { return s.eof }

// fill reads one more chunk into the window. A short or empty read is fine;
// the caller loops.
func (s *Source) fill() error {
	p := make([]byte, s.chunk)
	n, err := s.r.Read(p)
	s.buf = append(s.buf, p[:n]...)
	switch err {
	case nil:
		return nil
	case io.EOF:
		s.eof = true
		return nil
	default:
		return fmt.Errorf("feed: read: %w", err)
	}
}

// Next runs rec over the source's window. While rec reports incomplete and
// the transport has more data, Next pulls another chunk and re-runs rec from
// the original start position. On success the match is consumed from the
// window and the value returned. A definitive rejection is returned as-is.
// An incomplete outcome after end of input is returned as an error wrapping
// [io.ErrUnexpectedEOF].
//
// Next is a top-level function rather than a method because methods cannot
// introduce type parameters.
func Next[O any](s *Source, rec nibble.Recognizer[nibble.Bytes, O]) (O, error) {
	for {
		val, rest, err := rec(s.buf)
		switch {
		case err == nil:
			s.buf = rest
			return val, nil
		case nibble.IsIncomplete(err):
			if s.eof {
				var zero O
				return zero, fmt.Errorf("feed: input ended mid-token: %w", io.ErrUnexpectedEOF)
			}
			if ferr := s.fill(); ferr != nil {
				var zero O
				return zero, ferr
			}
		default:
			var zero O
			return zero, err
		}
	}
}

// Skip runs rec over the window and discards the recognized value.
func Skip[O any](s *Source, rec nibble.Recognizer[nibble.Bytes, O]) error {
	_, err := Next(s, rec)
	return err
}
