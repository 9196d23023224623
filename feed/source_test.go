package feed_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nibblekit/nibble"
	"github.com/nibblekit/nibble/feed"
)

func TestNextRestartsOnIncomplete(t *testing.T) {
	// One byte per read: every recognizer below goes through several
	// incomplete outcomes before deciding.
	r := iotest.OneByteReader(strings.NewReader("alpha 12345 beta\r\n"))
	src := feed.NewSource(r)

	word, err := feed.Next(src, nibble.Alpha1[nibble.Bytes])
	require.NoError(t, err)
	assert.Equal(t, "alpha", word.String())

	require.NoError(t, feed.Skip(src, nibble.Space1[nibble.Bytes]))

	n, err := feed.Next(src, nibble.Uint32[nibble.Bytes])
	require.NoError(t, err)
	assert.Equal(t, uint32(12345), n)

	require.NoError(t, feed.Skip(src, nibble.Space1[nibble.Bytes]))

	word, err = feed.Next(src, nibble.Alpha1[nibble.Bytes])
	require.NoError(t, err)
	assert.Equal(t, "beta", word.String())

	end, err := feed.Next(src, nibble.LineEnding[nibble.Bytes])
	require.NoError(t, err)
	assert.Equal(t, "\r\n", end.String())

	assert.Equal(t, 0, src.Len())
}

func TestNextForcesRejectionAtEOF(t *testing.T) {
	t.Run("empty transport", func(t *testing.T) {
		src := feed.NewSource(strings.NewReader(""))
		_, err := feed.Next(src, nibble.AnyChar[nibble.Bytes])
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("digit run with no terminator", func(t *testing.T) {
		src := feed.NewSource(strings.NewReader("123"))
		_, err := feed.Next(src, nibble.Int64[nibble.Bytes])
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.True(t, src.EOF())

		// The window is untouched: the caller can still decide what to
		// do with the trailing bytes.
		assert.Equal(t, "123", src.Rest().String())
	})
}

func TestNextPropagatesRejection(t *testing.T) {
	src := feed.NewSource(strings.NewReader("abc"))
	_, err := feed.Next(src, nibble.Digit1[nibble.Bytes])

	kind, ok := nibble.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, nibble.KindDigit, kind)
}

func TestNextPropagatesReadError(t *testing.T) {
	broken := errors.New("connection reset")
	src := feed.NewSource(io.MultiReader(strings.NewReader("12"), iotest.ErrReader(broken)))

	_, err := feed.Next(src, nibble.Int64[nibble.Bytes])
	assert.ErrorIs(t, err, broken)
}

func TestWithChunkSize(t *testing.T) {
	src := feed.NewSource(strings.NewReader("hello world "), feed.WithChunkSize(2))
	word, err := feed.Next(src, nibble.Alpha1[nibble.Bytes])
	require.NoError(t, err)
	assert.Equal(t, "hello", word.String())

	assert.Panics(t, func() { feed.NewSource(strings.NewReader(""), feed.WithChunkSize(0)) })
}

// Independent sources can be driven in parallel; each window is
// single-consumer but nothing is shared between them.
func TestParallelSources(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			src := feed.NewSource(
				iotest.OneByteReader(strings.NewReader("key 42\n")),
				feed.WithChunkSize(1),
			)
			if _, err := feed.Next(src, nibble.Alpha1[nibble.Bytes]); err != nil {
				return err
			}
			if err := feed.Skip(src, nibble.Space1[nibble.Bytes]); err != nil {
				return err
			}
			n, err := feed.Next(src, nibble.Uint8[nibble.Bytes])
			if err != nil {
				return err
			}
			if n != 42 {
				return errors.New("wrong value")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
