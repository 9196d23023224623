package nibble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibblekit/nibble"
)

func TestCRLF(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		val, rest, err := nibble.CRLF(nibble.Runes("\r\na"))
		require.NoError(t, err)
		assert.Equal(t, "\r\n", val.String())
		assert.Equal(t, "a", rest.String())
	})

	t.Run("lone cr is incomplete by two", func(t *testing.T) {
		_, _, err := nibble.CRLF(nibble.Runes("\r"))
		needed, ok := nibble.NeededOf(err)
		require.True(t, ok)
		assert.Equal(t, nibble.Needed(2), needed)
	})

	t.Run("cr then other is mismatch", func(t *testing.T) {
		_, _, err := nibble.CRLF(nibble.Runes("\ra"))
		kind, ok := nibble.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, nibble.KindCRLF, kind)
	})
}

func TestLineEnding(t *testing.T) {
	t.Run("bare lf", func(t *testing.T) {
		val, rest, err := nibble.LineEnding(nibble.Runes("\nrest"))
		require.NoError(t, err)
		assert.Equal(t, "\n", val.String())
		assert.Equal(t, "rest", rest.String())
	})

	t.Run("crlf", func(t *testing.T) {
		val, rest, err := nibble.LineEnding(nibble.Runes("\r\nrest"))
		require.NoError(t, err)
		assert.Equal(t, "\r\n", val.String())
		assert.Equal(t, "rest", rest.String())
	})

	t.Run("empty is incomplete", func(t *testing.T) {
		_, _, err := nibble.LineEnding(nibble.Runes(""))
		assert.True(t, nibble.IsIncomplete(err))
	})

	t.Run("lone cr is incomplete", func(t *testing.T) {
		_, _, err := nibble.LineEnding(nibble.Runes("\r"))
		assert.True(t, nibble.IsIncomplete(err))
	})

	t.Run("neither terminator", func(t *testing.T) {
		_, _, err := nibble.LineEnding(nibble.Runes("abc"))
		kind, ok := nibble.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, nibble.KindCRLF, kind)
	})
}

func TestNotLineEnding(t *testing.T) {
	t.Run("up to lf", func(t *testing.T) {
		val, rest, err := nibble.NotLineEnding(nibble.Runes("ab\ncd"))
		require.NoError(t, err)
		assert.Equal(t, "ab", val.String())
		assert.Equal(t, "\ncd", rest.String())
	})

	t.Run("up to crlf", func(t *testing.T) {
		val, rest, err := nibble.NotLineEnding(nibble.Runes("ab\r\ncd"))
		require.NoError(t, err)
		assert.Equal(t, "ab", val.String())
		assert.Equal(t, "\r\ncd", rest.String())
	})

	t.Run("no terminator visible is incomplete", func(t *testing.T) {
		_, _, err := nibble.NotLineEnding(nibble.Runes("abc"))
		assert.True(t, nibble.IsIncomplete(err))
	})

	t.Run("trailing cr is incomplete", func(t *testing.T) {
		_, _, err := nibble.NotLineEnding(nibble.Runes("ab\r"))
		assert.True(t, nibble.IsIncomplete(err))
	})

	t.Run("lone cr mid-input is rejected", func(t *testing.T) {
		_, _, err := nibble.NotLineEnding(nibble.Runes("ab\rcd"))
		kind, ok := nibble.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, nibble.KindTag, kind)
	})
}

// For prefix+terminator+suffix, NotLineEnding then LineEnding must consume
// exactly the prefix, then exactly the terminator, leaving the suffix.
func TestLineRoundTrip(t *testing.T) {
	prefixes := []string{"", "a", "some line content", "tabs\tand spaces "}
	terminators := []string{"\n", "\r\n"}
	for _, p := range prefixes {
		for _, term := range terminators {
			in := nibble.Runes(p + term + "suffix")

			line, rest, err := nibble.NotLineEnding(in)
			require.NoError(t, err, "prefix %q terminator %q", p, term)
			assert.Equal(t, p, line.String())

			end, rest, err := nibble.LineEnding(rest)
			require.NoError(t, err)
			assert.Equal(t, term, end.String())
			assert.Equal(t, "suffix", rest.String())
		}
	}
}
