package nibble

import "unicode/utf8"

// Comparison is the result of matching an input against a fixed literal.
type Comparison int

const (
	// CompareEqual means the literal is a prefix of the input.
	CompareEqual Comparison = iota

	// CompareMismatch means the input diverges from the literal before the
	// literal ends. More input cannot change this.
	CompareMismatch

	// ComparePartial means the input is a proper, matching prefix of the
	// literal: every visible item matches but the input ran out first.
	ComparePartial
)

// Input is the capability set recognizers require of an input cursor. It is
// an immutable handle to "the remaining unconsumed input": methods slice and
// inspect, never mutate. The type parameter is the implementing type itself,
// so that slicing preserves the concrete input type.
//
// Positions and lengths count items (bytes for [Bytes], runes for [Runes]),
// not raw bytes.
type Input[I any] interface {
	// Len returns the number of unconsumed items.
	Len() int

	// First returns the item at the cursor without consuming it.
	// ok is false when no input remains.
	First() (item rune, ok bool)

	// TakeFrom splits the input after n items. n larger than Len splits at
	// the end.
	TakeFrom(n int) (prefix, rest I)

	// Find returns the position of the first item satisfying pred, scanning
	// from the cursor. ok is false when no visible item satisfies it.
	Find(pred func(rune) bool) (pos int, ok bool)

	// Compare matches the input against a fixed literal, distinguishing a
	// definitive mismatch from the input being a short matching prefix.
	Compare(lit string) Comparison
}

// Bytes is an [Input] over a byte buffer. Items are single bytes, widened to
// rune for the shared item type.
type Bytes []byte

// Len returns the number of unconsumed bytes.
func (b Bytes) Len() int { return len(b) }

// First returns the byte at the cursor without consuming it.
func (b Bytes) First() (rune, bool) {
	if len(b) == 0 {
		return 0, false
	}
	return rune(b[0]), true
}

// TakeFrom splits the buffer after n bytes.
func (b Bytes) TakeFrom(n int) (Bytes, Bytes) {
	if n > len(b) {
		n = len(b)
	}
	return b[:n], b[n:]
}

// Find returns the position of the first byte satisfying pred.
func (b Bytes) Find(pred func(rune) bool) (int, bool) {
	for i := 0; i < len(b); i++ {
		if pred(rune(b[i])) {
			return i, true
		}
	}
	return 0, false
}

// Compare matches the buffer against lit byte for byte.
func (b Bytes) Compare(lit string) Comparison {
	n := len(b)
	if n > len(lit) {
		n = len(lit)
	}
	if string(b[:n]) != lit[:n] {
		return CompareMismatch
	}
	if len(b) < len(lit) {
		return ComparePartial
	}
	return CompareEqual
}

func (b Bytes) String() string { return string(b) }

// Runes is an [Input] over a string. Items are Unicode scalar values, so
// positions and lengths count runes, not bytes.
type Runes string

// Len returns the number of unconsumed runes.
func (r Runes) Len() int { return utf8.RuneCountInString(string(r)) }

// First returns the rune at the cursor without consuming it.
func (r Runes) First() (rune, bool) {
	if r == "" {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(string(r))
	return c, true
}

// TakeFrom splits the string after n runes.
func (r Runes) TakeFrom(n int) (Runes, Runes) {
	i := 0
	for n > 0 && i < len(r) {
		_, w := utf8.DecodeRuneInString(string(r[i:]))
		i += w
		n--
	}
	return r[:i], r[i:]
}

// Find returns the rune position of the first rune satisfying pred.
func (r Runes) Find(pred func(rune) bool) (int, bool) {
	pos := 0
	for _, c := range string(r) {
		if pred(c) {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// Compare matches the string against lit. The byte-level prefix relation is
// the rune-level one because UTF-8 is self-synchronizing.
func (r Runes) Compare(lit string) Comparison {
	n := len(r)
	if n > len(lit) {
		n = len(lit)
	}
	if string(r[:n]) != lit[:n] {
		return CompareMismatch
	}
	if len(r) < len(lit) {
		return ComparePartial
	}
	return CompareEqual
}

func (r Runes) String() string { return string(r) }
