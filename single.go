package nibble

import "strings"

// Char returns a recognizer that accepts exactly the character want.
// Empty input is incomplete with an exact need of one item, since the
// pattern has a fixed length. A different character is a [KindChar]
// rejection carrying the expected character.
func Char[I Input[I]](want rune) Recognizer[I, rune] {
	return func(in I) (rune, I, error) {
		got, ok := in.First()
		if !ok {
			return 0, in, needMore(1)
		}
		if got != want {
			return 0, in, &SyntaxError[I]{Input: in, Kind: KindChar, Want: want}
		}
		_, rest := in.TakeFrom(1)
		return got, rest, nil
	}
}

// Satisfy returns a recognizer that accepts one character for which pred
// holds. Unlike [Char] no fixed length is known up front, so empty input is
// incomplete with an unknown need.
func Satisfy[I Input[I]](pred func(rune) bool) Recognizer[I, rune] {
	return func(in I) (rune, I, error) {
		got, ok := in.First()
		if !ok {
			return 0, in, needUnknown()
		}
		if !pred(got) {
			return 0, in, syntax(in, KindSatisfy)
		}
		_, rest := in.TakeFrom(1)
		return got, rest, nil
	}
}

// OneOf returns a recognizer that accepts one character contained in set.
func OneOf[I Input[I]](set string) Recognizer[I, rune] {
	return func(in I) (rune, I, error) {
		got, ok := in.First()
		if !ok {
			return 0, in, needMore(1)
		}
		if !strings.ContainsRune(set, got) {
			return 0, in, syntax(in, KindOneOf)
		}
		_, rest := in.TakeFrom(1)
		return got, rest, nil
	}
}

// NoneOf returns a recognizer that accepts one character not contained in
// set.
func NoneOf[I Input[I]](set string) Recognizer[I, rune] {
	return func(in I) (rune, I, error) {
		got, ok := in.First()
		if !ok {
			return 0, in, needMore(1)
		}
		if strings.ContainsRune(set, got) {
			return 0, in, syntax(in, KindNoneOf)
		}
		_, rest := in.TakeFrom(1)
		return got, rest, nil
	}
}

// AnyChar accepts any single character. It has no mismatch case: the only
// failure is running out of input.
func AnyChar[I Input[I]](in I) (rune, I, error) {
	got, ok := in.First()
	if !ok {
		return 0, in, needMore(1)
	}
	_, rest := in.TakeFrom(1)
	return got, rest, nil
}
