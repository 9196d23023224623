package nibble

// span0 recognizes the longest (possibly empty) prefix whose items satisfy
// pred. If every visible item satisfies pred the span is still open: more
// matching items could arrive, so the outcome is incomplete rather than
// success.
func span0[I Input[I]](in I, pred func(rune) bool) (I, I, error) {
	pos, ok := in.Find(func(c rune) bool { return !pred(c) })
	if !ok {
		var zero I
		return zero, in, needMore(1)
	}
	prefix, rest := in.TakeFrom(pos)
	return prefix, rest, nil
}

// span1 is span0 requiring a non-empty match; an empty match is a rejection
// with the given kind.
func span1[I Input[I]](in I, pred func(rune) bool, kind ErrorKind) (I, I, error) {
	pos, ok := in.Find(func(c rune) bool { return !pred(c) })
	if !ok {
		var zero I
		return zero, in, needMore(1)
	}
	if pos == 0 {
		var zero I
		return zero, in, syntax(in, kind)
	}
	prefix, rest := in.TakeFrom(pos)
	return prefix, rest, nil
}

// Alpha0 recognizes zero or more ASCII letters.
func Alpha0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsAlpha[rune])
}

// Alpha1 recognizes one or more ASCII letters.
func Alpha1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsAlpha[rune], KindAlpha)
}

// Digit0 recognizes zero or more decimal digits.
func Digit0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsDigit[rune])
}

// Digit1 recognizes one or more decimal digits.
func Digit1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsDigit[rune], KindDigit)
}

// HexDigit0 recognizes zero or more hexadecimal digits.
func HexDigit0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsHexDigit[rune])
}

// HexDigit1 recognizes one or more hexadecimal digits.
func HexDigit1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsHexDigit[rune], KindHexDigit)
}

// OctDigit0 recognizes zero or more octal digits.
func OctDigit0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsOctDigit[rune])
}

// OctDigit1 recognizes one or more octal digits.
func OctDigit1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsOctDigit[rune], KindOctDigit)
}

// Alphanumeric0 recognizes zero or more ASCII letters and digits.
func Alphanumeric0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsAlphanumeric[rune])
}

// Alphanumeric1 recognizes one or more ASCII letters and digits.
func Alphanumeric1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsAlphanumeric[rune], KindAlphaNumeric)
}

// Space0 recognizes zero or more spaces and tabs.
func Space0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsSpace[rune])
}

// Space1 recognizes one or more spaces and tabs.
func Space1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsSpace[rune], KindSpace)
}

// Multispace0 recognizes zero or more spaces, tabs, carriage returns, and
// newlines.
func Multispace0[I Input[I]](in I) (I, I, error) {
	return span0(in, IsMultispace[rune])
}

// Multispace1 recognizes one or more spaces, tabs, carriage returns, and
// newlines.
func Multispace1[I Input[I]](in I) (I, I, error) {
	return span1(in, IsMultispace[rune], KindMultiSpace)
}
