package nibble

// CRLF recognizes the two-character sequence "\r\n".
func CRLF[I Input[I]](in I) (I, I, error) {
	switch in.Compare("\r\n") {
	case CompareEqual:
		prefix, rest := in.TakeFrom(2)
		return prefix, rest, nil
	case ComparePartial:
		var zero I
		return zero, in, needMore(2)
	default:
		var zero I
		return zero, in, syntax(in, KindCRLF)
	}
}

// LineEnding recognizes either "\n" or "\r\n".
func LineEnding[I Input[I]](in I) (I, I, error) {
	switch in.Compare("\n") {
	case CompareEqual:
		prefix, rest := in.TakeFrom(1)
		return prefix, rest, nil
	case ComparePartial:
		var zero I
		return zero, in, needMore(1)
	}
	return CRLF(in)
}

// NotLineEnding recognizes everything up to, but not including, the next
// line terminator. A lone '\r' not followed by '\n' is rejected with
// [KindTag]: only "\n" and "\r\n" count as terminators. If no terminator is
// visible the outcome is incomplete, since one could still arrive.
func NotLineEnding[I Input[I]](in I) (I, I, error) {
	pos, ok := in.Find(func(c rune) bool { return c == '\r' || c == '\n' })
	if !ok {
		var zero I
		return zero, in, needUnknown()
	}
	prefix, rest := in.TakeFrom(pos)
	if c, _ := rest.First(); c == '\r' {
		switch rest.Compare("\r\n") {
		case ComparePartial:
			var zero I
			return zero, in, needUnknown()
		case CompareMismatch:
			var zero I
			return zero, in, syntax(in, KindTag)
		}
	}
	return prefix, rest, nil
}
