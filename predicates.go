package nibble

// ASCII character-class predicates. All are pure and total; items outside
// the class (including anything non-ASCII) simply report false.

// IsDigit reports whether c is a decimal digit, '0' through '9'.
func IsDigit[T byte | rune](c T) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is a hexadecimal digit, 0-9 A-F a-f.
func IsHexDigit[T byte | rune](c T) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

// IsOctDigit reports whether c is an octal digit, '0' through '7'.
func IsOctDigit[T byte | rune](c T) bool {
	return c >= '0' && c <= '7'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha[T byte | rune](c T) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IsAlphanumeric reports whether c is an ASCII letter or decimal digit.
func IsAlphanumeric[T byte | rune](c T) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is a space or horizontal tab.
func IsSpace[T byte | rune](c T) bool {
	return c == ' ' || c == '\t'
}

// IsMultispace reports whether c is a space, tab, carriage return, or
// newline.
func IsMultispace[T byte | rune](c T) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
