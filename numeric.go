package nibble

import "math"

// Sign optionally consumes a leading '+' or '-' and reports whether the
// result is positive. A missing sign defaults to positive and consumes
// nothing. Empty input is incomplete: a sign character could still arrive.
func Sign[I Input[I]](in I) (bool, I, error) {
	c, ok := in.First()
	if !ok {
		return false, in, needMore(1)
	}
	switch c {
	case '+':
		_, rest := in.TakeFrom(1)
		return true, rest, nil
	case '-':
		_, rest := in.TakeFrom(1)
		return false, rest, nil
	}
	return true, in, nil
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// decimalSigned accumulates a signed decimal integer one digit at a time,
// range-checking every step against the width's own bounds. Negative values
// accumulate by subtraction so that the most negative value of the width is
// reachable without an intermediate out-of-range positive.
//
// The first non-digit item terminates the run and becomes the start of the
// remainder. A non-digit in first position is a [KindDigit] rejection
// against the original, pre-sign input. A run that exhausts the buffer is
// incomplete: a further digit could still arrive.
func decimalSigned[N signedInt, I Input[I]](in I, min, max N) (N, I, error) {
	positive, rest, err := Sign(in)
	if err != nil {
		return 0, in, err
	}
	if rest.Len() == 0 {
		return 0, in, needMore(1)
	}

	var value N
	cur := rest
	for n := 0; ; n++ {
		c, ok := cur.First()
		if !ok {
			return 0, in, needMore(1)
		}
		if !IsDigit(c) {
			if n == 0 {
				return 0, in, syntax(in, KindDigit)
			}
			return value, cur, nil
		}
		d := N(c - '0')
		if positive {
			if value > max/10 || (value == max/10 && d > max%10) {
				return 0, in, syntax(in, KindDigit)
			}
			value = value*10 + d
		} else {
			if value < min/10 || (value == min/10 && d > -(min%10)) {
				return 0, in, syntax(in, KindDigit)
			}
			value = value*10 - d
		}
		_, cur = cur.TakeFrom(1)
	}
}

// decimalUnsigned is decimalSigned without the sign phase and with only the
// additive accumulation path.
func decimalUnsigned[N unsignedInt, I Input[I]](in I, max N) (N, I, error) {
	if in.Len() == 0 {
		return 0, in, needMore(1)
	}

	var value N
	cur := in
	for n := 0; ; n++ {
		c, ok := cur.First()
		if !ok {
			return 0, in, needMore(1)
		}
		if !IsDigit(c) {
			if n == 0 {
				return 0, in, syntax(in, KindDigit)
			}
			return value, cur, nil
		}
		d := N(c - '0')
		if value > max/10 || (value == max/10 && d > max%10) {
			return 0, in, syntax(in, KindDigit)
		}
		value = value*10 + d
		_, cur = cur.TakeFrom(1)
	}
}

// Int8 recognizes a signed decimal 8-bit integer.
func Int8[I Input[I]](in I) (int8, I, error) {
	return decimalSigned[int8, I](in, math.MinInt8, math.MaxInt8)
}

// Int16 recognizes a signed decimal 16-bit integer.
func Int16[I Input[I]](in I) (int16, I, error) {
	return decimalSigned[int16, I](in, math.MinInt16, math.MaxInt16)
}

// Int32 recognizes a signed decimal 32-bit integer.
func Int32[I Input[I]](in I) (int32, I, error) {
	return decimalSigned[int32, I](in, math.MinInt32, math.MaxInt32)
}

// Int64 recognizes a signed decimal 64-bit integer.
func Int64[I Input[I]](in I) (int64, I, error) {
	return decimalSigned[int64, I](in, math.MinInt64, math.MaxInt64)
}

// Uint8 recognizes an unsigned decimal 8-bit integer.
func Uint8[I Input[I]](in I) (uint8, I, error) {
	return decimalUnsigned[uint8, I](in, math.MaxUint8)
}

// Uint16 recognizes an unsigned decimal 16-bit integer.
func Uint16[I Input[I]](in I) (uint16, I, error) {
	return decimalUnsigned[uint16, I](in, math.MaxUint16)
}

// Uint32 recognizes an unsigned decimal 32-bit integer.
func Uint32[I Input[I]](in I) (uint32, I, error) {
	return decimalUnsigned[uint32, I](in, math.MaxUint32)
}

// Uint64 recognizes an unsigned decimal 64-bit integer.
func Uint64[I Input[I]](in I) (uint64, I, error) {
	return decimalUnsigned[uint64, I](in, math.MaxUint64)
}
