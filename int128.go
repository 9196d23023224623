package nibble

import (
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer, produced by [Uint128]. Go has no
// native 128-bit integer type, so the value is carried as two 64-bit limbs.
type U128 struct {
	Hi, Lo uint64
}

// String renders the value in decimal.
func (v U128) String() string {
	if v.Hi == 0 {
		return strconv.FormatUint(v.Lo, 10)
	}
	buf := make([]byte, 0, 40)
	for v.Hi != 0 || v.Lo != 0 {
		qHi := v.Hi / 10
		qLo, r := bits.Div64(v.Hi%10, v.Lo, 10)
		buf = append(buf, byte('0'+r))
		v = U128{Hi: qHi, Lo: qLo}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// I128 is a two's-complement signed 128-bit integer, produced by [Int128].
// Hi carries the sign bit.
type I128 struct {
	Hi, Lo uint64
}

// Neg returns -v. Negating the most negative value returns it unchanged, as
// with the native signed types.
func (v I128) Neg() I128 {
	lo, carry := bits.Add64(^v.Lo, 1, 0)
	hi, _ := bits.Add64(^v.Hi, 0, carry)
	return I128{Hi: hi, Lo: lo}
}

// String renders the value in decimal.
func (v I128) String() string {
	if v.Hi>>63 == 0 {
		return U128{Hi: v.Hi, Lo: v.Lo}.String()
	}
	m := v.Neg()
	return "-" + U128{Hi: m.Hi, Lo: m.Lo}.String()
}

// mulAdd128 returns v*10 + d, reporting false on overflow.
func mulAdd128(v U128, d uint64) (U128, bool) {
	hiCarry, lo := bits.Mul64(v.Lo, 10)
	over, hi := bits.Mul64(v.Hi, 10)
	if over != 0 {
		return U128{}, false
	}
	hi, carry := bits.Add64(hi, hiCarry, 0)
	if carry != 0 {
		return U128{}, false
	}
	lo, carry = bits.Add64(lo, d, 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return U128{}, false
	}
	return U128{Hi: hi, Lo: lo}, true
}

func u128Greater(a, b U128) bool {
	return a.Hi > b.Hi || a.Hi == b.Hi && a.Lo > b.Lo
}

// Uint128 recognizes an unsigned decimal 128-bit integer. It follows the
// same termination rules as the narrower widths: a leading non-digit is a
// [KindDigit] rejection, a digit run that exhausts the buffer is incomplete,
// and overflow past 2^128-1 is a rejection rather than a wrapped value.
func Uint128[I Input[I]](in I) (U128, I, error) {
	if in.Len() == 0 {
		return U128{}, in, needMore(1)
	}

	var value U128
	cur := in
	for n := 0; ; n++ {
		c, ok := cur.First()
		if !ok {
			return U128{}, in, needMore(1)
		}
		if !IsDigit(c) {
			if n == 0 {
				return U128{}, in, syntax(in, KindDigit)
			}
			return value, cur, nil
		}
		next, ok := mulAdd128(value, uint64(c-'0'))
		if !ok {
			return U128{}, in, syntax(in, KindDigit)
		}
		value = next
		_, cur = cur.TakeFrom(1)
	}
}

// Int128 recognizes a signed decimal 128-bit integer. The magnitude is
// accumulated as an unsigned value bounded by 2^127-1 for positive inputs
// and 2^127 for negative ones, so the most negative value is accepted
// without an out-of-range intermediate.
func Int128[I Input[I]](in I) (I128, I, error) {
	positive, rest, err := Sign(in)
	if err != nil {
		return I128{}, in, err
	}
	if rest.Len() == 0 {
		return I128{}, in, needMore(1)
	}

	limit := U128{Hi: 1 << 63, Lo: 0}
	if positive {
		limit = U128{Hi: 1<<63 - 1, Lo: ^uint64(0)}
	}

	var mag U128
	cur := rest
	for n := 0; ; n++ {
		c, ok := cur.First()
		if !ok {
			return I128{}, in, needMore(1)
		}
		if !IsDigit(c) {
			if n == 0 {
				return I128{}, in, syntax(in, KindDigit)
			}
			value := I128{Hi: mag.Hi, Lo: mag.Lo}
			if !positive {
				value = value.Neg()
			}
			return value, cur, nil
		}
		next, ok := mulAdd128(mag, uint64(c-'0'))
		if !ok || u128Greater(next, limit) {
			return I128{}, in, syntax(in, KindDigit)
		}
		mag = next
		_, cur = cur.TakeFrom(1)
	}
}
