package nibble

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which recognizer rejected the input. The enumeration
// is open-ended: callers should treat unknown kinds as generic failures.
type ErrorKind uint8

const (
	KindChar ErrorKind = iota
	KindSatisfy
	KindOneOf
	KindNoneOf
	KindAlpha
	KindDigit
	KindHexDigit
	KindOctDigit
	KindAlphaNumeric
	KindSpace
	KindMultiSpace
	KindCRLF
	KindTag
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindSatisfy:
		return "satisfy"
	case KindOneOf:
		return "one_of"
	case KindNoneOf:
		return "none_of"
	case KindAlpha:
		return "alpha"
	case KindDigit:
		return "digit"
	case KindHexDigit:
		return "hex_digit"
	case KindOctDigit:
		return "oct_digit"
	case KindAlphaNumeric:
		return "alphanumeric"
	case KindSpace:
		return "space"
	case KindMultiSpace:
		return "multispace"
	case KindCRLF:
		return "crlf"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// SyntaxError is a definitive rejection: the input is invalid at the
// position the recognizer inspected, and more data cannot change that.
// Input holds the remaining input at the rejection point, Kind names the
// rejecting recognizer, and Want is the expected character when Kind is
// [KindChar].
type SyntaxError[I Input[I]] struct {
	Input I
	Kind  ErrorKind
	Want  rune
}

func (e *SyntaxError[I]) Error() string {
	if e.Kind == KindChar {
		return fmt.Sprintf("nibble: expected %q (%d items remaining)", e.Want, e.Input.Len())
	}
	return fmt.Sprintf("nibble: %s mismatch (%d items remaining)", e.Kind, e.Input.Len())
}

// ErrKind returns the error kind. It exists so that [KindOf] can inspect a
// SyntaxError without knowing its input type.
func (e *SyntaxError[I]) ErrKind() ErrorKind { return e.Kind }

// Needed says how much more input a recognizer requires before it can
// decide. Zero is [NeededUnknown]; any positive value is an exact minimum
// number of additional items.
type Needed int

// NeededUnknown means more input is required but no minimum is known.
const NeededUnknown Needed = 0

func (n Needed) String() string {
	if n == NeededUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%d", int(n))
}

// IncompleteError reports that the visible input is a strict prefix of every
// input that would let the recognizer succeed or fail. The caller should
// obtain more input and re-run the recognizer from the original start.
type IncompleteError struct {
	Needed Needed
}

func (e *IncompleteError) Error() string {
	if e.Needed == NeededUnknown {
		return "nibble: need more input"
	}
	return fmt.Sprintf("nibble: need at least %d more items", int(e.Needed))
}

// IsIncomplete reports whether err (or any error in its chain) is a
// [*IncompleteError].
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}

// NeededOf extracts the [Needed] amount from the first [*IncompleteError] in
// err's chain. Returns false if none is found.
func NeededOf(err error) (Needed, bool) {
	var ie *IncompleteError
	if errors.As(err, &ie) {
		return ie.Needed, true
	}
	return 0, false
}

// KindOf extracts the [ErrorKind] from the first [*SyntaxError] in err's
// chain, regardless of the error's input type. Returns false if no
// SyntaxError is found.
func KindOf(err error) (ErrorKind, bool) {
	var ke interface{ ErrKind() ErrorKind }
	if errors.As(err, &ke) {
		return ke.ErrKind(), true
	}
	return 0, false
}

func needMore(n int) error {
	return &IncompleteError{Needed: Needed(n)}
}

func needUnknown() error {
	return &IncompleteError{Needed: NeededUnknown}
}

func syntax[I Input[I]](in I, kind ErrorKind) error {
	return &SyntaxError[I]{Input: in, Kind: kind}
}
