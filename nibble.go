package nibble

// Recognizer is the signature shared by every recognizer in this package.
// It consumes a prefix of in and returns the recognized value, the remaining
// input, and an error that is either nil (success), a [*SyntaxError]
// (definitive rejection), or a [*IncompleteError] (more input required).
//
// The returned rest is always a suffix of in; recognizers never fabricate
// content that is not present in their input.
type Recognizer[I Input[I], O any] func(in I) (O, I, error)
