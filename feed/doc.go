// Package feed drives nibble recognizers over a chunked transport.
//
// Recognizers are restart-based: on an incomplete outcome the caller must
// extend its buffer and re-run the recognizer from the original start
// position. feed packages that loop up for any [io.Reader]:
//
//   - [Source] maintains a growing window of unconsumed input.
//   - [Next] runs a recognizer over the window, pulling more chunks while
//     the recognizer reports incomplete, and consumes the match on success.
//   - [Skip] is [Next] with the value discarded.
//
// At true end of input an incomplete outcome can never resolve, so [Next]
// maps it to an error wrapping [io.ErrUnexpectedEOF]. This is the one place
// the three-way outcome collapses to two: the transport knows no more data
// is coming, the recognizer does not.
package feed
