// Package nibble provides low-level streaming character recognizers for Go.
//
// A recognizer inspects a prefix of an input cursor and returns one of three
// outcomes: success with a typed value and the remaining input, a definitive
// rejection, or a report that the visible input is too short to decide. The
// third outcome is what makes the package streaming-safe: a recognizer never
// commits to success or failure while more data could still change the answer.
//
// # Inputs
//
// Every recognizer is generic over the [Input] interface, an immutable cursor
// into the unconsumed input. Two implementations ship with the package:
// [Bytes], whose items are single bytes, and [Runes], whose items are Unicode
// scalar values. Cursors are plain values; recognizers slice them and never
// mutate them, so a cursor can be shared freely across goroutines.
//
// # Outcomes
//
// A [Recognizer] returns (value, rest, err). A nil error is success. A
// [*SyntaxError] means the input is definitively invalid at the cursor and
// retrying with more data cannot help. A [*IncompleteError] means the input
// may be a partial chunk of a larger stream; the caller should obtain more
// input and re-run the same recognizer from the original start position.
// Use [IsIncomplete], [NeededOf], and [KindOf] to inspect errors without
// caring about the concrete input type.
//
// # Recognizers
//
//   - Single tokens: [Char], [Satisfy], [OneOf], [NoneOf], [AnyChar].
//   - Character-class spans: [Alpha0], [Alpha1], [Digit0], [Digit1],
//     [HexDigit0], [HexDigit1], [OctDigit0], [OctDigit1], [Alphanumeric0],
//     [Alphanumeric1], [Space0], [Space1], [Multispace0], [Multispace1].
//   - Line endings: [CRLF], [LineEnding], [NotLineEnding].
//   - Integers: [Sign], [Int8] through [Int64], [Uint8] through [Uint64],
//     and the 128-bit [Int128] and [Uint128].
//
// The integer recognizers accumulate digit by digit with a range check at
// every step, so overflow is a rejection rather than a wrapped value, and
// each bit width keeps its own overflow boundary.
//
// # Streaming
//
// Streaming is restart-based. No recognizer keeps state between calls; the
// suspension implied by an incomplete outcome is nothing more than a return
// value. On incomplete, extend the buffer and call again from the start.
// The [github.com/nibblekit/nibble/feed] subpackage packages this loop up
// for io.Reader transports and decides what incomplete means at true end of
// input.
//
// Note that a class span or an integer literal can never be judged complete
// purely by exhausting the buffer: trailing input could always extend the
// match. Resolving that at end of stream is the caller's job (feed does it
// by mapping a final incomplete outcome to io.ErrUnexpectedEOF).
package nibble
