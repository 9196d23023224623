package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nibblekit/nibble"
	"github.com/nibblekit/nibble/feed"
)

// Reads whitespace-separated signed integers from stdin and prints their
// count and sum. Input must end with a terminator (a trailing newline is
// enough); a number cut off by end of input is reported as such.
func main() {
	src := feed.NewSource(os.Stdin, feed.WithChunkSize(64))

	var sum int64
	var count int
	for {
		if err := feed.Skip(src, nibble.Multispace0[nibble.Bytes]); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			fmt.Fprintln(os.Stderr, "read:", err)
			os.Exit(1)
		}

		n, err := feed.Next(src, nibble.Int64[nibble.Bytes])
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) && src.Len() == 0 {
				break
			}
			fmt.Fprintf(os.Stderr, "at %q: %v\n", truncate(src.Rest()), err)
			os.Exit(1)
		}
		sum += n
		count++
	}

	fmt.Printf("parsed %d integers, sum %d\n", count, sum)
}

func truncate(b nibble.Bytes) string {
	if len(b) > 16 {
		return string(b[:16]) + "..."
	}
	return string(b)
}
