package lexer

import (
	"bufio"
	"io"
)

// blockSize is how many bytes the reader pulls from its source per refill.
const blockSize = 4096

// charReader hands out the bytes of a source one at a time.
//
// Bytes are pulled from the source in blocks of blockSize and served from
// the block until it runs out. peek looks at the next byte and read
// consumes it; neither ever looks further ahead than one byte.
//
// END OF STREAM: the reader is exhausted the first time the source reports
// io.EOF, keeps returning no data, or fails. From then on peek and read
// report no byte even if the source would produce more. A failure other
// than end-of-stream is kept and returned by Err; the lexer reports it once
// as an error.
type charReader struct {
	r    *bufio.Reader
	done bool
	err  error
}

func newCharReader(src io.Reader) *charReader {
	return &charReader{r: bufio.NewReaderSize(src, blockSize)}
}

// peek returns the next byte without consuming it.
func (c *charReader) peek() (byte, bool) {
	if c.done {
		return 0, false
	}
	b, err := c.r.Peek(1)
	if len(b) == 0 {
		c.done = true
		// A source that keeps returning no bytes has ended; bufio reports
		// that as ErrNoProgress.
		if err != io.EOF && err != io.ErrNoProgress {
			c.err = err
		}
		return 0, false
	}
	return b[0], true
}

// read consumes and returns the next byte.
func (c *charReader) read() (byte, bool) {
	ch, ok := c.peek()
	if ok {
		_, _ = c.r.Discard(1)
	}
	return ch, ok
}

// Err returns the read failure that exhausted the reader, if any. Reaching
// the end of the source is not a failure.
func (c *charReader) Err() error {
	return c.err
}
