// Package reader implements a uniform, byte-addressable view over a source
// string or a pull-based chunk source, modeled after the way Funxy's lexer
// walks its input but generalized to forward-only streaming: the parser
// addresses bytes by an absolute, monotonically increasing index, and can
// release any prefix it has fully consumed.
package reader

import "fmt"

// Pull is called when the reader needs more bytes than it currently has
// buffered. It returns the next chunk and whether more may follow; a false
// "more" return, or a nil/empty chunk, signals end of input.
type Pull func() (chunk []byte, more bool)

// Reader is the tuple {buffer, offset, pull} from the specification: buffer
// holds bytes for absolute indices in (offset, offset+len(buffer)], and
// offset is the count of bytes already freed. Indices are 1-based, matching
// the target language's string indexing, so index offset+1 is the first
// byte still held.
type Reader struct {
	buf    []byte
	offset int
	pull   Pull
	eof    bool
}

// NewString creates a reader over a fixed, already-complete string.
func NewString(s string) *Reader {
	return &Reader{buf: []byte(s), eof: true}
}

// NewStreaming creates a reader that extends its buffer on demand by
// invoking pull. Until pull reports more=false, the reader's length is
// conceptually unbounded.
func NewStreaming(pull Pull) *Reader {
	return &Reader{pull: pull}
}

// ErrOutOfRange is returned by Byte/Sub when the requested index has
// already been freed, or lies beyond the input's actual end.
type ErrOutOfRange struct {
	Index  int
	Offset int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("reader: index %d is not addressable (offset is %d)", e.Index, e.Offset)
}

// extendTo pulls chunks until the buffer covers absolute index i, or input
// is exhausted.
func (r *Reader) extendTo(i int) {
	for !r.eof && i-r.offset > len(r.buf) {
		chunk, more := r.pull()
		r.buf = append(r.buf, chunk...)
		if !more || len(chunk) == 0 {
			r.eof = true
		}
	}
}

// Byte returns the byte at absolute index i (1-based). It fails if i has
// already been freed, or if input ends before reaching i.
func (r *Reader) Byte(i int) (byte, error) {
	r.extendTo(i)
	if i <= r.offset || i-r.offset > len(r.buf) {
		return 0, &ErrOutOfRange{Index: i, Offset: r.offset}
	}
	return r.buf[i-r.offset-1], nil
}

// Sub returns the inclusive byte range [a, b] as a string. Both bounds must
// be greater than the current offset.
func (r *Reader) Sub(a, b int) (string, error) {
	r.extendTo(b)
	if a <= r.offset || b-r.offset > len(r.buf) || a > b+1 {
		return "", &ErrOutOfRange{Index: a, Offset: r.offset}
	}
	if a > b {
		return "", nil
	}
	return string(r.buf[a-r.offset-1 : b-r.offset]), nil
}

// Available reports whether byte i can be read without blocking further,
// i.e. without the reader concluding that input has ended.
func (r *Reader) Available(i int) bool {
	r.extendTo(i)
	return i > r.offset && i-r.offset <= len(r.buf)
}

// AtEnd reports whether the reader knows there is no byte at index i and
// never will be (a streaming source has signaled more=false).
func (r *Reader) AtEnd(i int) bool {
	r.extendTo(i)
	return r.eof && i-r.offset > len(r.buf)
}

// Free discards every byte at index i and below and advances offset to i,
// so index i+1 becomes the first byte still held. It is advisory and
// idempotent: freeing an already-freed prefix is a no-op.
// Returns the number of bytes actually released, for telemetry.
func (r *Reader) Free(i int) int {
	if i <= r.offset {
		return 0
	}
	n := i - r.offset
	if n > len(r.buf) {
		n = len(r.buf)
	}
	r.buf = r.buf[n:]
	r.offset += n
	return n
}

// Offset returns the current free-advisory offset.
func (r *Reader) Offset() int { return r.offset }
