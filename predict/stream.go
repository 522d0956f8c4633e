package predict

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/whatf0xx/tempers/mt"
)

// Stream yields successive 32-bit outputs of some generator. Next returns
// false once the stream is exhausted.
type Stream interface {
	Next() (uint32, bool)
}

// StreamFunc adapts an ordinary function to a Stream.
type StreamFunc func() (uint32, bool)

// Next calls f.
func (f StreamFunc) Next() (uint32, bool) {
	return f()
}

// Slice returns a Stream over a fixed sequence of outputs.
func Slice(outputs []uint32) Stream {
	return StreamFunc(func() (uint32, bool) {
		if len(outputs) == 0 {
			return 0, false
		}
		n := outputs[0]
		outputs = outputs[1:]
		return n, true
	})
}

// Generator returns an endless Stream of g's outputs. Reading the stream
// advances g.
func Generator(g *mt.MT) Stream {
	return StreamFunc(func() (uint32, bool) {
		return g.Uint32(), true
	})
}

// Seq returns a Stream pulling from seq. The caller must call stop when
// done with the stream.
func Seq(seq iter.Seq[uint32]) (s Stream, stop func()) {
	next, stop := iter.Pull(seq)
	return StreamFunc(next), stop
}

// Reader is a Stream of whitespace-separated decimal values.
type Reader struct {
	scanner *bufio.Scanner
	err     error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner}
}

// Next returns the next value. It returns false at end of input or on
// the first malformed value; Err distinguishes the two.
func (r *Reader) Next() (uint32, bool) {
	if r.err != nil || !r.scanner.Scan() {
		return 0, false
	}
	n, err := strconv.ParseUint(r.scanner.Text(), 10, 32)
	if err != nil {
		r.err = fmt.Errorf("predict: parse output: %w", err)
		return 0, false
	}
	return uint32(n), true
}

// Err returns the first read or parse error.
func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.scanner.Err()
}
