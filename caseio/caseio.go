// Package caseio reads unit circle cover instances from a token stream and
// writes answers in the judge format.
//
// Input:
//
//	T
//	N            (per test case)
//	x y          (N lines)
//
// Tokens are whitespace separated; blank lines anywhere are ignored.
//
// Output per test case is either
//
//	YES
//	K
//	x y          (K lines, 15 decimals)
//
// or the single line NO.
package caseio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/unitcover/geometry"
)

// ErrMalformed is returned when a token cannot be parsed as the expected number.
var ErrMalformed = errors.New("caseio: malformed input")

// maxToken bounds a single token; coordinates never come close.
const maxToken = 1 << 20

// Reader tokenizes an instance stream.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// next returns the next token, or io.EOF.
func (r *Reader) next() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *Reader) readInt() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: count %q", ErrMalformed, tok)
	}
	return v, nil
}

func (r *Reader) readFloat() (float64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: coordinate %q", ErrMalformed, tok)
	}
	return v, nil
}

// ReadCount reads the number of test cases. An empty stream yields io.EOF.
func (r *Reader) ReadCount() (int, error) {
	return r.readInt()
}

// maxPrealloc bounds the slice allocated from a case header.
const maxPrealloc = 1 << 12

// ReadCase reads one test case. io.EOF means the stream ended cleanly before
// the case started; io.ErrUnexpectedEOF means it ended inside the case.
func (r *Reader) ReadCase() ([]geometry.Point, error) {
	n, err := r.readInt()
	if err != nil {
		return nil, err
	}
	// n is untrusted until the points arrive.
	pts := make([]geometry.Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var p geometry.Point
		if p.X, err = r.readFloat(); err != nil {
			return nil, unexpected(err)
		}
		if p.Y, err = r.readFloat(); err != nil {
			return nil, unexpected(err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Writer formats answers. Output is buffered until Flush.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16)}
}

// WriteCover writes a YES answer with the given centers.
func (w *Writer) WriteCover(centers []geometry.Point) error {
	if _, err := fmt.Fprintf(w.w, "YES\n%d\n", len(centers)); err != nil {
		return err
	}
	for _, c := range centers {
		if _, err := fmt.Fprintf(w.w, "%.15f %.15f\n", c.X, c.Y); err != nil {
			return err
		}
	}
	return nil
}

// WriteInfeasible writes a NO answer.
func (w *Writer) WriteInfeasible() error {
	_, err := w.w.WriteString("NO\n")
	return err
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
