package iolib

import "io"

// LimitReader creates new [LimitedReader]
func LimitReader(r io.Reader, n uint) *LimitedReader { return &LimitedReader{r, n} }

// LimitedReader is uint port of [io.LimitedReader].
// Once N reaches zero it reports [io.EOF] without touching R again.
type LimitedReader struct {
	R io.Reader // underlying reader
	N uint      // max bytes remaining
}

func (l *LimitedReader) Read(p []byte) (n int, err error) {
	if l.N == 0 {
		return 0, io.EOF
	}
	if uint(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err = l.R.Read(p)
	l.N -= uint(n)
	return
}

// Exhausted reports whether the limit, rather than R, ended the stream.
func (l *LimitedReader) Exhausted() bool { return l.N == 0 }
