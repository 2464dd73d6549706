// Package testutil defines support code for unit tests.
package testutil

import "io"

// StallReader delivers the contents of R, but before each call that reaches
// R it reports Stalls reads of zero bytes with no error.
type StallReader struct {
	R      io.Reader
	Stalls int

	n int
}

func (s *StallReader) Read(p []byte) (int, error) {
	if s.n < s.Stalls {
		s.n++
		return 0, nil
	}
	s.n = 0
	return s.R.Read(p)
}

// Forever is an io.Reader that never delivers data and never reports an
// error, not even io.EOF. Reads counts the calls to its Read method.
type Forever struct{ Reads int }

func (f *Forever) Read([]byte) (int, error) { f.Reads++; return 0, nil }

// ChunkReader delivers Data at most Size bytes at a time.
type ChunkReader struct {
	Data []byte
	Size int
}

func (c *ChunkReader) Read(p []byte) (int, error) {
	if len(c.Data) == 0 {
		return 0, io.EOF
	}
	n := min(len(p), c.Size, len(c.Data))
	copy(p, c.Data[:n])
	c.Data = c.Data[n:]
	return n, nil
}
