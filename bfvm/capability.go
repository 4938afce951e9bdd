package bfvm

import (
	"errors"
	"io"
)

// Input reads one byte. End of input is reported as a zero byte, not an error.
type Input func() (byte, error)

// Output writes one byte.
type Output func(byte) error

func ReaderInput(r io.Reader) Input {
	var buf [1]byte
	return func() (byte, error) {
		_, err := io.ReadFull(r, buf[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return buf[0], nil
	}
}

func WriterOutput(w io.Writer) Output {
	return func(b byte) error {
		n, err := w.Write([]byte{b})
		if err != nil {
			return err
		}
		if n != 1 {
			return io.ErrShortWrite
		}
		return nil
	}
}
