package bfvm

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderInput(t *testing.T) {
	input := ReaderInput(strings.NewReader("ab"))
	for _, expected := range []byte{'a', 'b', 0, 0} {
		b, err := input()
		if err != nil {
			t.Fatal(err)
		}
		if b != expected {
			t.Fatalf("got %v, expected %v", b, expected)
		}
	}

	input = ReaderInput(errReader{})
	if _, err := input(); !errors.Is(err, errBroken) {
		t.Fatalf("got %v", err)
	}
}

type shortWriter struct{}

func (shortWriter) Write([]byte) (int, error) {
	return 0, nil
}

func TestWriterOutput(t *testing.T) {
	var b strings.Builder
	output := WriterOutput(&b)
	for _, c := range []byte("hi") {
		if err := output(c); err != nil {
			t.Fatal(err)
		}
	}
	if b.String() != "hi" {
		t.Fatalf("got %q", b.String())
	}

	if err := WriterOutput(shortWriter{})('x'); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("got %v", err)
	}
}
