package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()
	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %v", a)
	}
	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %v", a)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"a"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))
	if err := executor.Execute([]string{"foo", "bar", "baz", "42"}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 || baz != 42 {
		t.Fatalf("got %v %v", bar, baz)
	}

	executor.Define("qux", Sub(map[string]*Command{
		"bar": nil,
	}))
	err := executor.Execute([]string{"foo", "qux"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: qux bar") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n uint64
	var s string
	executor.Define("foo", Func(func(arg *uint64, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %v %q", n, s)
	}
	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestFuncReturningError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	if err := executor.Execute([]string{"fail"}); err != errFoo {
		t.Fatalf("got %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		Func(func() int { return 1 })
	}()
}

type fooError struct{}

func (fooError) Error() string {
	return "foo"
}

var errFoo error = fooError{}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.usage = buf
	executor.Define("-file", Func(func(string) {}).Desc("source file"))
	executor.PrintUsage()
	if !strings.Contains(buf.String(), "-file\tsource file") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "--help, -h, -help, help\tprint this usage") {
		t.Fatalf("got %s", buf.String())
	}
}
