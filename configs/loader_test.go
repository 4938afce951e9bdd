package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
num?: int
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue"}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderTOML(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/a.cue",
		"testdata/b.toml",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %s", str)
	}

	if n := First[int](loader, "num"); n != 42 {
		t.Fatalf("got %v", n)
	}
	if n := First[int](loader, "nope"); n != 0 {
		t.Fatalf("got %v", n)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	if err := os.WriteFile(path, []byte(`str: 1`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader([]string{path}, testSchema)
	var s string
	if err := loader.AssignFirst("str", &s); err == nil {
		t.Fatal("should fail")
	}

	path = filepath.Join(t.TempDir(), "unknown.cue")
	if err := os.WriteFile(path, []byte(`foo: 1`), 0644); err != nil {
		t.Fatal(err)
	}
	loader = NewLoader([]string{path}, testSchema)
	if _, err := loader.Paths(); err == nil {
		t.Fatal("should fail")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/nope.cue"}, "")
	var s string
	if err := loader.AssignFirst("str", &s); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
