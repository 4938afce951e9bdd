package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Y":    true,
		"no":   false,
		"foo":  false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%s: expected %v", str, expected)
		}
	}
}
