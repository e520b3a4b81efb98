package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
eof_mode?:     string
max_memory?:   int
max_io?:       int
search_paths?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var mode string
	err := loader.AssignFirst("eof_mode", &mode)
	if err != nil {
		t.Fatal(err)
	}
	if mode != "set0" {
		t.Fatalf("got %q", mode)
	}

	var paths []string
	err = loader.AssignFirst("search_paths", &paths)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", paths); str != "[/etc /usr/local/etc]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("no_such_key", &mode)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderLayering(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	// earlier file wins
	var mode string
	if err := loader.AssignFirst("eof_mode", &mode); err != nil {
		t.Fatal(err)
	}
	if mode != "set0" {
		t.Fatalf("got %q", mode)
	}

	// defined only in the later file
	var maxIo int
	if err := loader.AssignFirst("max_io", &maxIo); err != nil {
		t.Fatal(err)
	}
	if maxIo != 64 {
		t.Fatalf("got %d", maxIo)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var seen []string
	for value, err := range loader.IterCueValues("eof_mode") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		seen = append(seen, s)
	}
	if str := fmt.Sprintf("%v", seen); str != "[set0 terminate]" {
		t.Fatalf("got %q", str)
	}

	seen = seen[:0]
	for s := range All[string](loader, "eof_mode") {
		seen = append(seen, s)
	}
	if str := fmt.Sprintf("%v", seen); str != "[set0 terminate]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var mode string
	err := loader.AssignFirst("eof_modes", &mode)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no_such.cue"}, testSchema)
	var mode string
	if err := loader.AssignFirst("eof_mode", &mode); err == nil {
		t.Fatal("should error")
	}
}
