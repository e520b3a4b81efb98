package bflang

import (
	"errors"
	"strings"
	"testing"
)

func TestSyntaxErrorPosition(t *testing.T) {
	src := []byte("+++\n>>]\n---")
	_, err := Compile(src)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v", err)
	}
	if serr.Line != 2 {
		t.Errorf("line = %d, want 2", serr.Line)
	}
	if serr.Column != 3 {
		t.Errorf("column = %d, want 3", serr.Column)
	}
	if serr.Offset != 6 {
		t.Errorf("offset = %d, want 6", serr.Offset)
	}
}

func TestSyntaxErrorRendering(t *testing.T) {
	_, err := Compile([]byte("++]--"))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "syntax error at line 1, column 3") {
		t.Errorf("got %q", msg)
	}
	if !strings.Contains(msg, "unexpected closing bracket") {
		t.Errorf("got %q", msg)
	}
	lines := strings.Split(msg, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), msg)
	}
	if lines[1] != "\t++]--" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "\t--^--" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestSyntaxErrorTabExpansion(t *testing.T) {
	_, err := Compile([]byte("+\t]"))
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v", err)
	}
	lines := strings.Split(serr.Error(), "\n")
	if lines[1] != "\t+    ]" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "\t-----^" {
		t.Errorf("caret line = %q", lines[2])
	}
}
