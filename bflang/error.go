package bflang

import (
	"bytes"
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	ErrUnmatchedBracket ErrorKind = iota
	ErrUnexpectedBracket
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnmatchedBracket:
		return "missing closing bracket ']'"
	case ErrUnexpectedBracket:
		return "unexpected closing bracket ']'"
	}
	return "unknown error"
}

// SyntaxError reports a bracket mismatch. Offset is the byte position
// of the offending bracket in the source; Line and Column are derived
// from it for rendering.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int
	Line   int
	Column int

	lineText string
	arrow    int
}

func newSyntaxError(kind ErrorKind, pos int, src []byte) *SyntaxError {
	line := 1 + bytes.Count(src[:pos], []byte{'\n'})

	start := bytes.LastIndexByte(src[:pos], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		end = pos + i
	}

	// Render the offending line with tabs expanded and surrounding
	// whitespace trimmed, tracking where the caret lands.
	var buf strings.Builder
	arrow := 0
	i := start
	for i < end && isSpace(src[i]) {
		i++
	}
	for ; i < end; i++ {
		if i == pos {
			arrow = buf.Len()
		}
		if src[i] == '\t' {
			buf.WriteString("    ")
		} else {
			buf.WriteByte(src[i])
		}
	}
	text := strings.TrimRight(buf.String(), " \t\r")

	return &SyntaxError{
		Kind:     kind,
		Offset:   pos,
		Line:     line,
		Column:   1 + pos - start,
		lineText: text,
		arrow:    arrow,
	}
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "syntax error at line %d, column %d: %s\n\t%s\n\t", e.Line, e.Column, e.Kind, e.lineText)
	for i := 0; i < e.arrow; i++ {
		sb.WriteByte('-')
	}
	sb.WriteByte('^')
	for i := e.arrow + 1; i < len(e.lineText); i++ {
		sb.WriteByte('-')
	}
	return sb.String()
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
