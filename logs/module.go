package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span correlates the log records of one interpreter run.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
