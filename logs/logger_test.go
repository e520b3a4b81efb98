package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/insomnimus/rainfuck/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("run",
			"script", "rot13.bf",
			"ops", 42,
		)
		out := buf.String()
		if !strings.Contains(out, "script=rot13.bf") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "ops=42") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestJournalKeyMapping(t *testing.T) {
	for in, want := range map[string]string{
		"logs.span":   "LOGS_SPAN",
		"max-memory":  "MAX_MEMORY",
		"reached_eof": "REACHED_EOF",
	} {
		if got := toJournalKey(in); got != want {
			t.Fatalf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
