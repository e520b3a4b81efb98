package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var overflow string
	executor.Define("-overflow", Func(func(mode string) {
		overflow = mode
	}))
	var maxMemory int
	executor.Define("-max-memory", Func(func(n int) {
		maxMemory = n
	}))

	if err := executor.Execute([]string{
		"-overflow", "saturate",
		"-max-memory", "65536",
	}); err != nil {
		t.Fatal(err)
	}
	if overflow != "saturate" {
		t.Fatalf("got %q", overflow)
	}
	if maxMemory != 65536 {
		t.Fatalf("got %d", maxMemory)
	}

	err := executor.Execute([]string{
		"-bogus",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -bogus") {
		t.Fatalf("got %v", err)
	}
}

func TestInlineValue(t *testing.T) {
	executor := NewExecutor()

	var eofMode string
	executor.Define("-eof-mode", Func(func(mode string) {
		eofMode = mode
	}))
	var maxIo int
	executor.Define("-max-io", Func(func(n int) {
		maxIo = n
	}))

	if err := executor.Execute([]string{
		"-eof-mode=terminate",
		"-max-io=512",
	}); err != nil {
		t.Fatal(err)
	}
	if eofMode != "terminate" {
		t.Fatalf("got %q", eofMode)
	}
	if maxIo != 512 {
		t.Fatalf("got %d", maxIo)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()

	var dumped bool
	var limit int
	executor.Define("tape", Sub(map[string]*Command{
		"dump": Func(func() {
			dumped = true
		}),
		"limit": Func(func(n int) {
			limit = n
		}),
	}))

	if err := executor.Execute([]string{
		"tape",
		"dump",
		"limit", "30000",
	}); err != nil {
		t.Fatal(err)
	}
	if !dumped {
		t.Fatal()
	}
	if limit != 30000 {
		t.Fatalf("got %d", limit)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()

	executor.Define("-script", Func(func(path string) error {
		if path == "" {
			return errors.New("empty script path")
		}
		return nil
	}))

	if err := executor.Execute([]string{"-script", "rot13.bf"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"-script", ""})
	if err == nil || !strings.Contains(err.Error(), "empty script path") {
		t.Fatalf("got %v", err)
	}
}

func TestArgConversion(t *testing.T) {
	executor := NewExecutor()

	var tap bool
	executor.Define("-tap-enabled", Func(func(b bool) {
		tap = b
	}))
	if err := executor.Execute([]string{"-tap-enabled", "yes"}); err != nil {
		t.Fatal(err)
	}
	if !tap {
		t.Fatal()
	}

	var mem int
	executor.Define("-mem", Func(func(n int) {
		mem = n
	}))
	err := executor.Execute([]string{"-mem", "lots"})
	if err == nil || !strings.Contains(err.Error(), "convert lots to int") {
		t.Fatalf("got %v", err)
	}
	_ = mem

	err = executor.Execute([]string{"-mem"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()

	var path string
	var line int
	executor.Define("break", Func(func(p *string, l *int) {
		path = *p
		line = *l
	}))

	if err := executor.Execute([]string{"break", "loop.bf", "7"}); err != nil {
		t.Fatal(err)
	}
	if path != "loop.bf" || line != 7 {
		t.Fatalf("got %q %d", path, line)
	}

	if err := executor.Execute([]string{"break", "loop.bf"}); err != nil {
		t.Fatal(err)
	}
	if path != "loop.bf" || line != 0 {
		t.Fatalf("got %q %d", path, line)
	}

	if err := executor.Execute([]string{"break"}); err != nil {
		t.Fatal(err)
	}
	if path != "" || line != 0 {
		t.Fatalf("got %q %d", path, line)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-overflow", Func(func(string) {}))

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	executor.Define("-overflow", Func(func(string) {}))
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("tape", Sub(map[string]*Command{
		"dump": nil,
	}))
	executor.Define("io", Sub(map[string]*Command{
		"dump": nil,
	}))
	err := executor.Execute([]string{"tape", "io"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: io dump") {
		t.Fatalf("got %v", err)
	}
}
