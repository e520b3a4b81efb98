// Package bfvm executes compiled tape-machine programs.
//
// The machine is a growable byte tape, a data pointer and an
// instruction pointer over a flat op list. Cell arithmetic, leftward
// pointer movement and end-of-input behavior are policy-driven; see
// Options.
//
// Known inconsistency, preserved on purpose: rightward pointer
// movement ignores the pointer overflow mode and always hard-fails on
// index arithmetic overflow, while leftward movement honors all three
// modes. The original behaves this way and the intended semantics are
// ambiguous, so it is kept rather than unified.
package bfvm

import (
	"io"

	"github.com/insomnimus/rainfuck/bflang"
)

// VM is the execution state of one run. It exclusively owns the tape
// and both stream handles for the duration of Eval; a VM must not be
// reused after Eval returns.
type VM struct {
	IP         int
	DP         int
	Tape       []byte
	Ops        []bflang.Op
	ReachedEOF bool

	iobuf  []byte
	input  io.Reader
	output io.Writer
	opts   Options
}

// New builds a VM over ops, taking ownership of both streams for the
// run. Option values below the enforced minimums are raised.
func New(ops []bflang.Op, input io.Reader, output io.Writer, opts Options) *VM {
	opts = opts.withFloors()
	return &VM{
		Tape:   make([]byte, MinTapeSize),
		Ops:    ops,
		iobuf:  make([]byte, 0, min(opts.MaxIoChunk, 128)),
		input:  input,
		output: output,
		opts:   opts,
	}
}

// cell reads the current cell, treating an ungrown position as 0.
func (v *VM) cell() byte {
	if v.DP < len(v.Tape) {
		return v.Tape[v.DP]
	}
	return 0
}

// growTape extends the tape so the current cell is addressable. It
// grows exactly to DP+1, never beyond, and fails once DP passes the
// configured maximum.
func (v *VM) growTape() error {
	if v.DP >= v.opts.MaxTape {
		return OutOfMemoryError{Have: v.opts.MaxTape, Want: v.DP}
	}
	if n := v.DP + 1 - len(v.Tape); n > 0 {
		v.Tape = append(v.Tape, make([]byte, n)...)
	}
	return nil
}

// growIobuf makes the scratch buffer at least n bytes long, capped by
// the configured chunk size.
func (v *VM) growIobuf(n int) []byte {
	n = min(n, v.opts.MaxIoChunk)
	if n > len(v.iobuf) {
		v.iobuf = append(v.iobuf, make([]byte, n-len(v.iobuf))...)
	}
	return v.iobuf[:n]
}
