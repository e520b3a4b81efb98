package bfvm

import (
	"errors"
	"io"

	"github.com/insomnimus/rainfuck/bflang"
)

// Eval interprets the program to completion or to the first error.
// Every error is fatal to the run; there is no instruction-level
// recovery. Eval blocks on the stream endpoints during read and write
// instructions.
func (v *VM) Eval() error {
	for v.IP < len(v.Ops) {
		op := v.Ops[v.IP]

		switch op.Token {

		case bflang.TokenRight:
			next := v.DP + op.N
			if next < v.DP {
				return PointerOverflowError{From: v.DP, Amount: op.N}
			}
			v.DP = next

		case bflang.TokenLeft:
			if err := v.left(op.N); err != nil {
				return err
			}

		case bflang.TokenAdd:
			if err := v.add(op.N); err != nil {
				return err
			}

		case bflang.TokenSub:
			if err := v.sub(op.N); err != nil {
				return err
			}

		case bflang.TokenRead:
			if err := v.growTape(); err != nil {
				return err
			}
			b, err := v.read(op.N)
			if err != nil {
				return err
			}
			v.Tape[v.DP] = b

		case bflang.TokenWrite:
			if err := v.write(op.N); err != nil {
				return err
			}

		case bflang.TokenLoopOpen:
			if v.cell() == 0 {
				v.IP += op.N
			}

		case bflang.TokenLoopClose:
			if v.cell() != 0 {
				v.IP -= op.N
			}
		}

		v.IP++
	}

	return nil
}

func (v *VM) left(n int) error {
	switch v.opts.PtrOverflow {
	case OverflowSaturate:
		if n >= v.DP {
			v.DP = 0
		} else {
			v.DP -= n
		}
	case OverflowWrap:
		if n <= v.DP {
			v.DP -= n
		} else {
			// Wraparound index modulo the configured maximum.
			v.DP = (v.opts.MaxTape - (n-v.DP)%v.opts.MaxTape) % v.opts.MaxTape
		}
	case OverflowCheck:
		if n > v.DP {
			return PointerUnderflowError{From: v.DP, Amount: n}
		}
		v.DP -= n
	}
	return nil
}

func (v *VM) add(n int) error {
	if err := v.growTape(); err != nil {
		return err
	}
	switch v.opts.CellOverflow {
	case OverflowWrap:
		v.Tape[v.DP] += byte(n)
	case OverflowSaturate:
		v.Tape[v.DP] = byte(min(255, int(v.Tape[v.DP])+n))
	case OverflowCheck:
		sum := int(v.Tape[v.DP]) + n
		if n > 255 || sum > 255 {
			return AddOverflowError{Cell: v.Tape[v.DP], Amount: n}
		}
		v.Tape[v.DP] = byte(sum)
	}
	return nil
}

func (v *VM) sub(n int) error {
	if err := v.growTape(); err != nil {
		return err
	}
	switch v.opts.CellOverflow {
	case OverflowWrap:
		v.Tape[v.DP] -= byte(n)
	case OverflowSaturate:
		v.Tape[v.DP] = byte(max(0, int(v.Tape[v.DP])-n))
	case OverflowCheck:
		if n > int(v.Tape[v.DP]) {
			return SubOverflowError{Cell: v.Tape[v.DP], Amount: n}
		}
		v.Tape[v.DP] -= byte(n)
	}
	return nil
}

// read consumes up to n bytes from the input and returns the last one,
// matching n consecutive single-byte reads where only the final byte
// survives. A zero-length result sets the sticky EOF flag; once set,
// the stream is never touched again and the configured EOF mode
// decides every subsequent read.
func (v *VM) read(n int) (byte, error) {
	buf := v.growIobuf(n)

	if v.ReachedEOF {
		return v.eofValue(v.cell())
	}

	remaining := n
	last := v.Tape[v.DP]
	for remaining > 0 {
		chunk := buf[:min(len(buf), remaining)]
		rn, err := v.input.Read(chunk)
		if rn > 0 {
			last = chunk[rn-1]
			remaining -= rn
		}
		switch {
		case errors.Is(err, io.EOF), rn == 0 && err == nil:
			v.ReachedEOF = true
			if remaining > 0 {
				return v.eofValue(last)
			}
			return last, nil
		case err != nil:
			return 0, StreamError{Err: err}
		}
	}
	return last, nil
}

func (v *VM) eofValue(last byte) (byte, error) {
	switch v.opts.Eof {
	case EofNoop:
		return last, nil
	case EofSet0:
		return 0, nil
	}
	return 0, StreamError{Err: io.ErrUnexpectedEOF}
}

// write emits the current cell's byte n times, batching identical
// bytes into chunks bounded by the configured chunk size. The sink
// still receives exactly n copies in order.
func (v *VM) write(n int) error {
	val := v.cell()
	buf := v.growIobuf(n)
	for i := range buf {
		buf[i] = val
	}
	for n > 0 {
		chunk := buf[:min(len(buf), n)]
		if _, err := v.output.Write(chunk); err != nil {
			return StreamError{Err: err}
		}
		n -= len(chunk)
	}
	return nil
}
