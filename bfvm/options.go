package bfvm

import "fmt"

// Overflow selects what happens when cell or pointer arithmetic leaves
// the representable range.
type Overflow uint8

const (
	// OverflowWrap wraps around modulo the range.
	OverflowWrap Overflow = iota
	// OverflowSaturate clamps to the nearest bound.
	OverflowSaturate
	// OverflowCheck fails the run.
	OverflowCheck
)

func (o Overflow) String() string {
	switch o {
	case OverflowWrap:
		return "wrap"
	case OverflowSaturate:
		return "saturate"
	case OverflowCheck:
		return "check"
	}
	return "unknown"
}

func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "wrap":
		return OverflowWrap, nil
	case "saturate":
		return OverflowSaturate, nil
	case "check":
		return OverflowCheck, nil
	}
	return 0, fmt.Errorf("unknown overflow mode: %q", s)
}

// EofMode selects the behavior of read instructions once the input
// stream is exhausted.
type EofMode uint8

const (
	// EofNoop leaves the current cell unchanged.
	EofNoop EofMode = iota
	// EofSet0 sets the current cell to 0.
	EofSet0
	// EofTerminate fails the run.
	EofTerminate
)

func (m EofMode) String() string {
	switch m {
	case EofNoop:
		return "noop"
	case EofSet0:
		return "set0"
	case EofTerminate:
		return "terminate"
	}
	return "unknown"
}

func ParseEofMode(s string) (EofMode, error) {
	switch s {
	case "noop":
		return EofNoop, nil
	case "set0":
		return EofSet0, nil
	case "terminate":
		return EofTerminate, nil
	}
	return 0, fmt.Errorf("unknown eof mode: %q", s)
}

const (
	// MinTapeSize is both the initial tape size and the lower bound
	// enforced on Options.MaxTape.
	MinTapeSize = 32 << 10
	// MinIoChunk is the lower bound enforced on Options.MaxIoChunk.
	MinIoChunk = 4
)

// Options configures one run. Values below the enforced minimums are
// raised at VM construction.
type Options struct {
	CellOverflow Overflow
	PtrOverflow  Overflow
	Eof          EofMode
	MaxTape      int
	MaxIoChunk   int
}

func DefaultOptions() Options {
	return Options{
		CellOverflow: OverflowWrap,
		PtrOverflow:  OverflowCheck,
		Eof:          EofNoop,
		MaxTape:      1_000_000,
		MaxIoChunk:   1024,
	}
}

func (o Options) withFloors() Options {
	o.MaxTape = max(o.MaxTape, MinTapeSize)
	o.MaxIoChunk = max(o.MaxIoChunk, MinIoChunk)
	return o
}
