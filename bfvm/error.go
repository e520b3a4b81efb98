package bfvm

import "fmt"

// PointerOverflowError reports rightward pointer movement overflowing
// the index range. Rightward movement always hard-fails on this,
// regardless of the configured pointer overflow mode; see the package
// comment.
type PointerOverflowError struct {
	From   int
	Amount int
}

func (e PointerOverflowError) Error() string {
	return fmt.Sprintf("runtime error: data pointer exceeded the maximum possible size: %d + %d", e.From, e.Amount)
}

// PointerUnderflowError reports leftward pointer movement below zero
// under OverflowCheck.
type PointerUnderflowError struct {
	From   int
	Amount int
}

func (e PointerUnderflowError) Error() string {
	return fmt.Sprintf("runtime error: data pointer moved below 0: %d - %d", e.From, e.Amount)
}

// OutOfMemoryError reports a mutating access past the configured
// maximum tape size.
type OutOfMemoryError struct {
	Have int
	Want int
}

func (e OutOfMemoryError) Error() string {
	return fmt.Sprintf("runtime error: exceeded the upper limit on memory: have %d, want %d", e.Have, e.Want)
}

// AddOverflowError reports a checked cell addition that does not fit
// in 8 bits.
type AddOverflowError struct {
	Cell   byte
	Amount int
}

func (e AddOverflowError) Error() string {
	return fmt.Sprintf("runtime error: attempt to add with overflow: %d + %d", e.Cell, e.Amount)
}

// SubOverflowError reports a checked cell subtraction below zero.
type SubOverflowError struct {
	Cell   byte
	Amount int
}

func (e SubOverflowError) Error() string {
	return fmt.Sprintf("runtime error: attempt to subtract with overflow: %d - %d", e.Cell, e.Amount)
}

// StreamError propagates a failure from the input or output stream,
// including the unexpected end of input under EofTerminate.
type StreamError struct {
	Err error
}

func (e StreamError) Error() string {
	return fmt.Sprintf("runtime error: io error: %v", e.Err)
}

func (e StreamError) Unwrap() error {
	return e.Err
}
