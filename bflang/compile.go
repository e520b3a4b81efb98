package bflang

import "fmt"

// Op is a compiled instruction. N is always at least 1: for non-bracket
// tokens it is the length of the collapsed run, for brackets it is the
// distance in ops to the matching bracket, identical in both directions.
type Op struct {
	Token Token
	N     int
}

// ir is the intermediate form produced by collapsing. Brackets carry a
// count of 0 until jump resolution fills them in.
type ir struct {
	span TokenSpan
	n    int
}

// Compile turns source bytes into the flat op list the VM executes:
// lex, collapse runs, resolve bracket jumps, drop the dead prefix.
// It is a pure function of src; compiling the same bytes twice yields
// identical op lists.
func Compile(src []byte) ([]Op, error) {
	irs := collapse(src)
	if err := resolveJumps(irs, src); err != nil {
		return nil, err
	}

	// A loop as the very first op can never run: the initial cell is
	// always zero. Drop the whole loop including both brackets.
	cutoff := 0
	if len(irs) > 0 && irs[0].span.Token == TokenLoopOpen {
		cutoff = irs[0].n + 1
	}

	ops := make([]Op, 0, len(irs)-cutoff)
	for _, x := range irs[cutoff:] {
		if x.n == 0 {
			return nil, fmt.Errorf("internal: unresolved count for %q at offset %d", x.span.Token.String(), x.span.Offset)
		}
		ops = append(ops, Op{Token: x.span.Token, N: x.n})
	}
	return ops, nil
}

// collapse merges runs of identical adjacent non-bracket tokens into a
// single ir with the run length. Brackets are never merged.
func collapse(src []byte) []ir {
	var irs []ir
	for span := range Tokens(src) {
		if span.Token == TokenLoopOpen || span.Token == TokenLoopClose {
			irs = append(irs, ir{span: span})
			continue
		}
		if n := len(irs); n > 0 && irs[n-1].span.Token == span.Token {
			irs[n-1].n++
			continue
		}
		irs = append(irs, ir{span: span, n: 1})
	}
	return irs
}

// resolveJumps matches every bracket pair and writes the slot distance
// into both counts. An explicit index stack stands in for recursion so
// deeply nested programs cannot exhaust the call stack.
func resolveJumps(irs []ir, src []byte) error {
	var open []int
	for i, x := range irs {
		switch x.span.Token {
		case TokenLoopOpen:
			open = append(open, i)
		case TokenLoopClose:
			if len(open) == 0 {
				return newSyntaxError(ErrUnexpectedBracket, x.span.Offset, src)
			}
			j := open[len(open)-1]
			open = open[:len(open)-1]
			irs[i].n = i - j
			irs[j].n = i - j
		}
	}
	if len(open) > 0 {
		// Report the outermost unmatched bracket, not the innermost.
		return newSyntaxError(ErrUnmatchedBracket, irs[open[0]].span.Offset, src)
	}
	return nil
}
