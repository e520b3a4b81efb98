package bflang

import "iter"

// Token is one of the eight instruction symbols.
type Token uint8

const (
	TokenLeft Token = iota
	TokenRight
	TokenAdd
	TokenSub
	TokenRead
	TokenWrite
	TokenLoopOpen
	TokenLoopClose
)

func (t Token) String() string {
	switch t {
	case TokenLeft:
		return "<"
	case TokenRight:
		return ">"
	case TokenAdd:
		return "+"
	case TokenSub:
		return "-"
	case TokenRead:
		return ","
	case TokenWrite:
		return "."
	case TokenLoopOpen:
		return "["
	case TokenLoopClose:
		return "]"
	}
	return "?"
}

// TokenSpan is a token together with its byte offset in the source.
type TokenSpan struct {
	Token  Token
	Offset int
}

func tokenOf(b byte) (Token, bool) {
	switch b {
	case '<':
		return TokenLeft, true
	case '>':
		return TokenRight, true
	case '+':
		return TokenAdd, true
	case '-':
		return TokenSub, true
	case ',':
		return TokenRead, true
	case '.':
		return TokenWrite, true
	case '[':
		return TokenLoopOpen, true
	case ']':
		return TokenLoopClose, true
	}
	return 0, false
}

// Tokens iterates the instruction symbols of src in order. Any byte
// that is not one of the eight symbols is commentary and skipped.
// The sequence can be ranged over any number of times.
func Tokens(src []byte) iter.Seq[TokenSpan] {
	return func(yield func(TokenSpan) bool) {
		for i, b := range src {
			t, ok := tokenOf(b)
			if !ok {
				continue
			}
			if !yield(TokenSpan{Token: t, Offset: i}) {
				return
			}
		}
	}
}
