package token

import (
	"fmt"
	"strconv"

	"github.com/iox-format/go-iox/ioerr"
)

type Kind int

const (
	TString Kind = iota
	TNumber
	TBoolean
	TNull
	TSymbol
	TSeparator
	TComment
)

func (k Kind) String() string {
	switch k {
	case TString:
		return "string"
	case TNumber:
		return "number"
	case TBoolean:
		return "boolean"
	case TNull:
		return "null"
	case TSymbol:
		return "symbol"
	case TSeparator:
		return "separator"
	case TComment:
		return "comment"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func Kinds() []Kind {
	return []Kind{TString, TNumber, TBoolean, TNull, TSymbol, TSeparator, TComment}
}

// Form records how a string token was written.
type Form int

const (
	OpenForm Form = iota
	QuotedForm
	RawForm
)

type Token struct {
	Kind Kind
	Form Form
	// Value is the decoded value: string, int64, float64, bool or nil.
	Value any
	// Text is the token as written in the source.
	Text string

	Row   int
	Col   int
	Index int
	// End is the character offset just past the token.
	End int
}

func (t *Token) Position() ioerr.Pos {
	return ioerr.Pos{Row: t.Row, Col: t.Col, Index: t.Index}
}

func (t *Token) Pos() *ioerr.Pos {
	p := t.Position()
	return &p
}

// Is reports whether t is the symbol s.
func (t *Token) Is(s string) bool {
	return t.Kind == TSymbol && t.Text == s
}

// Str returns the string value of t, or its text for non-string kinds.
func (t *Token) Str() string {
	if s, ok := t.Value.(string); ok {
		return s
	}
	return t.Text
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q at %d:%d", t.Kind, t.Text, t.Row, t.Col)
}
