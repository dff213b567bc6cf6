package encode

import (
	"strings"

	"github.com/iox-format/go-iox/token"
)

// Highlight colors the tokens of src in place, leaving the text between
// them untouched. toks must come from tokenizing src.
func Highlight(src string, toks []token.Token, c *Colors) string {
	rs := []rune(src)
	b := &strings.Builder{}
	at := 0
	for i := range toks {
		tok := &toks[i]
		b.WriteString(string(rs[at:tok.Index]))
		b.WriteString(c.Color(tok.Kind, attrOf(toks, i), string(rs[tok.Index:tok.End])))
		at = tok.End
	}
	b.WriteString(string(rs[at:]))
	return b.String()
}

func attrOf(toks []token.Token, i int) ColorAttr {
	switch toks[i].Kind {
	case token.TSymbol:
		return SepColor
	case token.TComment:
		return CommentColor
	case token.TSeparator, token.TNull, token.TBoolean:
		return ValueColor
	}
	for j := i + 1; j < len(toks); j++ {
		if toks[j].Kind == token.TComment {
			continue
		}
		if toks[j].Is(":") {
			return FieldColor
		}
		break
	}
	return ValueColor
}
