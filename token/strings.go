package token

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/iox-format/go-iox/ioerr"
)

// open scans an open string starting at t.i, which is not whitespace.
func (t *Tokenizer) open() Token {
	tok := t.start(TString)
	tok.Form = OpenForm
	j := t.i
	for j < len(t.src) {
		r := t.src[j]
		if isDelim(r) {
			break
		}
		if isNewline(r) && separatorNext(t.src, j) {
			break
		}
		j++
	}
	text := trimRightSpace(t.src[t.i:j])
	tok.Text = string(text)
	tok.End = t.i + len(text)
	tok.Kind, tok.Value = classify(normalizeNewlines(text))
	t.advance(j)
	return tok
}

// separatorNext reports whether the line after the newline at j is a
// separator line.
func separatorNext(src []rune, j int) bool {
	k := j + 1
	if src[j] == '\r' && k < len(src) && src[k] == '\n' {
		k++
	}
	for k < len(src) && (src[k] == ' ' || src[k] == '\t') {
		k++
	}
	_, ok := separatorAt(src, k)
	return ok
}

func normalizeNewlines(rs []rune) string {
	b := &strings.Builder{}
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\r' {
			if i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
			r = '\n'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func classify(s string) (Kind, any) {
	switch s {
	case "null", "N":
		return TNull, nil
	case "true", "T":
		return TBoolean, true
	case "false", "F":
		return TBoolean, false
	}
	if v, ok := parseNumber(s); ok {
		return TNumber, v
	}
	return TString, s
}

// quoted scans a double quoted string starting at t.i.
func (t *Tokenizer) quoted() (Token, error) {
	tok := t.start(TString)
	tok.Form = QuotedForm
	src := t.src
	b := &strings.Builder{}
	j := t.i + 1
	for {
		if j >= len(src) {
			return tok, ioerr.New(ioerr.StringNotClosed, t.pos())
		}
		r := src[j]
		switch r {
		case '"':
			j++
			tok.Text = string(src[t.i:j])
			tok.Value = b.String()
			tok.End = j
			t.advance(j)
			return tok, nil
		case '\r':
			b.WriteByte('\n')
			if j+1 < len(src) && src[j+1] == '\n' {
				j++
			}
			j++
		case '\\':
			if j+1 >= len(src) {
				return tok, ioerr.New(ioerr.StringNotClosed, t.pos())
			}
			j = unescape(b, src, j+1)
		default:
			b.WriteRune(r)
			j++
		}
	}
}

// unescape decodes the escape whose letter is at src[j] and returns the
// offset after it. Unknown letters decode to themselves.
func unescape(b *strings.Builder, src []rune, j int) int {
	e := src[j]
	switch e {
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, ok := hex4(src, j+1)
		if !ok {
			b.WriteRune('u')
			return j + 1
		}
		j += 4
		if utf16.IsSurrogate(r) {
			if j+6 < len(src) && src[j+1] == '\\' && src[j+2] == 'u' {
				if r2, ok := hex4(src, j+3); ok {
					if dr := utf16.DecodeRune(r, r2); dr != unicode.ReplacementChar {
						b.WriteRune(dr)
						return j + 7
					}
				}
			}
			r = unicode.ReplacementChar
		}
		b.WriteRune(r)
	case '\r':
		b.WriteByte('\n')
		if j+1 < len(src) && src[j+1] == '\n' {
			j++
		}
	default:
		b.WriteRune(e)
	}
	return j + 1
}

func hex4(src []rune, j int) (rune, bool) {
	if j+4 > len(src) {
		return 0, false
	}
	var r rune
	for _, c := range src[j : j+4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= c - '0'
		case c >= 'a' && c <= 'f':
			r |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			r |= c - 'A' + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// raw scans a single quoted string starting at t.i.
func (t *Tokenizer) raw() (Token, error) {
	tok := t.start(TString)
	tok.Form = RawForm
	src := t.src
	b := &strings.Builder{}
	j := t.i + 1
	for {
		if j >= len(src) {
			return tok, ioerr.New(ioerr.StringNotClosed, t.pos())
		}
		r := src[j]
		switch r {
		case '\'':
			if j+1 < len(src) && src[j+1] == '\'' {
				b.WriteByte('\'')
				j += 2
				continue
			}
			j++
			tok.Text = string(src[t.i:j])
			tok.Value = b.String()
			tok.End = j
			t.advance(j)
			return tok, nil
		case '\r':
			b.WriteByte('\n')
			if j+1 < len(src) && src[j+1] == '\n' {
				j++
			}
			j++
		default:
			b.WriteRune(r)
			j++
		}
	}
}
