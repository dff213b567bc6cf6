package token

import (
	"unicode"

	"github.com/iox-format/go-iox/debug"
	"github.com/iox-format/go-iox/ioerr"
)

// Tokenizer scans iox text into tokens. A Tokenizer is used by one
// goroutine for one document.
type Tokenizer struct {
	src []rune

	// scan position; row and col describe src[i]
	i   int
	row int
	col int

	toks []Token
}

func New(src string) *Tokenizer {
	return &Tokenizer{
		src: []rune(src),
		row: 1,
		col: 1,
	}
}

// Tokenize scans all of src.
func Tokenize(src string) ([]Token, error) {
	t := New(src)
	if err := t.ReadAll(); err != nil {
		return nil, err
	}
	return t.toks, nil
}

// ReadAll scans the remaining input, accumulating tokens.
func (t *Tokenizer) ReadAll() error {
	for {
		t.skipSpace()
		if t.i >= len(t.src) {
			return nil
		}
		tok, err := t.next()
		if err != nil {
			return err
		}
		if debug.Tokens() {
			debug.Logf("token %s", tok.String())
		}
		t.toks = append(t.toks, tok)
	}
}

func (t *Tokenizer) Len() int {
	return len(t.toks)
}

// Get returns the i'th token, or nil if i is out of range.
func (t *Tokenizer) Get(i int) *Token {
	if i < 0 || i >= len(t.toks) {
		return nil
	}
	return &t.toks[i]
}

func (t *Tokenizer) Tokens() []Token {
	return t.toks
}

func (t *Tokenizer) pos() *ioerr.Pos {
	return &ioerr.Pos{Row: t.row, Col: t.col, Index: t.i}
}

// advance moves the scan position to j, keeping row and col current.
func (t *Tokenizer) advance(j int) {
	for t.i < j {
		switch t.src[t.i] {
		case '\n':
			t.row++
			t.col = 1
		case '\r':
			if t.i+1 < len(t.src) && t.src[t.i+1] == '\n' {
				// counted at the '\n'
				t.col++
			} else {
				t.row++
				t.col = 1
			}
		default:
			t.col++
		}
		t.i++
	}
}

func (t *Tokenizer) skipSpace() {
	j := t.i
	for j < len(t.src) && unicode.IsSpace(t.src[j]) {
		j++
	}
	t.advance(j)
}

func (t *Tokenizer) start(kind Kind) Token {
	return Token{
		Kind:  kind,
		Row:   t.row,
		Col:   t.col,
		Index: t.i,
	}
}

func (t *Tokenizer) next() (Token, error) {
	r := t.src[t.i]
	switch r {
	case '{', '}', '[', ']', ':', ',':
		tok := t.start(TSymbol)
		tok.Text = string(r)
		tok.Value = tok.Text
		tok.End = t.i + 1
		t.advance(tok.End)
		return tok, nil
	case '#':
		return t.comment(), nil
	case '"':
		return t.quoted()
	case '\'':
		return t.raw()
	case '-':
		if end, ok := separatorAt(t.src, t.i); ok {
			tok := t.start(TSeparator)
			tok.Text = "---"
			tok.Value = tok.Text
			tok.End = end
			t.advance(end)
			return tok, nil
		}
	}
	return t.open(), nil
}

func (t *Tokenizer) comment() Token {
	tok := t.start(TComment)
	j := t.i
	for j < len(t.src) && !isNewline(t.src[j]) {
		j++
	}
	text := trimRightSpace(t.src[t.i:j])
	tok.Text = string(text)
	tok.Value = string(trimLeftSpace(text[1:]))
	tok.End = t.i + len(text)
	t.advance(j)
	return tok
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

func isDelim(r rune) bool {
	switch r {
	case ',', '{', '}', '[', ']', ':', '#':
		return true
	}
	return false
}

// separatorAt reports whether a "---" line separator starts at i. It must be
// the only thing on its line apart from blanks; end is the offset just past
// the dashes.
func separatorAt(src []rune, i int) (int, bool) {
	for k := i - 1; k >= 0 && !isNewline(src[k]); k-- {
		if src[k] != ' ' && src[k] != '\t' {
			return 0, false
		}
	}
	if i+3 > len(src) || src[i] != '-' || src[i+1] != '-' || src[i+2] != '-' {
		return 0, false
	}
	for k := i + 3; k < len(src) && !isNewline(src[k]); k++ {
		if src[k] != ' ' && src[k] != '\t' {
			return 0, false
		}
	}
	return i + 3, true
}

func trimRightSpace(rs []rune) []rune {
	n := len(rs)
	for n > 0 && unicode.IsSpace(rs[n-1]) {
		n--
	}
	return rs[:n]
}

func trimLeftSpace(rs []rune) []rune {
	i := 0
	for i < len(rs) && unicode.IsSpace(rs[i]) {
		i++
	}
	return rs[i:]
}
