package parse

import (
	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/token"
)

// Parse tokenizes src and builds its parse tree.
func Parse(src string, opts ...ParseOption) (*Document, error) {
	toks, err := token.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens builds a parse tree from toks. Comment tokens are skipped.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{opts: pOpts}
	for i := range toks {
		if toks[i].Kind != token.TComment {
			p.toks = append(p.toks, &toks[i])
		}
	}
	first, err := p.root()
	if err != nil {
		return nil, err
	}
	if p.i == len(p.toks) {
		return &Document{Body: first}, nil
	}
	// at a separator
	p.i++
	body, err := p.root()
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		return nil, p.unexpected(p.toks[p.i])
	}
	return &Document{Header: first, Body: body}, nil
}

type parser struct {
	toks  []*token.Token
	i     int
	depth int
	opts  *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return p.toks[p.i]
}

func (p *parser) unexpected(tok *token.Token) error {
	return ioerr.Newf(ioerr.UnexpectedToken, tok.Pos(), "%q", tok.Text)
}

func (p *parser) root() (*Node, error) {
	n := &Node{Kind: ObjectNode, Pos: ioerr.Pos{Row: 1, Col: 1}}
	if tok := p.peek(); tok != nil {
		n.Pos = tok.Position()
	}
	if err := p.members(n, nil); err != nil {
		return nil, err
	}
	return n, nil
}

// atClose reports whether the members of n end at the current token. open
// is nil for a root node, which ends at a separator or the end of input.
func (p *parser) atClose(open *token.Token) (bool, error) {
	tok := p.peek()
	if open == nil {
		return tok == nil || tok.Kind == token.TSeparator, nil
	}
	if tok == nil {
		return false, ioerr.Newf(ioerr.UnclosedBracket, open.Pos(), "%q", open.Text)
	}
	switch {
	case open.Is("{"):
		return tok.Is("}"), nil
	default:
		return tok.Is("]"), nil
	}
}

func (p *parser) members(n *Node, open *token.Token) error {
	done, err := p.atClose(open)
	if err != nil || done {
		return err
	}
	for {
		el, err := p.member(n.Kind)
		if err != nil {
			return err
		}
		n.Values = append(n.Values, el)
		done, err := p.atClose(open)
		if err != nil || done {
			return err
		}
		tok := p.peek()
		if !tok.Is(",") {
			return p.unexpected(tok)
		}
		p.i++
		// a trailing comma leaves an empty last position
		if done, err := p.atClose(open); err != nil || done {
			if err == nil {
				n.Values = append(n.Values, nil)
			}
			return err
		}
	}
}

func (p *parser) emptySlot() bool {
	tok := p.peek()
	return tok == nil || tok.Is(",") || tok.Is("}") || tok.Is("]") || tok.Kind == token.TSeparator
}

func (p *parser) member(kind NodeKind) (Element, error) {
	if p.emptySlot() {
		return nil, nil
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok == nil || !tok.Is(":") {
		return v, nil
	}
	if kind == ArrayNode {
		return nil, ioerr.New(ioerr.KeyedMemberInArray, tok.Pos())
	}
	key, ok := v.(*token.Token)
	if !ok {
		return nil, ioerr.New(ioerr.InvalidKey, PosOf(v))
	}
	p.i++
	kv := &KeyVal{Key: keyText(key), Pos: key.Position()}
	if p.emptySlot() {
		return kv, nil
	}
	if kv.Value, err = p.value(); err != nil {
		return nil, err
	}
	return kv, nil
}

// keyText is the member name a key token spells. Open scalars such as T, N
// or 30 name members by their source text.
func keyText(tok *token.Token) string {
	if s, ok := tok.Value.(string); ok && tok.Kind == token.TString {
		return s
	}
	return tok.Text
}

func (p *parser) value() (Element, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.TString, token.TNumber, token.TBoolean, token.TNull:
		p.i++
		return tok, nil
	case token.TSymbol:
		switch {
		case tok.Is("{"):
			return p.container(tok, ObjectNode)
		case tok.Is("["):
			return p.container(tok, ArrayNode)
		}
	}
	return nil, p.unexpected(tok)
}

func (p *parser) container(open *token.Token, kind NodeKind) (Element, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return nil, ioerr.Newf(ioerr.DepthExceeded, open.Pos(), "limit %d", p.opts.maxDepth)
	}
	p.i++
	n := &Node{Kind: kind, Pos: open.Position()}
	if err := p.members(n, open); err != nil {
		return nil, err
	}
	// closing bracket
	p.i++
	return n, nil
}
