package parse

import (
	"strconv"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/token"
)

type NodeKind int

const (
	ObjectNode NodeKind = iota
	ArrayNode
)

func (k NodeKind) String() string {
	if k == ArrayNode {
		return "array"
	}
	return "object"
}

// Element is a *token.Token, a *Node or a *KeyVal. A nil Element marks an
// empty position.
type Element interface {
	Position() ioerr.Pos
}

type Node struct {
	Kind   NodeKind
	Values []Element
	Pos    ioerr.Pos
}

func (n *Node) Position() ioerr.Pos { return n.Pos }

type KeyVal struct {
	Key   string
	Value Element
	Pos   ioerr.Pos
}

func (kv *KeyVal) Position() ioerr.Pos { return kv.Pos }

// Document is a parsed iox text.
type Document struct {
	// Header holds the members before the --- separator, nil if there is
	// no separator.
	Header *Node
	Body   *Node
}

// PosOf returns the position of el, or nil for an empty position.
func PosOf(el Element) *ioerr.Pos {
	if el == nil {
		return nil
	}
	p := el.Position()
	return &p
}

// IsNull reports whether el is a null token.
func IsNull(el Element) bool {
	tok, ok := el.(*token.Token)
	return ok && tok.Kind == token.TNull
}

// Get returns the value of the member keyed k in n.
func (n *Node) Get(k string) (Element, bool) {
	for _, el := range n.Values {
		if kv, ok := el.(*KeyVal); ok && kv.Key == k {
			return kv.Value, true
		}
	}
	return nil, false
}

// Resolver substitutes a scalar token, typically a variable reference. It
// returns false to keep the token's own value.
type Resolver func(*token.Token) (any, bool)

// Native converts el to plain values without a schema: tokens become their
// values, arrays []any and objects map[string]any. Positional members of an
// object are keyed by their index.
func Native(el Element, resolve Resolver) any {
	switch x := el.(type) {
	case nil:
		return nil
	case *token.Token:
		if resolve != nil {
			if v, ok := resolve(x); ok {
				return v
			}
		}
		return x.Value
	case *KeyVal:
		return Native(x.Value, resolve)
	case *Node:
		if x.Kind == ArrayNode {
			res := make([]any, len(x.Values))
			for i, v := range x.Values {
				res[i] = Native(v, resolve)
			}
			return res
		}
		res := make(map[string]any, len(x.Values))
		for i, v := range x.Values {
			if kv, ok := v.(*KeyVal); ok {
				res[kv.Key] = Native(kv.Value, resolve)
				continue
			}
			if v == nil {
				continue
			}
			res[strconv.Itoa(i)] = Native(v, resolve)
		}
		return res
	}
	return nil
}
