package encode

import (
	"io"
	"strings"

	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/token"
)

type EncState struct {
	indent int
	wire   bool
	colors *Colors

	b *strings.Builder
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{colors: &Colors{Default: colorDefault}, b: &strings.Builder{}}
	for _, o := range opts {
		o(es)
	}
	return es
}

// Encode writes doc, its header first when it has one.
func Encode(doc *parse.Document, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if doc.Header != nil {
		es.root(doc.Header)
		es.b.WriteString("\n")
		es.b.WriteString(es.colors.Color(token.TSeparator, ValueColor, "---"))
		es.b.WriteString("\n")
	}
	es.root(doc.Body)
	es.b.WriteString("\n")
	_, err := io.WriteString(w, es.b.String())
	return err
}

// EncodeNode writes n as a root object, without braces.
func EncodeNode(n *parse.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	es.root(n)
	_, err := io.WriteString(w, es.b.String())
	return err
}

// MustString renders n as a root object on one line.
func MustString(n *parse.Node) string {
	b := &strings.Builder{}
	if err := EncodeNode(n, b); err != nil {
		panic(err)
	}
	return b.String()
}

func (es *EncState) sep(s string) string {
	return es.colors.Color(token.TSymbol, SepColor, s)
}

func (es *EncState) comma() string {
	if es.wire {
		return es.sep(",")
	}
	return es.sep(",") + " "
}

func (es *EncState) root(n *parse.Node) {
	if es.indent > 0 && len(n.Values) > 1 {
		es.members(n, 0, es.sep(",")+"\n")
		return
	}
	es.members(n, 0, es.comma())
}

func (es *EncState) members(n *parse.Node, level int, sep string) {
	for i, el := range n.Values {
		if i > 0 {
			es.b.WriteString(sep)
		}
		es.element(el, level)
	}
}

func (es *EncState) element(el parse.Element, level int) {
	switch x := el.(type) {
	case nil:
	case *token.Token:
		es.b.WriteString(es.colors.Color(x.Kind, ValueColor, x.Text))
	case *parse.KeyVal:
		es.b.WriteString(es.colors.Color(token.TString, FieldColor, token.FormatKey(x.Key)))
		es.b.WriteString(es.sep(":"))
		if x.Value != nil && !es.wire {
			es.b.WriteString(" ")
		}
		es.element(x.Value, level)
	case *parse.Node:
		es.node(x, level)
	}
}

func (es *EncState) node(n *parse.Node, level int) {
	lb, rb := "{", "}"
	if n.Kind == parse.ArrayNode {
		lb, rb = "[", "]"
	}
	es.b.WriteString(es.sep(lb))
	if es.indent > 0 && hasContainer(n) {
		pad := strings.Repeat(" ", es.indent*(level+1))
		es.b.WriteString("\n" + pad)
		es.members(n, level+1, es.sep(",")+"\n"+pad)
		es.b.WriteString("\n" + strings.Repeat(" ", es.indent*level))
	} else {
		es.members(n, level+1, es.comma())
	}
	es.b.WriteString(es.sep(rb))
}

func hasContainer(n *parse.Node) bool {
	for _, el := range n.Values {
		if kv, ok := el.(*parse.KeyVal); ok {
			el = kv.Value
		}
		if _, ok := el.(*parse.Node); ok {
			return true
		}
	}
	return false
}
