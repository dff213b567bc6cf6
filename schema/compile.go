package schema

import (
	"strings"

	"github.com/iox-format/go-iox/debug"
	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/token"
)

// Compile builds a schema from a definition node and validates it against
// types.
func Compile(n *parse.Node, types TypeSet) (*Schema, error) {
	s, err := compileNode(n, types)
	if err != nil {
		return nil, err
	}
	if err := Validate(s, types); err != nil {
		return nil, err
	}
	if debug.Schema() {
		debug.Logf("compiled schema %s", s.String())
	}
	return s, nil
}

// CompileString parses src as definition text and compiles it.
func CompileString(src string, types TypeSet) (*Schema, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	if doc.Header != nil {
		return nil, ioerr.Newf(ioerr.InvalidSchema, nil, "definition text has a separator")
	}
	return Compile(doc.Body, types)
}

func compileNode(n *parse.Node, types TypeSet) (*Schema, error) {
	if n.Kind != parse.ObjectNode {
		return nil, ioerr.Newf(ioerr.InvalidSchema, &n.Pos, "expected member definitions")
	}
	defs := make([]*MemberDef, 0, len(n.Values))
	for _, el := range n.Values {
		var (
			d   *MemberDef
			err error
		)
		switch x := el.(type) {
		case *token.Token:
			if x.Kind != token.TString {
				return nil, ioerr.Newf(ioerr.InvalidSchema, x.Pos(), "member name %q is not a string", x.Text)
			}
			d = &MemberDef{Type: TypeAny}
			d.Name, d.Optional, d.Null = memberName(x.Value.(string))
		case *parse.KeyVal:
			name, opt, null := memberName(x.Key)
			if d, err = memberDef(x.Value, types); err != nil {
				return nil, ioerr.WithPath(err, name)
			}
			d.Name = name
			d.Optional = d.Optional || opt
			d.Null = d.Null || null
		case nil:
			return nil, ioerr.Newf(ioerr.InvalidSchema, &n.Pos, "empty member definition")
		default:
			return nil, ioerr.Newf(ioerr.InvalidSchema, parse.PosOf(el), "member definition without a name")
		}
		defs = append(defs, d)
	}
	s, err := New(defs...)
	if err != nil {
		if e, ok := err.(*ioerr.Error); ok && e.Pos == nil {
			e.Pos = &n.Pos
		}
		return nil, err
	}
	return s, nil
}

// memberName splits the ? and * markers off a member name.
func memberName(raw string) (name string, optional, null bool) {
	name = raw
	for {
		switch {
		case strings.HasSuffix(name, "?"):
			optional = true
		case strings.HasSuffix(name, "*"):
			null = true
		default:
			return name, optional, null
		}
		name = name[:len(name)-1]
	}
}

// memberDef compiles the definition to the right of a member name, or an
// array element definition.
func memberDef(el parse.Element, types TypeSet) (*MemberDef, error) {
	switch x := el.(type) {
	case nil:
		return &MemberDef{Type: TypeAny}, nil
	case *token.Token:
		name, ok := x.Value.(string)
		if !ok || x.Kind != token.TString {
			return nil, ioerr.Newf(ioerr.InvalidSchema, x.Pos(), "expected a type name, got %q", x.Text)
		}
		if !types.Has(name) {
			return nil, ioerr.Newf(ioerr.UnknownType, x.Pos(), "%q", name)
		}
		return &MemberDef{Type: name}, nil
	case *parse.Node:
		if x.Kind == parse.ArrayNode {
			return arrayDef(x, types)
		}
		if typ, ok := optionsType(x, types); ok {
			return optionsDef(x, typ, types)
		}
		s, err := compileNode(x, types)
		if err != nil {
			return nil, err
		}
		return &MemberDef{Type: TypeObject, Schema: s}, nil
	}
	return nil, ioerr.Newf(ioerr.InvalidSchema, parse.PosOf(el), "unexpected definition")
}

func arrayDef(n *parse.Node, types TypeSet) (*MemberDef, error) {
	d := &MemberDef{Type: TypeArray}
	switch len(n.Values) {
	case 0:
		return d, nil
	case 1:
		of, err := memberDef(n.Values[0], types)
		if err != nil {
			return nil, ioerr.WithPath(err, "[]")
		}
		d.Of = of
		return d, nil
	}
	return nil, ioerr.Newf(ioerr.InvalidSchema, &n.Pos, "array definition takes one element definition")
}

// optionsType reports whether n is an options form, {type, opt: v...}.
func optionsType(n *parse.Node, types TypeSet) (string, bool) {
	if len(n.Values) == 0 {
		return "", false
	}
	tok, ok := n.Values[0].(*token.Token)
	if !ok || tok.Kind != token.TString {
		return "", false
	}
	name := tok.Value.(string)
	if !types.Has(name) {
		return "", false
	}
	for _, el := range n.Values[1:] {
		if _, ok := el.(*parse.KeyVal); !ok {
			return "", false
		}
	}
	return name, true
}

func optionsDef(n *parse.Node, typ string, types TypeSet) (*MemberDef, error) {
	d := &MemberDef{Type: typ}
	for _, el := range n.Values[1:] {
		kv := el.(*parse.KeyVal)
		var err error
		switch kv.Key {
		case "default":
			d.Default = parse.Native(kv.Value, nil)
			d.HasDefault = true
		case "check":
			d.Check, err = optString(kv)
		case "optional":
			d.Optional, err = optBool(kv)
		case "null":
			d.Null, err = optBool(kv)
		case "schema":
			n, ok := kv.Value.(*parse.Node)
			if !ok || typ != TypeObject {
				return nil, ioerr.Newf(ioerr.InvalidSchema, &kv.Pos, "schema option needs an object type and member definitions")
			}
			d.Schema, err = compileNode(n, types)
		case "of":
			if typ != TypeArray {
				return nil, ioerr.Newf(ioerr.InvalidSchema, &kv.Pos, "of option needs an array type")
			}
			d.Of, err = memberDef(kv.Value, types)
		default:
			return nil, ioerr.Newf(ioerr.InvalidSchema, &kv.Pos, "unknown option %q", kv.Key)
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func optString(kv *parse.KeyVal) (string, error) {
	tok, ok := kv.Value.(*token.Token)
	if !ok || tok.Kind != token.TString {
		return "", ioerr.Newf(ioerr.InvalidSchema, &kv.Pos, "option %q takes a string", kv.Key)
	}
	return tok.Value.(string), nil
}

func optBool(kv *parse.KeyVal) (bool, error) {
	tok, ok := kv.Value.(*token.Token)
	if !ok || tok.Kind != token.TBoolean {
		return false, ioerr.Newf(ioerr.InvalidSchema, &kv.Pos, "option %q takes a boolean", kv.Key)
	}
	return tok.Value.(bool), nil
}
