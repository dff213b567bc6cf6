package types

import (
	"strconv"
	"strings"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
)

type arrayType struct{}

// Array returns the handler for arrays. Elements follow the definition's
// Of, or are untyped and nullable when it is nil.
func Array() Handler { return arrayType{} }

func (arrayType) Type() string { return schema.TypeArray }

var anyElement = &schema.MemberDef{Type: schema.TypeAny, Optional: true, Null: true}

func elementDef(def *schema.MemberDef) *schema.MemberDef {
	if def.Of == nil {
		return anyElement
	}
	return def.Of
}

func isArrayNode(el parse.Element) bool {
	n, ok := el.(*parse.Node)
	return ok && n.Kind == parse.ArrayNode
}

func isSlice(v any) bool {
	_, ok := v.([]any)
	return ok
}

func elemPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func (arrayType) Parse(env *Env, el parse.Element, def *schema.MemberDef) (any, bool, error) {
	out, v, err := CheckElement(def, el, isArrayNode)
	if out != Proceed || err != nil {
		return v, out == Settled, err
	}
	n := el.(*parse.Node)
	if err := env.enter(&n.Pos); err != nil {
		return nil, false, err
	}
	defer env.leave()
	of := elementDef(def)
	res := make([]any, len(n.Values))
	for i, item := range n.Values {
		v, _, err := env.Parse(item, of)
		if err != nil {
			return nil, false, ioerr.WithPath(atPos(err, &n.Pos), elemPath(i))
		}
		res[i] = v
	}
	return res, true, nil
}

func (arrayType) Load(env *Env, v any, present bool, def *schema.MemberDef) (any, bool, error) {
	out, dv, err := CheckNative(def, v, present, isSlice)
	if out != Proceed || err != nil {
		return dv, out == Settled, err
	}
	if err := env.enter(nil); err != nil {
		return nil, false, err
	}
	defer env.leave()
	of := elementDef(def)
	xs := v.([]any)
	res := make([]any, len(xs))
	for i, x := range xs {
		lv, _, err := env.Load(x, true, of)
		if err != nil {
			return nil, false, ioerr.WithPath(err, elemPath(i))
		}
		res[i] = lv
	}
	return res, true, nil
}

func (arrayType) Serialize(env *Env, v any, present bool, def *schema.MemberDef, _ bool) (string, error) {
	out, dv, err := CheckNative(def, v, present, isSlice)
	if err != nil {
		return "", err
	}
	if def.Type != schema.TypeArray {
		return "", ioerr.Newf(ioerr.InvalidArray, nil, "member type is %s", def.Type)
	}
	switch out {
	case Absent:
		return "", nil
	case Settled:
		if dv == nil {
			return "N", nil
		}
		if !isSlice(dv) {
			return "", ioerr.Newf(ioerr.InvalidType, nil, "default is not an array")
		}
		v = dv
	}
	if err := env.enter(nil); err != nil {
		return "", err
	}
	defer env.leave()
	of := elementDef(def)
	xs := v.([]any)
	parts := make([]string, len(xs))
	for i, x := range xs {
		frag, err := env.Serialize(x, true, of)
		if err != nil {
			return "", ioerr.WithPath(err, elemPath(i))
		}
		parts[i] = frag
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}
