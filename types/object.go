package types

import (
	"strings"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
)

type objectType struct{}

// Object returns the handler for schema-described objects.
func Object() Handler { return objectType{} }

func (objectType) Type() string { return schema.TypeObject }

func isObjectNode(el parse.Element) bool {
	n, ok := el.(*parse.Node)
	return ok && n.Kind == parse.ObjectNode
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func objectSchema(def *schema.MemberDef, pos *ioerr.Pos) (*schema.Schema, error) {
	if def.Schema == nil {
		return nil, ioerr.Newf(ioerr.InvalidSchema, pos, "object without members")
	}
	return def.Schema, nil
}

// Parse maps the members of an object node onto the schema. Members are
// matched by position until the first keyed member; after that only keyed
// members and empty slots may follow. Keys the schema does not name are
// ignored.
func (objectType) Parse(env *Env, el parse.Element, def *schema.MemberDef) (any, bool, error) {
	out, v, err := CheckElement(def, el, isObjectNode)
	if out != Proceed || err != nil {
		return v, out == Settled, err
	}
	n := el.(*parse.Node)
	s, err := objectSchema(def, &n.Pos)
	if err != nil {
		return nil, false, err
	}
	if err := env.enter(&n.Pos); err != nil {
		return nil, false, err
	}
	defer env.leave()

	res := make(map[string]any, s.Len())
	seen := make(map[string]bool, s.Len())
	indexMode := true
	for i, item := range n.Values {
		var (
			key string
			val parse.Element
		)
		switch x := item.(type) {
		case *parse.KeyVal:
			indexMode = false
			if _, ok := s.Def(x.Key); !ok {
				continue
			}
			key, val = x.Key, x.Value
		default:
			if !indexMode && item != nil {
				return nil, false, ioerr.New(ioerr.PositionalAfterKeyword, parse.PosOf(item))
			}
			if i >= s.Len() {
				if item == nil {
					continue
				}
				return nil, false, ioerr.Newf(ioerr.AdditionalValues, parse.PosOf(item), "%d members expected", s.Len())
			}
			key, val = s.Keys[i], item
		}
		v, ok, err := env.Parse(val, s.Defs[key])
		if err != nil {
			return nil, false, ioerr.WithPath(atPos(err, memberPos(item, &n.Pos)), key)
		}
		seen[key] = true
		if ok {
			res[key] = v
		}
	}
	if err := fillMissing(s, seen, res); err != nil {
		return nil, false, atPos(err, &n.Pos)
	}
	return res, true, nil
}

func memberPos(item parse.Element, fallback *ioerr.Pos) *ioerr.Pos {
	if item == nil {
		return fallback
	}
	return parse.PosOf(item)
}

// fillMissing settles the schema members no element addressed, without
// dispatching to their handlers.
func fillMissing(s *schema.Schema, seen map[string]bool, res map[string]any) error {
	for _, k := range s.Keys {
		if seen[k] {
			continue
		}
		out, v, err := CheckNative(s.Defs[k], nil, false, nil)
		if err != nil {
			return ioerr.WithPath(err, k)
		}
		if out == Settled {
			res[k] = v
		}
	}
	return nil
}

// Load validates each member of a native object against the schema and
// drops keys the schema does not name.
func (objectType) Load(env *Env, v any, present bool, def *schema.MemberDef) (any, bool, error) {
	out, dv, err := CheckNative(def, v, present, isMap)
	if out != Proceed || err != nil {
		return dv, out == Settled, err
	}
	m := v.(map[string]any)
	s, err := objectSchema(def, nil)
	if err != nil {
		return nil, false, err
	}
	if err := env.enter(nil); err != nil {
		return nil, false, err
	}
	defer env.leave()

	res := make(map[string]any, s.Len())
	seen := make(map[string]bool, len(m))
	for _, k := range s.Keys {
		x, ok := m[k]
		if !ok {
			continue
		}
		seen[k] = true
		lv, ok, err := env.Load(x, true, s.Defs[k])
		if err != nil {
			return nil, false, ioerr.WithPath(err, k)
		}
		if ok {
			res[k] = lv
		}
	}
	if err := fillMissing(s, seen, res); err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// Serialize renders the members in schema order, separated by commas, with
// an empty fragment for each absent member. A root object has no braces.
func (objectType) Serialize(env *Env, v any, present bool, def *schema.MemberDef, isRoot bool) (string, error) {
	out, dv, err := CheckNative(def, v, present, isMap)
	if err != nil {
		return "", err
	}
	if def.Type != schema.TypeObject {
		return "", ioerr.Newf(ioerr.InvalidObject, nil, "member type is %s", def.Type)
	}
	switch out {
	case Absent:
		return "", nil
	case Settled:
		if dv == nil {
			return "N", nil
		}
		if !isMap(dv) {
			return "", ioerr.Newf(ioerr.InvalidType, nil, "default is not an object")
		}
		v = dv
	}
	m := v.(map[string]any)
	s, err := objectSchema(def, nil)
	if err != nil {
		return "", err
	}
	if err := env.enter(nil); err != nil {
		return "", err
	}
	defer env.leave()

	parts := make([]string, s.Len())
	for i, k := range s.Keys {
		x, ok := m[k]
		frag, err := env.Serialize(x, ok, s.Defs[k])
		if err != nil {
			return "", ioerr.WithPath(err, k)
		}
		parts[i] = frag
	}
	body := strings.Join(parts, ",")
	if isRoot {
		return body, nil
	}
	return "{" + body + "}", nil
}
