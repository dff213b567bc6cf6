package types

import (
	"reflect"
	"strconv"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
)

type anyType struct{}

// Any returns the handler that accepts any value without a schema.
// Objects become maps keyed by member name, or by index for positional
// members.
func Any() Handler { return anyType{} }

func (anyType) Type() string { return schema.TypeAny }

func acceptAll[T any](T) bool { return true }

func (anyType) Parse(env *Env, el parse.Element, def *schema.MemberDef) (any, bool, error) {
	out, v, err := CheckElement(def, el, acceptAll)
	if out != Proceed || err != nil {
		return v, out == Settled, err
	}
	res, err := env.native(el)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// native converts el the way parse.Native does, counting every node against
// the depth limit.
func (e *Env) native(el parse.Element) (any, error) {
	n, ok := el.(*parse.Node)
	if !ok {
		if kv, ok := el.(*parse.KeyVal); ok {
			return e.native(kv.Value)
		}
		return parse.Native(el, e.Vars.resolve), nil
	}
	if err := e.enter(&n.Pos); err != nil {
		return nil, err
	}
	defer e.leave()
	if n.Kind == parse.ArrayNode {
		res := make([]any, len(n.Values))
		for i, x := range n.Values {
			v, err := e.native(x)
			if err != nil {
				return nil, ioerr.WithPath(err, elemPath(i))
			}
			res[i] = v
		}
		return res, nil
	}
	res := make(map[string]any, len(n.Values))
	for i, x := range n.Values {
		if x == nil {
			continue
		}
		key := strconv.Itoa(i)
		if kv, ok := x.(*parse.KeyVal); ok {
			key = kv.Key
		}
		v, err := e.native(x)
		if err != nil {
			return nil, ioerr.WithPath(err, key)
		}
		res[key] = v
	}
	return res, nil
}

func (anyType) Load(env *Env, v any, present bool, def *schema.MemberDef) (any, bool, error) {
	out, dv, err := CheckNative(def, v, present, acceptAll)
	if out != Proceed || err != nil {
		return dv, out == Settled, err
	}
	res, err := normalize(env, v)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

func (anyType) Serialize(env *Env, v any, present bool, def *schema.MemberDef, _ bool) (string, error) {
	out, dv, err := CheckNative(def, v, present, acceptAll)
	if err != nil {
		return "", err
	}
	switch out {
	case Absent:
		return "", nil
	case Settled:
		v = dv
	}
	res, err := normalize(env, v)
	if err != nil {
		return "", err
	}
	return schema.FormatValue(res), nil
}

// normalize converts v to the native forms: map[string]any, []any, string,
// int64, float64, bool or nil. The result shares no maps or slices with v.
// Each map and slice counts against env's depth limit; env may be nil.
func normalize(env *Env, v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool:
		return x, nil
	case map[string]any:
		if err := env.enterNative(); err != nil {
			return nil, err
		}
		defer env.leaveNative()
		res := make(map[string]any, len(x))
		for k, e := range x {
			n, err := normalize(env, e)
			if err != nil {
				return nil, ioerr.WithPath(err, k)
			}
			res[k] = n
		}
		return res, nil
	case []any:
		if err := env.enterNative(); err != nil {
			return nil, err
		}
		defer env.leaveNative()
		res := make([]any, len(x))
		for i, e := range x {
			n, err := normalize(env, e)
			if err != nil {
				return nil, ioerr.WithPath(err, elemPath(i))
			}
			res[i] = n
		}
		return res, nil
	}
	if n, ok, err := toNumber(v); ok {
		return n, err
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		xs := make([]any, rv.Len())
		for i := range xs {
			xs[i] = rv.Index(i).Interface()
		}
		return normalize(env, xs)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[it.Key().String()] = it.Value().Interface()
		}
		return normalize(env, m)
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	}
	return nil, ioerr.Newf(ioerr.InvalidValue, nil, "unsupported value of type %T", v)
}
