package types

import (
	"encoding/json"
	"math"
	"strconv"

	"fortio.org/safecast"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/token"
)

// scalar holds what differs between the scalar handlers; the gate and the
// settled cases are shared.
type scalar struct {
	name   string
	kind   token.Kind
	native func(any) (any, bool, error)
	format func(any) string
}

func (s *scalar) Type() string { return s.name }

func (s *scalar) isToken(el parse.Element) bool {
	tok, ok := el.(*token.Token)
	return ok && tok.Kind == s.kind
}

func (s *scalar) accepts(v any) bool {
	_, ok, _ := s.native(v)
	return ok
}

func (s *scalar) Parse(_ *Env, el parse.Element, def *schema.MemberDef) (any, bool, error) {
	out, v, err := CheckElement(def, el, s.isToken)
	if out != Proceed || err != nil {
		return v, out == Settled, err
	}
	return el.(*token.Token).Value, true, nil
}

func (s *scalar) Load(_ *Env, v any, present bool, def *schema.MemberDef) (any, bool, error) {
	out, dv, err := CheckNative(def, v, present, s.accepts)
	if out != Proceed || err != nil {
		return dv, out == Settled, err
	}
	res, _, err := s.native(v)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

func (s *scalar) Serialize(_ *Env, v any, present bool, def *schema.MemberDef, _ bool) (string, error) {
	out, dv, err := CheckNative(def, v, present, s.accepts)
	if err != nil {
		return "", err
	}
	switch out {
	case Absent:
		return "", nil
	case Settled:
		if dv == nil {
			return "N", nil
		}
		v = dv
	}
	res, ok, err := s.native(v)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ioerr.Newf(ioerr.InvalidType, nil, "expected %s", s.name)
	}
	return s.format(res), nil
}

// String returns the handler for strings.
func String() Handler {
	return &scalar{
		name: "string",
		kind: token.TString,
		native: func(v any) (any, bool, error) {
			x, ok := v.(string)
			return x, ok, nil
		},
		format: func(v any) string { return token.Format(v.(string)) },
	}
}

// Number returns the handler for numbers. Integers load as int64 and
// everything else as float64.
func Number() Handler {
	return &scalar{
		name:   "number",
		kind:   token.TNumber,
		native: toNumber,
		format: func(v any) string {
			if i, ok := v.(int64); ok {
				return strconv.FormatInt(i, 10)
			}
			return schema.FormatFloat(v.(float64))
		},
	}
}

// Bool returns the handler for booleans, written T and F.
func Bool() Handler {
	return &scalar{
		name: "bool",
		kind: token.TBoolean,
		native: func(v any) (any, bool, error) {
			x, ok := v.(bool)
			return x, ok, nil
		},
		format: func(v any) string {
			if v.(bool) {
				return "T"
			}
			return "F"
		},
	}
}

// toNumber converts any Go number to int64 or float64. The bool result is
// false for values that are not numbers at all.
func toNumber(v any) (any, bool, error) {
	switch x := v.(type) {
	case int64:
		return x, true, nil
	case int:
		return int64(x), true, nil
	case int8:
		return int64(x), true, nil
	case int16:
		return int64(x), true, nil
	case int32:
		return int64(x), true, nil
	case uint:
		return convUint(x)
	case uint8:
		return int64(x), true, nil
	case uint16:
		return int64(x), true, nil
	case uint32:
		return int64(x), true, nil
	case uint64:
		return convUint(x)
	case float32:
		return finite(float64(x))
	case float64:
		return finite(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, true, ioerr.Wrap(ioerr.InvalidValue, nil, err)
		}
		return finite(f)
	}
	return nil, false, nil
}

func convUint[T uint | uint64](x T) (any, bool, error) {
	i, err := safecast.Conv[int64](x)
	if err != nil {
		return nil, true, ioerr.Wrap(ioerr.InvalidValue, nil, err)
	}
	return i, true, nil
}

func finite(f float64) (any, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, true, ioerr.Newf(ioerr.InvalidValue, nil, "%v has no text form", f)
	}
	return f, true, nil
}
