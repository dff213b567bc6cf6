package types

import (
	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
)

// Outcome is the result of the common checks every handler runs first.
type Outcome int

const (
	// Proceed means the value is present, non-null and of the right kind;
	// the handler carries on with its own conversion.
	Proceed Outcome = iota
	// Absent means the member is optional and missing; it is not stored.
	Absent
	// Settled means the checks produced the final value, a default or null.
	Settled
)

func (o Outcome) String() string {
	switch o {
	case Proceed:
		return "proceed"
	case Absent:
		return "absent"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// CheckElement runs the common checks on a parse tree element. A nil el is
// a missing member. accept reports whether a present, non-null element has
// the handler's kind.
func CheckElement(def *schema.MemberDef, el parse.Element, accept func(parse.Element) bool) (Outcome, any, error) {
	pos := parse.PosOf(el)
	return gate(def, el != nil, parse.IsNull(el), pos, func() bool { return accept(el) })
}

// CheckNative runs the common checks on a native value.
func CheckNative(def *schema.MemberDef, v any, present bool, accept func(any) bool) (Outcome, any, error) {
	return gate(def, present, present && v == nil, nil, func() bool { return accept(v) })
}

func gate(def *schema.MemberDef, present, null bool, pos *ioerr.Pos, accept func() bool) (Outcome, any, error) {
	switch {
	case !present:
		if def.HasDefault {
			v, err := normalize(nil, def.Default)
			if err != nil {
				return Absent, nil, atPos(err, pos)
			}
			return Settled, v, nil
		}
		if def.Optional {
			return Absent, nil, nil
		}
		return Absent, nil, ioerr.New(ioerr.ValueRequired, pos)
	case null:
		if def.Optional || def.Null {
			return Settled, nil, nil
		}
		return Absent, nil, ioerr.New(ioerr.NullNotAllowed, pos)
	case !accept():
		return Absent, nil, ioerr.Newf(ioerr.InvalidType, pos, "expected %s", def.Type)
	}
	return Proceed, nil, nil
}
