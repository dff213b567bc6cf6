package types

import (
	"github.com/iox-format/go-iox/debug"
	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/token"
)

// Env carries the state of one parse, load or serialize call.
type Env struct {
	Registry *Registry
	Vars     Vars
	// MaxDepth limits object and array nesting, the root object included;
	// 0 means no limit.
	MaxDepth int

	depth int
}

// NewEnv returns an Env over reg, or over the default registry if reg is
// nil.
func NewEnv(reg *Registry) *Env {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Env{Registry: reg}
}

func (e *Env) handler(def *schema.MemberDef) (Handler, error) {
	h, ok := e.Registry.Get(def.Type)
	if !ok {
		return nil, ioerr.Newf(ioerr.UnknownType, nil, "%q", def.Type)
	}
	return h, nil
}

// Parse converts el with the handler def names. An open string naming a
// variable is replaced by the variable's value, which is loaded instead.
func (e *Env) Parse(el parse.Element, def *schema.MemberDef) (any, bool, error) {
	if tok, ok := el.(*token.Token); ok {
		if v, ok := e.Vars.resolve(tok); ok {
			res, ok, err := e.Load(v, true, def)
			if err != nil {
				return nil, false, atPos(err, tok.Pos())
			}
			return res, ok, nil
		}
	}
	h, err := e.handler(def)
	if err != nil {
		return nil, false, atPos(err, parse.PosOf(el))
	}
	if debug.Dispatch() {
		debug.Logf("parse %s %s at %v", def.Type, def.Name, parse.PosOf(el))
	}
	v, ok, err := h.Parse(e, el, def)
	if err != nil || !ok {
		return nil, ok, err
	}
	if err := satisfies(def, v); err != nil {
		return nil, false, atPos(err, parse.PosOf(el))
	}
	return v, true, nil
}

// Load validates the native value v with the handler def names.
func (e *Env) Load(v any, present bool, def *schema.MemberDef) (any, bool, error) {
	h, err := e.handler(def)
	if err != nil {
		return nil, false, err
	}
	if debug.Dispatch() {
		debug.Logf("load %s %s", def.Type, def.Name)
	}
	res, ok, err := h.Load(e, v, present, def)
	if err != nil || !ok {
		return nil, ok, err
	}
	if err := satisfies(def, res); err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// Serialize renders v with the handler def names as a nested value.
func (e *Env) Serialize(v any, present bool, def *schema.MemberDef) (string, error) {
	return e.serialize(v, present, def, false)
}

// SerializeRoot renders v as a root object, without braces.
func (e *Env) SerializeRoot(v any, def *schema.MemberDef) (string, error) {
	return e.serialize(v, true, def, true)
}

func (e *Env) serialize(v any, present bool, def *schema.MemberDef, isRoot bool) (string, error) {
	h, err := e.handler(def)
	if err != nil {
		return "", err
	}
	if debug.Dispatch() {
		debug.Logf("serialize %s %s", def.Type, def.Name)
	}
	if present && v != nil {
		if err := def.Satisfies(v); err != nil {
			return "", err
		}
	}
	return h.Serialize(e, v, present, def, isRoot)
}

// enter guards one level of nesting; every successful enter must be paired
// with leave.
func (e *Env) enter(pos *ioerr.Pos) error {
	if e.MaxDepth > 0 && e.depth >= e.MaxDepth {
		return ioerr.Newf(ioerr.DepthExceeded, pos, "limit %d", e.MaxDepth)
	}
	e.depth++
	return nil
}

func (e *Env) leave() {
	e.depth--
}

func (e *Env) enterNative() error {
	if e == nil {
		return nil
	}
	return e.enter(nil)
}

func (e *Env) leaveNative() {
	if e != nil {
		e.leave()
	}
}

// satisfies runs def's check on defined, non-null values.
func satisfies(def *schema.MemberDef, v any) error {
	if v == nil {
		return nil
	}
	return def.Satisfies(v)
}

// atPos sets pos on err if it has none.
func atPos(err error, pos *ioerr.Pos) error {
	if e, ok := err.(*ioerr.Error); ok && e.Pos == nil {
		e.Pos = pos
	}
	return err
}
