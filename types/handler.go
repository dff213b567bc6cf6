package types

import (
	"strings"

	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/token"
)

// Handler parses, loads and serializes the values of one type.
//
// The bool results report whether the value is defined; false means the
// member is absent and must not be stored.
type Handler interface {
	Type() string
	// Parse converts a parse tree element. el is nil for an absent member.
	Parse(env *Env, el parse.Element, def *schema.MemberDef) (any, bool, error)
	// Load validates a native value.
	Load(env *Env, v any, present bool, def *schema.MemberDef) (any, bool, error)
	// Serialize renders v. Absent values render as an empty fragment.
	Serialize(env *Env, v any, present bool, def *schema.MemberDef, isRoot bool) (string, error)
}

// Vars maps variable names, without their leading $, to values.
type Vars map[string]any

// Lookup resolves a $name reference.
func (v Vars) Lookup(ref string) (any, bool) {
	name, ok := strings.CutPrefix(ref, "$")
	if !ok || v == nil {
		return nil, false
	}
	x, ok := v[name]
	return x, ok
}

// resolve substitutes an open string $name token.
func (v Vars) resolve(tok *token.Token) (any, bool) {
	if tok.Kind != token.TString || tok.Form != token.OpenForm {
		return nil, false
	}
	return v.Lookup(tok.Value.(string))
}
