package schema

import (
	"github.com/expr-lang/expr/vm"

	"github.com/iox-format/go-iox/ioerr"
)

// Type names with structural meaning.
const (
	TypeObject = "object"
	TypeArray  = "array"
	TypeAny    = "any"
)

// TypeSet reports which type names are available.
type TypeSet interface {
	Has(name string) bool
}

// Schema is immutable once built.
type Schema struct {
	Keys []string
	Defs map[string]*MemberDef
}

type MemberDef struct {
	Name string
	Type string
	// Schema describes the members of an object.
	Schema *Schema
	// Of describes the elements of an array; nil accepts anything.
	Of *MemberDef

	Optional   bool
	Null       bool
	Default    any
	HasDefault bool
	// Check is a boolean expression over value the member must satisfy.
	Check string

	check *vm.Program
}

// New builds a schema from defs, in order.
func New(defs ...*MemberDef) (*Schema, error) {
	s := &Schema{
		Keys: make([]string, 0, len(defs)),
		Defs: make(map[string]*MemberDef, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, ioerr.Newf(ioerr.InvalidSchema, nil, "member without a name")
		}
		if _, dup := s.Defs[d.Name]; dup {
			return nil, ioerr.Newf(ioerr.DuplicateKey, nil, "%q", d.Name)
		}
		s.Keys = append(s.Keys, d.Name)
		s.Defs[d.Name] = d
	}
	return s, nil
}

// Object returns the member definition of a root object described by s.
func Object(s *Schema) *MemberDef {
	return &MemberDef{Type: TypeObject, Schema: s}
}

// Def returns the definition of member k.
func (s *Schema) Def(k string) (*MemberDef, bool) {
	d, ok := s.Defs[k]
	return d, ok
}

func (s *Schema) Len() int {
	return len(s.Keys)
}

// Validate checks that every type named in s is in types and compiles
// member checks. It must be called before s is shared between goroutines.
func Validate(s *Schema, types TypeSet) error {
	if len(s.Keys) != len(s.Defs) {
		return ioerr.Newf(ioerr.InvalidSchema, nil, "%d keys but %d definitions", len(s.Keys), len(s.Defs))
	}
	for _, k := range s.Keys {
		d, ok := s.Defs[k]
		if !ok {
			return ioerr.Newf(ioerr.InvalidSchema, nil, "no definition for %q", k)
		}
		if err := validateDef(d, types); err != nil {
			return ioerr.WithPath(err, k)
		}
	}
	return nil
}

func validateDef(d *MemberDef, types TypeSet) error {
	if !types.Has(d.Type) {
		return ioerr.Newf(ioerr.UnknownType, nil, "%q", d.Type)
	}
	if err := d.compileCheck(); err != nil {
		return err
	}
	switch d.Type {
	case TypeObject:
		if d.Schema == nil {
			return ioerr.Newf(ioerr.InvalidSchema, nil, "object without members")
		}
		return Validate(d.Schema, types)
	case TypeArray:
		if d.Of != nil {
			if err := validateDef(d.Of, types); err != nil {
				return ioerr.WithPath(err, "[]")
			}
		}
	}
	return nil
}
