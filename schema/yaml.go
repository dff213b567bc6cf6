package schema

import (
	"math"

	"github.com/goccy/go-yaml"

	"github.com/iox-format/go-iox/ioerr"
)

type yamlMember struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Optional bool         `yaml:"optional"`
	Null     bool         `yaml:"null"`
	Default  any          `yaml:"default"`
	Check    string       `yaml:"check"`
	Schema   []yamlMember `yaml:"schema"`
	Of       *yamlMember  `yaml:"of"`
}

// LoadYAML builds a schema from a YAML list of members:
//
//   - name: name
//     type: string
//   - name: age
//     type: number
//     optional: true
//     check: value >= 0
//   - name: address
//     schema:
//   - {name: street, type: string}
//   - {name: city}
//   - name: tags
//     of: {type: string}
//
// A member without a type is an object when it has a schema, an array when
// it has of, and any otherwise.
func LoadYAML(d []byte, types TypeSet) (*Schema, error) {
	var members []yamlMember
	if err := yaml.Unmarshal(d, &members); err != nil {
		return nil, ioerr.Wrap(ioerr.InvalidSchema, nil, err)
	}
	s, err := fromYAML(members)
	if err != nil {
		return nil, err
	}
	if err := Validate(s, types); err != nil {
		return nil, err
	}
	return s, nil
}

func fromYAML(members []yamlMember) (*Schema, error) {
	defs := make([]*MemberDef, len(members))
	for i := range members {
		d, err := members[i].def()
		if err != nil {
			return nil, ioerr.WithPath(err, members[i].Name)
		}
		defs[i] = d
	}
	return New(defs...)
}

func (m *yamlMember) def() (*MemberDef, error) {
	d := &MemberDef{
		Name:       m.Name,
		Type:       m.Type,
		Optional:   m.Optional,
		Null:       m.Null,
		Check:      m.Check,
		Default:    normalizeYAML(m.Default),
		HasDefault: m.Default != nil,
	}
	if m.Schema != nil {
		s, err := fromYAML(m.Schema)
		if err != nil {
			return nil, err
		}
		d.Schema = s
	}
	if m.Of != nil {
		of, err := m.Of.def()
		if err != nil {
			return nil, ioerr.WithPath(err, "[]")
		}
		d.Of = of
	}
	if d.Type == "" {
		switch {
		case d.Schema != nil:
			d.Type = TypeObject
		case d.Of != nil:
			d.Type = TypeArray
		default:
			d.Type = TypeAny
		}
	}
	return d, nil
}

// normalizeYAML converts decoded YAML values to the plain values iox uses.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64:
		return x
	case uint64:
		if x > math.MaxInt64 {
			return float64(x)
		}
		return int64(x)
	case float32:
		return float64(x)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = normalizeYAML(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = normalizeYAML(e)
		}
		return res
	}
	return v
}
