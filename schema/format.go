package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iox-format/go-iox/token"
)

// String renders s as definition text accepted by Compile.
func (s *Schema) String() string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = s.Defs[k].member()
	}
	return strings.Join(parts, ", ")
}

func (d *MemberDef) member() string {
	name := token.Format(d.Name)
	if d.Optional {
		name += "?"
	}
	if d.Null {
		name += "*"
	}
	if d.Type == TypeAny && !d.hasOptions() {
		return name
	}
	return name + ": " + d.typeExpr(false)
}

func (d *MemberDef) hasOptions() bool {
	return d.HasDefault || d.Check != ""
}

// typeExpr renders the definition right of a member name. Element
// definitions carry their own optional and null flags as options.
func (d *MemberDef) typeExpr(elem bool) string {
	var opts []string
	if d.HasDefault {
		opts = append(opts, "default: "+FormatValue(d.Default))
	}
	if d.Check != "" {
		opts = append(opts, "check: "+token.Quote(d.Check))
	}
	if elem && d.Optional {
		opts = append(opts, "optional: T")
	}
	if elem && d.Null {
		opts = append(opts, "null: T")
	}
	switch d.Type {
	case TypeObject:
		if len(opts) == 0 {
			return "{" + d.Schema.String() + "}"
		}
		opts = append([]string{TypeObject, "schema: {" + d.Schema.String() + "}"}, opts...)
	case TypeArray:
		of := ""
		if d.Of != nil {
			of = d.Of.typeExpr(true)
		}
		if len(opts) == 0 {
			return "[" + of + "]"
		}
		head := []string{TypeArray}
		if of != "" {
			head = append(head, "of: "+of)
		}
		opts = append(head, opts...)
	default:
		if len(opts) == 0 {
			return d.Type
		}
		opts = append([]string{d.Type}, opts...)
	}
	return "{" + strings.Join(opts, ", ") + "}"
}

// FormatValue renders a plain value as iox text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "N"
	case bool:
		if x {
			return "T"
		}
		return "F"
	case string:
		return token.Format(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return FormatFloat(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = token.Format(k) + ": " + FormatValue(x[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return token.Format(fmt.Sprint(v))
}

// FormatFloat renders f so that it reads back as a float.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
