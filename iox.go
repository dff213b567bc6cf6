package iox

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iox-format/go-iox/ioerr"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/token"
	"github.com/iox-format/go-iox/types"
)

// Document is a decoded document with its header.
type Document struct {
	Schema *schema.Schema
	Vars   types.Vars
	Value  map[string]any
}

// Decode reads src, which must not have a header, as an object described
// by s. s is validated against the registry on first use and must not be
// shared between goroutines before that.
func Decode(src string, s *schema.Schema, opts ...Option) (map[string]any, error) {
	o := makeOptions(opts)
	if err := schema.Validate(s, o.registry); err != nil {
		return nil, err
	}
	doc, err := parse.Parse(src, o.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if doc.Header != nil {
		return nil, ioerr.Newf(ioerr.UnexpectedToken, &doc.Body.Pos, "document has a header")
	}
	return decodeBody(o, doc.Body, s, nil)
}

// DecodeDocument reads a document whose header declares its variables and
// schema.
func DecodeDocument(src string, opts ...Option) (*Document, error) {
	o := makeOptions(opts)
	doc, err := parse.Parse(src, o.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if doc.Header == nil {
		return nil, ioerr.Newf(ioerr.InvalidSchema, &doc.Body.Pos, "document has no header")
	}
	vars, s, err := readHeader(o, doc.Header)
	if err != nil {
		return nil, err
	}
	v, err := decodeBody(o, doc.Body, s, vars)
	if err != nil {
		return nil, err
	}
	return &Document{Schema: s, Vars: vars, Value: v}, nil
}

func (o *options) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(o.maxDepth)}
}

func decodeBody(o *options, body *parse.Node, s *schema.Schema, vars types.Vars) (map[string]any, error) {
	env := o.env(vars)
	v, _, err := env.Parse(body, schema.Object(s))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("decoded", "members", len(v.(map[string]any)), "vars", len(env.Vars))
	return v.(map[string]any), nil
}

// readHeader splits a header into its $ variables and the schema. The
// schema is either the object under a lone schema member or the remaining
// members themselves.
func readHeader(o *options, h *parse.Node) (types.Vars, *schema.Schema, error) {
	vars := types.Vars{}
	def := &parse.Node{Kind: parse.ObjectNode, Pos: h.Pos}
	for _, el := range h.Values {
		kv, ok := el.(*parse.KeyVal)
		if ok && strings.HasPrefix(kv.Key, "$") {
			vars[kv.Key[1:]] = parse.Native(kv.Value, func(tok *token.Token) (any, bool) {
				if tok.Form != token.OpenForm {
					return nil, false
				}
				return vars.Lookup(tok.Str())
			})
			continue
		}
		def.Values = append(def.Values, el)
	}
	if len(def.Values) == 1 {
		if kv, ok := def.Values[0].(*parse.KeyVal); ok && kv.Key == "schema" {
			if n, ok := kv.Value.(*parse.Node); ok && n.Kind == parse.ObjectNode {
				def = n
			}
		}
	}
	s, err := schema.Compile(def, o.registry)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Debug("read header", "schema", s.String(), "vars", len(vars))
	return vars, s, nil
}

// Load validates a native object against s, the way Decode validates text.
func Load(v any, s *schema.Schema, opts ...Option) (map[string]any, error) {
	o := makeOptions(opts)
	if err := schema.Validate(s, o.registry); err != nil {
		return nil, err
	}
	res, _, err := o.env(nil).Load(v, true, schema.Object(s))
	if err != nil {
		return nil, err
	}
	return res.(map[string]any), nil
}

// Encode renders v as a document body described by s.
func Encode(v map[string]any, s *schema.Schema, opts ...Option) (string, error) {
	o := makeOptions(opts)
	if err := schema.Validate(s, o.registry); err != nil {
		return "", err
	}
	return o.env(nil).SerializeRoot(v, schema.Object(s))
}

// EncodeDocument renders v with a header holding the variables given by
// WithVars and the definition of s.
func EncodeDocument(v map[string]any, s *schema.Schema, opts ...Option) (string, error) {
	o := makeOptions(opts)
	body, err := Encode(v, s, opts...)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	names := make([]string, 0, len(o.vars))
	for k := range o.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(b, "%s: %s,\n", token.FormatKey("$"+k), schema.FormatValue(o.vars[k]))
	}
	b.WriteString(s.String())
	b.WriteString("\n---\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String(), nil
}
