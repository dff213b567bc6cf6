package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	iox "github.com/iox-format/go-iox"
	"github.com/iox-format/go-iox/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch needs a patch file", cli.ErrUsage)
	}
	pd, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	p, err := readPatch(pd)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	s, err := cfg.loadSchema(cc)
	if err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := cfg.decodeDoc(d, s)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, err := applyPatch(doc.Value, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		res, err := iox.Load(v, doc.Schema, cfg.ioxOpts()...)
		if err != nil {
			return fmt.Errorf("patched %s is invalid: %w", file, err)
		}
		header := cfg.Header || s == nil
		if err := cfg.encodeDoc(cc.Out, res, doc.Schema, doc.Vars, header); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// jsonPatch is an RFC 6902 operation list; anything else read from a patch
// file is a merge patch.
type jsonPatch struct {
	ops jsonpatch.Patch
}

func readPatch(d []byte) (any, error) {
	doc, err := parse.Parse(string(d))
	if err != nil {
		return nil, err
	}
	if doc.Header != nil {
		return nil, fmt.Errorf("patch files have no header")
	}
	if vs := doc.Body.Values; len(vs) == 1 {
		if n, ok := vs[0].(*parse.Node); ok && n.Kind == parse.ArrayNode {
			j, err := json.Marshal(parse.Native(n, nil))
			if err != nil {
				return nil, err
			}
			ops, err := jsonpatch.DecodePatch(j)
			if err != nil {
				return nil, err
			}
			return &jsonPatch{ops: ops}, nil
		}
	}
	return parse.Native(doc.Body, nil), nil
}

// applyPatch patches v through its JSON form.
func applyPatch(v map[string]any, p any) (any, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []byte
	switch x := p.(type) {
	case *jsonPatch:
		out, err = x.ops.Apply(d)
	default:
		var pd []byte
		if pd, err = json.Marshal(x); err != nil {
			return nil, err
		}
		out, err = jsonpatch.MergePatch(d, pd)
	}
	if err != nil {
		return nil, err
	}
	var res any
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	if err := dec.Decode(&res); err != nil {
		return nil, err
	}
	return res, nil
}
