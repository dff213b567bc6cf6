package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	iox "github.com/iox-format/go-iox"
	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/types"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// loadSchema reads the -s schema file, or returns nil when there is none.
func (cfg *MainConfig) loadSchema(cc *cli.Context) (*schema.Schema, error) {
	if cfg.Schema == "" {
		return nil, nil
	}
	d, err := readInput(cc, cfg.Schema)
	if err != nil {
		return nil, err
	}
	s, err := compileSchema(cfg.Schema, d)
	if err != nil {
		return nil, fmt.Errorf("error loading schema %s: %w", cfg.Schema, err)
	}
	theLog.Debug("loaded schema", "file", cfg.Schema, "members", s.Len())
	return s, nil
}

func compileSchema(name string, d []byte) (*schema.Schema, error) {
	reg := types.DefaultRegistry()
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return schema.LoadYAML(d, reg)
	}
	return schema.CompileString(string(d), reg)
}

// decodeDoc reads src with s, or with its own header when s is nil.
func (cfg *MainConfig) decodeDoc(src []byte, s *schema.Schema) (*iox.Document, error) {
	if s == nil {
		return iox.DecodeDocument(string(src), cfg.ioxOpts()...)
	}
	v, err := iox.Decode(string(src), s, cfg.ioxOpts()...)
	if err != nil {
		return nil, err
	}
	return &iox.Document{Schema: s, Vars: cfg.Vars, Value: v}, nil
}

// encodeDoc writes v described by s, with a header when header is set.
func (cfg *MainConfig) encodeDoc(w io.Writer, v map[string]any, s *schema.Schema, vars types.Vars, header bool) error {
	var (
		text string
		err  error
	)
	if header {
		opts := append([]iox.Option{iox.WithVars(vars)}, cfg.ioxOpts()...)
		text, err = iox.EncodeDocument(v, s, opts...)
	} else {
		text, err = iox.Encode(v, s, cfg.ioxOpts()...)
		text += "\n"
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
