package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/vmihailenco/msgpack/v5"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	format := cfg.format()
	switch format {
	case "", "json", "yaml", "msgpack":
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, format)
	}
	s, err := cfg.loadSchema(cc)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := cfg.decodeDoc(d, s)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := writeValue(cc.Out, doc.Value, format); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}

func writeValue(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	switch cfg.Format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, cfg.Format)
	}
	s, err := cfg.loadSchema(cc)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: encode needs a schema (-s)", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		v, err := readValue(d, cfg.Format)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: input is not an object", file)
		}
		if err := cfg.encodeDoc(cc.Out, m, s, nil, cfg.Header); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// readValue decodes json or yaml into plain values. JSON numbers keep
// their text so integers stay integers.
func readValue(d []byte, format string) (any, error) {
	var v any
	if format == "yaml" {
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
