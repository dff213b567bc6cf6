package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/iox-format/go-iox/debug"
	"github.com/iox-format/go-iox/parse"
	"github.com/iox-format/go-iox/types"
)

func ioxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
		debug.SetLogger(theLog)
	}
	if err := cfg.applyFile(); err != nil {
		return err
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) varOpt(_ *cli.Context, a string) (any, error) {
	name, v, err := parseVar(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.Vars == nil {
		cfg.Vars = types.Vars{}
	}
	cfg.Vars[name] = v
	return v, nil
}

// parseVar splits name=value and reads value as iox text. A single
// positional member stands for itself; anything else is an object.
func parseVar(a string) (string, any, error) {
	name, val, ok := strings.Cut(a, "=")
	name = strings.TrimPrefix(strings.TrimSpace(name), "$")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("expected name=value, got %q", a)
	}
	if strings.TrimSpace(val) == "" {
		return name, "", nil
	}
	doc, err := parse.Parse(val)
	if err != nil {
		return "", nil, fmt.Errorf("variable %s: %w", name, err)
	}
	if doc.Header != nil {
		return "", nil, fmt.Errorf("variable %s: value has a separator", name)
	}
	if vs := doc.Body.Values; len(vs) == 1 {
		if _, keyed := vs[0].(*parse.KeyVal); !keyed {
			return name, parse.Native(vs[0], nil), nil
		}
	}
	return name, parse.Native(doc.Body, nil), nil
}
