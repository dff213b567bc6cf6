package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iox-format/go-iox/encode"
	"github.com/iox-format/go-iox/parse"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Diff && cfg.Write {
		return fmt.Errorf("%w: -d and -w are exclusive", cli.ErrUsage)
	}
	files := inputs(args)
	if cfg.Write && files[0] == "-" {
		return fmt.Errorf("%w: -w needs files", cli.ErrUsage)
	}
	differs := false
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		out, err := formatSource(string(d), cfg.encOpts(cc.Out)...)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
		switch {
		case cfg.Write:
			if out == string(d) {
				continue
			}
			if err := os.WriteFile(file, []byte(out), 0644); err != nil {
				return err
			}
			theLog.Info("formatted", "file", file)
		case cfg.Diff:
			diff, ok := lineDiff(string(d), out, cfg.colors(cc.Out) != nil)
			if !ok {
				continue
			}
			differs = true
			fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", file, file, diff)
		default:
			if _, err := io.WriteString(cc.Out, out); err != nil {
				return err
			}
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func formatSource(src string, opts ...encode.EncodeOption) (string, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// lineDiff renders the line changes from a to b with -, + and space
// prefixes. It reports false when a and b are equal.
func lineDiff(a, b string, colored bool) (string, bool) {
	if a == b {
		return "", false
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	res := &strings.Builder{}
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
			if colored {
				paint = color.New(color.FgGreen).Sprint
			}
		case diffpatch.DiffDelete:
			prefix = "-"
			if colored {
				paint = color.New(color.FgRed).Sprint
			}
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			res.WriteString(paint(prefix + line))
		}
	}
	return res.String(), true
}
