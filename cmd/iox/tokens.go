package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/iox-format/go-iox/encode"
	"github.com/iox-format/go-iox/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		toks, err := token.Tokenize(string(d))
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", file, err)
		}
		if err := writeTokens(cc.Out, toks, cfg.Comments); err != nil {
			return err
		}
	}
	return nil
}

func writeTokens(w io.Writer, toks []token.Token, comments bool) error {
	for i := range toks {
		tok := &toks[i]
		if tok.Kind == token.TComment && !comments {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Row, tok.Col, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := viewSource(cc.Out, string(d), colors); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewSource(w io.Writer, src string, colors *encode.Colors) error {
	toks, err := token.Tokenize(src)
	if err != nil {
		return err
	}
	if colors != nil {
		src = encode.Highlight(src, toks, colors)
	}
	_, err = io.WriteString(w, src)
	return err
}
