package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"

	"github.com/iox-format/go-iox/schema"
	"github.com/iox-format/go-iox/types"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Jobs < 0 {
		return fmt.Errorf("%w: -j must not be negative", cli.ErrUsage)
	}
	s, err := cfg.loadSchema(cc)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files := inputs(args)
	read := func(file string) ([]byte, error) { return readInput(cc, file) }
	errs, err := checkAll(ctx, cfg.MainConfig, s, files, cfg.Jobs, read)
	if err != nil {
		return err
	}
	if report(cc.Out, files, errs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkAll decodes files concurrently and returns each file's error. s is
// shared by all workers, so it is validated up front.
func checkAll(ctx context.Context, cfg *MainConfig, s *schema.Schema, files []string, jobs int, read func(string) ([]byte, error)) ([]error, error) {
	if s != nil {
		if err := schema.Validate(s, types.DefaultRegistry()); err != nil {
			return nil, err
		}
	}
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	errs := make([]error, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := read(file)
			if err == nil {
				_, err = cfg.decodeDoc(d, s)
			}
			errs[i] = err
			theLog.Debug("checked", "file", file, "ok", err == nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return errs, nil
}

// report writes one line per file and returns the number of failures.
func report(w io.Writer, files []string, errs []error) int {
	failed := 0
	for i, file := range files {
		name := file
		if name == "-" {
			name = "stdin"
		}
		if errs[i] != nil {
			failed++
			fmt.Fprintf(w, "%s: %v\n", name, errs[i])
			continue
		}
		fmt.Fprintf(w, "%s: ok\n", name)
	}
	return failed
}
