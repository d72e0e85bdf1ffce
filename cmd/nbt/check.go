package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires files", cli.ErrUsage)
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("%w: -j must be at least 1", cli.ErrUsage)
	}
	for _, file := range args {
		if file == "-" {
			return fmt.Errorf("%w: check reads files, not stdin", cli.ErrUsage)
		}
	}
	errs := make([]error, len(args))
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, file := range args {
		g.Go(func() error {
			_, _, errs[i] = cfg.readTag(cc, file)
			return nil
		})
	}
	g.Wait()
	failed := 0
	for i, file := range args {
		if errs[i] != nil {
			failed++
			theLog.Error("check failed", "file", file, "error", errs[i])
			continue
		}
		theLog.Debug("check ok", "file", file)
	}
	if _, err := fmt.Fprintf(cc.Out, "%d/%d files decoded\n", len(args)-failed, len(args)); err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
