package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/equifact/go-equifact/bench"
)

// benchCmd implements subcommands.Command for the "bench" command.
type benchCmd struct {
	config string
}

func (*benchCmd) Name() string { return "bench" }

func (*benchCmd) Synopsis() string {
	return "time every representation across a ladder of sizes"
}

func (*benchCmd) Usage() string {
	return `bench [-config FILE]:
  Measure each representation at each configured size and write a
  tab-separated table to stdout. Cells that exceed the timeout report the
  TIMEOUT token instead of a mean.

`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "TOML config file; defaults apply when empty")
}

func (c *benchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg := bench.DefaultConfig()
	if c.config != "" {
		var err error
		if cfg, err = bench.LoadConfig(c.config); err != nil {
			log.WithError(err).Error("loading config")
			return subcommands.ExitFailure
		}
	}
	rows, err := bench.Run(cfg, log)
	if err != nil {
		log.WithError(err).Error("running benchmarks")
		return subcommands.ExitFailure
	}
	if err := bench.WriteTable(os.Stdout, cfg.Sizes, rows); err != nil {
		log.WithError(err).Error("writing table")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
