package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/equifact/go-equifact/redist"
)

// balanceCmd implements subcommands.Command for the "balance" command.
type balanceCmd struct {
	n         uint64
	algorithm string
}

func (*balanceCmd) Name() string { return "balance" }

func (*balanceCmd) Synopsis() string {
	return "redistribute factors of two over 1..N and print the sorted result"
}

func (*balanceCmd) Usage() string {
	return `balance -n N [-algorithm NAME]:
  Print the balanced factor sequence for size N, one line of ascending
  integers whose product is N!.

`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.n, "n", 15, "problem size")
	f.StringVar(&c.algorithm, "algorithm", "rangelist", "representation to use")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	fn, ok := redist.Algorithms()[c.algorithm]
	if !ok {
		log.WithField("algorithm", c.algorithm).Error("unknown algorithm")
		return subcommands.ExitUsageError
	}
	values := fn(c.n)
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(os.Stdout, strings.Join(fields, " "))
	return subcommands.ExitSuccess
}
