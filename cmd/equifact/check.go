package main

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/equifact/go-equifact/redist"
)

// checkCmd implements subcommands.Command for the "check" command.
type checkCmd struct {
	n uint64
}

func (*checkCmd) Name() string { return "check" }

func (*checkCmd) Synopsis() string {
	return "verify every representation agrees and the product is N!"
}

func (*checkCmd) Usage() string {
	return `check -n N:
  Run every representation at size N, verify they all produce the same
  sorted sequence and that its product equals N!.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.n, "n", 1000, "problem size")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	algos := redist.Algorithms()
	names := redist.AlgorithmNames()

	reference := algos[names[0]](c.n)
	for _, name := range names[1:] {
		if got := algos[name](c.n); !slices.Equal(got, reference) {
			log.WithFields(logrus.Fields{
				"algorithm": name,
				"reference": names[0],
				"n":         c.n,
			}).Error("representations disagree")
			return subcommands.ExitFailure
		}
	}
	if redist.Product(reference).Cmp(redist.Factorial(c.n)) != 0 {
		log.WithField("n", c.n).Error("product does not equal N!")
		return subcommands.ExitFailure
	}
	fmt.Printf("ok: %d representations agree at n=%d, product is %d!\n", len(names), c.n, c.n)
	return subcommands.ExitSuccess
}
