// equifact explores redistributing factors of two among the integers 1..N
// so that N! can be written as an equitable product of closely sized
// factors, and benchmarks the competing data structures that make the
// redistribution cheap.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(balanceCmd), "")
	subcommands.Register(new(benchCmd), "")
	subcommands.Register(new(checkCmd), "")

	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
