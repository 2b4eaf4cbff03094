// Package bench times the competing sequence representations against each
// other across a ladder of problem sizes and renders the results as a
// tab-separated table.
//
// Every structure under measurement is single-threaded and single-owner;
// the harness only uses goroutines to run independent structures side by
// side and to abandon an attempt that outlives its deadline, which is safe
// because the core holds no resources beyond its own allocations.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/equifact/go-equifact/redist"
)

var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Cell is one (algorithm, size) measurement.
type Cell struct {
	Mean     time.Duration
	TimedOut bool
}

// Row is one algorithm's measurements across every configured size.
type Row struct {
	Name  string
	Cells []Cell
}

// Run measures every configured algorithm across every configured size.
// Rows run concurrently, the cells within a row sequentially; a cell that
// exceeds the timeout is reported as timed out without disturbing the rest
// of the batch.
func Run(cfg Config, log *logrus.Logger) ([]Row, error) {
	algos := redist.Algorithms()
	for _, name := range cfg.Algorithms {
		if _, ok := algos[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}

	rows := make([]Row, len(cfg.Algorithms))
	var g errgroup.Group
	for ri, name := range cfg.Algorithms {
		g.Go(func() error {
			fn := algos[name]
			cells := make([]Cell, len(cfg.Sizes))
			for ci, n := range cfg.Sizes {
				cells[ci] = measure(fn, n, cfg.Rounds, cfg.Timeout.Duration)
				log.WithFields(logrus.Fields{
					"algorithm": name,
					"n":         n,
					"mean":      cells[ci].Mean,
					"timedout":  cells[ci].TimedOut,
				}).Debug("measured cell")
			}
			rows[ri] = Row{Name: name, Cells: cells}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// measure averages rounds runs of fn at size n. The runs execute on their
// own goroutine so an overrun can be abandoned from outside.
func measure(fn redist.Algorithm, n uint64, rounds int, timeout time.Duration) Cell {
	if rounds < 1 {
		rounds = 1
	}
	done := make(chan time.Duration, 1)
	go func() {
		start := time.Now()
		for range rounds {
			fn(n)
		}
		done <- time.Since(start)
	}()
	select {
	case elapsed := <-done:
		return Cell{Mean: elapsed / time.Duration(rounds)}
	case <-time.After(timeout):
		return Cell{TimedOut: true}
	}
}
