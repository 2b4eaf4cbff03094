package bench

import (
	"fmt"
	"io"
	"time"
)

// TimeoutToken is the literal written for a cell whose measurement was
// abandoned.
const TimeoutToken = "TIMEOUT"

// WriteTable renders the measurements as a tab-separated table: a header
// row naming each size column, then one row per algorithm with the mean
// duration in decimal milliseconds, or the timeout token.
//
//	Algorithm	N=1000	N=10000
//	rangelist	0.042	0.511
//	shift	0.103	TIMEOUT
func WriteTable(w io.Writer, sizes []uint64, rows []Row) error {
	if _, err := fmt.Fprint(w, "Algorithm"); err != nil {
		return err
	}
	for _, n := range sizes {
		if _, err := fmt.Fprintf(w, "\tN=%d", n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprint(w, row.Name); err != nil {
			return err
		}
		for _, cell := range row.Cells {
			field := TimeoutToken
			if !cell.TimedOut {
				field = fmt.Sprintf("%.3f", float64(cell.Mean)/float64(time.Millisecond))
			}
			if _, err := fmt.Fprintf(w, "\t%s", field); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
