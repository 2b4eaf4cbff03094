package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	rows := []Row{
		{Name: "rangelist", Cells: []Cell{
			{Mean: 42 * time.Microsecond},
			{Mean: 1500 * time.Microsecond},
		}},
		{Name: "shift", Cells: []Cell{
			{Mean: 103 * time.Microsecond},
			{TimedOut: true},
		}},
	}

	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, []uint64{1000, 10000}, rows))

	want := "Algorithm\tN=1000\tN=10000\n" +
		"rangelist\t0.042\t1.500\n" +
		"shift\t0.103\tTIMEOUT\n"
	require.Equal(t, want, sb.String())
}

func TestWriteTableEmptyRows(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, []uint64{64}, nil))
	require.Equal(t, "Algorithm\tN=64\n", sb.String())
}
