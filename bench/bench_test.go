package bench

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/equifact/go-equifact/redist"
)

func TestConfigDecode(t *testing.T) {
	const doc = `
sizes = [500, 5000]
rounds = 3
timeout = "250ms"
algorithms = ["rangelist", "holes"]
`
	cfg := DefaultConfig()
	_, err := toml.Decode(doc, &cfg)
	require.NoError(t, err)
	require.Equal(t, []uint64{500, 5000}, cfg.Sizes)
	require.Equal(t, 3, cfg.Rounds)
	require.Equal(t, 250*time.Millisecond, cfg.Timeout.Duration)
	require.Equal(t, []string{"rangelist", "holes"}, cfg.Algorithms)
}

func TestDefaultConfigCoversEveryAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, redist.AlgorithmNames(), cfg.Algorithms)
	require.NotEmpty(t, cfg.Sizes)
	require.Greater(t, cfg.Rounds, 0)
	require.Greater(t, cfg.Timeout.Duration, time.Duration(0))
}

func TestRunMeasuresEveryCell(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := Config{
		Sizes:      []uint64{32, 64},
		Rounds:     1,
		Timeout:    Duration{time.Minute},
		Algorithms: redist.AlgorithmNames(),
	}
	rows, err := Run(cfg, log)
	require.NoError(t, err)
	require.Len(t, rows, len(cfg.Algorithms))
	for ri, row := range rows {
		require.Equal(t, cfg.Algorithms[ri], row.Name)
		require.Len(t, row.Cells, len(cfg.Sizes))
		for _, cell := range row.Cells {
			require.False(t, cell.TimedOut)
		}
	}
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := DefaultConfig()
	cfg.Algorithms = []string{"quantum"}
	_, err := Run(cfg, log)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}
