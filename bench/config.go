package bench

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/equifact/go-equifact/redist"
)

// Duration wraps time.Duration so TOML files can use "250ms" style strings.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config selects what the harness measures.
type Config struct {
	// Sizes are the problem sizes, one table column each.
	Sizes []uint64 `toml:"sizes"`

	// Rounds is how many runs are averaged per cell.
	Rounds int `toml:"rounds"`

	// Timeout bounds a single cell; an overrun reports TIMEOUT and the
	// attempt is abandoned.
	Timeout Duration `toml:"timeout"`

	// Algorithms are the representation names to measure, one table row
	// each. Empty means all of them.
	Algorithms []string `toml:"algorithms"`
}

// DefaultConfig covers every algorithm over a modest size ladder.
func DefaultConfig() Config {
	return Config{
		Sizes:      []uint64{1000, 10000, 100000},
		Rounds:     5,
		Timeout:    Duration{10 * time.Second},
		Algorithms: redist.AlgorithmNames(),
	}
}

// LoadConfig reads a TOML config file, filling unset fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = redist.AlgorithmNames()
	}
	return cfg, nil
}
