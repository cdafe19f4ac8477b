// Package config holds the settings shared by the verify and bench commands.
//
// Values are resolved in order: built-in defaults, an optional YAML file,
// ITERSORT_* environment variables, then command-line flags.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-itersort/internal/lcg"
	"github.com/ajroetker/go-itersort/itersort"
)

// Environment variables read by FromEnv.
const (
	EnvStrategy = "ITERSORT_STRATEGY"
	EnvSeed     = "ITERSORT_SEED"
)

// Suite describes one batch of generated vectors.
type Suite struct {
	Runs   int       `yaml:"runs"`
	Length lcg.Range `yaml:"length"`
	Values lcg.Range `yaml:"values"`
}

// Config is the full harness configuration.
type Config struct {
	Seed       uint32   `yaml:"seed"`
	Workers    int      `yaml:"workers"`
	Strategies []string `yaml:"strategies"`
	Verify     Suite    `yaml:"verify"`
	Bench      Suite    `yaml:"bench"`
}

// Default returns the configuration the harnesses use with no file, env or
// flags: 10,000 short vectors over five distinct values for verify, and ten
// vectors of 10k-100k elements for bench.
func Default() Config {
	return Config{
		Seed:       lcg.DefaultSeed,
		Workers:    0,
		Strategies: lo.Map(itersort.Strategies(), func(s itersort.Strategy, _ int) string { return s.String() }),
		Verify: Suite{
			Runs:   10000,
			Length: lcg.Range{Min: 2, Max: 30},
			Values: lcg.Range{Min: 0, Max: 5},
		},
		Bench: Suite{
			Runs:   10,
			Length: lcg.Range{Min: 10000, Max: 100000},
			Values: lcg.Range{Min: 0, Max: 100000},
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// FromEnv applies ITERSORT_STRATEGY and ITERSORT_SEED when they are set.
// ITERSORT_STRATEGY names a single strategy; ITERSORT_SEED accepts decimal,
// hex (0x) or octal (0o) notation.
func (c *Config) FromEnv() error {
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategies = []string{v}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvSeed)
		}
		c.Seed = uint32(seed)
	}
	return nil
}

// ParsedStrategies resolves the configured strategy names, dropping
// duplicates.
func (c Config) ParsedStrategies() ([]itersort.Strategy, error) {
	out := make([]itersort.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := itersort.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return lo.Uniq(out), nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if len(c.Strategies) == 0 {
		return errors.New("no strategies configured")
	}
	if _, err := c.ParsedStrategies(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if err := c.Verify.validate("verify"); err != nil {
		return err
	}
	return c.Bench.validate("bench")
}

func (s Suite) validate(name string) error {
	if s.Runs <= 0 {
		return errors.Errorf("%s.runs must be positive, got %d", name, s.Runs)
	}
	if s.Length.Min < 0 || s.Length.Width() == 0 {
		return errors.Errorf("%s.length must be a non-empty range of non-negative lengths, got [%d, %d)",
			name, s.Length.Min, s.Length.Max)
	}
	if s.Values.Width() == 0 {
		return errors.Errorf("%s.values must be a non-empty range, got [%d, %d)",
			name, s.Values.Min, s.Values.Max)
	}
	if s.Length.Width() > lcg.MaxWidth || s.Values.Width() > lcg.MaxWidth {
		return errors.Errorf("%s ranges must be at most %d wide, got length [%d, %d) values [%d, %d)",
			name, lcg.MaxWidth, s.Length.Min, s.Length.Max, s.Values.Min, s.Values.Max)
	}
	return nil
}
