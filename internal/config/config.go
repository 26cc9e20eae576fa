// Package config loads Prover configuration from an optional YAML
// file, with spf13/cast coercing loosely-typed override values (as a
// caller might supply from CLI flags) into the typed Config fields.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	zetaerrors "github.com/zetaprover/zeta/internal/errors"
)

// Ordering names the term ordering Prover.New should build.
type Ordering string

const (
	OrderingKBO Ordering = "kbo"
	OrderingRPO Ordering = "rpo"
)

// Selection names the literal selection function Prover.New should
// use.
type Selection string

const (
	SelectionNone          Selection = "none"
	SelectionAllNegative   Selection = "all_negative"
	SelectionFirstNegative Selection = "first_negative"
	SelectionComplex       Selection = "complex"
)

// Config is the fully-typed configuration a Prover is built from.
type Config struct {
	Selection      Selection         `yaml:"selection"`
	Ordering       Ordering          `yaml:"ordering"`
	SymbolWeights  map[string]int    `yaml:"symbol_weights"`
	StepBudget     int               `yaml:"step_budget"`
	TimeBudget     time.Duration     `yaml:"time_budget"`
	CheckpointPath string            `yaml:"checkpoint_path"`
	MetricsEnabled bool              `yaml:"metrics_enabled"`
}

// Default returns the configuration a bare Prover.New() uses absent
// any file or override: first-negative selection, KBO ordering, no
// budget cap, metrics off.
func Default() Config {
	return Config{
		Selection:      SelectionFirstNegative,
		Ordering:       OrderingKBO,
		MetricsEnabled: false,
	}
}

// Load reads and parses a YAML configuration file, starting from
// Default() so an omitted field keeps its default rather than zeroing.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config file")
	}
	return cfg, nil
}

// Overrides carries loosely-typed values a caller might collect from
// CLI flags or environment variables, to be coerced onto a Config via
// ApplyOverrides.
type Overrides map[string]interface{}

// ApplyOverrides coerces each override value into its Config field
// using cast, so a flag parser need not itself know Config's exact
// field types.
func ApplyOverrides(cfg Config, overrides Overrides) (Config, error) {
	if v, ok := overrides["step_budget"]; ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return cfg, errors.Wrap(err, "step_budget override")
		}
		cfg.StepBudget = n
	}
	if v, ok := overrides["time_budget"]; ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return cfg, errors.Wrap(err, "time_budget override")
		}
		cfg.TimeBudget = d
	}
	if v, ok := overrides["metrics_enabled"]; ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return cfg, errors.Wrap(err, "metrics_enabled override")
		}
		cfg.MetricsEnabled = b
	}
	if v, ok := overrides["selection"]; ok {
		cfg.Selection = Selection(cast.ToString(v))
	}
	if v, ok := overrides["ordering"]; ok {
		cfg.Ordering = Ordering(cast.ToString(v))
	}
	if v, ok := overrides["checkpoint_path"]; ok {
		cfg.CheckpointPath = cast.ToString(v)
	}
	return cfg, nil
}

// Validate checks the completeness spec.md §7 requires be caught at
// Prover.New: a selection function and an ordering must both be
// named.
func Validate(cfg Config) error {
	if cfg.Selection == "" {
		return zetaerrors.ErrConfig.New("no selection function configured")
	}
	if cfg.Ordering == "" {
		return zetaerrors.ErrConfig.New("no ordering configured")
	}
	return nil
}
