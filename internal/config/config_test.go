package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Validate(config.Default()))
}

func TestValidateRejectsMissingSelection(t *testing.T) {
	cfg := config.Default()
	cfg.Selection = ""
	require.Error(t, config.Validate(cfg))
}

func TestValidateRejectsMissingOrdering(t *testing.T) {
	cfg := config.Default()
	cfg.Ordering = ""
	require.Error(t, config.Validate(cfg))
}

func TestLoadParsesYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zeta.yaml")
	contents := "ordering: rpo\nstep_budget: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.OrderingRPO, cfg.Ordering)
	require.Equal(t, 500, cfg.StepBudget)
	require.Equal(t, config.SelectionFirstNegative, cfg.Selection, "unset fields keep Default()'s value")
}

func TestApplyOverridesCoercesLooselyTypedValues(t *testing.T) {
	cfg := config.Default()
	cfg, err := config.ApplyOverrides(cfg, config.Overrides{
		"step_budget":     "1000",
		"time_budget":     "5s",
		"metrics_enabled": "true",
		"selection":       "all_negative",
	})
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.StepBudget)
	require.Equal(t, 5*time.Second, cfg.TimeBudget)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, config.SelectionAllNegative, cfg.Selection)
}

func TestApplyOverridesRejectsUncoercibleStepBudget(t *testing.T) {
	cfg := config.Default()
	_, err := config.ApplyOverrides(cfg, config.Overrides{"step_budget": "not-a-number"})
	require.Error(t, err)
}
