package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
ticks_total: 3
seed: 7
airline:
  capacity_total: 100
  wholesale_start: 110
  wholesale_min: 70
  wholesale_max: 220
  gamma: 0.08
  kappa: 25
market:
  base_demand: [10, 10, 10]
  alpha: 1.5
  beta: 3
  reference_price: 150
hotel:
  capacity_per_team: 30
  empty_unit_penalty: 18
teams:
  - id: a
    price_min: 90
    price_max: 220
rules:
  require_cost_coverage: true
  push_costs: [0, 25, 60]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	params := cfg.ToSimParams()
	if params.TicksTotal != 3 {
		t.Fatalf("expected 3 ticks, got %d", params.TicksTotal)
	}
	if params.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", params.Seed)
	}
	if params.Rules.PushCosts != [3]float64{0, 25, 60} {
		t.Fatalf("unexpected push costs %v", params.Rules.PushCosts)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TickSeconds != 60 {
		t.Fatalf("expected default tick_seconds 60, got %d", cfg.TickSeconds)
	}
	if cfg.Rules.PriceJumpThreshold != 0.2 {
		t.Fatalf("expected default jump threshold 0.2, got %v", cfg.Rules.PriceJumpThreshold)
	}
	if cfg.Teams[0].PriceStart != 220 {
		t.Fatalf("expected start price to default to ceiling, got %v", cfg.Teams[0].PriceStart)
	}
	if !cfg.ToSimParams().Rules.RelaxedWinnerFallback {
		t.Fatal("expected relaxed winner fallback to default on")
	}
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		replace string
	}{
		{name: "demand curve length mismatch", mutate: "base_demand: [10, 10, 10]", replace: "base_demand: [10, 10]"},
		{name: "zero capacity", mutate: "capacity_total: 100", replace: "capacity_total: 0"},
		{name: "wholesale start out of bounds", mutate: "wholesale_start: 110", replace: "wholesale_start: 500"},
		{name: "no teams", mutate: "teams:\n  - id: a\n    price_min: 90\n    price_max: 220", replace: "teams: []"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(validYAML, tt.mutate) {
				t.Fatalf("test fixture does not contain %q", tt.mutate)
			}
			body := strings.Replace(validYAML, tt.mutate, tt.replace, 1)
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
