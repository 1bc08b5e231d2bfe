package config

import (
	"errors"
	"fmt"
	"os"

	"seatmarket/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	TicksTotal  int    `yaml:"ticks_total"`
	TickSeconds int    `yaml:"tick_seconds"`
	Seed        uint32 `yaml:"seed"`

	Airline AirlineConfig `yaml:"airline"`
	Market  MarketConfig  `yaml:"market"`
	Hotel   HotelConfig   `yaml:"hotel"`
	Teams   []TeamConfig  `yaml:"teams"`
	Rules   RulesConfig   `yaml:"rules"`
}

type AirlineConfig struct {
	CapacityTotal  int     `yaml:"capacity_total"`
	WholesaleStart float64 `yaml:"wholesale_start"`
	WholesaleMin   float64 `yaml:"wholesale_min"`
	WholesaleMax   float64 `yaml:"wholesale_max"`
	Gamma          float64 `yaml:"gamma"`
	Kappa          float64 `yaml:"kappa"`
}

type MarketConfig struct {
	BaseDemand     []float64 `yaml:"base_demand"`
	Alpha          float64   `yaml:"alpha"`
	Beta           float64   `yaml:"beta"`
	ReferencePrice float64   `yaml:"reference_price"`
}

type HotelConfig struct {
	CapacityPerTeam  int     `yaml:"capacity_per_team"`
	EmptyUnitPenalty float64 `yaml:"empty_unit_penalty"`
}

type TeamConfig struct {
	ID         string  `yaml:"id"`
	PriceMin   float64 `yaml:"price_min"`
	PriceMax   float64 `yaml:"price_max"`
	PriceStart float64 `yaml:"price_start"`
}

type RulesConfig struct {
	RequireCostCoverage   bool      `yaml:"require_cost_coverage"`
	RelaxedWinnerFallback *bool     `yaml:"relaxed_winner_fallback"`
	PushCosts             []float64 `yaml:"push_costs"`
	ToolCooldown          int       `yaml:"tool_cooldown"`
	PriceJumpThreshold    float64   `yaml:"price_jump_threshold"`
	CollusionBand         float64   `yaml:"collusion_band"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config, but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills in fields a concise config may omit.
func (c *Config) ApplyDefaults() {
	if c.TickSeconds == 0 {
		c.TickSeconds = 60
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Rules.PriceJumpThreshold == 0 {
		c.Rules.PriceJumpThreshold = 0.2
	}
	if c.Rules.CollusionBand == 0 {
		c.Rules.CollusionBand = 0.03
	}
	if c.Rules.ToolCooldown == 0 {
		c.Rules.ToolCooldown = 3
	}
	if c.Rules.RelaxedWinnerFallback == nil {
		t := true
		c.Rules.RelaxedWinnerFallback = &t
	}
	// Teams that do not set a start price open at their ceiling.
	for i := range c.Teams {
		if c.Teams[i].PriceStart == 0 {
			c.Teams[i].PriceStart = c.Teams[i].PriceMax
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Rules.PushCosts) > 3 {
		return errors.New("rules.push_costs accepts at most 3 values")
	}
	// Validate by constructing the model params.
	if err := c.ToSimParams().Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

func (c *Config) ToSimParams() *model.SimParams {
	teams := make([]model.TeamParams, 0, len(c.Teams))
	for _, t := range c.Teams {
		teams = append(teams, model.TeamParams{
			ID:         t.ID,
			PriceMin:   t.PriceMin,
			PriceMax:   t.PriceMax,
			PriceStart: t.PriceStart,
		})
	}
	var push [3]float64
	copy(push[:], c.Rules.PushCosts)
	relaxed := true
	if c.Rules.RelaxedWinnerFallback != nil {
		relaxed = *c.Rules.RelaxedWinnerFallback
	}
	return &model.SimParams{
		TicksTotal:  c.TicksTotal,
		TickSeconds: c.TickSeconds,
		Seed:        c.Seed,
		Airline: model.AirlineParams{
			CapacityTotal:  c.Airline.CapacityTotal,
			WholesaleStart: c.Airline.WholesaleStart,
			WholesaleMin:   c.Airline.WholesaleMin,
			WholesaleMax:   c.Airline.WholesaleMax,
			Gamma:          c.Airline.Gamma,
			Kappa:          c.Airline.Kappa,
		},
		Market: model.MarketParams{
			BaseDemand:     c.Market.BaseDemand,
			Alpha:          c.Market.Alpha,
			Beta:           c.Market.Beta,
			ReferencePrice: c.Market.ReferencePrice,
		},
		Hotel: model.HotelParams{
			CapacityPerTeam:  c.Hotel.CapacityPerTeam,
			EmptyUnitPenalty: c.Hotel.EmptyUnitPenalty,
		},
		Teams: teams,
		Rules: model.RuleSet{
			RequireCostCoverage:   c.Rules.RequireCostCoverage,
			RelaxedWinnerFallback: relaxed,
			PushCosts:             push,
			ToolCooldown:          c.Rules.ToolCooldown,
			PriceJumpThreshold:    c.Rules.PriceJumpThreshold,
			CollusionBand:         c.Rules.CollusionBand,
		},
	}
}
