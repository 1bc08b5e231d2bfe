package model

import (
	"errors"
	"fmt"
)

// SimParams defines the full parameter set for one simulation run.
// Units:
// - prices: currency units per seat
// - demand: seats per tick
// - Gamma/Kappa: wholesale repricing sensitivity and smoothing
// - Alpha/Beta: demand elasticity and logit sharpness
type SimParams struct {
	TicksTotal  int
	TickSeconds int
	Seed        uint32

	Airline AirlineParams
	Market  MarketParams
	Hotel   HotelParams
	Teams   []TeamParams
	Rules   RuleSet
}

// AirlineParams bundles shared seat capacity and the wholesale price model.
type AirlineParams struct {
	CapacityTotal  int
	WholesaleStart float64
	WholesaleMin   float64
	WholesaleMax   float64
	Gamma          float64
	Kappa          float64
}

// MarketParams defines the stochastic demand model.
// BaseDemand holds one baseline value per tick; its length must equal TicksTotal.
type MarketParams struct {
	BaseDemand     []float64
	Alpha          float64
	Beta           float64
	ReferencePrice float64
}

// HotelParams defines the end-of-run penalty for unfilled hotel capacity.
type HotelParams struct {
	CapacityPerTeam  int
	EmptyUnitPenalty float64
}

// TeamParams holds the per-team pricing bounds.
type TeamParams struct {
	ID         string
	PriceMin   float64
	PriceMax   float64
	PriceStart float64
}

// RuleSet collects the tunable game rules.
type RuleSet struct {
	// RequireCostCoverage restricts the winner to teams whose average sell
	// price covers their average buy price.
	RequireCostCoverage bool
	// RelaxedWinnerFallback re-admits all teams when no team passes the
	// coverage check. Matches the historical behavior when enabled.
	RelaxedWinnerFallback bool
	// PushCosts is the per-tick cost of push levels 0, 1 and 2.
	PushCosts [3]float64
	// ToolCooldown is the number of ticks a tool stays unavailable after use.
	ToolCooldown int
	// PriceJumpThreshold caps the per-tick price change as a fraction of the
	// previous applied price.
	PriceJumpThreshold float64
	// CollusionBand is the relative price-proximity band of the anti-collusion
	// check.
	CollusionBand float64
}

func (p *SimParams) Validate() error {
	if p.TicksTotal <= 0 {
		return errors.New("TicksTotal must be > 0")
	}
	if len(p.Market.BaseDemand) != p.TicksTotal {
		return fmt.Errorf("BaseDemand length %d must equal TicksTotal %d", len(p.Market.BaseDemand), p.TicksTotal)
	}
	if p.Airline.CapacityTotal <= 0 {
		return errors.New("Airline.CapacityTotal must be > 0")
	}
	if p.Airline.WholesaleMin > p.Airline.WholesaleMax {
		return errors.New("Airline wholesale bounds must satisfy min <= max")
	}
	if p.Airline.WholesaleStart < p.Airline.WholesaleMin || p.Airline.WholesaleStart > p.Airline.WholesaleMax {
		return errors.New("Airline.WholesaleStart must be within [min, max]")
	}
	if p.Airline.Kappa <= 0 {
		return errors.New("Airline.Kappa must be > 0")
	}
	if p.Market.ReferencePrice <= 0 {
		return errors.New("Market.ReferencePrice must be > 0")
	}
	if p.Market.Beta < 0 {
		return errors.New("Market.Beta must be >= 0")
	}
	if p.Hotel.CapacityPerTeam < 0 {
		return errors.New("Hotel.CapacityPerTeam must be >= 0")
	}
	if p.Hotel.EmptyUnitPenalty < 0 {
		return errors.New("Hotel.EmptyUnitPenalty must be >= 0")
	}
	if len(p.Teams) == 0 {
		return errors.New("at least one team is required")
	}
	seen := make(map[string]bool, len(p.Teams))
	for _, t := range p.Teams {
		if t.ID == "" {
			return errors.New("team id must not be empty")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate team id %q", t.ID)
		}
		seen[t.ID] = true
		if t.PriceMin < 0 || t.PriceMin > t.PriceMax {
			return fmt.Errorf("team %q price bounds must satisfy 0 <= min <= max", t.ID)
		}
		if t.PriceStart < t.PriceMin || t.PriceStart > t.PriceMax {
			return fmt.Errorf("team %q start price must be within [min, max]", t.ID)
		}
	}
	if p.Rules.PriceJumpThreshold <= 0 {
		return errors.New("Rules.PriceJumpThreshold must be > 0")
	}
	if p.Rules.CollusionBand < 0 {
		return errors.New("Rules.CollusionBand must be >= 0")
	}
	if p.Rules.ToolCooldown < 0 {
		return errors.New("Rules.ToolCooldown must be >= 0")
	}
	return nil
}

// Team returns the parameters for the given team id.
func (p *SimParams) Team(id string) (TeamParams, bool) {
	for _, t := range p.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return TeamParams{}, false
}
