package model

// DemandHint is a coarse public signal of where demand is heading, derived
// from how far the minimum retail price sits from the reference price.
// Keep these values stable; they are intended for broadcast and CSV output.
type DemandHint string

const (
	DemandLow    DemandHint = "LOW"
	DemandMedium DemandHint = "MEDIUM"
	DemandHigh   DemandHint = "HIGH"
)

// HintFromRelativePrice buckets the relative gap between the minimum retail
// price and the reference price. Cheap markets pull demand up.
func HintFromRelativePrice(rel float64) DemandHint {
	switch {
	case rel < -0.05:
		return DemandHigh
	case rel > 0.05:
		return DemandLow
	default:
		return DemandMedium
	}
}

// Standing is one row of the profit-ranked leaderboard.
type Standing struct {
	TeamID string  `json:"team_id"`
	Profit float64 `json:"profit"`
}

// MarketSnapshot is the public per-tick state, safe to broadcast to every
// participant.
type MarketSnapshot struct {
	TicksRemaining int                `json:"ticks_remaining"`
	WholesalePrice float64            `json:"wholesale_price"`
	PoolRemaining  int                `json:"pool_remaining"`
	Prices         map[string]float64 `json:"prices"`
	DemandHint     DemandHint         `json:"demand_hint"`
	Standings      []Standing         `json:"standings"`
}

// TeamDay is one team's private outcome for one tick.
type TeamDay struct {
	FixedSold int     `json:"fixed_sold"`
	PoolSold  int     `json:"pool_sold"`
	Revenue   float64 `json:"revenue"`
	Cost      float64 `json:"cost"`
}

// DayResults is the private per-tick breakdown. DemandRealized plus
// DemandLost always equals the tick's generated demand.
type DayResults struct {
	PerTeam        map[string]TeamDay `json:"per_team"`
	DemandRealized int                `json:"demand_realized"`
	DemandLost     int                `json:"demand_lost"`
	PoolRemaining  int                `json:"pool_remaining"`
}
