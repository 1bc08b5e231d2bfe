package models

import "seatmarket/internal/scenario"

// SimulateRequest runs one full scenario: auction, all ticks, finalize.
// Either ScenarioID (served from the scenario directory) or an inline
// Scenario must be set.
type SimulateRequest struct {
	ConfigFile string             `json:"config_file" binding:"required"`
	ScenarioID string             `json:"scenario_id,omitempty"`
	Scenario   *scenario.Scenario `json:"scenario,omitempty"`
	Options    SimulateOptions    `json:"options,omitempty"`
}

// SimulateOptions contains optional run parameters
type SimulateOptions struct {
	// Seed overrides the config seed when non-zero.
	Seed             uint32 `json:"seed,omitempty"`
	IncludeLedger    bool   `json:"include_ledger,omitempty"`
	IncludeSnapshots bool   `json:"include_snapshots,omitempty"`
}

// AuctionRequest clears a sealed bid set without starting a run.
type AuctionRequest struct {
	ConfigFile string `json:"config_file" binding:"required"`
	Bids       []Bid  `json:"bids" binding:"required"`
}

// Bid is one sealed offer in an auction preview request.
type Bid struct {
	TeamID   string  `json:"team_id" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Budget   float64 `json:"budget,omitempty"`
}
