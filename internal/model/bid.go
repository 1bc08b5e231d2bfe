package model

// AuctionBid is one sealed pay-as-bid offer for fixed seat inventory.
// Budget is an optional spend cap; 0 means uncapped.
type AuctionBid struct {
	TeamID   string  `json:"team_id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Budget   float64 `json:"budget,omitempty"`
}

// Allocation is one team's auction outcome. UnitCost equals the team's own
// bid price (pay-as-bid, not a uniform clearing price).
type Allocation struct {
	TeamID    string  `json:"team_id"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`
}

// AuctionResult is the cleared auction. CapacityUsed never exceeds the
// configured airline capacity.
type AuctionResult struct {
	Allocations  map[string]Allocation `json:"allocations"`
	CapacityUsed int                   `json:"capacity_used"`
}
