package sim

import (
	"seatmarket/internal/model"
)

// TeamState captures one team's mutable state across a run.
type TeamState struct {
	ID string

	// FixedLeft is the remaining auction-acquired inventory; it only shrinks.
	FixedLeft int
	// FixedCost is the average acquisition cost per fixed seat.
	FixedCost float64

	Price     float64
	LastPrice float64

	Revenue float64
	Cost    float64

	FixedSold int
	PoolSold  int

	Tool     model.Tool
	Cooldown int

	Attention float64

	PriceHistory []float64
}

// SaleRecord is one row of the per-unit sale ledger, the primary artifact
// for "what happened" in a run.
type SaleRecord struct {
	Tick      int
	TeamID    string
	PricePaid float64 // paid by the customer
	UnitCost  float64 // paid by the team: fixed average cost or wholesale
	FromPool  bool
}

// Runtime is the mutable state of one in-progress simulation. It is
// exclusively owned by that run: ticks must be applied strictly in order
// from a single call site, and a Runtime is never reused across runs.
type Runtime struct {
	// TicksLeft counts down from TicksTotal to the terminal value 0.
	TicksLeft int

	Wholesale float64
	PoolLeft  int

	Rng *LCG

	// CumForecast[i] is the forecast cumulative demand through tick index i,
	// precomputed from the baseline curve. CumSold mirrors it with realized
	// sales; their gap drives wholesale repricing.
	CumForecast []float64
	CumSold     []int

	Ledger []SaleRecord

	Teams map[string]*TeamState

	// order fixes the team iteration sequence (config order) so that map
	// iteration never perturbs the random draw order.
	order []string

	// priceWindow holds the last up-to-three ticks' sanitized price vectors,
	// aligned with order, for the anti-collusion check.
	priceWindow [][]float64
}

// NewRuntime builds the runtime for one run from the cleared auction.
// Pooling capacity is whatever the auction left unallocated.
func NewRuntime(params *model.SimParams, auction *model.AuctionResult) *Runtime {
	rt := &Runtime{
		TicksLeft:   params.TicksTotal,
		Wholesale:   params.Airline.WholesaleStart,
		PoolLeft:    params.Airline.CapacityTotal,
		Rng:         NewLCG(params.Seed),
		CumForecast: make([]float64, params.TicksTotal),
		CumSold:     make([]int, params.TicksTotal),
		Teams:       make(map[string]*TeamState, len(params.Teams)),
		order:       make([]string, 0, len(params.Teams)),
	}

	sum := 0.0
	for i, d := range params.Market.BaseDemand {
		sum += d
		rt.CumForecast[i] = sum
	}

	for _, tp := range params.Teams {
		st := &TeamState{
			ID:        tp.ID,
			Price:     tp.PriceStart,
			Attention: 1.0,
		}
		if auction != nil {
			if alloc, ok := auction.Allocations[tp.ID]; ok {
				st.FixedLeft = alloc.Quantity
				st.FixedCost = alloc.UnitCost
				rt.PoolLeft -= alloc.Quantity
			}
		}
		rt.Teams[tp.ID] = st
		rt.order = append(rt.order, tp.ID)
	}
	if rt.PoolLeft < 0 {
		rt.PoolLeft = 0
	}
	return rt
}

// TeamOrder returns the fixed iteration order of teams in this run.
func (rt *Runtime) TeamOrder() []string {
	out := make([]string, len(rt.order))
	copy(out, rt.order)
	return out
}
