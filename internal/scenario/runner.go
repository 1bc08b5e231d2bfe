package scenario

import (
	"fmt"

	"seatmarket/internal/auction"
	"seatmarket/internal/model"
	"seatmarket/internal/sim"
	"seatmarket/internal/strategy"
)

// TickRow is one team's row of per-tick output in the run ledger.
type TickRow struct {
	Tick   int
	TeamID string

	Price     float64
	Wholesale float64

	FixedSold int
	PoolSold  int
	Revenue   float64
	Cost      float64
	CumProfit float64

	DemandRealized int
	DemandLost     int
	PoolRemaining  int

	Hint model.DemandHint
}

// Result is the full artifact of one scenario run.
type Result struct {
	Auction   *model.AuctionResult
	Ledger    []TickRow
	Snapshots []model.MarketSnapshot
	Reports   []model.FinalReport
}

type Runner struct{}

func NewRunner() *Runner { return &Runner{} }

// Run drives one complete simulation: auction, every tick, finalize.
// Scripted decisions win over the team's strategy; teams with neither hold.
func (r *Runner) Run(params *model.SimParams, sc *Scenario) (*Result, error) {
	if params == nil {
		return nil, fmt.Errorf("params are nil")
	}
	if sc == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := sc.Validate(params); err != nil {
		return nil, fmt.Errorf("scenario invalid: %w", err)
	}

	strats := make(map[string]strategy.Strategy, len(sc.Teams))
	for id, script := range sc.Teams {
		s, err := strategy.New(script.Strategy, script.Params)
		if err != nil {
			return nil, fmt.Errorf("team %s strategy: %w", id, err)
		}
		strats[id] = s
	}

	cleared := auction.Clear(params, sc.Bids)
	rt := sim.NewRuntime(params, cleared)

	res := &Result{
		Auction:   cleared,
		Ledger:    make([]TickRow, 0, params.TicksTotal*len(params.Teams)),
		Snapshots: make([]model.MarketSnapshot, 0, params.TicksTotal),
	}

	var prev *model.MarketSnapshot
	for tick := 0; tick < params.TicksTotal; tick++ {
		wholesale := rt.Wholesale

		decisions := make([]model.Decision, 0, len(params.Teams))
		for _, tp := range params.Teams {
			decisions = append(decisions, r.decide(sc, strats, rt, tp, tick, prev))
		}

		snapshot, day, err := sim.RunTick(params, rt, decisions)
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", tick, err)
		}

		for _, tp := range params.Teams {
			st := rt.Teams[tp.ID]
			td := day.PerTeam[tp.ID]
			res.Ledger = append(res.Ledger, TickRow{
				Tick:           tick,
				TeamID:         tp.ID,
				Price:          snapshot.Prices[tp.ID],
				Wholesale:      wholesale,
				FixedSold:      td.FixedSold,
				PoolSold:       td.PoolSold,
				Revenue:        td.Revenue,
				Cost:           td.Cost,
				CumProfit:      st.Revenue - st.Cost,
				DemandRealized: day.DemandRealized,
				DemandLost:     day.DemandLost,
				PoolRemaining:  day.PoolRemaining,
				Hint:           snapshot.DemandHint,
			})
		}
		res.Snapshots = append(res.Snapshots, snapshot)
		prev = &res.Snapshots[len(res.Snapshots)-1]
	}

	res.Reports = sim.Finalize(params, rt)
	return res, nil
}

func (r *Runner) decide(sc *Scenario, strats map[string]strategy.Strategy, rt *sim.Runtime, tp model.TeamParams, tick int, prev *model.MarketSnapshot) model.Decision {
	st := rt.Teams[tp.ID]
	script, ok := sc.Teams[tp.ID]
	if ok && tick < len(script.Ticks) {
		td := script.Ticks[tick]
		tool, _ := model.ParseTool(td.Tool) // validated up front
		return model.Decision{
			TeamID:  tp.ID,
			Price:   td.Price,
			Push:    td.Push,
			HoldPct: td.HoldPct,
			Tool:    tool,
		}
	}
	strat, ok := strats[tp.ID]
	if !ok {
		return model.Decision{TeamID: tp.ID, Price: st.Price}
	}
	return strat.Decide(strategy.Context{
		TickIndex:    tick,
		Team:         tp,
		CurrentPrice: st.Price,
		FixedLeft:    st.FixedLeft,
		ToolReady:    st.Cooldown == 0,
		Snapshot:     prev,
	})
}
