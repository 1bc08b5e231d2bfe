package main

import (
	"flag"
	"fmt"

	"seatmarket/internal/auction"
	"seatmarket/internal/config"
	"seatmarket/internal/model"
	"seatmarket/internal/sim"
	"seatmarket/internal/strategy"
)

// Demo:
// - Build a three-team config in code (or load one with --config)
// - Clear a sealed-bid auction
// - Drive the tick engine directly with bot strategies to show how the
//   library API fits together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	seed := flag.Uint("seed", 20090, "RNG seed")
	flag.Parse()

	params := demoParams(uint32(*seed))
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ToSimParams()
	}

	bids := []model.AuctionBid{
		{TeamID: "albatross", Price: 160, Quantity: 70},
		{TeamID: "buzzard", Price: 150, Quantity: 70},
		{TeamID: "condor", Price: 140, Quantity: 70, Budget: 8000},
	}
	cleared := auction.Clear(params, bids)
	fmt.Printf("Auction: capacity used %d/%d\n", cleared.CapacityUsed, params.Airline.CapacityTotal)
	for _, tp := range params.Teams {
		alloc := cleared.Allocations[tp.ID]
		fmt.Printf("  %-10s awarded=%2d at %.0f\n", tp.ID, alloc.Quantity, alloc.UnitCost)
	}

	strats := map[string]strategy.Strategy{
		"albatross": &strategy.HoldStrategy{},
		"buzzard":   &strategy.UndercutStrategy{Params: strategy.UndercutParams{Delta: 2}},
		"condor":    &strategy.TrackerStrategy{Params: strategy.TrackerParams{Margin: 15}},
	}

	rt := sim.NewRuntime(params, cleared)
	var prev *model.MarketSnapshot
	for tick := 0; tick < params.TicksTotal; tick++ {
		decisions := make([]model.Decision, 0, len(params.Teams))
		for _, tp := range params.Teams {
			st := rt.Teams[tp.ID]
			decisions = append(decisions, strats[tp.ID].Decide(strategy.Context{
				TickIndex:    tick,
				Team:         tp,
				CurrentPrice: st.Price,
				FixedLeft:    st.FixedLeft,
				ToolReady:    st.Cooldown == 0,
				Snapshot:     prev,
			}))
		}

		snapshot, day, err := sim.RunTick(params, rt, decisions)
		if err != nil {
			panic(err)
		}
		prev = &snapshot

		fmt.Printf("tick %2d: wholesale=%.1f pool=%3d demand=%d lost=%d hint=%s\n",
			tick, snapshot.WholesalePrice, snapshot.PoolRemaining,
			day.DemandRealized, day.DemandLost, snapshot.DemandHint)
	}

	fmt.Println("\nFinal reports:")
	for _, rep := range sim.Finalize(params, rt) {
		marker := " "
		if rep.Winner {
			marker = "*"
		}
		fmt.Printf("%s %-10s profit=%8.2f sold=%3d load=%.3f avg_sell=%.2f avg_buy=%.2f penalty=%.0f\n",
			marker, rep.TeamID, rep.Profit, rep.UnitsSold, rep.LoadFactor,
			rep.AvgSellPrice, rep.AvgBuyPrice, rep.HotelPenalty)
	}
}

func demoParams(seed uint32) *model.SimParams {
	base := make([]float64, 20)
	for i := range base {
		// Demand ramps up as departure approaches.
		base[i] = 8 + float64(i)/2
	}
	return &model.SimParams{
		TicksTotal:  20,
		TickSeconds: 60,
		Seed:        seed,
		Airline: model.AirlineParams{
			CapacityTotal:  240,
			WholesaleStart: 110,
			WholesaleMin:   70,
			WholesaleMax:   220,
			Gamma:          0.08,
			Kappa:          25,
		},
		Market: model.MarketParams{
			BaseDemand:     base,
			Alpha:          1.5,
			Beta:           3,
			ReferencePrice: 150,
		},
		Hotel: model.HotelParams{
			CapacityPerTeam:  60,
			EmptyUnitPenalty: 18,
		},
		Teams: []model.TeamParams{
			{ID: "albatross", PriceMin: 90, PriceMax: 220, PriceStart: 180},
			{ID: "buzzard", PriceMin: 90, PriceMax: 220, PriceStart: 170},
			{ID: "condor", PriceMin: 90, PriceMax: 220, PriceStart: 160},
		},
		Rules: model.RuleSet{
			RequireCostCoverage:   true,
			RelaxedWinnerFallback: true,
			PushCosts:             [3]float64{0, 25, 60},
			ToolCooldown:          3,
			PriceJumpThreshold:    0.2,
			CollusionBand:         0.03,
		},
	}
}
