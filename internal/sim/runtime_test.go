package sim

import (
	"testing"

	"seatmarket/internal/model"
)

func testParams(ticks int, baseDemand float64) *model.SimParams {
	base := make([]float64, ticks)
	for i := range base {
		base[i] = baseDemand
	}
	return &model.SimParams{
		TicksTotal:  ticks,
		TickSeconds: 60,
		Seed:        20090,
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
			{ID: "a", PriceMin: 90, PriceMax: 220, PriceStart: 180},
			{ID: "b", PriceMin: 90, PriceMax: 220, PriceStart: 170},
			{ID: "c", PriceMin: 90, PriceMax: 220, PriceStart: 160},
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

func testAuction(params *model.SimParams, qty int, price float64) *model.AuctionResult {
	bids := make(map[string]model.Allocation, len(params.Teams))
	used := 0
	for _, tp := range params.Teams {
		bids[tp.ID] = model.Allocation{
			TeamID:    tp.ID,
			Quantity:  qty,
			UnitCost:  price,
			TotalCost: float64(qty) * price,
		}
		used += qty
	}
	return &model.AuctionResult{Allocations: bids, CapacityUsed: used}
}

func TestNewRuntimePoolingCapacity(t *testing.T) {
	params := testParams(10, 10)
	rt := NewRuntime(params, testAuction(params, 50, 150))

	if rt.PoolLeft != 240-3*50 {
		t.Fatalf("expected pooling capacity 90, got %d", rt.PoolLeft)
	}
	if rt.TicksLeft != 10 {
		t.Fatalf("expected 10 ticks, got %d", rt.TicksLeft)
	}
	if rt.Wholesale != 110 {
		t.Fatalf("expected starting wholesale 110, got %v", rt.Wholesale)
	}
	for _, id := range []string{"a", "b", "c"} {
		st := rt.Teams[id]
		if st.FixedLeft != 50 || st.FixedCost != 150 {
			t.Fatalf("team %s: expected 50 seats at 150, got %d at %v", id, st.FixedLeft, st.FixedCost)
		}
	}
}

func TestNewRuntimeForecastPrefixSums(t *testing.T) {
	params := testParams(4, 0)
	params.Market.BaseDemand = []float64{5, 10, 15, 20}
	rt := NewRuntime(params, nil)

	want := []float64{5, 15, 30, 50}
	for i, w := range want {
		if rt.CumForecast[i] != w {
			t.Fatalf("forecast[%d]: expected %v, got %v", i, w, rt.CumForecast[i])
		}
	}
}

func TestNewRuntimeNoAuction(t *testing.T) {
	params := testParams(5, 10)
	rt := NewRuntime(params, nil)

	if rt.PoolLeft != params.Airline.CapacityTotal {
		t.Fatalf("expected all capacity pooled, got %d", rt.PoolLeft)
	}
	for _, st := range rt.Teams {
		if st.FixedLeft != 0 {
			t.Fatalf("team %s: expected no fixed inventory, got %d", st.ID, st.FixedLeft)
		}
	}
}
