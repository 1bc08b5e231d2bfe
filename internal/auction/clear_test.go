package auction

import (
	"testing"

	"seatmarket/internal/model"
)

func testParams(capacity int) *model.SimParams {
	return &model.SimParams{
		Airline: model.AirlineParams{CapacityTotal: capacity},
	}
}

func TestClearAllocationOrder(t *testing.T) {
	bids := []model.AuctionBid{
		{TeamID: "a", Price: 140, Quantity: 70},
		{TeamID: "b", Price: 160, Quantity: 70},
		{TeamID: "c", Price: 150, Quantity: 70},
	}
	res := Clear(testParams(180), bids)

	if got := res.Allocations["b"].Quantity; got != 70 {
		t.Fatalf("expected highest bid to get 70, got %d", got)
	}
	if got := res.Allocations["c"].Quantity; got != 70 {
		t.Fatalf("expected second bid to get 70, got %d", got)
	}
	if got := res.Allocations["a"].Quantity; got != 40 {
		t.Fatalf("expected lowest bid to get the 40 leftover seats, got %d", got)
	}
	if res.CapacityUsed != 180 {
		t.Fatalf("expected capacity used 180, got %d", res.CapacityUsed)
	}
}

func TestClearPayAsBid(t *testing.T) {
	bids := []model.AuctionBid{
		{TeamID: "a", Price: 160, Quantity: 10},
		{TeamID: "b", Price: 120, Quantity: 10},
	}
	res := Clear(testParams(100), bids)

	if got := res.Allocations["a"].UnitCost; got != 160 {
		t.Fatalf("expected a to pay its own bid 160, got %v", got)
	}
	if got := res.Allocations["b"].UnitCost; got != 120 {
		t.Fatalf("expected b to pay its own bid 120, got %v", got)
	}
	if got := res.Allocations["a"].TotalCost; got != 1600 {
		t.Fatalf("expected total cost 1600, got %v", got)
	}
}

func TestClearBudgetCap(t *testing.T) {
	bids := []model.AuctionBid{
		{TeamID: "a", Price: 150, Quantity: 50, Budget: 1000},
	}
	res := Clear(testParams(100), bids)

	// floor(1000 / 150) = 6 seats.
	if got := res.Allocations["a"].Quantity; got != 6 {
		t.Fatalf("expected budget to cap award at 6, got %d", got)
	}
}

func TestClearDegenerateBids(t *testing.T) {
	tests := []struct {
		name string
		bid  model.AuctionBid
	}{
		{name: "zero quantity", bid: model.AuctionBid{TeamID: "a", Price: 100, Quantity: 0}},
		{name: "zero price", bid: model.AuctionBid{TeamID: "a", Price: 0, Quantity: 10}},
		{name: "negative quantity", bid: model.AuctionBid{TeamID: "a", Price: 100, Quantity: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Clear(testParams(100), []model.AuctionBid{tt.bid})
			if got := res.Allocations["a"].Quantity; got != 0 {
				t.Fatalf("expected zero award, got %d", got)
			}
			if res.CapacityUsed != 0 {
				t.Fatalf("expected no capacity used, got %d", res.CapacityUsed)
			}
		})
	}
}

func TestClearEqualPricesKeepSubmissionOrder(t *testing.T) {
	bids := []model.AuctionBid{
		{TeamID: "first", Price: 150, Quantity: 60},
		{TeamID: "second", Price: 150, Quantity: 60},
	}
	res := Clear(testParams(80), bids)

	if got := res.Allocations["first"].Quantity; got != 60 {
		t.Fatalf("expected earlier submission to fill first with 60, got %d", got)
	}
	if got := res.Allocations["second"].Quantity; got != 20 {
		t.Fatalf("expected later submission to get the 20 leftover, got %d", got)
	}
}

func TestClearNeverExceedsCapacity(t *testing.T) {
	bids := []model.AuctionBid{
		{TeamID: "a", Price: 200, Quantity: 500},
		{TeamID: "b", Price: 190, Quantity: 500, Budget: 100000},
		{TeamID: "c", Price: 180, Quantity: 500},
	}
	for _, capacity := range []int{0, 1, 50, 499, 1500} {
		res := Clear(testParams(capacity), bids)
		if res.CapacityUsed > capacity {
			t.Fatalf("capacity %d: awarded %d seats", capacity, res.CapacityUsed)
		}
		total := 0
		for _, alloc := range res.Allocations {
			total += alloc.Quantity
		}
		if total != res.CapacityUsed {
			t.Fatalf("capacity %d: allocations sum %d != capacity used %d", capacity, total, res.CapacityUsed)
		}
	}
}

func TestClearFullAwardAtWinningPrice(t *testing.T) {
	// A team at or above every capacity-exhausting rival gets its full ask.
	bids := []model.AuctionBid{
		{TeamID: "rival1", Price: 150, Quantity: 100},
		{TeamID: "winner", Price: 155, Quantity: 40},
		{TeamID: "rival2", Price: 150, Quantity: 100},
	}
	res := Clear(testParams(120), bids)
	if got := res.Allocations["winner"].Quantity; got != 40 {
		t.Fatalf("expected winner to get full 40, got %d", got)
	}
}
