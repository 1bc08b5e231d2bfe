package auction

import (
	"math"
	"sort"

	"seatmarket/internal/model"
)

// Clear resolves sealed pay-as-bid offers into a fixed-seat allocation.
//
// Bids are walked in strictly descending price order; equal-price bids keep
// their submission order. Each bid is awarded
// min(requested, remaining capacity, floor(budget/price)) units at its own
// bid price. Total awarded never exceeds params.Airline.CapacityTotal.
func Clear(params *model.SimParams, bids []model.AuctionBid) *model.AuctionResult {
	// Sort a copy; the caller's slice order is the tie-break and must survive.
	sorted := make([]model.AuctionBid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})

	remaining := params.Airline.CapacityTotal
	res := &model.AuctionResult{
		Allocations: make(map[string]model.Allocation, len(bids)),
	}

	for _, b := range sorted {
		award := awardFor(b, remaining)
		remaining -= award

		alloc := res.Allocations[b.TeamID]
		alloc.TeamID = b.TeamID
		alloc.Quantity += award
		alloc.TotalCost += float64(award) * b.Price
		res.Allocations[b.TeamID] = alloc

		res.CapacityUsed += award
	}

	// UnitCost is the team's average acquisition cost. With one bid per team
	// this is simply the bid price.
	for id, alloc := range res.Allocations {
		if alloc.Quantity > 0 {
			alloc.UnitCost = alloc.TotalCost / float64(alloc.Quantity)
			res.Allocations[id] = alloc
		}
	}
	return res
}

// awardFor computes the awarded quantity for one bid given the capacity
// still on the table. Zero-price and zero-quantity bids award zero units.
func awardFor(b model.AuctionBid, remaining int) int {
	if b.Quantity <= 0 || b.Price <= 0 || remaining <= 0 {
		return 0
	}
	award := b.Quantity
	if award > remaining {
		award = remaining
	}
	if b.Budget > 0 {
		byBudget := int(math.Floor(b.Budget / b.Price))
		if award > byBudget {
			award = byBudget
		}
	}
	if award < 0 {
		return 0
	}
	return award
}
