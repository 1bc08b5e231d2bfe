package sim

import (
	"seatmarket/internal/model"
)

// Finalize derives the end-of-run report from the accumulated runtime.
// The runtime is read, never mutated; reports come back in config team order.
func Finalize(params *model.SimParams, rt *Runtime) []model.FinalReport {
	type ledgerSum struct {
		units   int
		revenue float64
		cogs    float64
	}
	sums := make(map[string]*ledgerSum, len(rt.order))
	for _, id := range rt.order {
		sums[id] = &ledgerSum{}
	}
	for _, rec := range rt.Ledger {
		s := sums[rec.TeamID]
		s.units++
		s.revenue += rec.PricePaid
		s.cogs += rec.UnitCost
	}

	reports := make([]model.FinalReport, 0, len(rt.order))
	for _, id := range rt.order {
		st := rt.Teams[id]
		s := sums[id]

		rep := model.FinalReport{
			TeamID:    id,
			Revenue:   s.revenue,
			UnitsSold: s.units,
		}
		if s.units > 0 {
			rep.AvgSellPrice = s.revenue / float64(s.units)
			rep.AvgBuyPrice = s.cogs / float64(s.units)
		}
		empty := params.Hotel.CapacityPerTeam - s.units
		if empty > 0 {
			rep.HotelPenalty = float64(empty) * params.Hotel.EmptyUnitPenalty
		}
		// Operational cost (goods + promo spend) plus the hotel penalty.
		rep.Cost = st.Cost + rep.HotelPenalty
		rep.Profit = rep.Revenue - rep.Cost
		if params.Airline.CapacityTotal > 0 {
			rep.LoadFactor = float64(s.units) / float64(params.Airline.CapacityTotal)
		}
		reports = append(reports, rep)
	}

	markWinner(params, reports)
	return reports
}

// markWinner flags the highest-profit team among those eligible under the
// cost-coverage rule. When nobody covers cost, the relaxed fallback widens
// the field to every team; with the fallback disabled, nobody wins.
func markWinner(params *model.SimParams, reports []model.FinalReport) {
	if len(reports) == 0 {
		return
	}
	eligible := make([]int, 0, len(reports))
	if params.Rules.RequireCostCoverage {
		for i, rep := range reports {
			if rep.AvgSellPrice >= rep.AvgBuyPrice {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			if !params.Rules.RelaxedWinnerFallback {
				return
			}
			for i := range reports {
				eligible = append(eligible, i)
			}
		}
	} else {
		for i := range reports {
			eligible = append(eligible, i)
		}
	}

	best := eligible[0]
	for _, i := range eligible[1:] {
		if reports[i].Profit > reports[best].Profit {
			best = i
		}
	}
	reports[best].Winner = true
}
