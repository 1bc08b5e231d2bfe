package sim

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"seatmarket/internal/model"
)

// ErrRunComplete is returned when RunTick is called with zero ticks
// remaining. It signals a driver bug; the run must move on to Finalize.
var ErrRunComplete = errors.New("simulation complete: no ticks remaining")

// RunTick advances the market by one countdown step for all teams at once.
//
// Decisions for unknown team ids are fatal. A configured team with no
// decision this tick holds: last price, push 0, no tool, no hold-back.
// Out-of-range values in a decision are clamped, never rejected.
func RunTick(params *model.SimParams, rt *Runtime, decisions []model.Decision) (model.MarketSnapshot, model.DayResults, error) {
	if rt.TicksLeft <= 0 {
		return model.MarketSnapshot{}, model.DayResults{}, ErrRunComplete
	}

	decByTeam := make(map[string]model.Decision, len(decisions))
	for _, d := range decisions {
		if _, ok := rt.Teams[d.TeamID]; !ok {
			return model.MarketSnapshot{}, model.DayResults{}, fmt.Errorf("decision references unknown team %q", d.TeamID)
		}
		decByTeam[d.TeamID] = d
	}

	tickIdx := params.TicksTotal - rt.TicksLeft

	// 1. Sanitize decisions into per-team tick rows.
	rows := make([]*teamTick, 0, len(rt.order))
	for _, id := range rt.order {
		st := rt.Teams[id]
		tp, _ := params.Team(id)
		d, ok := decByTeam[id]
		if !ok {
			d = model.Decision{TeamID: id, Price: st.Price}
		}
		rows = append(rows, sanitize(params, st, tp, d))
	}

	// 2. Realized demand from the cheapest offer on the board.
	minPrice := rows[0].price
	for _, r := range rows[1:] {
		if r.price < minPrice {
			minPrice = r.price
		}
	}
	rel := (minPrice - params.Market.ReferencePrice) / params.Market.ReferencePrice
	base := params.Market.BaseDemand[tickIdx]
	demand := int(math.Round(base * math.Exp(-params.Market.Alpha*rel)))
	if demand < 0 {
		demand = 0
	}

	// 3. Attention from push level and tools.
	for _, r := range rows {
		r.attention = model.PushAttention(r.push)
		r.cost += params.Rules.PushCosts[r.push]

		if r.st.Cooldown > 0 {
			// A tool on cooldown swallows any request this tick.
			r.st.Cooldown--
		} else if r.tool != model.ToolNone && r.tool.Valid() {
			spec := r.tool.Spec()
			r.attention *= spec.Multiplier
			r.cost += spec.Cost
			r.st.Tool = r.tool
			r.st.Cooldown = params.Rules.ToolCooldown
		}
	}

	// 4. Anti-collusion: pairs priced within the band for three straight
	// ticks both lose attention this tick.
	prices := make([]float64, len(rows))
	for i, r := range rows {
		prices[i] = r.price
	}
	rt.priceWindow = append(rt.priceWindow, prices)
	if len(rt.priceWindow) > 3 {
		rt.priceWindow = rt.priceWindow[1:]
	}
	if len(rt.priceWindow) == 3 {
		for i := 0; i < len(rows); i++ {
			for j := i + 1; j < len(rows); j++ {
				if pricesWithinBand(rt.priceWindow, i, j, params.Rules.CollusionBand) {
					rows[i].attention *= 0.9
					rows[j].attention *= 0.9
				}
			}
		}
	}
	for _, r := range rows {
		r.st.Attention = r.attention
	}

	// 5. Logit selection weights.
	priceRef := minPrice
	if priceRef <= 0 {
		priceRef = 1 // degenerate all-free market; keep weights finite
	}
	totalWeight := 0.0
	for _, r := range rows {
		r.weight = math.Exp(-params.Market.Beta*r.price/priceRef) * r.attention
		totalWeight += r.weight
	}

	// 6. Unit-by-unit stochastic assignment. One draw per demand unit, in a
	// fixed order, so identical seeds replay identically.
	realized, lost := 0, 0
	for u := 0; u < demand; u++ {
		frac := rt.Rng.Float64()
		chosen := pick(rows, totalWeight, frac)
		st := chosen.st
		switch {
		case chosen.quota > 0 && st.FixedLeft > 0:
			chosen.quota--
			st.FixedLeft--
			chosen.fixedSold++
			chosen.revenue += chosen.price
			chosen.cost += st.FixedCost
			rt.Ledger = append(rt.Ledger, SaleRecord{
				Tick: tickIdx, TeamID: st.ID,
				PricePaid: chosen.price, UnitCost: st.FixedCost,
			})
			realized++
		case rt.PoolLeft > 0:
			rt.PoolLeft--
			chosen.poolSold++
			chosen.revenue += chosen.price
			chosen.cost += rt.Wholesale
			rt.Ledger = append(rt.Ledger, SaleRecord{
				Tick: tickIdx, TeamID: st.ID,
				PricePaid: chosen.price, UnitCost: rt.Wholesale,
				FromPool: true,
			})
			realized++
		default:
			lost++
		}
	}

	// 7. Bookkeeping, then the public snapshot and private day results.
	prev := 0
	if tickIdx > 0 {
		prev = rt.CumSold[tickIdx-1]
	}
	rt.CumSold[tickIdx] = prev + realized

	results := model.DayResults{
		PerTeam:        make(map[string]model.TeamDay, len(rows)),
		DemandRealized: realized,
		DemandLost:     lost,
		PoolRemaining:  rt.PoolLeft,
	}
	for _, r := range rows {
		st := r.st
		st.Revenue += r.revenue
		st.Cost += r.cost
		st.FixedSold += r.fixedSold
		st.PoolSold += r.poolSold
		st.LastPrice = r.price
		st.Price = r.price
		st.PriceHistory = append(st.PriceHistory, r.price)

		results.PerTeam[st.ID] = model.TeamDay{
			FixedSold: r.fixedSold,
			PoolSold:  r.poolSold,
			Revenue:   r.revenue,
			Cost:      r.cost,
		}
	}

	snapshot := model.MarketSnapshot{
		TicksRemaining: rt.TicksLeft - 1,
		WholesalePrice: rt.Wholesale,
		PoolRemaining:  rt.PoolLeft,
		Prices:         make(map[string]float64, len(rows)),
		DemandHint:     model.HintFromRelativePrice(rel),
		Standings:      standings(rt),
	}
	for _, r := range rows {
		snapshot.Prices[r.st.ID] = r.price
	}

	// 8. Advance the countdown and reprice wholesale from the forecast gap.
	rt.TicksLeft--
	gap := float64(rt.CumSold[tickIdx]) - rt.CumForecast[tickIdx]
	w := rt.Wholesale * (1 + params.Airline.Gamma*math.Tanh(gap/params.Airline.Kappa))
	rt.Wholesale = clamp(w, params.Airline.WholesaleMin, params.Airline.WholesaleMax)

	return snapshot, results, nil
}

// teamTick is one team's scratch state for a single tick.
type teamTick struct {
	st    *TeamState
	price float64
	hold  float64
	push  int
	tool  model.Tool

	// quota is how many fixed seats the team offers this tick after its
	// hold-back choice.
	quota int

	attention float64
	weight    float64

	fixedSold int
	poolSold  int
	revenue   float64
	cost      float64
}

// sanitize clamps a raw decision into the team's legal action space:
// price bounds, jump guard against the last applied price, hold-back range.
func sanitize(params *model.SimParams, st *TeamState, tp model.TeamParams, d model.Decision) *teamTick {
	price := clamp(d.Price, tp.PriceMin, tp.PriceMax)
	if st.LastPrice != 0 {
		maxDelta := st.LastPrice * params.Rules.PriceJumpThreshold
		price = clamp(price, st.LastPrice-maxDelta, st.LastPrice+maxDelta)
		price = math.Round(price)
	}
	hold := clamp(d.HoldPct, 0, 100)
	return &teamTick{
		st:    st,
		price: price,
		hold:  hold,
		push:  model.ClampPush(d.Push),
		tool:  d.Tool,
		quota: int(math.Floor(float64(st.FixedLeft) * (1 - hold/100))),
	}
}

// pick selects a team by cumulative-weight scan. The caller draws exactly
// one random fraction per unit regardless of the weight total, keeping the
// generator stream stable.
func pick(rows []*teamTick, totalWeight, frac float64) *teamTick {
	if totalWeight <= 0 {
		idx := int(frac * float64(len(rows)))
		if idx >= len(rows) {
			idx = len(rows) - 1
		}
		return rows[idx]
	}
	r := frac * totalWeight
	acc := 0.0
	for _, row := range rows {
		acc += row.weight
		if r < acc {
			return row
		}
	}
	return rows[len(rows)-1]
}

// pricesWithinBand reports whether teams i and j stayed within the relative
// band of each other across every vector in the window.
func pricesWithinBand(window [][]float64, i, j int, band float64) bool {
	for _, vec := range window {
		lo, hi := vec[i], vec[j]
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo <= 0 || hi-lo > lo*band {
			return false
		}
	}
	return true
}

// standings ranks teams by running profit, best first. Ties keep team order.
func standings(rt *Runtime) []model.Standing {
	out := make([]model.Standing, 0, len(rt.order))
	for _, id := range rt.order {
		st := rt.Teams[id]
		out = append(out, model.Standing{TeamID: id, Profit: st.Revenue - st.Cost})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit > out[j].Profit
	})
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
