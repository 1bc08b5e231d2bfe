package analysis

import (
	"math"
	"sort"

	"seatmarket/internal/model"
	"seatmarket/internal/scenario"
)

// RunSummary is a run-level aggregate for reporting and comparisons.
// It intentionally does not depend on private per-team results; everything
// here derives from the public ledger and the final reports.
type RunSummary struct {
	Ticks int `json:"ticks"`

	TotalRealized int `json:"total_realized"`
	TotalLost     int `json:"total_lost"`
	// SellThrough is realized over generated demand (1.0 when nothing was
	// lost); 0 when no demand ever materialized.
	SellThrough float64 `json:"sell_through"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`

	WholesaleMin float64 `json:"wholesale_min"`
	WholesaleMax float64 `json:"wholesale_max"`

	Rankings []Ranking `json:"rankings"`
}

// Ranking is one row of the profit-ranked final standings.
type Ranking struct {
	Rank       int     `json:"rank"`
	TeamID     string  `json:"team_id"`
	Profit     float64 `json:"profit"`
	UnitsSold  int     `json:"units_sold"`
	LoadFactor float64 `json:"load_factor"`
	Winner     bool    `json:"winner"`
}

// RankByProfit sorts final reports descending by profit. Ties keep report
// order, which is config team order.
func RankByProfit(reports []model.FinalReport) []Ranking {
	out := make([]Ranking, 0, len(reports))
	for _, r := range reports {
		out = append(out, Ranking{
			TeamID:     r.TeamID,
			Profit:     r.Profit,
			UnitsSold:  r.UnitsSold,
			LoadFactor: r.LoadFactor,
			Winner:     r.Winner,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit > out[j].Profit
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Summarize condenses a run ledger plus its final reports.
func Summarize(ledger []scenario.TickRow, reports []model.FinalReport) RunSummary {
	s := RunSummary{Rankings: RankByProfit(reports)}
	if len(ledger) == 0 {
		return s
	}

	s.MinPrice = math.Inf(1)
	s.MaxPrice = math.Inf(-1)
	s.WholesaleMin = math.Inf(1)
	s.WholesaleMax = math.Inf(-1)

	sum := 0.0
	lastTick := -1
	for _, r := range ledger {
		sum += r.Price
		if r.Price < s.MinPrice {
			s.MinPrice = r.Price
		}
		if r.Price > s.MaxPrice {
			s.MaxPrice = r.Price
		}
		if r.Wholesale < s.WholesaleMin {
			s.WholesaleMin = r.Wholesale
		}
		if r.Wholesale > s.WholesaleMax {
			s.WholesaleMax = r.Wholesale
		}
		// Demand totals are per tick, not per team row; count each tick once.
		if r.Tick != lastTick {
			s.TotalRealized += r.DemandRealized
			s.TotalLost += r.DemandLost
			s.Ticks++
			lastTick = r.Tick
		}
	}
	s.MeanPrice = sum / float64(len(ledger))

	if total := s.TotalRealized + s.TotalLost; total > 0 {
		s.SellThrough = float64(s.TotalRealized) / float64(total)
	}
	return s
}
