package models

import (
	"seatmarket/internal/analysis"
	"seatmarket/internal/model"
	"seatmarket/internal/scenario"
)

// SimulateResponse is the result of one full run.
type SimulateResponse struct {
	Status    string                 `json:"status"`
	Auction   *model.AuctionResult   `json:"auction"`
	Summary   analysis.RunSummary    `json:"summary"`
	Reports   []model.FinalReport    `json:"reports"`
	Ledger    []LedgerRow            `json:"ledger,omitempty"`
	Snapshots []model.MarketSnapshot `json:"snapshots,omitempty"`
}

// LedgerRow mirrors scenario.TickRow for JSON output.
type LedgerRow struct {
	Tick           int     `json:"tick"`
	TeamID         string  `json:"team_id"`
	Price          float64 `json:"price"`
	Wholesale      float64 `json:"wholesale"`
	FixedSold      int     `json:"fixed_sold"`
	PoolSold       int     `json:"pool_sold"`
	Revenue        float64 `json:"revenue"`
	Cost           float64 `json:"cost"`
	CumProfit      float64 `json:"cum_profit"`
	DemandRealized int     `json:"demand_realized"`
	DemandLost     int     `json:"demand_lost"`
	PoolRemaining  int     `json:"pool_remaining"`
	DemandHint     string  `json:"demand_hint"`
}

// LedgerFromRows converts engine ledger rows to their wire shape.
func LedgerFromRows(rows []scenario.TickRow) []LedgerRow {
	out := make([]LedgerRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, LedgerRow{
			Tick:           r.Tick,
			TeamID:         r.TeamID,
			Price:          r.Price,
			Wholesale:      r.Wholesale,
			FixedSold:      r.FixedSold,
			PoolSold:       r.PoolSold,
			Revenue:        r.Revenue,
			Cost:           r.Cost,
			CumProfit:      r.CumProfit,
			DemandRealized: r.DemandRealized,
			DemandLost:     r.DemandLost,
			PoolRemaining:  r.PoolRemaining,
			DemandHint:     string(r.Hint),
		})
	}
	return out
}

// AuctionResponse is the result of an auction preview.
type AuctionResponse struct {
	Status string               `json:"status"`
	Result *model.AuctionResult `json:"result"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
