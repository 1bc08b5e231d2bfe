package model

// FinalReport is one team's end-of-run result.
// Cost includes the hotel penalty; AvgBuyPrice covers cost of goods only.
type FinalReport struct {
	TeamID       string  `json:"team_id"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	HotelPenalty float64 `json:"hotel_penalty"`
	Profit       float64 `json:"profit"`
	AvgSellPrice float64 `json:"avg_sell_price"`
	AvgBuyPrice  float64 `json:"avg_buy_price"`
	UnitsSold    int     `json:"units_sold"`
	LoadFactor   float64 `json:"load_factor"`
	Winner       bool    `json:"winner"`
}
