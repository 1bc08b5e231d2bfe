package scenario

import (
	"encoding/csv"
	"os"
	"strconv"

	"seatmarket/internal/model"
)

func WriteLedgerCSV(path string, ledger []TickRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"tick",
		"team",
		"price",
		"wholesale",
		"fixed_sold",
		"pool_sold",
		"revenue",
		"cost",
		"cum_profit",
		"demand_realized",
		"demand_lost",
		"pool_remaining",
		"demand_hint",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Tick),
			r.TeamID,
			fmtFloat(r.Price),
			fmtFloat(r.Wholesale),
			strconv.Itoa(r.FixedSold),
			strconv.Itoa(r.PoolSold),
			fmtFloat(r.Revenue),
			fmtFloat(r.Cost),
			fmtFloat(r.CumProfit),
			strconv.Itoa(r.DemandRealized),
			strconv.Itoa(r.DemandLost),
			strconv.Itoa(r.PoolRemaining),
			string(r.Hint),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteReportsCSV(path string, reports []model.FinalReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"team",
		"revenue",
		"cost",
		"hotel_penalty",
		"profit",
		"avg_sell_price",
		"avg_buy_price",
		"units_sold",
		"load_factor",
		"winner",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.TeamID,
			fmtFloat(r.Revenue),
			fmtFloat(r.Cost),
			fmtFloat(r.HotelPenalty),
			fmtFloat(r.Profit),
			fmtFloat(r.AvgSellPrice),
			fmtFloat(r.AvgBuyPrice),
			strconv.Itoa(r.UnitsSold),
			fmtFloat(r.LoadFactor),
			strconv.FormatBool(r.Winner),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
