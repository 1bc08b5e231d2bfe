package sim

import (
	"testing"

	"seatmarket/internal/model"
)

// sell appends n ledger sales for a team and mirrors them into its state.
func sell(rt *Runtime, id string, n int, price, cost float64) {
	st := rt.Teams[id]
	for i := 0; i < n; i++ {
		rt.Ledger = append(rt.Ledger, SaleRecord{TeamID: id, PricePaid: price, UnitCost: cost})
	}
	st.Revenue += float64(n) * price
	st.Cost += float64(n) * cost
}

func TestFinalizeAverages(t *testing.T) {
	params := testParams(5, 10)
	rt := NewRuntime(params, nil)
	sell(rt, "a", 10, 200, 120)

	reports := Finalize(params, rt)
	var a model.FinalReport
	for _, rep := range reports {
		if rep.TeamID == "a" {
			a = rep
		}
	}
	if a.UnitsSold != 10 {
		t.Fatalf("expected 10 units, got %d", a.UnitsSold)
	}
	if a.AvgSellPrice != 200 {
		t.Fatalf("expected avg sell 200, got %v", a.AvgSellPrice)
	}
	if a.AvgBuyPrice != 120 {
		t.Fatalf("expected avg buy 120, got %v", a.AvgBuyPrice)
	}
	if want := float64(10) / 240; a.LoadFactor != want {
		t.Fatalf("expected load factor %v, got %v", want, a.LoadFactor)
	}
}

func TestFinalizeHotelPenalty(t *testing.T) {
	params := testParams(5, 10) // hotel capacity 60, penalty 18 per empty unit
	rt := NewRuntime(params, nil)
	sell(rt, "a", 10, 200, 120)

	reports := Finalize(params, rt)
	for _, rep := range reports {
		switch rep.TeamID {
		case "a":
			if want := float64(60-10) * 18; rep.HotelPenalty != want {
				t.Fatalf("team a: expected penalty %v, got %v", want, rep.HotelPenalty)
			}
			if rep.Cost != 10*120+rep.HotelPenalty {
				t.Fatalf("team a: penalty not folded into cost, got %v", rep.Cost)
			}
		default:
			if want := float64(60) * 18; rep.HotelPenalty != want {
				t.Fatalf("team %s: expected full penalty %v, got %v", rep.TeamID, want, rep.HotelPenalty)
			}
		}
	}
}

func TestFinalizeZeroSales(t *testing.T) {
	params := testParams(5, 10)
	rt := NewRuntime(params, nil)

	for _, rep := range Finalize(params, rt) {
		if rep.AvgSellPrice != 0 || rep.AvgBuyPrice != 0 {
			t.Fatalf("team %s: averages must be zero with no sales, got %v/%v",
				rep.TeamID, rep.AvgSellPrice, rep.AvgBuyPrice)
		}
		if rep.UnitsSold != 0 || rep.LoadFactor != 0 {
			t.Fatalf("team %s: expected empty report", rep.TeamID)
		}
	}
}

func TestFinalizeWinnerCoverageRule(t *testing.T) {
	// a holds the highest raw profit but sells below cost; b covers cost.
	params := testParams(5, 10)
	rt := NewRuntime(params, nil)
	sell(rt, "a", 60, 100, 100.5) // profit -30, fails coverage
	sell(rt, "b", 1, 150, 100)    // profit 50 - big hotel penalty, covers cost
	sell(rt, "c", 1, 90, 100)     // fails coverage

	reports := Finalize(params, rt)
	byID := map[string]model.FinalReport{}
	for _, rep := range reports {
		byID[rep.TeamID] = rep
	}

	if byID["a"].Profit <= byID["b"].Profit {
		t.Fatalf("test setup broken: a profit %v should exceed b profit %v", byID["a"].Profit, byID["b"].Profit)
	}
	if byID["a"].Winner {
		t.Fatal("a won despite failing the coverage rule")
	}
	if !byID["b"].Winner {
		t.Fatal("b covers cost and should win")
	}
	if byID["b"].AvgSellPrice < byID["b"].AvgBuyPrice {
		t.Fatal("winner does not satisfy the coverage inequality")
	}
}

func TestFinalizeWinnerFallback(t *testing.T) {
	setup := func(relaxed bool) []model.FinalReport {
		params := testParams(5, 10)
		params.Rules.RelaxedWinnerFallback = relaxed
		rt := NewRuntime(params, nil)
		// Nobody covers cost.
		sell(rt, "a", 60, 100, 110)
		sell(rt, "b", 60, 100, 120)
		sell(rt, "c", 60, 100, 130)
		return Finalize(params, rt)
	}

	relaxedReports := setup(true)
	winners := 0
	for _, rep := range relaxedReports {
		if rep.Winner {
			winners++
			if rep.TeamID != "a" {
				t.Fatalf("fallback should pick the highest profit, got %s", rep.TeamID)
			}
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner under fallback, got %d", winners)
	}

	for _, rep := range setup(false) {
		if rep.Winner {
			t.Fatalf("no winner expected with fallback disabled, got %s", rep.TeamID)
		}
	}
}

func TestFinalizeExactlyOneWinner(t *testing.T) {
	params := testParams(5, 10)
	rt := NewRuntime(params, nil)
	sell(rt, "a", 60, 150, 100)
	sell(rt, "b", 60, 150, 100) // identical to a; earlier team order wins the tie

	winners := 0
	first := ""
	for _, rep := range Finalize(params, rt) {
		if rep.Winner {
			winners++
			first = rep.TeamID
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	if first != "a" {
		t.Fatalf("expected tie to keep team order, got %s", first)
	}
}
