package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"seatmarket/internal/analysis"
	"seatmarket/internal/auction"
	"seatmarket/internal/config"
	"seatmarket/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "auction":
		cmdAuction(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/config.yaml --scenario examples/scenarios/three_teams.json --out results/ledger.csv")
	fmt.Println("  cli auction --config examples/config.yaml --scenario examples/scenarios/three_teams.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run plays the full countdown and writes the per-tick ledger as CSV")
	fmt.Println("  - auction clears the scenario's sealed bids and prints the allocation")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	scPath := fs.String("scenario", "", "Path to JSON scenario")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	reportPath := fs.String("reports", "", "Optional final-report CSV path")
	seed := fs.Uint("seed", 0, "Optional: override the config seed")
	_ = fs.Parse(args)

	if *cfgPath == "" || *scPath == "" {
		fmt.Println("--config and --scenario are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	sc, err := scenario.Load(*scPath)
	if err != nil {
		panic(err)
	}

	params := cfg.ToSimParams()
	if *seed != 0 {
		params.Seed = uint32(*seed)
	}

	res, err := scenario.NewRunner().Run(params, sc)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := scenario.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}
	if *reportPath != "" {
		if err := scenario.WriteReportsCSV(*reportPath, res.Reports); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	summary := analysis.Summarize(res.Ledger, res.Reports)
	fmt.Printf("Realized=%d Lost=%d SellThrough=%.3f\n", summary.TotalRealized, summary.TotalLost, summary.SellThrough)
	for _, rank := range summary.Rankings {
		marker := " "
		if rank.Winner {
			marker = "*"
		}
		fmt.Printf("%s %d. %-12s profit=%.2f sold=%d load=%.3f\n",
			marker, rank.Rank, rank.TeamID, rank.Profit, rank.UnitsSold, rank.LoadFactor)
	}
}

func cmdAuction(args []string) {
	fs := flag.NewFlagSet("auction", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	scPath := fs.String("scenario", "", "Path to JSON scenario")
	_ = fs.Parse(args)

	if *cfgPath == "" || *scPath == "" {
		fmt.Println("--config and --scenario are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	sc, err := scenario.Load(*scPath)
	if err != nil {
		panic(err)
	}
	params := cfg.ToSimParams()
	if err := sc.Validate(params); err != nil {
		panic(err)
	}

	res := auction.Clear(params, sc.Bids)
	fmt.Printf("Capacity used: %d / %d\n", res.CapacityUsed, params.Airline.CapacityTotal)
	for _, tp := range params.Teams {
		alloc := res.Allocations[tp.ID]
		fmt.Printf("  %-12s awarded=%d unit_cost=%.2f total=%.2f\n",
			tp.ID, alloc.Quantity, alloc.UnitCost, alloc.TotalCost)
	}
}
