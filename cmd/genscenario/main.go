package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"seatmarket/internal/config"
	"seatmarket/internal/model"
	"seatmarket/internal/scenario"
)

// genscenario writes a starter scenario file for a config: one bid per team
// near the wholesale start price and a bot strategy per team. Useful as a
// template for hand-edited classroom scenarios.
func main() {
	var (
		cfgPath    = flag.String("config", "", "Path to YAML config")
		outputPath = flag.String("output", "", "Output file path (default: ./examples/scenarios/generated.json)")
		name       = flag.String("name", "generated", "Scenario name")
		quantity   = flag.Int("quantity", 0, "Seats each team bids for (default: capacity / teams)")
	)
	flag.Parse()

	if *cfgPath == "" {
		log.Fatal("--config is required")
	}
	if *outputPath == "" {
		*outputPath = "./examples/scenarios/generated.json"
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	params := cfg.ToSimParams()

	qty := *quantity
	if qty <= 0 {
		qty = params.Airline.CapacityTotal / (len(params.Teams) + 1)
	}

	sc := &scenario.Scenario{
		Name:        *name,
		Description: fmt.Sprintf("Generated from %s", filepath.Base(*cfgPath)),
		Teams:       make(map[string]scenario.TeamScript, len(params.Teams)),
	}
	strategies := []string{"hold", "undercut", "tracker"}
	for i, tp := range params.Teams {
		// Stagger bids so the allocation order is interesting.
		sc.Bids = append(sc.Bids, model.AuctionBid{
			TeamID:   tp.ID,
			Price:    params.Airline.WholesaleStart + float64(5*i),
			Quantity: qty,
		})
		sc.Teams[tp.ID] = scenario.TeamScript{Strategy: strategies[i%len(strategies)]}
	}
	if err := sc.Validate(params); err != nil {
		log.Fatalf("Generated scenario invalid: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}
	if err := scenario.Save(sc, *outputPath); err != nil {
		log.Fatalf("Failed to write scenario: %v", err)
	}
	fmt.Printf("Wrote scenario with %d teams to %s\n", len(params.Teams), *outputPath)
}
