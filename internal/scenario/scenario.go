package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"seatmarket/internal/model"
	"seatmarket/internal/strategy"
)

// Scenario bundles everything needed to replay one run on top of a config:
// the sealed auction bids plus, per team, either a scripted decision track
// or a bot strategy. One scenario file + one config + one seed reproduces
// one run exactly.
type Scenario struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Bids        []model.AuctionBid    `json:"bids"`
	Teams       map[string]TeamScript `json:"teams"`
}

// TeamScript controls one team. Scripted ticks take priority; the strategy
// (default "hold") fills any tick the script does not cover.
type TeamScript struct {
	Strategy string         `json:"strategy,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Ticks    []TickDecision `json:"ticks,omitempty"`
}

// TickDecision is one scripted decision; index in the Ticks slice is the
// tick index.
type TickDecision struct {
	Price   float64 `json:"price"`
	Push    int     `json:"push,omitempty"`
	HoldPct float64 `json:"hold_pct,omitempty"`
	Tool    string  `json:"tool,omitempty"`
}

func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sc Scenario
	if err := json.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return &sc, nil
}

func Save(sc *Scenario, path string) error {
	raw, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// Validate checks the scenario against the configured team list. The engine
// clamps out-of-range values itself; this only rejects structural problems.
func (s *Scenario) Validate(params *model.SimParams) error {
	for _, b := range s.Bids {
		if _, ok := params.Team(b.TeamID); !ok {
			return fmt.Errorf("bid references unknown team %q", b.TeamID)
		}
	}
	for id, script := range s.Teams {
		if _, ok := params.Team(id); !ok {
			return fmt.Errorf("script references unknown team %q", id)
		}
		if _, err := strategy.New(script.Strategy, script.Params); err != nil {
			return fmt.Errorf("team %q: %w", id, err)
		}
		for i, td := range script.Ticks {
			if _, err := model.ParseTool(td.Tool); err != nil {
				return fmt.Errorf("team %q tick %d: %w", id, i, err)
			}
		}
	}
	return nil
}
