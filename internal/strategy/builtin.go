package strategy

import (
	"fmt"

	"seatmarket/internal/model"
)

// HoldStrategy keeps the current price every tick. The do-nothing baseline.
type HoldStrategy struct{}

func (s *HoldStrategy) Name() string { return "hold" }

func (s *HoldStrategy) Decide(ctx Context) model.Decision {
	return model.Decision{
		TeamID: ctx.Team.ID,
		Price:  ctx.CurrentPrice,
	}
}

// UndercutParams tunes the undercut policy.
type UndercutParams struct {
	// Delta is subtracted from the cheapest rival price each tick.
	Delta float64
}

// UndercutStrategy prices just below the cheapest rival seen on the last
// public board, pushing hard while it still holds fixed inventory.
type UndercutStrategy struct {
	Params UndercutParams
}

func (s *UndercutStrategy) Name() string { return "undercut" }

func (s *UndercutStrategy) Decide(ctx Context) model.Decision {
	price := ctx.CurrentPrice
	if ctx.Snapshot != nil {
		cheapest := 0.0
		found := false
		for id, p := range ctx.Snapshot.Prices {
			if id == ctx.Team.ID {
				continue
			}
			if !found || p < cheapest {
				cheapest = p
				found = true
			}
		}
		if found {
			price = cheapest - s.Params.Delta
		}
	}
	push := 0
	if ctx.FixedLeft > 0 {
		push = 2
	}
	return model.Decision{
		TeamID: ctx.Team.ID,
		Price:  price,
		Push:   push,
	}
}

// TrackerParams tunes the margin-tracker policy.
type TrackerParams struct {
	// Margin is added on top of the wholesale price.
	Margin float64
}

// TrackerStrategy follows the wholesale price plus a fixed margin, so its
// pooling sales can never price below cost. Fires a spotlight whenever the
// tool is off cooldown.
type TrackerStrategy struct {
	Params TrackerParams
}

func (s *TrackerStrategy) Name() string { return "tracker" }

func (s *TrackerStrategy) Decide(ctx Context) model.Decision {
	price := ctx.CurrentPrice
	if ctx.Snapshot != nil {
		price = ctx.Snapshot.WholesalePrice + s.Params.Margin
	}
	d := model.Decision{
		TeamID: ctx.Team.ID,
		Price:  price,
		Push:   1,
	}
	if ctx.ToolReady {
		d.Tool = model.ToolSpotlight
	}
	return d
}

// New builds a named strategy from loosely typed params (scenario files and
// API requests supply map[string]any).
func New(name string, params map[string]any) (Strategy, error) {
	switch name {
	case "", "hold":
		return &HoldStrategy{}, nil
	case "undercut":
		p := UndercutParams{Delta: 1}
		if v, ok := floatParam(params, "delta"); ok {
			p.Delta = v
		}
		return &UndercutStrategy{Params: p}, nil
	case "tracker":
		p := TrackerParams{Margin: 20}
		if v, ok := floatParam(params, "margin"); ok {
			p.Margin = v
		}
		return &TrackerStrategy{Params: p}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// Info describes one built-in policy for listings.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func List() []Info {
	return []Info{
		{Name: "hold", Description: "Keep the current price; no push, no tools."},
		{Name: "undercut", Description: "Price delta below the cheapest rival, max push while fixed inventory lasts."},
		{Name: "tracker", Description: "Wholesale price plus margin, push 1, spotlight when available."},
	}
}

func floatParam(params map[string]any, key string) (float64, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}
