package strategy

import "seatmarket/internal/model"

// Context is what a bot policy sees when deciding one tick. Snapshot is the
// previous tick's public market state; nil on the first tick.
type Context struct {
	TickIndex    int
	Team         model.TeamParams
	CurrentPrice float64
	FixedLeft    int
	ToolReady    bool
	Snapshot     *model.MarketSnapshot
}

// Strategy produces synthetic decisions for non-human teams in practice
// runs. Policies must be deterministic: the engine owns all randomness.
type Strategy interface {
	Name() string
	Decide(ctx Context) model.Decision
}
