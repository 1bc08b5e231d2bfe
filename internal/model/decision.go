package model

import (
	"fmt"
	"strings"
)

// Decision is one team's input for one tick.
// HoldPct is the percentage of remaining fixed inventory withheld from sale
// this tick; values outside [0,100] are clamped by the engine.
type Decision struct {
	TeamID  string  `json:"team_id"`
	Price   float64 `json:"price"`
	Push    int     `json:"push"`
	HoldPct float64 `json:"hold_pct,omitempty"`
	Tool    Tool    `json:"tool,omitempty"`
}

// Tool is a one-shot promotional action with an attention multiplier, a
// one-off cost and a shared cooldown.
type Tool string

// Keep these values stable; they appear in scenario files and CSV output.
const (
	ToolNone      Tool = ""
	ToolHedge     Tool = "HEDGE"
	ToolSpotlight Tool = "SPOTLIGHT"
	ToolCommit    Tool = "COMMIT"
)

// ToolSpec is the effect record attached to a tool.
type ToolSpec struct {
	Multiplier float64
	Cost       float64
}

var toolSpecs = map[Tool]ToolSpec{
	ToolNone:      {Multiplier: 1.0, Cost: 0},
	ToolHedge:     {Multiplier: 0.95, Cost: 90},
	ToolSpotlight: {Multiplier: 1.25, Cost: 150},
	ToolCommit:    {Multiplier: 1.05, Cost: 60},
}

func (t Tool) Spec() ToolSpec {
	if s, ok := toolSpecs[t]; ok {
		return s
	}
	return toolSpecs[ToolNone]
}

func (t Tool) Valid() bool {
	_, ok := toolSpecs[t]
	return ok
}

// ParseTool converts external input ("", "hedge", "SPOTLIGHT", ...) to a Tool.
func ParseTool(s string) (Tool, error) {
	switch t := Tool(strings.ToUpper(strings.TrimSpace(s))); t {
	case ToolNone, ToolHedge, ToolSpotlight, ToolCommit:
		return t, nil
	}
	return ToolNone, fmt.Errorf("unknown tool %q", s)
}

// PushAttention maps a push level to its base attention multiplier.
// Levels outside 0..2 are clamped.
func PushAttention(level int) float64 {
	switch {
	case level <= 0:
		return 1.0
	case level == 1:
		return 1.1
	default:
		return 1.2
	}
}

// ClampPush normalizes a push level into 0..2.
func ClampPush(level int) int {
	if level < 0 {
		return 0
	}
	if level > 2 {
		return 2
	}
	return level
}
