package models

import "time"

// OrderStage is the position of an order in the baking pipeline.
type OrderStage string

const (
	StageSubmitted    OrderStage = "submitted"
	StageGathering    OrderStage = "gathering"
	StageCaramelizing OrderStage = "caramelizing"
	StageMixing       OrderStage = "mixing"
	StagePouring      OrderStage = "pouring"
	StageBaking       OrderStage = "baking"
	StageCooling      OrderStage = "cooling"
	StageUnmolding    OrderStage = "unmolding"
	StageComplete     OrderStage = "complete" // terminal
)

// StageRecord marks a pipeline stage the order has entered.
type StageRecord struct {
	Stage       OrderStage `json:"stage"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"` // 0..100
	At          time.Time  `json:"at"`
}

// Order is a single flan order bound to one oven for its whole lifetime.
// Progress never decreases and reaches 100 together with the final stage.
type Order struct {
	ID         string         `json:"order_id"` // CMD-0001, CMD-0002, ...
	RecipeID   string         `json:"recipe_id"`
	OvenID     string         `json:"oven_id"`
	Portions   int            `json:"portions"`
	Options    map[string]any `json:"options,omitempty"`
	Stage      OrderStage     `json:"stage"`
	Progress   int            `json:"progress"`
	History    []StageRecord  `json:"history"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
}
