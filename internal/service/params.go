package service

import (
	"bakehouse/internal/flan"
	"bakehouse/internal/models"
)

// PreheatParams configures an oven reservation handshake.
type PreheatParams struct {
	TemperatureC int    // requested temperature; 0 means the protocol default
	Mold         string // mold format; empty means INDIVIDUAL
	Source       string // caller address echoed into the SYN packet
}

// PreheatResult reports the reserved oven and the SYN packet that was
// emitted for it.
type PreheatResult struct {
	OvenID       string
	TemperatureC int
	Packet       flan.Packet
}

// OrderParams describes a submission.
type OrderParams struct {
	RecipeID string
	OvenID   string // optional; empty or unknown falls back to auto-select
	Portions int
	Options  map[string]any
	Source   string
}

// OrderTicket is handed back immediately on submission; baking continues
// in the background.
type OrderTicket struct {
	OrderID    string
	RecipeName string
	Icon       string
	OvenID     string
}

// OrderStatusView is the polling view of one order. Flan and Meta are
// set only once the order is done; LastStep only while it is not.
type OrderStatusView struct {
	OrderID  string
	Done     bool
	Icon     string
	Progress int
	Stage    models.OrderStage
	LastStep *models.StageRecord
	Flan     *FlanView
	Meta     *OrderMetaView
}

// FlanView describes the finished dessert.
type FlanView struct {
	Recipe   string
	Texture  string
	Caramel  string
	Portions int
}

// OrderMetaView carries completion metadata.
type OrderMetaView struct {
	Chef            string
	TotalTime       string
	StagesCompleted int
}
