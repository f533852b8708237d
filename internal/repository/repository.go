package repository

import (
	"context"
	"database/sql"
	"time"

	"bakehouse/internal/models"
)

// OvenPool is the exclusive oven reservation surface.
type OvenPool interface {
	ReserveAny() (string, error)
	MarkBusy(id, orderID string) error
	Release(id string) error
	Get(id string) (models.Oven, bool)
	List() []models.Oven
	SetTarget(id string, tempC float64) error
	SetTemperature(id string, tempC float64) error
}

// OrderStore is the order ledger.
type OrderStore interface {
	Create(recipeID, ovenID string, portions int, options map[string]any) models.Order
	Get(id string) (models.Order, bool)
	AdvanceStage(id string, stage models.OrderStage, progress int, rec models.StageRecord) bool
	Complete(id string, at time.Time) bool
	Forget(id string)
}

// EventLog is the bounded event history.
type EventLog interface {
	Append(ctx context.Context, e models.KitchenEvent) error
	Recent(ctx context.Context, limit int) ([]models.KitchenEvent, error)
	Count(ctx context.Context) (int, error)
}

// Repository aggregates the concrete stores: ovens and orders live in
// memory, events go to SQLite so the bounded history outlives its readers.
type Repository struct {
	Ovens  OvenPool
	Orders OrderStore
	Events EventLog
}

func NewRepository(db *sql.DB, ovenCount, historyCapacity int) *Repository {
	return &Repository{
		Ovens:  NewOvenMemory(ovenCount),
		Orders: NewOrderMemory(),
		Events: NewEventSQLite(db, historyCapacity),
	}
}
