package repository

import (
	"fmt"
	"sync"
	"time"

	"bakehouse/internal/models"
)

// OrderMemory owns the order ledger and the CMD counter. Orders live for
// the whole process; reads hand out deep copies so a status poll never
// observes a torn update from a running pipeline.
type OrderMemory struct {
	mu      sync.Mutex
	orders  map[string]*models.Order
	counter int
}

func NewOrderMemory() *OrderMemory {
	return &OrderMemory{orders: make(map[string]*models.Order)}
}

// Create allocates the next CMD-%04d id and records a fresh submitted order.
func (s *OrderMemory) Create(recipeID, ovenID string, portions int, options map[string]any) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	o := &models.Order{
		ID:        fmt.Sprintf("CMD-%04d", s.counter),
		RecipeID:  recipeID,
		OvenID:    ovenID,
		Portions:  portions,
		Options:   options,
		Stage:     models.StageSubmitted,
		Progress:  0,
		History:   []models.StageRecord{},
		StartedAt: time.Now().UTC(),
	}
	s.orders[o.ID] = o
	return cloneOrder(o)
}

// Get returns a deep copy of the order.
func (s *OrderMemory) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

// AdvanceStage moves the order to stage, raises progress and appends the
// stage record. It reports false when the order is gone from the ledger.
func (s *OrderMemory) AdvanceStage(id string, stage models.OrderStage, progress int, rec models.StageRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Stage = stage
	if progress > o.Progress { // progress never regresses
		o.Progress = progress
	}
	o.History = append(o.History, rec)
	return true
}

// Complete stamps the terminal stage with its finish time.
func (s *OrderMemory) Complete(id string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Stage = models.StageComplete
	o.Progress = 100
	t := at.UTC()
	o.FinishedAt = &t
	return true
}

// Forget drops an order from the ledger. Used to roll back a submission
// that failed after the order record was created.
func (s *OrderMemory) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
}

// Len reports how many orders the ledger holds.
func (s *OrderMemory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func cloneOrder(o *models.Order) models.Order {
	out := *o
	out.History = make([]models.StageRecord, len(o.History))
	copy(out.History, o.History)
	if o.Options != nil {
		out.Options = make(map[string]any, len(o.Options))
		for k, v := range o.Options {
			out.Options[k] = v
		}
	}
	if o.FinishedAt != nil {
		t := *o.FinishedAt
		out.FinishedAt = &t
	}
	return out
}
