package service

import (
	"context"
	"errors"
	"fmt"

	"bakehouse/internal/catalog"
	"bakehouse/internal/models"
	"bakehouse/internal/repository"
)

// ErrOrderNotFound reports an order id the ledger does not hold.
var ErrOrderNotFound = errors.New("order not found")

// Presentation of a finished flan.
const (
	flanTexture = "silky"
	flanCaramel = "glossy"
	headChef    = "Auguste"
)

// MonitoringService assembles the read-only views.
type MonitoringService struct {
	ovens  repository.OvenPool
	orders repository.OrderStore
	book   *catalog.Catalog
}

func NewMonitoringService(ovens repository.OvenPool, orders repository.OrderStore, book *catalog.Catalog) *MonitoringService {
	return &MonitoringService{ovens: ovens, orders: orders, book: book}
}

// OrderStatus returns the polling view of one order: progress and the
// last pipeline step while baking, the plated flan once done.
func (s *MonitoringService) OrderStatus(ctx context.Context, orderID string) (OrderStatusView, error) {
	order, ok := s.orders.Get(orderID)
	if !ok {
		return OrderStatusView{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	icon := "🍮"
	if recipe, known := s.book.Get(order.RecipeID); known {
		icon = recipe.Icon
	}

	view := OrderStatusView{
		OrderID:  order.ID,
		Icon:     icon,
		Progress: order.Progress,
		Stage:    order.Stage,
	}

	if order.Stage == models.StageComplete {
		view.Done = true
		view.Flan = &FlanView{
			Recipe:   order.RecipeID,
			Texture:  flanTexture,
			Caramel:  flanCaramel,
			Portions: order.Portions,
		}
		total := ""
		if order.FinishedAt != nil {
			total = fmt.Sprintf("%.1fs", order.FinishedAt.Sub(order.StartedAt).Seconds())
		}
		view.Meta = &OrderMetaView{
			Chef:            headChef,
			TotalTime:       total,
			StagesCompleted: len(order.History),
		}
		return view, nil
	}

	if n := len(order.History); n > 0 {
		last := order.History[n-1]
		view.LastStep = &last
	}
	return view, nil
}

// Ovens returns a point-in-time snapshot of the pool.
func (s *MonitoringService) Ovens(ctx context.Context) []models.Oven {
	return s.ovens.List()
}

// Recipes returns the book in listing order.
func (s *MonitoringService) Recipes(ctx context.Context) []catalog.Recipe {
	return s.book.List()
}
