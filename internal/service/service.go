package service

import (
	"context"
	"time"

	"bakehouse/internal/catalog"
	"bakehouse/internal/logger"
	"bakehouse/internal/models"
	"bakehouse/internal/repository"
	"bakehouse/internal/stream"
)

// Kitchen exposes the write side of the bakery: oven reservation and
// order submission with its asynchronous baking pipeline.
type Kitchen interface {
	Preheat(ctx context.Context, p PreheatParams) (PreheatResult, error)
	Submit(ctx context.Context, p OrderParams) (OrderTicket, error)
}

// Monitoring exposes the read-only views served to clients.
type Monitoring interface {
	OrderStatus(ctx context.Context, orderID string) (OrderStatusView, error)
	Ovens(ctx context.Context) []models.Oven
	Recipes(ctx context.Context) []catalog.Recipe
}

// Events is the kitchen event bus: a bounded persistent history plus
// live fan-out to subscribers.
type Events interface {
	Publish(ctx context.Context, e models.KitchenEvent) error
	History(ctx context.Context, limit int) ([]models.KitchenEvent, int, error)
	Subscribe() *stream.Subscriber
	Unsubscribe(id string)
	Stats() stream.Stats
}

// Simulator runs the background loop that drifts oven temperatures.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Kitchen
	Monitoring
	Events
	Simulator
}

// NewService wires the repository layer into concrete services. The
// Events service is shared: the kitchen publishes through the same bus
// the handlers read from.
func NewService(repos *repository.Repository, book *catalog.Catalog, broker *stream.Broker, log *logger.Logger) *Service {
	events := NewEventsService(repos.Events, broker)
	return &Service{
		Kitchen:    NewKitchenService(repos.Ovens, repos.Orders, book, events, log),
		Monitoring: NewMonitoringService(repos.Ovens, repos.Orders, book),
		Events:     events,
		Simulator:  NewSimulatorService(repos.Ovens),
	}
}
