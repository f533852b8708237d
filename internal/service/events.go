package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bakehouse/internal/models"
	"bakehouse/internal/repository"
	"bakehouse/internal/stream"
)

// EventsService owns the kitchen feed. Every event is written to the
// bounded history before it is fanned out, so the history and the live
// stream never disagree about what happened.
type EventsService struct {
	history repository.EventLog
	broker  *stream.Broker
}

func NewEventsService(history repository.EventLog, broker *stream.Broker) *EventsService {
	return &EventsService{history: history, broker: broker}
}

// Publish stamps, persists and fans out one event. A history failure
// surfaces to the caller and suppresses the fan-out; live delivery
// itself is best-effort and never blocks.
func (s *EventsService) Publish(ctx context.Context, e models.KitchenEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	if err := s.history.Append(ctx, e); err != nil {
		return fmt.Errorf("append event history: %w", err)
	}
	s.broker.Publish(e)
	return nil
}

// History returns up to limit recent events, oldest first, plus the
// total number of retained events.
func (s *EventsService) History(ctx context.Context, limit int) ([]models.KitchenEvent, int, error) {
	events, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.history.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Subscribe attaches a live consumer to the feed.
func (s *EventsService) Subscribe() *stream.Subscriber {
	return s.broker.Subscribe()
}

// Unsubscribe detaches a consumer and frees its buffer.
func (s *EventsService) Unsubscribe(id string) {
	s.broker.Remove(id)
}

// Stats reports fan-out counters for the health view.
func (s *EventsService) Stats() stream.Stats {
	return s.broker.Stats()
}
