package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bakehouse/internal/catalog"
	"bakehouse/internal/flan"
	"bakehouse/internal/logger"
	"bakehouse/internal/models"
	"bakehouse/internal/repository"
)

// Typed failures the handlers map onto protocol statuses.
var (
	// ErrUnknownRecipe reports a recipe id the book does not know.
	ErrUnknownRecipe = errors.New("recipe not in the book")
	// ErrNoOvenAvailable reports that every oven is reserved or busy.
	ErrNoOvenAvailable = errors.New("no oven available")
	// ErrOvenNotReady reports a caller-named oven that cannot take an order.
	ErrOvenNotReady = errors.New("oven cannot take the order")
)

const (
	// DefaultPreheatC is the protocol default preheat temperature.
	DefaultPreheatC = 180

	defaultRecipeID = "flan_vanilla"
)

// KitchenService drives reservations and the baking pipeline. A single
// mutex serializes submissions so two concurrent orders can never bind
// the same oven.
type KitchenService struct {
	ovens  repository.OvenPool
	orders repository.OrderStore
	book   *catalog.Catalog
	events Events
	log    *logger.Logger

	mu sync.Mutex
}

func NewKitchenService(ovens repository.OvenPool, orders repository.OrderStore, book *catalog.Catalog, events Events, log *logger.Logger) *KitchenService {
	return &KitchenService{
		ovens:  ovens,
		orders: orders,
		book:   book,
		events: events,
		log:    log,
	}
}

// -------- Preheat (SYN / SYN-ACK) --------

// Preheat reserves an idle oven, points it at the requested temperature
// and answers with the SYN packet describing the handshake. With every
// oven taken it emits an error event and fails.
func (s *KitchenService) Preheat(ctx context.Context, p PreheatParams) (PreheatResult, error) {
	if p.TemperatureC <= 0 {
		p.TemperatureC = DefaultPreheatC
	}
	if p.Mold == "" {
		p.Mold = flan.MoldIndividual
	}

	ovenID, err := s.ovens.ReserveAny()
	if err != nil {
		if pubErr := s.events.Publish(ctx, models.KitchenEvent{
			Kind: models.EventError,
			Payload: map[string]any{
				"phase": "preheat",
				"error": "all ovens are taken",
			},
		}); pubErr != nil {
			s.log.Warnw("error event lost", "phase", "preheat", "error", pubErr)
		}
		return PreheatResult{}, ErrNoOvenAvailable
	}
	_ = s.ovens.SetTarget(ovenID, float64(p.TemperatureC))

	header := flan.NewHeader(flan.RequestTypeSyn)
	header.Temperature = p.TemperatureC
	header.Mold = p.Mold
	if p.Source != "" {
		header.SourceOven = p.Source
	}
	pkt, err := flan.NewPacket(header, flan.Body{Action: "PREHEAT"}, flan.Topping{})
	if err != nil {
		_ = s.ovens.Release(ovenID)
		return PreheatResult{}, err
	}

	if err := s.events.Publish(ctx, models.KitchenEvent{
		Kind: models.EventReservation,
		Payload: map[string]any{
			"oven_id":     ovenID,
			"temperature": p.TemperatureC,
			"packet":      pkt,
		},
	}); err != nil {
		_ = s.ovens.Release(ovenID)
		return PreheatResult{}, err
	}

	return PreheatResult{OvenID: ovenID, TemperatureC: p.TemperatureC, Packet: pkt}, nil
}

// -------- Submit (DATA) --------

// Submit validates the order, binds an oven and spawns the baking
// pipeline. The ticket returns immediately; progress is observable via
// polling and the event feed.
//
// Oven resolution: an empty or unknown oven id falls back to
// auto-select; a known oven is accepted while idle or reserved and
// refused while busy.
func (s *KitchenService) Submit(ctx context.Context, p OrderParams) (OrderTicket, error) {
	if p.RecipeID == "" {
		p.RecipeID = defaultRecipeID
	}
	if p.Portions <= 0 {
		p.Portions = 1
	}

	recipe, ok := s.book.Get(p.RecipeID)
	if !ok {
		if pubErr := s.events.Publish(ctx, models.KitchenEvent{
			Kind: models.EventError,
			Payload: map[string]any{
				"phase": "order",
				"error": fmt.Sprintf("unknown recipe %q", p.RecipeID),
			},
		}); pubErr != nil {
			s.log.Warnw("error event lost", "phase", "order", "error", pubErr)
		}
		return OrderTicket{}, fmt.Errorf("%w: %s", ErrUnknownRecipe, p.RecipeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ovenID := p.OvenID
	if oven, known := s.ovens.Get(ovenID); ovenID == "" || !known {
		id, err := s.ovens.ReserveAny()
		if err != nil {
			return OrderTicket{}, ErrNoOvenAvailable
		}
		ovenID = id
	} else if oven.Status == models.OvenBusy {
		return OrderTicket{}, fmt.Errorf("%w: %s", ErrOvenNotReady, ovenID)
	}

	order := s.orders.Create(recipe.ID, ovenID, p.Portions, p.Options)
	if err := s.ovens.MarkBusy(ovenID, order.ID); err != nil {
		s.orders.Forget(order.ID)
		return OrderTicket{}, fmt.Errorf("%w: %s", ErrOvenNotReady, ovenID)
	}
	_ = s.ovens.SetTarget(ovenID, float64(recipe.Bake.TemperatureC))

	pkt, err := orderPacket(order, recipe, p.Source)
	if err == nil {
		err = s.events.Publish(ctx, models.KitchenEvent{
			Kind: models.EventSubmission,
			Payload: map[string]any{
				"order_id": order.ID,
				"recipe":   recipe.ID,
				"oven_id":  ovenID,
				"packet":   pkt,
			},
		})
	}
	if err != nil {
		s.orders.Forget(order.ID)
		_ = s.ovens.Release(ovenID)
		return OrderTicket{}, err
	}

	go s.runPipeline(order, recipe)

	return OrderTicket{
		OrderID:    order.ID,
		RecipeName: recipe.Name,
		Icon:       recipe.Icon,
		OvenID:     ovenID,
	}, nil
}

// orderPacket builds the DATA packet describing one accepted order.
func orderPacket(order models.Order, recipe catalog.Recipe, source string) (flan.Packet, error) {
	header := flan.NewHeader(flan.RequestTypeData)
	header.RecipeID = order.ID
	header.Temperature = recipe.Bake.TemperatureC
	if source != "" {
		header.SourceOven = source
	}

	ingredients := make(map[string]any, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients[ing.Name] = ing.Quantity
	}
	body := flan.Body{
		Action:      "PREPARE",
		Recipe:      recipe.ID,
		Ingredients: ingredients,
		Bake: map[string]any{
			"mode":          recipe.Bake.Mode,
			"temperature_c": recipe.Bake.TemperatureC,
			"oven_time":     recipe.Bake.OvenTime,
		},
	}
	topping := flan.Topping{Extras: order.Options}
	if prio, ok := order.Options["priority"].(string); ok {
		topping.Priority = prio
	}

	return flan.NewPacket(header, body, topping)
}

// -------- Pipeline --------

// runPipeline walks the order through the recipe stages with simulated
// work, then completes it and frees the oven. An order that vanished
// mid-run stops quietly: no further events, no release.
func (s *KitchenService) runPipeline(order models.Order, recipe catalog.Recipe) {
	ctx := context.Background()

	for _, stage := range recipe.Stages {
		rec := models.StageRecord{
			Stage:       stage.ID,
			Description: stage.Description,
			Progress:    stage.Checkpoint,
			At:          time.Now().UTC(),
		}
		if !s.orders.AdvanceStage(order.ID, stage.ID, stage.Checkpoint, rec) {
			return
		}
		if err := s.events.Publish(ctx, models.KitchenEvent{
			Kind: models.EventProgress,
			Payload: map[string]any{
				"order_id":    order.ID,
				"stage":       string(stage.ID),
				"description": stage.Description,
				"progress":    stage.Checkpoint,
			},
		}); err != nil {
			s.log.Warnw("progress event lost", "order_id", order.ID, "stage", stage.ID, "error", err)
		}
		time.Sleep(stage.Duration)
	}

	finished := time.Now().UTC()
	if !s.orders.Complete(order.ID, finished) {
		return
	}
	_ = s.ovens.Release(order.OvenID)

	if err := s.events.Publish(ctx, models.KitchenEvent{
		Kind: models.EventCompletion,
		Payload: map[string]any{
			"order_id":      order.ID,
			"recipe":        recipe.ID,
			"total_seconds": finished.Sub(order.StartedAt).Seconds(),
		},
	}); err != nil {
		s.log.Warnw("completion event lost", "order_id", order.ID, "error", err)
	}
}
