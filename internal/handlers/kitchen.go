package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/flan"
	"bakehouse/internal/service"
)

// Order progress labels used by the submission and status endpoints.
const (
	orderAccepted   = "PREPARATION_IN_PROGRESS"
	orderInProgress = "IN_PROGRESS"
	orderReady      = "FLAN_READY"
)

// Centralized error logging and protocol-envelope response.
func (h *Handler) logAndProtocolError(c *gin.Context, st flan.Status, userMsg, logKey string, err error, kv ...any) {
	if h.log != nil && err != nil {
		fields := append([]any{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(st.Code, flan.NewResponse(st, nil, userMsg))
}

// Request DTO for preheating. The whole body is optional.
type preheatRequest struct {
	TemperatureC int    `json:"temperature_c"`
	Mold         string `json:"mold"`
}

// PreheatRequest is an exported model for Swagger docs of the preheat payload.
type PreheatRequest struct {
	// Target temperature in Celsius; defaults to the protocol's 180
	TemperatureC int `json:"temperature_c,omitempty" example:"180"`
	// Mold format. Allowed: INDIVIDUAL, FAMILY, GIANT, MINI
	Mold string `json:"mold,omitempty" example:"INDIVIDUAL"`
}

// Request DTO for submitting an order.
type orderRequest struct {
	Recipe   string         `json:"recipe"`
	OvenID   string         `json:"oven_id"`
	Portions int            `json:"portions"`
	Options  map[string]any `json:"options"`
}

// OrderRequest is an exported model for Swagger docs of the order payload.
type OrderRequest struct {
	// Recipe id from the book; defaults to flan_vanilla
	Recipe string `json:"recipe,omitempty" example:"flan_chocolate"`
	// Preferred oven; empty or unknown lets the kitchen pick
	OvenID string `json:"oven_id,omitempty" example:"oven_2"`
	// Number of portions; defaults to 1
	Portions int `json:"portions,omitempty" example:"4"`
	// Free-form extras forwarded into the packet topping
	Options map[string]any `json:"options,omitempty"`
}

// @Summary      Preheat an oven (SYN)
// @Description  Reserves an idle oven and answers with a SYN-ACK. 302 when every oven is taken.
// @Tags         kitchen
// @Accept       json
// @Produce      json
// @Param        body  body  PreheatRequest  false  "Preheat payload"
// @Success      200  {object}  flan.Response
// @Failure      302  {object}  flan.Response
// @Router       /api/flan/preheat [post]
func (h *Handler) preheat(c *gin.Context) {
	var req preheatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		st := flan.StatusBadRecipe
		c.JSON(st.Code, flan.NewResponse(st, nil, "invalid body: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	res, err := h.services.Kitchen.Preheat(ctx, service.PreheatParams{
		TemperatureC: req.TemperatureC,
		Mold:         req.Mold,
		Source:       c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, service.ErrNoOvenAvailable) {
			st := flan.StatusOvenOccupied
			c.JSON(st.Code, flan.NewResponse(st, nil,
				"🔥 Every oven is taken! Try again in a few minutes"))
			return
		}
		h.logAndProtocolError(c, flan.StatusOvenBroken, "the kitchen hit a snag", "preheat_failed", err)
		return
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"syn_ack": gin.H{
			"type":          flan.RequestTypeSynAck,
			"oven_id":       res.OvenID,
			"capacity":      "available",
			"temperature_c": res.TemperatureC,
		},
		"packet": res.Packet,
	}, ""))
}

// @Summary      Submit an order (DATA)
// @Description  Validates the recipe, binds an oven and starts the baking pipeline in the background.
// @Tags         kitchen
// @Accept       json
// @Produce      json
// @Param        body  body  OrderRequest  false  "Order payload"
// @Success      201  {object}  flan.Response
// @Failure      302  {object}  flan.Response  "named oven is already baking"
// @Failure      404  {object}  flan.Response  "unknown recipe"
// @Failure      503  {object}  flan.Response  "no oven available"
// @Router       /api/flan/order [post]
func (h *Handler) submitOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		st := flan.StatusBadRecipe
		c.JSON(st.Code, flan.NewResponse(st, nil, "invalid body: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	ticket, err := h.services.Kitchen.Submit(ctx, service.OrderParams{
		RecipeID: req.Recipe,
		OvenID:   req.OvenID,
		Portions: req.Portions,
		Options:  req.Options,
		Source:   c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownRecipe):
			st := flan.StatusFlanNotFound
			c.JSON(st.Code, flan.NewResponse(st, gin.H{
				"known_recipes": h.recipeIDs(c),
			}, "That recipe is not in the book"))
		case errors.Is(err, service.ErrOvenNotReady):
			st := flan.StatusOvenOccupied
			c.JSON(st.Code, flan.NewResponse(st, nil, "That oven is already baking another flan"))
		case errors.Is(err, service.ErrNoOvenAvailable):
			st := flan.StatusKitchenClosed
			c.JSON(st.Code, flan.NewResponse(st, nil, "The kitchen is full; no oven can take the order"))
		default:
			h.logAndProtocolError(c, flan.StatusOvenBroken, "the kitchen hit a snag", "order_submit_failed", err)
		}
		return
	}

	st := flan.StatusFlanCreated
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"order_id": ticket.OrderID,
		"recipe":   ticket.RecipeName,
		"icon":     ticket.Icon,
		"oven_id":  ticket.OvenID,
		"status":   orderAccepted,
	}, ""))
}

// recipeIDs lists the ids of the book for error hints.
func (h *Handler) recipeIDs(c *gin.Context) []string {
	recipes := h.services.Monitoring.Recipes(c.Request.Context())
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}
