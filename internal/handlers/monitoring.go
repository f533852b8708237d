package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/flan"
	"bakehouse/internal/models"
	"bakehouse/internal/service"
)

// @Summary      Poll one order
// @Description  Progress and current stage while baking; the plated flan once ready.
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id, e.g. CMD-0001"
// @Success      200  {object}  flan.Response
// @Failure      404  {object}  flan.Response
// @Router       /api/flan/order/{id} [get]
func (h *Handler) orderStatus(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.services.Monitoring.OrderStatus(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			st := flan.StatusFlanNotFound
			c.JSON(st.Code, flan.NewResponse(st, nil, "No such order"))
			return
		}
		h.logAndProtocolError(c, flan.StatusOvenBroken, "the kitchen hit a snag", "order_status_failed", err)
		return
	}

	st := flan.StatusFlanPerfect
	if view.Done {
		c.JSON(st.Code, flan.NewResponse(st, gin.H{
			"order_id": view.OrderID,
			"status":   orderReady,
			"icon":     view.Icon,
			"flan": gin.H{
				"recipe":   view.Flan.Recipe,
				"texture":  view.Flan.Texture,
				"caramel":  view.Flan.Caramel,
				"portions": view.Flan.Portions,
			},
			"metadata": gin.H{
				"chef":             view.Meta.Chef,
				"total_time":       view.Meta.TotalTime,
				"stages_completed": view.Meta.StagesCompleted,
			},
		}, ""))
		return
	}

	data := gin.H{
		"order_id":      view.OrderID,
		"status":        orderInProgress,
		"progress":      view.Progress,
		"icon":          view.Icon,
		"current_stage": nil,
	}
	if view.LastStep != nil {
		data["current_stage"] = gin.H{
			"stage":       view.LastStep.Stage,
			"description": view.LastStep.Description,
			"at":          view.LastStep.At,
		}
	}
	c.JSON(st.Code, flan.NewResponse(st, data,
		fmt.Sprintf("⏳ Baking in progress... %d%%", view.Progress)))
}

// @Summary      List the recipe book
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  flan.Response
// @Router       /api/flan/recipes [get]
func (h *Handler) listRecipes(c *gin.Context) {
	recipes := h.services.Monitoring.Recipes(c.Request.Context())
	out := make([]gin.H, 0, len(recipes))
	for _, r := range recipes {
		ingredients := make(map[string]string, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			ingredients[ing.Name] = ing.Quantity
		}
		out = append(out, gin.H{
			"id":          r.ID,
			"name":        r.Name,
			"icon":        r.Icon,
			"ingredients": ingredients,
			"bake": gin.H{
				"mode":          r.Bake.Mode,
				"temperature_c": r.Bake.TemperatureC,
				"oven_time":     r.Bake.OvenTime,
			},
		})
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{"recipes": out, "total": len(out)}, ""))
}

// @Summary      Inspect the oven pool
// @Tags         kitchen
// @Produce      json
// @Success      200  {object}  flan.Response
// @Router       /api/flan/ovens [get]
func (h *Handler) listOvens(c *gin.Context) {
	ovens := h.services.Monitoring.Ovens(c.Request.Context())
	available := 0
	for _, o := range ovens {
		if o.Status == models.OvenIdle {
			available++
		}
	}

	st := flan.StatusFlanPerfect
	c.JSON(st.Code, flan.NewResponse(st, gin.H{
		"ovens":     ovens,
		"available": available,
		"total":     len(ovens),
	}, ""))
}
