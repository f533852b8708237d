package handlers

import (
	"bakehouse/internal/logger"
	"bakehouse/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	gate     *rateGate
}

// NewHandler constructs the HTTP handler. A zero RateLimit applies the
// house defaults.
func NewHandler(services *service.Service, log *logger.Logger, limit RateLimit) *Handler {
	return &Handler{
		services: services,
		log:      log,
		gate:     newRateGate(limit),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Protocol endpoints
	h.registerFlanRoutes(router)

	// Live event feed over WebSocket, served on the same port
	router.GET("/ws", h.wsFeed)

	return router
}

func (h *Handler) registerFlanRoutes(r *gin.Engine) {
	api := r.Group("/api/flan", h.tooManyOrdersMiddleware)
	{
		api.POST("/preheat", h.preheat)
		api.POST("/order", h.submitOrder)
		api.GET("/order/:id", h.orderStatus)

		api.GET("/recipes", h.listRecipes)
		api.GET("/ovens", h.listOvens)

		api.GET("/history", h.history)
		api.GET("/events", h.streamEvents)

		api.GET("/ping", h.ping)
		api.GET("/teapot", h.teapot)
		api.GET("/documentation", h.documentation)
	}
}
