package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "ticketdesk/internal/interfaces/http/handlers/ticket"
)

// RegisterTicketRoutes wires the ticket CRUD routes.
func RegisterTicketRoutes(api *gin.RouterGroup, handler *tickethandler.Handler) {
	tickets := api.Group("/ticket")
	{
		tickets.GET("/all", handler.List)
		tickets.POST("/", handler.Create)
		tickets.GET("/:id", handler.Get)
		tickets.PATCH("/:id", handler.Update)
		tickets.DELETE("/:id", handler.Delete)
	}
}
