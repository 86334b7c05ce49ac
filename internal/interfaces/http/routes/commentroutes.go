package routes

import (
	"github.com/gin-gonic/gin"

	commenthandler "ticketdesk/internal/interfaces/http/handlers/comment"
)

// RegisterCommentRoutes wires the comment routes; listing is by ticket id.
func RegisterCommentRoutes(api *gin.RouterGroup, handler *commenthandler.Handler) {
	comments := api.Group("/comments")
	{
		comments.GET("/:id", handler.List)
		comments.POST("/", handler.Create)
	}
}
