package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/utils"
)

const serviceMessage = "Ticket service is up and running"

// Handler serves the health check route.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check handles GET /api/healthchecker.
func (h *Handler) Check(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": serviceMessage})
}
