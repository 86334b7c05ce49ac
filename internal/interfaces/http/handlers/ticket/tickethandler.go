package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/utils"
)

// Handler serves the ticket CRUD routes.
type Handler struct {
	createUC ticketusecases.CreateTicketExecutor
	getUC    ticketusecases.GetTicketExecutor
	listUC   ticketusecases.ListTicketsExecutor
	updateUC ticketusecases.UpdateTicketExecutor
	deleteUC ticketusecases.DeleteTicketExecutor
}

func NewHandler(
	createUC ticketusecases.CreateTicketExecutor,
	getUC ticketusecases.GetTicketExecutor,
	listUC ticketusecases.ListTicketsExecutor,
	updateUC ticketusecases.UpdateTicketExecutor,
	deleteUC ticketusecases.DeleteTicketExecutor,
) *Handler {
	return &Handler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// Create handles POST /api/ticket/.
func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		Summary:  req.Summary,
		Priority: req.Priority,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusCreated, gin.H{"ticket": result.Ticket})
}

// Get handles GET /api/ticket/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"ticket": result.Ticket})
}

// List handles GET /api/ticket/all with page/limit query parameters.
func (h *Handler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"results": len(result.Tickets),
		"tickets": result.Tickets,
	})
}

// Update handles PATCH /api/ticket/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), ticketusecases.UpdateTicketCommand{
		ID:       id,
		Summary:  req.Summary,
		Priority: req.Priority,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"ticket": result.Ticket})
}

// Delete handles DELETE /api/ticket/:id. Success is 204 with no body.
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ticketusecases.DeleteTicketCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
