package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/utils"
)

// Handler serves the comment routes.
type Handler struct {
	createUC ticketusecases.CreateCommentExecutor
	listUC   ticketusecases.ListCommentsExecutor
}

func NewHandler(
	createUC ticketusecases.CreateCommentExecutor,
	listUC ticketusecases.ListCommentsExecutor,
) *Handler {
	return &Handler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// Create handles POST /api/comments/.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ticketusecases.CreateCommentCommand{
		TicketID: req.TicketID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusCreated, gin.H{"comment": result.Comment})
}

// List handles GET /api/comments/:id, where :id is the ticket id.
func (h *Handler) List(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), ticketusecases.ListCommentsQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"results":  len(result.Comments),
		"comments": result.Comments,
	})
}
