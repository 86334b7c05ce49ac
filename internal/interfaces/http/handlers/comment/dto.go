package comment

type CreateCommentRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	AuthorID uint   `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required,max=5000"`
}
