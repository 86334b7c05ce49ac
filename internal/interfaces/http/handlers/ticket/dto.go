package ticket

type CreateTicketRequest struct {
	Summary  string `json:"summary" binding:"required,max=255"`
	Priority string `json:"priority" binding:"required,max=50"`
	Status   string `json:"status" binding:"required,max=50"`
}

// UpdateTicketRequest is a partial patch: absent fields keep their stored
// values, which is why every field is a pointer.
type UpdateTicketRequest struct {
	Summary  *string `json:"summary" binding:"omitempty,max=255"`
	Priority *string `json:"priority" binding:"omitempty,max=50"`
	Status   *string `json:"status" binding:"omitempty,max=50"`
}
