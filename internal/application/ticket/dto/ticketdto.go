package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID        uint      `json:"id"`
	Summary   string    `json:"summary"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func TicketToDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:        t.ID(),
		Summary:   t.Summary(),
		Priority:  t.Priority(),
		Status:    t.Status(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func TicketsToDTO(tickets []*ticket.Ticket) []TicketDTO {
	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, TicketToDTO(t))
	}
	return dtos
}

// CommentDTO is a comment joined with its author's display name.
type CommentDTO struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func CommentViewToDTO(v ticket.CommentView) CommentDTO {
	return CommentDTO{
		ID:         v.ID,
		Content:    v.Content,
		AuthorID:   v.AuthorID,
		AuthorName: v.AuthorName,
		CreatedAt:  v.CreatedAt,
	}
}

func CommentViewsToDTO(views []ticket.CommentView) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(views))
	for _, v := range views {
		dtos = append(dtos, CommentViewToDTO(v))
	}
	return dtos
}
