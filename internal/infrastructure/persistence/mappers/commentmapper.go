package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/biztime"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: biztime.ToMilli(c.CreatedAt()),
	}
}

func (m *CommentMapper) ToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		biztime.FromMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment %d: %w", model.ID, err)
	}
	return c, nil
}
