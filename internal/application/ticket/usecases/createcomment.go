package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// CreateCommentCommand records a comment against a ticket. Referential
// integrity of ticket and author is left to the store's foreign keys.
type CreateCommentCommand struct {
	TicketID uint
	AuthorID uint
	Content  string
}

type CreateCommentResult struct {
	Comment dto.CommentDTO
}

type CreateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewCreateCommentUseCase(commentRepo ticket.CommentRepository, log logger.Interface) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		commentRepo: commentRepo,
		logger:      log,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*CreateCommentResult, error) {
	c, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, c); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("Failed to create comment")
	}

	uc.logger.Infow("comment created", "comment_id", c.ID(), "ticket_id", cmd.TicketID)

	// The author name is denormalized only on listing; the create response
	// echoes the written row.
	return &CreateCommentResult{
		Comment: dto.CommentDTO{
			ID:        c.ID(),
			Content:   c.Content(),
			AuthorID:  c.AuthorID(),
			CreatedAt: c.CreatedAt(),
		},
	}, nil
}
