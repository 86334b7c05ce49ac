package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsResult struct {
	Comments []dto.CommentDTO
}

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo ticket.CommentRepository, log logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      log,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	views, err := uc.commentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, apperrors.NewInternalError("Failed to list comments")
	}

	return &ListCommentsResult{Comments: dto.CommentViewsToDTO(views)}, nil
}
