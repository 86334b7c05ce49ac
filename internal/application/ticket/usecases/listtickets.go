package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Pagination utils.Pagination
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.Limit)

	tickets, total, err := uc.ticketRepo.List(ctx, ticket.ListFilter{
		Page:  pagination.Page,
		Limit: pagination.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, apperrors.NewInternalError("Failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: dto.TicketsToDTO(tickets),
		Total:   total,
	}, nil
}
